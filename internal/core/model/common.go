package model

// LifecycleState classifies a release against a point in time
type LifecycleState int

const (
	StateFuture LifecycleState = iota
	StateUnsupported
	StateActive
	StateLTS
)

// AllStates lists every state in classification order
var AllStates = []LifecycleState{StateFuture, StateUnsupported, StateActive, StateLTS}

// String returns the lower-case state name
func (s LifecycleState) String() string {
	switch s {
	case StateFuture:
		return "future"
	case StateUnsupported:
		return "unsupported"
	case StateActive:
		return "active"
	case StateLTS:
		return "lts"
	default:
		return "unknown"
	}
}

// MarshalText encodes the state by name
func (s LifecycleState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
