package util

import (
	"fmt"
	"sync"
	"time"
)

// TimeProvider supplies "now" in a configured timezone. A pinned instant
// replaces the wall clock so renders can be reproduced for a given day.
type TimeProvider struct {
	location *time.Location
	pinned   *time.Time
	mu       sync.RWMutex
}

// NewTimeProvider creates a provider for the given timezone name
func NewTimeProvider(timezone string) (*TimeProvider, error) {
	provider := &TimeProvider{}
	if err := provider.SetTimezone(timezone); err != nil {
		return nil, err
	}
	return provider, nil
}

// SetTimezone updates the timezone for the time provider
func (tp *TimeProvider) SetTimezone(timezone string) error {
	tp.mu.Lock()
	defer tp.mu.Unlock()

	loc := time.Local
	if timezone != "" && timezone != "Local" {
		l, err := time.LoadLocation(timezone)
		if err != nil {
			return fmt.Errorf("invalid timezone '%s': %w\nValid examples: Local, UTC, America/New_York, Asia/Shanghai, Europe/London", timezone, err)
		}
		loc = l
	}
	tp.location = loc
	return nil
}

// Pin fixes Now to the given instant
func (tp *TimeProvider) Pin(t time.Time) {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	tp.pinned = &t
}

// Now returns the current (or pinned) time in the configured timezone
func (tp *TimeProvider) Now() time.Time {
	tp.mu.RLock()
	defer tp.mu.RUnlock()

	loc := tp.location
	if loc == nil {
		loc = time.Local
	}
	if tp.pinned != nil {
		return tp.pinned.In(loc)
	}
	return time.Now().In(loc)
}

// Location returns the configured timezone
func (tp *TimeProvider) Location() *time.Location {
	tp.mu.RLock()
	defer tp.mu.RUnlock()
	if tp.location == nil {
		return time.Local
	}
	return tp.location
}
