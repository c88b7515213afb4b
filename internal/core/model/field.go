package model

import "strings"

// Field identifies one column of the release table
type Field int

const (
	FieldUnknown Field = iota
	FieldVersion
	FieldStatus
	FieldReleased
	FieldActiveEnds
	FieldLTSEnds
)

// Fields lists the known columns in canonical table order
var Fields = []Field{FieldVersion, FieldStatus, FieldReleased, FieldActiveEnds, FieldLTSEnds}

var headerFields = map[string]Field{
	"version":     FieldVersion,
	"status":      FieldStatus,
	"released":    FieldReleased,
	"active ends": FieldActiveEnds,
	"lts ends":    FieldLTSEnds,
}

// FieldFromHeader maps a header cell to its field, ignoring case and surrounding space
func FieldFromHeader(header string) Field {
	if field, ok := headerFields[strings.ToLower(strings.TrimSpace(header))]; ok {
		return field
	}
	return FieldUnknown
}

// Header returns the canonical header label of the field
func (f Field) Header() string {
	switch f {
	case FieldVersion:
		return "Version"
	case FieldStatus:
		return "Status"
	case FieldReleased:
		return "Released"
	case FieldActiveEnds:
		return "Active ends"
	case FieldLTSEnds:
		return "LTS ends"
	default:
		return ""
	}
}

// String returns the field's key name
func (f Field) String() string {
	switch f {
	case FieldVersion:
		return "version"
	case FieldStatus:
		return "status"
	case FieldReleased:
		return "released"
	case FieldActiveEnds:
		return "activeEnds"
	case FieldLTSEnds:
		return "ltsEnds"
	default:
		return "unknown"
	}
}
