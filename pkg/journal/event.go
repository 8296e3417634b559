package journal

import (
	"strings"
	"time"
)

// Event is one attempted parameter write.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the write happened (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID groups the events of one recorder (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Root is the root object name of the tree, e.g. "InternetGatewayDevice".
	Root string `cbor:"3,keyasint"`

	// Kind classifies the write.
	Kind Kind `cbor:"4,keyasint"`

	// Path is the full parameter path.
	Path string `cbor:"5,keyasint"`

	// Old and New are the CWMP string forms before and after the write.
	// OldSet and NewSet distinguish an empty string from unset.
	Old    string `cbor:"6,keyasint,omitempty"`
	New    string `cbor:"7,keyasint,omitempty"`
	OldSet bool   `cbor:"8,keyasint,omitempty"`
	NewSet bool   `cbor:"9,keyasint,omitempty"`

	// Fingerprint is the tree fingerprint after the write.
	Fingerprint uint64 `cbor:"10,keyasint,omitempty"`

	// Source names the document the tree was loaded from.
	Source string `cbor:"11,keyasint,omitempty"`

	// Error is set for rejected writes.
	Error string `cbor:"12,keyasint,omitempty"`
}

// Kind classifies journal events.
type Kind uint8

const (
	// KindSet is a successful write of a value.
	KindSet Kind = 0
	// KindUnset is a successful clear.
	KindUnset Kind = 1
	// KindRejected is a write that failed; Error holds the reason.
	KindRejected Kind = 2
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSet:
		return "SET"
	case KindUnset:
		return "UNSET"
	case KindRejected:
		return "REJECTED"
	default:
		return "UNKNOWN"
	}
}

// ParseKind parses a kind name case-insensitively.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToUpper(s) {
	case "SET":
		return KindSet, true
	case "UNSET":
		return KindUnset, true
	case "REJECTED":
		return KindRejected, true
	}
	return 0, false
}

// Changed reports whether the event altered the tree.
func (e Event) Changed() bool {
	if e.Kind == KindRejected {
		return false
	}
	return e.OldSet != e.NewSet || e.Old != e.New
}
