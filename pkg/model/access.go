package model

import (
	"fmt"
	"strings"
)

// Access describes whether a parameter may be written by an ACS.
type Access uint8

const (
	// AccessReadOnly parameters can only be read.
	AccessReadOnly Access = iota

	// AccessReadWrite parameters can be read and written.
	AccessReadWrite
)

// CanWrite returns true if writing is allowed.
func (a Access) CanWrite() bool { return a == AccessReadWrite }

// String returns the short tag form ("ro" or "rw").
func (a Access) String() string {
	if a == AccessReadWrite {
		return "rw"
	}
	return "ro"
}

// Long returns the data-model document form ("readOnly" or "readWrite").
func (a Access) Long() string {
	if a == AccessReadWrite {
		return "readWrite"
	}
	return "readOnly"
}

// ParseAccess parses "ro", "rw", "readOnly" or "readWrite".
func ParseAccess(s string) (Access, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ro", "readonly":
		return AccessReadOnly, nil
	case "rw", "readwrite":
		return AccessReadWrite, nil
	}
	return AccessReadOnly, fmt.Errorf("%w: access %q", ErrInvalidTag, s)
}
