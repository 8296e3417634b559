package model

// Node is implemented by every generated entity.
type Node interface {
	// ObjectName returns the CWMP object name without instance numbers,
	// e.g. "WANPPPConnection".
	ObjectName() string
}
