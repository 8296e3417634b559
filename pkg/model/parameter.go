package model

import "strconv"

// ParameterMetadata describes one scalar parameter of an object.
type ParameterMetadata struct {
	// Name is the CWMP parameter name, e.g. "NTPServer1".
	Name string

	// Field is the Go struct field name and Index its position.
	Field string
	Index int

	// Type is the CWMP data type.
	Type DataType

	// Access defines whether an ACS may write the parameter.
	Access Access

	// MinLength and MaxLength bound string length (in characters) or
	// binary length (in bytes). Zero means unbounded.
	MinLength int
	MaxLength int

	// MinValue and MaxValue bound numeric values. Nil means unbounded.
	MinValue *int64
	MaxValue *int64

	// Units is the unit of measurement (e.g. "seconds", "dBm").
	Units string
}

// Writable returns true if the parameter is read-write.
func (p *ParameterMetadata) Writable() bool { return p.Access.CanWrite() }

// HasRange returns true if a numeric range is declared.
func (p *ParameterMetadata) HasRange() bool { return p.MinValue != nil || p.MaxValue != nil }

// Constraints returns a compact description such as "maxLength=64" or
// "0..65535". It returns "" when nothing is declared.
func (p *ParameterMetadata) Constraints() string {
	var s string
	add := func(part string) {
		if s != "" {
			s += " "
		}
		s += part
	}
	if p.MinLength > 0 {
		add("minLength=" + strconv.Itoa(p.MinLength))
	}
	if p.MaxLength > 0 {
		add("maxLength=" + strconv.Itoa(p.MaxLength))
	}
	if p.HasRange() {
		lo, hi := "", ""
		if p.MinValue != nil {
			lo = strconv.FormatInt(*p.MinValue, 10)
		}
		if p.MaxValue != nil {
			hi = strconv.FormatInt(*p.MaxValue, 10)
		}
		add(lo + ".." + hi)
	}
	return s
}
