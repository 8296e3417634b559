package model

import (
	"fmt"
	"reflect"
	"time"
)

// DataType represents the CWMP type of a parameter value.
type DataType uint8

const (
	DataTypeUnknown DataType = iota
	DataTypeString
	DataTypeInt
	DataTypeUnsignedInt
	DataTypeLong
	DataTypeUnsignedLong
	DataTypeBoolean
	DataTypeDateTime
	DataTypeBase64
	DataTypeHexBinary
)

var dataTypeNames = []string{
	"unknown", "string", "int", "unsignedInt", "long", "unsignedLong",
	"boolean", "dateTime", "base64", "hexBinary",
}

// String returns the CWMP type name (as used in xsd:type attributes).
func (d DataType) String() string {
	if int(d) < len(dataTypeNames) {
		return dataTypeNames[d]
	}
	return "unknown"
}

// ParseDataType parses a CWMP type name.
func ParseDataType(s string) (DataType, error) {
	for i, name := range dataTypeNames {
		if i > 0 && name == s {
			return DataType(i), nil
		}
	}
	return DataTypeUnknown, fmt.Errorf("%w: data type %q", ErrInvalidTag, s)
}

// IsNumeric returns true for the integer types.
func (d DataType) IsNumeric() bool {
	switch d {
	case DataTypeInt, DataTypeUnsignedInt, DataTypeLong, DataTypeUnsignedLong:
		return true
	}
	return false
}

// IsBinary returns true for base64 and hexBinary.
func (d DataType) IsBinary() bool {
	return d == DataTypeBase64 || d == DataTypeHexBinary
}

var (
	timeType      = reflect.TypeOf(time.Time{})
	base64Type    = reflect.TypeOf(Base64(nil))
	hexBinaryType = reflect.TypeOf(HexBinary(nil))
)

// GoType returns the field type generated for d. Every type is a pointer
// so that nil represents an unset parameter, including binary values
// where an empty value is distinct from an unset one.
func (d DataType) GoType() reflect.Type {
	switch d {
	case DataTypeString:
		return reflect.TypeOf((*string)(nil))
	case DataTypeInt:
		return reflect.TypeOf((*int32)(nil))
	case DataTypeUnsignedInt:
		return reflect.TypeOf((*uint32)(nil))
	case DataTypeLong:
		return reflect.TypeOf((*int64)(nil))
	case DataTypeUnsignedLong:
		return reflect.TypeOf((*uint64)(nil))
	case DataTypeBoolean:
		return reflect.TypeOf((*bool)(nil))
	case DataTypeDateTime:
		return reflect.PointerTo(timeType)
	case DataTypeBase64:
		return reflect.PointerTo(base64Type)
	case DataTypeHexBinary:
		return reflect.PointerTo(hexBinaryType)
	}
	return nil
}
