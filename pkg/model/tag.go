package model

import (
	"fmt"
	"strconv"
	"strings"
)

// TagName is the struct tag key holding CWMP metadata.
const TagName = "cwmp"

type tagKind uint8

const (
	tagParameter tagKind = iota
	tagObject
	tagMulti
)

type parsedTag struct {
	kind  tagKind
	param ParameterMetadata
}

// parseTag parses a cwmp struct tag:
//
//	Name,object
//	Name,multi
//	Name,<ro|rw>,<type>[,maxLength=N][,minLength=N][,min=N][,max=N][,units=U]
func parseTag(tag string) (parsedTag, error) {
	parts := strings.Split(tag, ",")
	if parts[0] == "" {
		return parsedTag{}, fmt.Errorf("%w: missing name in %q", ErrInvalidTag, tag)
	}
	name := parts[0]

	if len(parts) == 2 {
		switch parts[1] {
		case "object":
			return parsedTag{kind: tagObject, param: ParameterMetadata{Name: name}}, nil
		case "multi":
			return parsedTag{kind: tagMulti, param: ParameterMetadata{Name: name}}, nil
		}
	}
	if len(parts) < 3 {
		return parsedTag{}, fmt.Errorf("%w: %q", ErrInvalidTag, tag)
	}

	access, err := ParseAccess(parts[1])
	if err != nil {
		return parsedTag{}, err
	}
	typ, err := ParseDataType(parts[2])
	if err != nil {
		return parsedTag{}, err
	}
	p := ParameterMetadata{Name: name, Access: access, Type: typ}

	for _, opt := range parts[3:] {
		key, value, ok := strings.Cut(opt, "=")
		if !ok {
			return parsedTag{}, fmt.Errorf("%w: option %q in %q", ErrInvalidTag, opt, tag)
		}
		switch key {
		case "maxLength", "minLength":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return parsedTag{}, fmt.Errorf("%w: %s=%q", ErrInvalidTag, key, value)
			}
			if key == "maxLength" {
				p.MaxLength = n
			} else {
				p.MinLength = n
			}
		case "min", "max":
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return parsedTag{}, fmt.Errorf("%w: %s=%q", ErrInvalidTag, key, value)
			}
			if key == "min" {
				p.MinValue = &n
			} else {
				p.MaxValue = &n
			}
		case "units":
			p.Units = value
		default:
			return parsedTag{}, fmt.Errorf("%w: unknown option %q", ErrInvalidTag, key)
		}
	}
	return parsedTag{kind: tagParameter, param: p}, nil
}
