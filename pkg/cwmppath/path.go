// Package cwmppath parses and builds dotted CWMP parameter paths.
//
// A path names either an object (partial path, trailing dot) or a parameter:
//
//	InternetGatewayDevice.WANDevice.1.WANConnectionDevice.2.
//	InternetGatewayDevice.Time.NTPServer1
//
// Multi-instance positions hold a positive instance number, or the {i}
// placeholder in a path template.
package cwmppath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Path errors.
var (
	ErrEmptyPath      = errors.New("empty path")
	ErrInvalidPath    = errors.New("invalid path format")
	ErrInvalidSegment = errors.New("invalid path segment")
)

// Placeholder marks a multi-instance position in a template.
const Placeholder = "{i}"

// Path is an immutable parsed parameter path.
type Path struct {
	segments []string
	partial  bool
}

// Parse parses a dotted path. A trailing dot makes the path partial.
func Parse(input string) (Path, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Path{}, ErrEmptyPath
	}
	if strings.HasPrefix(input, ".") || strings.Contains(input, "..") {
		return Path{}, fmt.Errorf("%w: %q", ErrInvalidPath, input)
	}

	p := Path{partial: strings.HasSuffix(input, ".")}
	p.segments = strings.Split(strings.TrimSuffix(input, "."), ".")

	for i, seg := range p.segments {
		switch {
		case IsIndex(seg):
			if i == 0 || IsIndex(p.segments[i-1]) {
				return Path{}, fmt.Errorf("%w: %q at position %d", ErrInvalidSegment, seg, i)
			}
		case !isName(seg):
			return Path{}, fmt.Errorf("%w: %q at position %d", ErrInvalidSegment, seg, i)
		}
	}
	if !p.partial && IsIndex(p.segments[len(p.segments)-1]) {
		return Path{}, fmt.Errorf("%w: parameter path %q ends with an instance", ErrInvalidPath, input)
	}
	return p, nil
}

// MustParse is like Parse but panics on error.
func MustParse(input string) Path {
	p, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return p
}

// IsIndex reports whether seg is an instance number or the placeholder.
func IsIndex(seg string) bool {
	if seg == Placeholder {
		return true
	}
	_, ok := instanceNumber(seg)
	return ok
}

func instanceNumber(seg string) (int, bool) {
	if seg == "" || seg[0] == '0' {
		return 0, false
	}
	n, err := strconv.Atoi(seg)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func isName(seg string) bool {
	if seg == "" {
		return false
	}
	for i, r := range seg {
		switch {
		case r == '_' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z'):
		case i > 0 && (r == '-' || (r >= '0' && r <= '9')):
		default:
			return false
		}
	}
	return true
}

// String returns the dotted form.
func (p Path) String() string {
	if len(p.segments) == 0 {
		return ""
	}
	s := strings.Join(p.segments, ".")
	if p.partial {
		s += "."
	}
	return s
}

// IsZero reports whether p is the empty path.
func (p Path) IsZero() bool { return len(p.segments) == 0 }

// IsPartial reports whether p names an object rather than a parameter.
func (p Path) IsPartial() bool { return p.partial }

// Len returns the number of segments.
func (p Path) Len() int { return len(p.segments) }

// Segments returns a copy of the segments.
func (p Path) Segments() []string {
	out := make([]string, len(p.segments))
	copy(out, p.segments)
	return out
}

// Last returns the final segment, or "" for the empty path.
func (p Path) Last() string {
	if len(p.segments) == 0 {
		return ""
	}
	return p.segments[len(p.segments)-1]
}

// IsTemplate reports whether p contains a placeholder.
func (p Path) IsTemplate() bool {
	for _, seg := range p.segments {
		if seg == Placeholder {
			return true
		}
	}
	return false
}

// Template replaces every instance number with the placeholder.
func (p Path) Template() Path {
	out := Path{segments: make([]string, len(p.segments)), partial: p.partial}
	for i, seg := range p.segments {
		if IsIndex(seg) {
			seg = Placeholder
		}
		out.segments[i] = seg
	}
	return out
}

// Instances returns the instance numbers in order. Placeholders are
// reported as 0.
func (p Path) Instances() []int {
	var out []int
	for _, seg := range p.segments {
		if seg == Placeholder {
			out = append(out, 0)
		} else if n, ok := instanceNumber(seg); ok {
			out = append(out, n)
		}
	}
	return out
}

// Parent returns the enclosing object path. The parent of an instance
// ("A.B.1.") is its collection ("A.B."). ok is false for single-segment
// paths.
func (p Path) Parent() (parent Path, ok bool) {
	if len(p.segments) < 2 {
		return Path{}, false
	}
	return Path{segments: p.segments[:len(p.segments)-1:len(p.segments)-1], partial: true}, true
}

// Child returns the object path name below p.
func (p Path) Child(name string) Path {
	return p.extend(name, true)
}

// Param returns the parameter path name below p.
func (p Path) Param(name string) Path {
	return p.extend(name, false)
}

// Instance returns the path of instance n below the collection p.
func (p Path) Instance(n int) Path {
	return p.extend(strconv.Itoa(n), true)
}

func (p Path) extend(seg string, partial bool) Path {
	segs := make([]string, len(p.segments), len(p.segments)+1)
	copy(segs, p.segments)
	return Path{segments: append(segs, seg), partial: partial}
}

// HasPrefix reports whether prefix is a partial path covering p.
// "A.B." covers "A.B.", "A.B.C" and "A.B.1.D.".
func (p Path) HasPrefix(prefix Path) bool {
	if !prefix.partial || len(prefix.segments) > len(p.segments) {
		return false
	}
	if len(prefix.segments) == len(p.segments) && !p.partial {
		return false
	}
	for i, seg := range prefix.segments {
		if seg != p.segments[i] {
			return false
		}
	}
	return true
}

// Rel returns the segments of p below prefix.
func (p Path) Rel(prefix Path) ([]string, bool) {
	if !p.HasPrefix(prefix) {
		return nil, false
	}
	out := make([]string, len(p.segments)-len(prefix.segments))
	copy(out, p.segments[len(prefix.segments):])
	return out, true
}

// Equal reports whether p and q are the same path.
func (p Path) Equal(q Path) bool {
	if p.partial != q.partial || len(p.segments) != len(q.segments) {
		return false
	}
	for i := range p.segments {
		if p.segments[i] != q.segments[i] {
			return false
		}
	}
	return true
}
