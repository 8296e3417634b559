// Package validate checks entity trees against the size and range
// constraints declared in their schema.
//
// Setters never enforce constraints; a tree may hold any value until it
// is validated here.
package validate

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/cwmp-model/cwmp-go/pkg/model"
	"github.com/cwmp-model/cwmp-go/pkg/paramtree"
)

// ErrConstraint is wrapped by every violation error.
var ErrConstraint = errors.New("constraint violated")

// Constraint names a violated rule.
type Constraint string

// Constraint kinds.
const (
	MinLength Constraint = "minLength"
	MaxLength Constraint = "maxLength"
	MinValue  Constraint = "min"
	MaxValue  Constraint = "max"
)

// Violation is one parameter value outside its declared bounds.
type Violation struct {
	Path       string
	Constraint Constraint
	Value      string
	Limit      int64
}

// Error implements error.
func (v Violation) Error() string {
	return fmt.Sprintf("%s: %s %s=%d (value %q)", v.Path, ErrConstraint, v.Constraint, v.Limit, v.Value)
}

// Unwrap makes errors.Is(v, ErrConstraint) true.
func (v Violation) Unwrap() error { return ErrConstraint }

// Violations is the result of a validation run.
type Violations []Violation

// Err returns nil when there are no violations, otherwise all of them
// joined into one error.
func (vs Violations) Err() error {
	if len(vs) == 0 {
		return nil
	}
	errs := make([]error, len(vs))
	for i, v := range vs {
		errs[i] = v
	}
	return errors.Join(errs...)
}

// Tree validates every set parameter of t in document order.
func Tree(t *paramtree.Tree) Violations {
	var out Violations
	for _, p := range t.Flatten() {
		out = append(out, Parameter(p)...)
	}
	return out
}

// Node validates root under its default prefix.
func Node(root model.Node) (Violations, error) {
	t, err := paramtree.New(root, "")
	if err != nil {
		return nil, err
	}
	return Tree(t), nil
}

// Parameter checks one value. Unset parameters never violate.
func Parameter(p paramtree.Parameter) Violations {
	if !p.Set {
		return nil
	}
	m := p.Meta

	var out Violations
	add := func(c Constraint, limit int64) {
		out = append(out, Violation{Path: p.Path, Constraint: c, Value: p.Text(), Limit: limit})
	}

	if m.MinLength > 0 || m.MaxLength > 0 {
		n := length(p)
		if m.MinLength > 0 && n < m.MinLength {
			add(MinLength, int64(m.MinLength))
		}
		if m.MaxLength > 0 && n > m.MaxLength {
			add(MaxLength, int64(m.MaxLength))
		}
	}

	if m.HasRange() && m.Type.IsNumeric() {
		below, above := compare(p.Value, m.MinValue, m.MaxValue)
		if below {
			add(MinValue, *m.MinValue)
		}
		if above {
			add(MaxValue, *m.MaxValue)
		}
	}
	return out
}

// length counts characters for strings and bytes for binary values.
func length(p paramtree.Parameter) int {
	switch v := p.Value.(type) {
	case string:
		return utf8.RuneCountInString(v)
	case model.Base64:
		return len(v)
	case model.HexBinary:
		return len(v)
	}
	return len(p.Text())
}

// compare reports whether v lies below lo or above hi. Unsigned values
// beyond the int64 range only ever exceed hi.
func compare(v any, lo, hi *int64) (below, above bool) {
	var n int64
	switch v := v.(type) {
	case int32:
		n = int64(v)
	case int64:
		n = v
	case uint32:
		n = int64(v)
	case uint64:
		if v > uint64(1<<63-1) {
			return false, hi != nil
		}
		n = int64(v)
	default:
		return false, false
	}
	return lo != nil && n < *lo, hi != nil && n > *hi
}
