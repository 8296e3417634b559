package paramtree

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/cwmp-model/cwmp-go/pkg/cwmppath"
	"github.com/cwmp-model/cwmp-go/pkg/model"
)

// EntryKind classifies walk entries.
type EntryKind uint8

const (
	// EntryObject is a singular object or a collection instance.
	EntryObject EntryKind = iota

	// EntryCollection is a multi-instance table such as "WANDevice.".
	EntryCollection

	// EntryParameter is a scalar parameter.
	EntryParameter
)

// String returns the kind name.
func (k EntryKind) String() string {
	switch k {
	case EntryObject:
		return "object"
	case EntryCollection:
		return "collection"
	case EntryParameter:
		return "parameter"
	default:
		return "unknown"
	}
}

// Entry is one node visited by Walk.
type Entry struct {
	Kind EntryKind

	// Path is the full instance path; objects and collections end in a dot.
	Path string

	// Depth counts objects below the walk start (the start is 0).
	Depth int

	// Object is the object metadata (the element type for collections).
	Object *model.ObjectMetadata

	// Present is false for singular objects that are nil in the tree.
	Present bool

	// Instances is the number of instances of a collection.
	Instances int

	// Param is set for parameter entries.
	Param Parameter
}

// SkipObject may be returned by a walk function on an object or
// collection entry to skip its contents.
var SkipObject = errors.New("skip this object")

// WalkFunc is called for every entry. Returning SkipObject skips the
// entry's contents; any other error stops the walk.
type WalkFunc func(Entry) error

// Walk visits the whole tree in document order: each object, then its
// parameters, then its children. Absent singular objects are visited with
// Present false so every supported parameter shows up; collections only
// contain existing instances.
func (t *Tree) Walk(fn WalkFunc) error {
	root := location{kind: EntryObject, path: t.prefix, meta: t.meta, value: reflect.ValueOf(t.root).Elem()}
	return walkLocation(root, 0, -1, fn)
}

// WalkFrom walks the subtree at path, which must be an object or
// collection path.
func (t *Tree) WalkFrom(path string, fn WalkFunc) error {
	p, err := cwmppath.Parse(path)
	if err != nil {
		return err
	}
	if !p.IsPartial() {
		return fmt.Errorf("%w: %s is a parameter path", ErrNoSuchObject, path)
	}
	loc, err := t.resolve(p, false)
	if err != nil {
		return err
	}
	return walkLocation(loc, 0, -1, fn)
}

// walkLocation visits loc and descends until maxDepth (-1 is unbounded).
func walkLocation(loc location, depth, maxDepth int, fn WalkFunc) error {
	err := walk(loc, depth, maxDepth, fn)
	if errors.Is(err, SkipObject) {
		return nil
	}
	return err
}

func walk(loc location, depth, maxDepth int, fn WalkFunc) error {
	if loc.kind == EntryCollection {
		n := 0
		if loc.value.IsValid() {
			n = loc.value.Len()
		}
		if err := fn(Entry{Kind: EntryCollection, Path: loc.path.String(), Depth: depth, Object: loc.meta, Present: true, Instances: n}); err != nil {
			return skip(err)
		}
		if depth == maxDepth {
			return nil
		}
		for i := 0; i < n; i++ {
			elem := loc.value.Index(i)
			if elem.IsNil() {
				continue
			}
			inst := location{kind: EntryObject, path: loc.path.Instance(i + 1), meta: loc.meta, value: elem.Elem()}
			if err := walk(inst, depth+1, maxDepth, fn); err != nil {
				return err
			}
		}
		return nil
	}

	if err := fn(Entry{Kind: EntryObject, Path: loc.path.String(), Depth: depth, Object: loc.meta, Present: loc.value.IsValid()}); err != nil {
		return skip(err)
	}
	if depth == maxDepth {
		return nil
	}

	for _, pm := range loc.meta.Parameters {
		param := makeParameter(loc.path.Param(pm.Name).String(), pm, loc.value)
		if err := fn(Entry{Kind: EntryParameter, Path: param.Path, Depth: depth + 1, Object: loc.meta, Present: param.Set, Param: param}); err != nil {
			if errors.Is(err, SkipObject) {
				continue
			}
			return err
		}
	}

	for _, c := range loc.meta.Children {
		var fv reflect.Value
		if loc.value.IsValid() {
			fv = loc.value.Field(c.Index)
		}
		child := location{kind: EntryCollection, path: loc.path.Child(c.Name), meta: c.Object, value: fv}
		if !c.MultiInstance {
			child.kind = EntryObject
			child.value = reflect.Value{}
			if fv.IsValid() && !fv.IsNil() {
				child.value = fv.Elem()
			}
		}
		if err := walk(child, depth+1, maxDepth, fn); err != nil {
			return err
		}
	}
	return nil
}

// skip turns SkipObject into "done with this object".
func skip(err error) error {
	if errors.Is(err, SkipObject) {
		return nil
	}
	return err
}

// Name is one entry of a Names listing.
type Name struct {
	// Path ends in a dot for objects and collections.
	Path string

	// Writable is the parameter access; objects are never writable.
	Writable bool
}

// Names lists parameter and object names below path, the way a CPE answers
// GetParameterNames. An empty path means the root. With nextLevel only the
// direct children of the object are listed; otherwise the object itself
// and all of its descendants. A parameter path lists just that parameter.
func (t *Tree) Names(path string, nextLevel bool) ([]Name, error) {
	if path == "" {
		path = t.prefix.String()
	}
	p, err := cwmppath.Parse(path)
	if err != nil {
		return nil, err
	}
	loc, err := t.resolve(p, false)
	if err != nil {
		return nil, err
	}
	if loc.kind == EntryParameter {
		if nextLevel {
			return nil, fmt.Errorf("%w: next level of parameter %s", ErrNoSuchObject, path)
		}
		return []Name{{Path: loc.path.String(), Writable: loc.param.Writable()}}, nil
	}

	maxDepth := -1
	if nextLevel {
		maxDepth = 1
	}
	var out []Name
	err = walkLocation(loc, 0, maxDepth, func(e Entry) error {
		if nextLevel && e.Depth == 0 {
			return nil
		}
		n := Name{Path: e.Path}
		if e.Kind == EntryParameter {
			n.Writable = e.Param.Writable()
		}
		out = append(out, n)
		return nil
	})
	return out, err
}
