package paramtree

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/cwmp-model/cwmp-go/pkg/cwmppath"
	"github.com/cwmp-model/cwmp-go/pkg/model"
)

// Tree errors.
var (
	ErrNoSuchParameter = errors.New("no such parameter")
	ErrNoSuchObject    = errors.New("no such object")
	ErrNotWritable     = errors.New("parameter is not writable")
	ErrInvalidValue    = errors.New("invalid parameter value")
	ErrInvalidPrefix   = errors.New("invalid root prefix")
)

// Tree is an entity tree rooted at a concrete path prefix.
// It is not safe for concurrent mutation.
type Tree struct {
	root   model.Node
	meta   *model.ObjectMetadata
	prefix cwmppath.Path
}

// New wraps root. prefix is the concrete partial path of the root object,
// e.g. "Device.Services.STBService.1.". An empty prefix uses the registered
// root path with instance 1, or the bare object name for unregistered types.
func New(root model.Node, prefix string) (*Tree, error) {
	if root == nil || reflect.ValueOf(root).IsNil() {
		return nil, fmt.Errorf("%w: nil root", model.ErrNotEntity)
	}
	meta, err := model.SchemaFor(root)
	if err != nil {
		return nil, err
	}

	if prefix == "" {
		prefix = meta.Name + "."
		if spec, ok := model.DefaultRegistry.RootByObject(meta.Name); ok && reflect.TypeOf(spec.New()).Elem() == meta.GoType {
			prefix = spec.Prefix(1)
		}
	}
	p, err := cwmppath.Parse(prefix)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrefix, err)
	}
	if !p.IsPartial() || p.IsTemplate() {
		return nil, fmt.Errorf("%w: %s must be a concrete object path", ErrInvalidPrefix, prefix)
	}
	if err := checkPrefix(meta, p); err != nil {
		return nil, err
	}
	return &Tree{root: root, meta: meta, prefix: p}, nil
}

// checkPrefix makes sure p names an object of meta's type. Registered
// roots must sit at their registered path; other objects must sit at a
// known template of the same type when one exists.
func checkPrefix(meta *model.ObjectMetadata, p cwmppath.Path) error {
	segs := p.Segments()
	last := ""
	for i := len(segs) - 1; i >= 0; i-- {
		if !cwmppath.IsIndex(segs[i]) {
			last = segs[i]
			break
		}
	}
	if last != meta.Name {
		return fmt.Errorf("%w: %s does not name a %s object", ErrInvalidPrefix, p, meta.Name)
	}

	template := p.Template().String()
	if spec, ok := model.DefaultRegistry.RootByObject(meta.Name); ok && reflect.TypeOf(spec.New()).Elem() == meta.GoType {
		if template != spec.Path {
			return fmt.Errorf("%w: %s is not at %s", ErrInvalidPrefix, p, spec.Path)
		}
		return nil
	}
	if known, err := model.DefaultRegistry.Lookup(template); err == nil && known.GoType != meta.GoType {
		return fmt.Errorf("%w: %s holds %s, not %s", ErrInvalidPrefix, p, known.GoType, meta.GoType)
	}
	return nil
}

// MustNew is like New but panics on error.
func MustNew(root model.Node, prefix string) *Tree {
	t, err := New(root, prefix)
	if err != nil {
		panic(err)
	}
	return t
}

// Root returns the wrapped entity.
func (t *Tree) Root() model.Node { return t.root }

// Prefix returns the path of the root object.
func (t *Tree) Prefix() string { return t.prefix.String() }

// Schema returns the root object metadata.
func (t *Tree) Schema() *model.ObjectMetadata { return t.meta }

// Parameter is one parameter value of a tree.
type Parameter struct {
	// Path is the full instance path.
	Path string

	// Meta describes the parameter.
	Meta *model.ParameterMetadata

	// Value is the typed value (string, int32, uint32, int64, uint64,
	// bool, time.Time, model.Base64 or model.HexBinary), nil when unset.
	Value any

	// Set is false when the parameter has no value.
	Set bool
}

// Text returns the CWMP string form of the value.
func (p Parameter) Text() string { return FormatValue(p.Value) }

// Type returns the parameter's data type.
func (p Parameter) Type() model.DataType { return p.Meta.Type }

// Writable reports whether an ACS may write the parameter.
func (p Parameter) Writable() bool { return p.Meta.Writable() }

// location is a resolved path.
type location struct {
	kind  EntryKind
	path  cwmppath.Path
	meta  *model.ObjectMetadata // object, or element of a collection
	value reflect.Value         // struct, slice for collections; invalid when absent
	param *model.ParameterMetadata
}

func (t *Tree) resolve(p cwmppath.Path, alloc bool) (location, error) {
	rel, ok := p.Rel(t.prefix)
	if !ok {
		if !p.IsPartial() {
			return location{}, fmt.Errorf("%w: %s is outside %s", ErrNoSuchParameter, p, t.prefix)
		}
		return location{}, fmt.Errorf("%w: %s is outside %s", ErrNoSuchObject, p, t.prefix)
	}

	loc := location{
		kind:  EntryObject,
		path:  t.prefix,
		meta:  t.meta,
		value: reflect.ValueOf(t.root).Elem(),
	}
	for i, seg := range rel {
		if loc.kind == EntryCollection {
			n, err := strconv.Atoi(seg)
			if err != nil || n < 1 {
				return location{}, fmt.Errorf("%w: %s", ErrNoSuchObject, loc.path.Child(seg))
			}
			if !loc.value.IsValid() || n > loc.value.Len() || loc.value.Index(n-1).IsNil() {
				return location{}, fmt.Errorf("%w: %s", ErrNoSuchObject, loc.path.Instance(n))
			}
			loc = location{
				kind:  EntryObject,
				path:  loc.path.Instance(n),
				meta:  loc.meta,
				value: loc.value.Index(n - 1).Elem(),
			}
			continue
		}

		if i == len(rel)-1 && !p.IsPartial() {
			param, ok := loc.meta.Parameter(seg)
			if !ok {
				return location{}, fmt.Errorf("%w: %s", ErrNoSuchParameter, p)
			}
			loc.kind = EntryParameter
			loc.path = p
			loc.param = param
			return loc, nil
		}

		c, ok := loc.meta.Child(seg)
		if !ok {
			return location{}, fmt.Errorf("%w: %s", ErrNoSuchObject, loc.path.Child(seg))
		}
		var fv reflect.Value
		if loc.value.IsValid() {
			fv = loc.value.Field(c.Index)
		}
		if c.MultiInstance {
			loc = location{kind: EntryCollection, path: loc.path.Child(seg), meta: c.Object, value: fv}
			continue
		}
		var v reflect.Value
		if fv.IsValid() {
			if fv.IsNil() && alloc {
				fv.Set(reflect.New(c.Object.GoType))
			}
			if !fv.IsNil() {
				v = fv.Elem()
			}
		}
		loc = location{kind: EntryObject, path: loc.path.Child(seg), meta: c.Object, value: v}
	}
	return loc, nil
}

func (t *Tree) parameter(path string, alloc bool) (location, error) {
	p, err := cwmppath.Parse(path)
	if err != nil {
		return location{}, err
	}
	if p.IsPartial() {
		return location{}, fmt.Errorf("%w: %s is an object path", ErrNoSuchParameter, path)
	}
	return t.resolve(p, alloc)
}

// Get returns the parameter at path. A parameter below an absent singular
// object is reported unset.
func (t *Tree) Get(path string) (Parameter, error) {
	loc, err := t.parameter(path, false)
	if err != nil {
		return Parameter{}, err
	}
	return makeParameter(loc.path.String(), loc.param, loc.value), nil
}

func makeParameter(path string, meta *model.ParameterMetadata, owner reflect.Value) Parameter {
	var fv reflect.Value
	if owner.IsValid() {
		fv = owner.Field(meta.Index)
	}
	v, ok := fieldValue(fv)
	return Parameter{Path: path, Meta: meta, Value: v, Set: ok}
}

// Set parses value and stores it at path. Read-only parameters are
// refused with ErrNotWritable.
func (t *Tree) Set(path, value string) error {
	return t.set(path, value, false)
}

// SetForce is like Set but also writes read-only parameters, as a CPE
// does when it updates its own status values.
func (t *Tree) SetForce(path, value string) error {
	return t.set(path, value, true)
}

func (t *Tree) set(path, value string, force bool) error {
	p, err := cwmppath.Parse(path)
	if err != nil {
		return err
	}
	if p.IsPartial() {
		return fmt.Errorf("%w: %s is an object path", ErrNoSuchParameter, path)
	}

	// resolve without allocating first so a rejected write leaves no trace
	loc, err := t.resolve(p, false)
	if err != nil {
		return err
	}
	if !force && !loc.param.Writable() {
		return fmt.Errorf("%w: %s", ErrNotWritable, path)
	}
	v, err := ParseValue(loc.param.Type, value)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if !loc.value.IsValid() {
		if loc, err = t.resolve(p, true); err != nil {
			return err
		}
	}
	storeValue(loc.value.Field(loc.param.Index), v)
	return nil
}

// Unset clears the parameter at path. Access is not checked.
func (t *Tree) Unset(path string) error {
	loc, err := t.parameter(path, false)
	if err != nil {
		return err
	}
	if loc.value.IsValid() {
		fv := loc.value.Field(loc.param.Index)
		fv.Set(reflect.Zero(fv.Type()))
	}
	return nil
}

// Flatten returns every set parameter in document order.
func (t *Tree) Flatten() []Parameter {
	var out []Parameter
	_ = t.Walk(func(e Entry) error {
		if e.Kind == EntryParameter && e.Param.Set {
			out = append(out, e.Param)
		}
		return nil
	})
	return out
}
