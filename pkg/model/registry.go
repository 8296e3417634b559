package model

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Registry errors.
var (
	ErrDuplicateRoot  = errors.New("root already registered")
	ErrObjectNotFound = errors.New("object not found")
)

// Placeholder marks a multi-instance position in a path template.
const Placeholder = "{i}"

// RootSpec describes the root object of a data model.
type RootSpec struct {
	// Name is the short handle of the model, e.g. "igd".
	Name string

	// Path is the template of the root object, e.g.
	// "Device.Services.STBService.{i}.".
	Path string

	// New returns a fresh root entity.
	New func() Node
}

// Prefix returns the root path with every placeholder replaced by
// instance, e.g. "Device.Services.STBService.1.".
func (s RootSpec) Prefix(instance int) string {
	return strings.ReplaceAll(s.Path, Placeholder, strconv.Itoa(instance))
}

// Object returns the CWMP object name of the root.
func (s RootSpec) Object() string { return s.New().ObjectName() }

// Registry indexes data-model roots and every object template below them.
type Registry struct {
	mu        sync.RWMutex
	roots     map[string]RootSpec
	order     []string
	templates map[string]*ObjectMetadata
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		roots:     make(map[string]RootSpec),
		templates: make(map[string]*ObjectMetadata),
	}
}

// DefaultRegistry holds the roots of the generated entity packages.
var DefaultRegistry = NewRegistry()

// MustRegister registers spec with DefaultRegistry and panics on error.
func MustRegister(spec RootSpec) {
	if err := DefaultRegistry.Register(spec); err != nil {
		panic(err)
	}
}

// Register adds a root and indexes its object templates.
func (r *Registry) Register(spec RootSpec) error {
	if spec.Name == "" || spec.New == nil || !strings.HasSuffix(spec.Path, ".") {
		return fmt.Errorf("%w: incomplete root spec %q", ErrNotEntity, spec.Name)
	}
	meta, err := SchemaFor(spec.New())
	if err != nil {
		return err
	}

	templates := make(map[string]*ObjectMetadata)
	collectTemplates(templates, spec.Path, meta)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.roots[spec.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateRoot, spec.Name)
	}
	for tmpl := range templates {
		if _, ok := r.templates[tmpl]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateRoot, tmpl)
		}
	}
	r.roots[spec.Name] = spec
	r.order = append(r.order, spec.Name)
	for tmpl, m := range templates {
		r.templates[tmpl] = m
	}
	return nil
}

func collectTemplates(dst map[string]*ObjectMetadata, path string, meta *ObjectMetadata) {
	dst[path] = meta
	for _, c := range meta.Children {
		child := path + c.Name + "."
		if c.MultiInstance {
			child += Placeholder + "."
		}
		collectTemplates(dst, child, c.Object)
	}
}

// Lookup returns the object metadata for a path template such as
// "InternetGatewayDevice.WANDevice.{i}.".
func (r *Registry) Lookup(template string) (*ObjectMetadata, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meta, ok := r.templates[template]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, template)
	}
	return meta, nil
}

// Templates returns every registered object template, sorted.
func (r *Registry) Templates() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.templates))
	for tmpl := range r.templates {
		out = append(out, tmpl)
	}
	sort.Strings(out)
	return out
}

// Roots returns the registered roots in registration order.
func (r *Registry) Roots() []RootSpec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]RootSpec, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.roots[name])
	}
	return out
}

// Root returns the root registered under name.
func (r *Registry) Root(name string) (RootSpec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spec, ok := r.roots[name]
	return spec, ok
}

// RootByObject returns the root whose object name is object, e.g.
// "InternetGatewayDevice".
func (r *Registry) RootByObject(object string) (RootSpec, bool) {
	for _, spec := range r.Roots() {
		if spec.Object() == object {
			return spec, true
		}
	}
	return RootSpec{}, false
}
