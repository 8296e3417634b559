package model

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// Schema errors.
var (
	ErrInvalidTag = errors.New("invalid cwmp tag")
	ErrNotEntity  = errors.New("type is not a CWMP entity")
)

var (
	nodeType = reflect.TypeOf((*Node)(nil)).Elem()

	schemaMu    sync.Mutex
	schemaCache = make(map[reflect.Type]*ObjectMetadata)
)

// SchemaFor returns the metadata of the entity's type.
func SchemaFor(n Node) (*ObjectMetadata, error) {
	if n == nil {
		return nil, ErrNotEntity
	}
	return SchemaOf(reflect.TypeOf(n))
}

// MustSchemaFor is like SchemaFor but panics on error. It is meant for
// generated entities whose tags are known to be valid.
func MustSchemaFor(n Node) *ObjectMetadata {
	meta, err := SchemaFor(n)
	if err != nil {
		panic(err)
	}
	return meta
}

// SchemaOf builds the metadata of an entity type from its cwmp struct tags.
// t may be the struct type or a pointer to it. Results are cached.
func SchemaOf(t reflect.Type) (*ObjectMetadata, error) {
	if t == nil {
		return nil, ErrNotEntity
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	schemaMu.Lock()
	defer schemaMu.Unlock()
	return buildSchema(t)
}

// buildSchema must be called with schemaMu held. The entry is cached before
// the children are visited so recursive types terminate.
func buildSchema(t reflect.Type) (*ObjectMetadata, error) {
	if meta, ok := schemaCache[t]; ok {
		return meta, nil
	}
	if t.Kind() != reflect.Struct || !reflect.PointerTo(t).Implements(nodeType) {
		return nil, fmt.Errorf("%w: %s", ErrNotEntity, t)
	}

	meta := &ObjectMetadata{
		Name:     reflect.New(t).Interface().(Node).ObjectName(),
		GoType:   t,
		params:   make(map[string]*ParameterMetadata),
		children: make(map[string]*ChildMetadata),
	}
	schemaCache[t] = meta

	if err := fillSchema(meta, t); err != nil {
		delete(schemaCache, t)
		return nil, err
	}
	return meta, nil
}

func fillSchema(meta *ObjectMetadata, t reflect.Type) error {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag, ok := field.Tag.Lookup(TagName)
		if !ok || tag == "-" {
			continue
		}
		parsed, err := parseTag(tag)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", t.Name(), field.Name, err)
		}

		switch parsed.kind {
		case tagParameter:
			p := parsed.param
			p.Field = field.Name
			p.Index = i
			if want := p.Type.GoType(); field.Type != want {
				return fmt.Errorf("%w: %s.%s is %s, %s needs %s",
					ErrInvalidTag, t.Name(), field.Name, field.Type, p.Type, want)
			}
			if _, dup := meta.params[p.Name]; dup {
				return fmt.Errorf("%w: duplicate parameter %s in %s", ErrInvalidTag, p.Name, t.Name())
			}
			meta.Parameters = append(meta.Parameters, &p)
			meta.params[p.Name] = &p

		case tagObject, tagMulti:
			multi := parsed.kind == tagMulti
			elem := field.Type
			if multi {
				if elem.Kind() != reflect.Slice {
					return fmt.Errorf("%w: %s.%s must be a slice", ErrInvalidTag, t.Name(), field.Name)
				}
				elem = elem.Elem()
			}
			if elem.Kind() != reflect.Pointer {
				return fmt.Errorf("%w: %s.%s must hold pointers", ErrInvalidTag, t.Name(), field.Name)
			}
			child, err := buildSchema(elem.Elem())
			if err != nil {
				return fmt.Errorf("%s.%s: %w", t.Name(), field.Name, err)
			}
			c := &ChildMetadata{
				Name:          parsed.param.Name,
				Field:         field.Name,
				Index:         i,
				MultiInstance: multi,
				Object:        child,
			}
			if _, dup := meta.children[c.Name]; dup {
				return fmt.Errorf("%w: duplicate child %s in %s", ErrInvalidTag, c.Name, t.Name())
			}
			meta.Children = append(meta.Children, c)
			meta.children[c.Name] = c
		}
	}
	return nil
}
