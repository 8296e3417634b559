package model

import "reflect"

// ObjectMetadata describes one CWMP object type.
type ObjectMetadata struct {
	// Name is the CWMP object name.
	Name string

	// GoType is the entity struct type (not the pointer).
	GoType reflect.Type

	// Parameters in declaration order.
	Parameters []*ParameterMetadata

	// Children in declaration order.
	Children []*ChildMetadata

	params   map[string]*ParameterMetadata
	children map[string]*ChildMetadata
}

// ChildMetadata describes a child object reference of an object.
type ChildMetadata struct {
	// Name is the CWMP element name of the child within its parent.
	Name string

	Field string
	Index int

	// MultiInstance is true for {i} collections.
	MultiInstance bool

	// Object describes the child's type.
	Object *ObjectMetadata
}

// Parameter returns the parameter with the given CWMP name.
func (o *ObjectMetadata) Parameter(name string) (*ParameterMetadata, bool) {
	p, ok := o.params[name]
	return p, ok
}

// Child returns the child object with the given CWMP name.
func (o *ObjectMetadata) Child(name string) (*ChildMetadata, bool) {
	c, ok := o.children[name]
	return c, ok
}

// New returns a fresh, unset instance of the object.
func (o *ObjectMetadata) New() Node {
	return reflect.New(o.GoType).Interface().(Node)
}
