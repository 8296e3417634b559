package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwmp-model/cwmp-go/pkg/model"
)

// RawSchema is a data-model schema file loaded from YAML.
type RawSchema struct {
	Package  string         `yaml:"package"`
	Standard string         `yaml:"standard"` // e.g. "TR-098 Amendment 2"
	Root     RawRootDef     `yaml:"root"`
	Objects  []RawObjectDef `yaml:"objects"`

	byName map[string]*RawObjectDef
}

// RawRootDef names the root object of the model.
type RawRootDef struct {
	Name   string `yaml:"name"`   // registry handle, e.g. "igd"
	Object string `yaml:"object"` // root object type
	Path   string `yaml:"path"`   // path template of the root
}

// RawObjectDef represents one object type.
type RawObjectDef struct {
	Name        string            `yaml:"name"`    // Go type name
	Element     string            `yaml:"element"` // CWMP object name, defaults to Name
	Description string            `yaml:"description"`
	Parameters  []RawParameterDef `yaml:"parameters"`
	Children    []RawChildDef     `yaml:"children"`
}

// RawParameterDef represents one scalar parameter.
type RawParameterDef struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`   // CWMP data type
	Access      string `yaml:"access"` // "readOnly", "readWrite"
	MinLength   *int   `yaml:"minLength"`
	MaxLength   *int   `yaml:"maxLength"`
	Min         *int64 `yaml:"min"`
	Max         *int64 `yaml:"max"`
	Units       string `yaml:"units"`
	Description string `yaml:"description"`
}

// RawChildDef references a child object from its parent.
type RawChildDef struct {
	Name   string `yaml:"name"`   // CWMP element name within the parent
	Object string `yaml:"object"` // object type, defaults to Name
	Multi  bool   `yaml:"multi"`
	Plural string `yaml:"plural"` // collection field name, defaults to Name+"s"
}

// ObjectName returns the CWMP object name.
func (o *RawObjectDef) ObjectName() string {
	if o.Element != "" {
		return o.Element
	}
	return o.Name
}

// TypeName returns the referenced object type.
func (c *RawChildDef) TypeName() string {
	if c.Object != "" {
		return c.Object
	}
	return c.Name
}

// FieldName returns the Go field holding the child.
func (c *RawChildDef) FieldName() string {
	if !c.Multi {
		return c.Name
	}
	if c.Plural != "" {
		return c.Plural
	}
	return c.Name + "s"
}

// Object returns the object definition with the given type name.
func (s *RawSchema) Object(name string) (*RawObjectDef, bool) {
	o, ok := s.byName[name]
	return o, ok
}

// ParseSchema parses and checks a schema from YAML bytes.
func ParseSchema(data []byte) (*RawSchema, error) {
	var s RawSchema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}
	if err := s.check(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadSchema loads and parses a schema from a file.
func LoadSchema(path string) (*RawSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseSchema(data)
}

func (s *RawSchema) check() error {
	if s.Package == "" {
		return fmt.Errorf("schema missing package")
	}
	if s.Root.Name == "" || s.Root.Object == "" || s.Root.Path == "" {
		return fmt.Errorf("schema missing root name, object or path")
	}

	s.byName = make(map[string]*RawObjectDef, len(s.Objects))
	for i := range s.Objects {
		o := &s.Objects[i]
		if o.Name == "" {
			return fmt.Errorf("object %d missing name", i)
		}
		if _, dup := s.byName[o.Name]; dup {
			return fmt.Errorf("duplicate object %s", o.Name)
		}
		s.byName[o.Name] = o
	}
	if _, ok := s.byName[s.Root.Object]; !ok {
		return fmt.Errorf("root object %s not defined", s.Root.Object)
	}

	for i := range s.Objects {
		if err := s.checkObject(&s.Objects[i]); err != nil {
			return fmt.Errorf("object %s: %w", s.Objects[i].Name, err)
		}
	}
	return nil
}

func (s *RawSchema) checkObject(o *RawObjectDef) error {
	// every generated identifier on the type must be unique
	idents := map[string]bool{"ObjectName": true}
	claim := func(names ...string) error {
		for _, n := range names {
			if idents[n] {
				return fmt.Errorf("identifier %s generated twice", n)
			}
			idents[n] = true
		}
		return nil
	}

	fields := make(map[string]bool)
	for _, p := range o.Parameters {
		if p.Name == "" {
			return fmt.Errorf("parameter missing name")
		}
		if _, err := model.ParseDataType(p.Type); err != nil {
			return fmt.Errorf("parameter %s: %w", p.Name, err)
		}
		if _, err := model.ParseAccess(p.Access); err != nil {
			return fmt.Errorf("parameter %s: %w", p.Name, err)
		}
		if p.Min != nil && p.Max != nil && *p.Min > *p.Max {
			return fmt.Errorf("parameter %s: min %d > max %d", p.Name, *p.Min, *p.Max)
		}
		if fields[p.Name] {
			return fmt.Errorf("duplicate field %s", p.Name)
		}
		fields[p.Name] = true
		if err := claim("Get"+p.Name, "Set"+p.Name, "With"+p.Name); err != nil {
			return err
		}
	}

	for _, c := range o.Children {
		if c.Name == "" {
			return fmt.Errorf("child missing name")
		}
		if _, ok := s.byName[c.TypeName()]; !ok {
			return fmt.Errorf("child %s references undefined object %s", c.Name, c.TypeName())
		}
		if fields[c.FieldName()] {
			return fmt.Errorf("duplicate field %s", c.FieldName())
		}
		fields[c.FieldName()] = true
		if err := claim("Get"+c.FieldName(), "Set"+c.FieldName(), "With"+c.Name); err != nil {
			return err
		}
	}
	return nil
}
