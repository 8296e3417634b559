package main

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
}

// templates holds all parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	objectTmpl +
		parameterMethodsTmpl +
		childMethodsTmpl +
		registryTmpl,
))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		panic(fmt.Sprintf("template %s: %v", name, err))
	}
}

// --- Template data types ---

type objectData struct {
	Package   string
	Name      string
	Element   string
	Recv      string
	Doc       string
	Paths     []string
	NeedsTime bool
	Params    []paramData
	Children  []childData
}

type paramData struct {
	Name      string
	FieldType string
	ValueType string
	Tag       string
}

type childData struct {
	Name   string
	Field  string
	Type   string
	GoType string
	Multi  bool
	Tag    string
}

type registryData struct {
	Package  string
	Name     string
	Object   string
	Path     string
	Standard string
}

// --- Template definitions ---

const objectTmpl = `{{define "object" -}}
// Code generated by cwmp-entgen. DO NOT EDIT.

package {{.Package}}

import (
{{- if .NeedsTime}}
"time"
{{end}}
"github.com/cwmp-model/cwmp-go/pkg/model"
)

// {{.Name}} represents {{.Doc}}
//
{{- range .Paths}}
//	{{.}}
{{- end}}
type {{.Name}} struct {
{{- range .Params}}
{{.Name}} {{.FieldType}} {{.Tag}}
{{- end}}
{{- range .Children}}
{{.Field}} {{.GoType}} {{.Tag}}
{{- end}}
}

var _ model.Node = (*{{.Name}})(nil)

// New{{.Name}} returns a {{.Name}} with every parameter unset.
func New{{.Name}}() *{{.Name}} {
return &{{.Name}}{}
}

// ObjectName returns {{quote .Element}}.
func (*{{.Name}}) ObjectName() string { return {{quote .Element}} }
{{- template "parameterMethods" .}}
{{- template "childMethods" .}}
{{end}}`

const parameterMethodsTmpl = `{{define "parameterMethods"}}
{{- $type := .Name}}
{{- $recv := .Recv}}
{{- range .Params}}

// Get{{.Name}} returns the {{.Name}} parameter, or nil when unset.
func ({{$recv}} *{{$type}}) Get{{.Name}}() {{.FieldType}} {
if {{$recv}} == nil {
return nil
}
return {{$recv}}.{{.Name}}
}

// Set{{.Name}} replaces the {{.Name}} parameter. Nil clears it.
func ({{$recv}} *{{$type}}) Set{{.Name}}(value {{.FieldType}}) {
{{$recv}}.{{.Name}} = value
}

// With{{.Name}} sets the {{.Name}} parameter and returns {{$recv}}.
func ({{$recv}} *{{$type}}) With{{.Name}}(value {{.ValueType}}) *{{$type}} {
{{$recv}}.{{.Name}} = &value
return {{$recv}}
}
{{- end}}
{{- end}}`

const childMethodsTmpl = `{{define "childMethods"}}
{{- $type := .Name}}
{{- $recv := .Recv}}
{{- range .Children}}
{{- if .Multi}}

// Get{{.Field}} returns the {{.Name}} instances. An empty collection is
// allocated on first access.
func ({{$recv}} *{{$type}}) Get{{.Field}}() {{.GoType}} {
if {{$recv}} == nil {
return nil
}
if {{$recv}}.{{.Field}} == nil {
{{$recv}}.{{.Field}} = {{.GoType}}{}
}
return {{$recv}}.{{.Field}}
}

// Set{{.Field}} replaces the {{.Name}} instances.
func ({{$recv}} *{{$type}}) Set{{.Field}}(value {{.GoType}}) {
{{$recv}}.{{.Field}} = value
}

// With{{.Name}} appends one {{.Name}} instance and returns {{$recv}}.
func ({{$recv}} *{{$type}}) With{{.Name}}(item *{{.Type}}) *{{$type}} {
{{$recv}}.{{.Field}} = append({{$recv}}.Get{{.Field}}(), item)
return {{$recv}}
}
{{- else}}

// Get{{.Field}} returns the {{.Name}} object, or nil when absent.
func ({{$recv}} *{{$type}}) Get{{.Field}}() {{.GoType}} {
if {{$recv}} == nil {
return nil
}
return {{$recv}}.{{.Field}}
}

// Set{{.Field}} replaces the {{.Name}} object.
func ({{$recv}} *{{$type}}) Set{{.Field}}(value {{.GoType}}) {
{{$recv}}.{{.Field}} = value
}

// With{{.Name}} sets the {{.Name}} object and returns {{$recv}}.
func ({{$recv}} *{{$type}}) With{{.Name}}(value {{.GoType}}) *{{$type}} {
{{$recv}}.{{.Field}} = value
return {{$recv}}
}
{{- end}}
{{- end}}
{{- end}}`

const registryTmpl = `{{define "registry" -}}
// Code generated by cwmp-entgen. DO NOT EDIT.

package {{.Package}}

import "github.com/cwmp-model/cwmp-go/pkg/model"

const (
// RootPath is the path template of the {{.Object}} object.
RootPath = {{quote .Path}}

// Standard names the data model the package was generated from.
Standard = {{quote .Standard}}
)

func init() {
model.MustRegister(model.RootSpec{
Name: {{quote .Name}},
Path: RootPath,
New:  func() model.Node { return New{{.Object}}() },
})
}
{{end}}`
