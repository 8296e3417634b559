package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/cwmp-model/cwmp-go/pkg/model"
)

// GeneratedFile is one rendered Go source file.
type GeneratedFile struct {
	Name string
	Code string
}

// Generate renders every object of the schema plus the registry file.
// pkg overrides the schema's package name when non-empty.
func Generate(s *RawSchema, pkg string) ([]GeneratedFile, error) {
	if pkg == "" {
		pkg = s.Package
	}
	paths, err := objectPaths(s)
	if err != nil {
		return nil, err
	}

	files := make([]GeneratedFile, 0, len(s.Objects)+1)
	for i := range s.Objects {
		o := &s.Objects[i]
		code, err := GenerateObject(s, o, pkg, paths[o.Name])
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", o.Name, err)
		}
		files = append(files, GeneratedFile{Name: fileName(o.Name) + "_gen.go", Code: code})
	}

	files = append(files, GeneratedFile{Name: "schema_gen.go", Code: GenerateRegistry(s, pkg)})
	return files, nil
}

// objectPaths returns every path template under which each object appears,
// in depth-first declaration order.
func objectPaths(s *RawSchema) (map[string][]string, error) {
	paths := make(map[string][]string)
	var walk func(name, path string, depth int) error
	walk = func(name, path string, depth int) error {
		if depth > len(s.Objects) {
			return fmt.Errorf("object %s contains itself", name)
		}
		paths[name] = append(paths[name], path)
		o, _ := s.Object(name)
		for _, c := range o.Children {
			child := path + c.Name + "."
			if c.Multi {
				child += model.Placeholder + "."
			}
			if err := walk(c.TypeName(), child, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(s.Root.Object, s.Root.Path, 0); err != nil {
		return nil, err
	}

	for _, o := range s.Objects {
		if len(paths[o.Name]) == 0 {
			return nil, fmt.Errorf("object %s is not reachable from %s", o.Name, s.Root.Object)
		}
	}
	return paths, nil
}

// GenerateObject renders the entity type of one object.
func GenerateObject(s *RawSchema, o *RawObjectDef, pkg string, paths []string) (string, error) {
	data := objectData{
		Package: pkg,
		Name:    o.Name,
		Element: o.ObjectName(),
		Recv:    recv(o.Name),
		Doc:     objectDoc(o),
		Paths:   paths,
	}

	for _, p := range o.Parameters {
		dt, err := model.ParseDataType(p.Type)
		if err != nil {
			return "", err
		}
		access, err := model.ParseAccess(p.Access)
		if err != nil {
			return "", err
		}
		pd := paramData{
			Name:      p.Name,
			ValueType: goValueType(dt),
			Tag:       structTag(p.Name, paramTag(p, dt, access)),
		}
		pd.FieldType = "*" + pd.ValueType
		if dt == model.DataTypeDateTime {
			data.NeedsTime = true
		}
		data.Params = append(data.Params, pd)
	}

	for _, c := range o.Children {
		if _, ok := s.Object(c.TypeName()); !ok {
			return "", fmt.Errorf("child %s references undefined object %s", c.Name, c.TypeName())
		}
		kind := "object"
		goType := "*" + c.TypeName()
		if c.Multi {
			kind = "multi"
			goType = "[]" + goType
		}
		data.Children = append(data.Children, childData{
			Name:   c.Name,
			Field:  c.FieldName(),
			Type:   c.TypeName(),
			GoType: goType,
			Multi:  c.Multi,
			Tag:    structTag(c.Name, c.Name+","+kind),
		})
	}

	var b strings.Builder
	renderTemplate(&b, "object", data)
	return b.String(), nil
}

// GenerateRegistry renders the file registering the root with the model
// registry.
func GenerateRegistry(s *RawSchema, pkg string) string {
	var b strings.Builder
	renderTemplate(&b, "registry", registryData{
		Package:  pkg,
		Name:     s.Root.Name,
		Object:   s.Root.Object,
		Path:     s.Root.Path,
		Standard: s.Standard,
	})
	return b.String()
}

func paramTag(p RawParameterDef, dt model.DataType, access model.Access) string {
	parts := []string{p.Name, access.String(), dt.String()}
	if p.MinLength != nil {
		parts = append(parts, "minLength="+strconv.Itoa(*p.MinLength))
	}
	if p.MaxLength != nil {
		parts = append(parts, "maxLength="+strconv.Itoa(*p.MaxLength))
	}
	if p.Min != nil {
		parts = append(parts, "min="+strconv.FormatInt(*p.Min, 10))
	}
	if p.Max != nil {
		parts = append(parts, "max="+strconv.FormatInt(*p.Max, 10))
	}
	if p.Units != "" {
		parts = append(parts, "units="+p.Units)
	}
	return strings.Join(parts, ",")
}

func structTag(name, cwmp string) string {
	return fmt.Sprintf("`xml:\"%[1]s,omitempty\" json:\"%[1]s,omitempty\" yaml:\"%[1]s,omitempty\" cwmp:\"%[2]s\"`", name, cwmp)
}

func goValueType(dt model.DataType) string {
	switch dt {
	case model.DataTypeInt:
		return "int32"
	case model.DataTypeUnsignedInt:
		return "uint32"
	case model.DataTypeLong:
		return "int64"
	case model.DataTypeUnsignedLong:
		return "uint64"
	case model.DataTypeBoolean:
		return "bool"
	case model.DataTypeDateTime:
		return "time.Time"
	case model.DataTypeBase64:
		return "model.Base64"
	case model.DataTypeHexBinary:
		return "model.HexBinary"
	}
	return "string"
}

func objectDoc(o *RawObjectDef) string {
	d := strings.TrimSuffix(strings.TrimSpace(o.Description), ".")
	if d == "" {
		return "the " + o.ObjectName() + " object."
	}
	return firstLower(d) + "."
}

// firstLower lowercases the first letter unless it starts an acronym
// ("The device" -> "the device", "LAN hosts" stays).
func firstLower(s string) string {
	r := []rune(s)
	if len(r) == 0 || !unicode.IsUpper(r[0]) {
		return s
	}
	if len(r) > 1 && (unicode.IsUpper(r[1]) || unicode.IsDigit(r[1])) {
		return s
	}
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func recv(name string) string { return strings.ToLower(name[:1]) }

// fileName converts "WANPPPConnection" to "wan_ppp_connection" and
// "Layer3Forwarding" to "layer3_forwarding".
func fileName(name string) string {
	r := []rune(name)
	var b strings.Builder
	for i, c := range r {
		if i > 0 && unicode.IsUpper(c) {
			prev := r[i-1]
			nextLower := i+1 < len(r) && unicode.IsLower(r[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(c))
	}
	return b.String()
}
