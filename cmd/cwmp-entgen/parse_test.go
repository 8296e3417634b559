package main

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// schemaDir returns the absolute path to schema/ relative to this test file.
func schemaDir(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "schema")
}

func TestParseSchema_Defaults(t *testing.T) {
	s := timeDef(t)

	if s.Package != "igd" {
		t.Errorf("package = %q, want igd", s.Package)
	}
	root, ok := s.Object("InternetGatewayDevice")
	if !ok {
		t.Fatal("root object not indexed")
	}
	if len(root.Children) != 2 {
		t.Fatalf("len(children) = %d, want 2", len(root.Children))
	}

	wan := root.Children[1]
	if wan.TypeName() != "WANDevice" {
		t.Errorf("type = %q, want WANDevice", wan.TypeName())
	}
	if wan.FieldName() != "WANDevices" {
		t.Errorf("field = %q, want WANDevices", wan.FieldName())
	}
	if root.Children[0].FieldName() != "Time" {
		t.Errorf("singular field = %q, want Time", root.Children[0].FieldName())
	}

	tm, _ := s.Object("Time")
	if tm.ObjectName() != "Time" {
		t.Errorf("element = %q, want Time", tm.ObjectName())
	}
	if p := tm.Parameters[1]; p.MaxLength == nil || *p.MaxLength != 64 {
		t.Errorf("NTPServer1 maxLength = %v, want 64", p.MaxLength)
	}
}

func TestParseSchema_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "missing package",
			yaml: "root: {name: x, object: A, path: A.}\nobjects: [{name: A}]",
			want: "missing package",
		},
		{
			name: "undefined root",
			yaml: "package: x\nroot: {name: x, object: B, path: B.}\nobjects: [{name: A}]",
			want: "root object B not defined",
		},
		{
			name: "bad type",
			yaml: "package: x\nroot: {name: x, object: A, path: A.}\nobjects: [{name: A, parameters: [{name: P, type: float, access: readOnly}]}]",
			want: "invalid cwmp tag",
		},
		{
			name: "bad range",
			yaml: "package: x\nroot: {name: x, object: A, path: A.}\nobjects: [{name: A, parameters: [{name: P, type: int, access: readOnly, min: 5, max: 1}]}]",
			want: "min 5 > max 1",
		},
		{
			name: "undefined child",
			yaml: "package: x\nroot: {name: x, object: A, path: A.}\nobjects: [{name: A, children: [{name: B}]}]",
			want: "undefined object B",
		},
		{
			name: "method clash",
			yaml: "package: x\nroot: {name: x, object: A, path: A.}\nobjects: [{name: A, parameters: [{name: B, type: int, access: readOnly}], children: [{name: B, object: C, multi: true}]}, {name: C}]",
			want: "identifier WithB generated twice",
		},
		{
			name: "duplicate object",
			yaml: "package: x\nroot: {name: x, object: A, path: A.}\nobjects: [{name: A}, {name: A}]",
			want: "duplicate object A",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSchema([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestGenerate_Unreachable(t *testing.T) {
	s, err := ParseSchema([]byte("package: x\nroot: {name: x, object: A, path: A.}\nobjects: [{name: A}, {name: Orphan}]"))
	if err != nil {
		t.Fatalf("ParseSchema failed: %v", err)
	}
	if _, err := Generate(s, ""); err == nil || !strings.Contains(err.Error(), "not reachable") {
		t.Errorf("err = %v, want unreachable error", err)
	}
}

func TestLoadSchema_Repository(t *testing.T) {
	for _, name := range []string{"igd.yaml", "stb.yaml", "fap.yaml"} {
		t.Run(name, func(t *testing.T) {
			s, err := LoadSchema(filepath.Join(schemaDir(t), name))
			if err != nil {
				t.Fatalf("LoadSchema failed: %v", err)
			}
			if _, err := Generate(s, ""); err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
		})
	}

	if _, err := LoadSchema(filepath.Join(schemaDir(t), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
