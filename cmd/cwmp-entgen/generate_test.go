package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const timeSchema = `
package: igd
standard: TR-098 Amendment 2
root:
  name: igd
  object: InternetGatewayDevice
  path: "InternetGatewayDevice."
objects:
  - name: InternetGatewayDevice
    description: The top-level object.
    parameters:
      - {name: DeviceSummary, type: string, access: readOnly, maxLength: 1024}
    children:
      - {name: Time}
      - {name: WANDevice, multi: true}
  - name: Time
    description: Time-of-day configuration.
    parameters:
      - {name: Enable, type: boolean, access: readWrite}
      - {name: NTPServer1, type: string, access: readWrite, maxLength: 64}
      - {name: CurrentLocalTime, type: dateTime, access: readOnly}
  - name: WANDevice
    element: WANDevice
    parameters:
      - {name: Port, type: unsignedInt, access: readWrite, min: 0, max: 65535, units: port}
      - {name: Blob, type: base64, access: readOnly, maxLength: 16}
`

func timeDef(t *testing.T) *RawSchema {
	t.Helper()
	s, err := ParseSchema([]byte(timeSchema))
	if err != nil {
		t.Fatalf("ParseSchema failed: %v", err)
	}
	return s
}

func generateObject(t *testing.T, name string) string {
	t.Helper()
	s := timeDef(t)
	paths, err := objectPaths(s)
	if err != nil {
		t.Fatalf("objectPaths failed: %v", err)
	}
	o, ok := s.Object(name)
	if !ok {
		t.Fatalf("object %s not found", name)
	}
	output, err := GenerateObject(s, o, s.Package, paths[name])
	if err != nil {
		t.Fatalf("GenerateObject failed: %v", err)
	}
	return output
}

func TestGenerateStruct(t *testing.T) {
	output := generateObject(t, "Time")

	mustContain(t, output, "// Code generated by cwmp-entgen. DO NOT EDIT.")
	mustContain(t, output, "package igd")
	mustContain(t, output, `"time"`)
	mustContain(t, output, "// Time represents time-of-day configuration.")
	mustContain(t, output, "//\tInternetGatewayDevice.Time.")
	mustContain(t, output, "type Time struct {")
	mustContain(t, output, "Enable *bool `xml:\"Enable,omitempty\" json:\"Enable,omitempty\" yaml:\"Enable,omitempty\" cwmp:\"Enable,rw,boolean\"`")
	mustContain(t, output, `cwmp:"NTPServer1,rw,string,maxLength=64"`)
	mustContain(t, output, "CurrentLocalTime *time.Time")
	mustContain(t, output, "var _ model.Node = (*Time)(nil)")
	mustContain(t, output, `func (*Time) ObjectName() string { return "Time" }`)
}

func TestGenerateParameterMethods(t *testing.T) {
	output := generateObject(t, "Time")

	mustContain(t, output, "func NewTime() *Time {")
	mustContain(t, output, "func (t *Time) GetNTPServer1() *string {")
	mustContain(t, output, "func (t *Time) SetNTPServer1(value *string) {")
	mustContain(t, output, "func (t *Time) WithNTPServer1(value string) *Time {")
	mustContain(t, output, "t.NTPServer1 = &value")
	mustContain(t, output, "func (t *Time) WithCurrentLocalTime(value time.Time) *Time {")
}

func TestGenerateBinaryAndRange(t *testing.T) {
	output := generateObject(t, "WANDevice")

	mustContain(t, output, `cwmp:"Port,rw,unsignedInt,min=0,max=65535,units=port"`)
	mustContain(t, output, "Blob *model.Base64")
	mustContain(t, output, "func (w *WANDevice) WithBlob(value model.Base64) *WANDevice {")
	mustContain(t, output, "w.Blob = &value")
	mustContain(t, output, "// WANDevice represents the WANDevice object.")
	mustContain(t, output, "//\tInternetGatewayDevice.WANDevice.{i}.")
	mustNotContain(t, output, `"time"`)
}

func TestGenerateChildMethods(t *testing.T) {
	output := generateObject(t, "InternetGatewayDevice")

	mustContain(t, output, "Time *Time `xml:\"Time,omitempty\"")
	mustContain(t, output, `cwmp:"Time,object"`)
	mustContain(t, output, "WANDevices []*WANDevice `xml:\"WANDevice,omitempty\"")
	mustContain(t, output, `cwmp:"WANDevice,multi"`)

	mustContain(t, output, "func (i *InternetGatewayDevice) GetTime() *Time {")
	mustContain(t, output, "func (i *InternetGatewayDevice) WithTime(value *Time) *InternetGatewayDevice {")
	mustContain(t, output, "func (i *InternetGatewayDevice) GetWANDevices() []*WANDevice {")
	mustContain(t, output, "i.WANDevices = []*WANDevice{}")
	mustContain(t, output, "func (i *InternetGatewayDevice) WithWANDevice(item *WANDevice) *InternetGatewayDevice {")
	mustContain(t, output, "i.WANDevices = append(i.GetWANDevices(), item)")
}

func TestGenerateRegistry(t *testing.T) {
	output := GenerateRegistry(timeDef(t), "igd")

	mustContain(t, output, `RootPath = "InternetGatewayDevice."`)
	mustContain(t, output, `Standard = "TR-098 Amendment 2"`)
	mustContain(t, output, "model.MustRegister(model.RootSpec{")
	mustContain(t, output, "func() model.Node { return NewInternetGatewayDevice() }")
}

func TestGenerateFiles(t *testing.T) {
	files, err := Generate(timeDef(t), "other")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var names []string
	for _, f := range files {
		names = append(names, f.Name)
		mustContain(t, f.Code, "package other")
	}
	want := []string{"internet_gateway_device_gen.go", "time_gen.go", "wan_device_gen.go", "schema_gen.go"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("files = %v, want %v", names, want)
	}
}

func TestRunWritesFormattedFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "igd.yaml")
	if err := os.WriteFile(schemaPath, []byte(timeSchema), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "igd")
	if err := run(schemaPath, out, ""); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(out, "time_gen.go"))
	if err != nil {
		t.Fatalf("reading generated file: %v", err)
	}
	// goimports aligns struct fields
	mustContain(t, string(data), "\tEnable           *bool")
	mustContain(t, string(data), "\treturn t.NTPServer1\n")
}

func TestFileName(t *testing.T) {
	tests := map[string]string{
		"Time":                       "time",
		"WANPPPConnection":           "wan_ppp_connection",
		"LANEthernetInterfaceConfig": "lan_ethernet_interface_config",
		"Layer3Forwarding":           "layer3_forwarding",
		"STBService":                 "stb_service",
		"CN":                         "cn",
		"HDMIDisplayDevice":          "hdmi_display_device",
	}
	for in, want := range tests {
		if got := fileName(in); got != want {
			t.Errorf("fileName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFirstLower(t *testing.T) {
	tests := map[string]string{
		"The top-level object": "the top-level object",
		"LAN hosts":            "LAN hosts",
		"An 802.11 interface":  "an 802.11 interface",
		"":                     "",
	}
	for in, want := range tests {
		if got := firstLower(in); got != want {
			t.Errorf("firstLower(%q) = %q, want %q", in, got, want)
		}
	}
}

func mustContain(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Errorf("output missing %q", substr)
	}
}

func mustNotContain(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Errorf("output unexpectedly contains %q", substr)
	}
}
