package inspect

import (
	"strings"
	"testing"

	"github.com/cwmp-model/cwmp-go/pkg/igd"
	"github.com/cwmp-model/cwmp-go/pkg/model"
	"github.com/cwmp-model/cwmp-go/pkg/paramtree"
	"github.com/cwmp-model/cwmp-go/pkg/validate"
)

func testTree() *paramtree.Tree {
	return paramtree.MustNew(igd.NewInternetGatewayDevice().
		WithDeviceInfo(igd.NewDeviceInfo().
			WithManufacturer("Huawei").
			WithUpTime(3600)).
		WithTime(igd.NewTime().
			WithEnable(true).
			WithNTPServer1("pool.ntp.org")).
		WithLANDevice(igd.NewLANDevice().
			WithLANHostConfigManagement(igd.NewLANHostConfigManagement().WithDHCPServerEnable(false))), "")
}

func plainFormatter() *Formatter {
	f := NewFormatter()
	f.NoColor = true
	return f
}

func TestFormatValue(t *testing.T) {
	f := plainFormatter()

	seconds := &model.ParameterMetadata{Name: "UpTime", Type: model.DataTypeUnsignedInt, Units: "seconds"}
	dbm := &model.ParameterMetadata{Name: "MaxULTxPower", Type: model.DataTypeInt, Units: "dBm"}
	plain := &model.ParameterMetadata{Name: "X", Type: model.DataTypeString}

	tests := []struct {
		name     string
		param    paramtree.Parameter
		expected string
	}{
		{"seconds with duration", paramtree.Parameter{Meta: seconds, Value: uint32(3600), Set: true}, "3600 seconds (1h0m0s)"},
		{"short seconds", paramtree.Parameter{Meta: seconds, Value: uint32(30), Set: true}, "30 seconds"},
		{"negative dBm", paramtree.Parameter{Meta: dbm, Value: int32(-20), Set: true}, "-20 dBm"},
		{"string", paramtree.Parameter{Meta: plain, Value: "pool.ntp.org", Set: true}, `"pool.ntp.org"`},
		{"bool", paramtree.Parameter{Meta: plain, Value: true, Set: true}, "true"},
		{"binary", paramtree.Parameter{Meta: plain, Value: model.HexBinary{0xca, 0xfe}, Set: true}, "cafe"},
		{"unset", paramtree.Parameter{Meta: plain}, "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.FormatValue(tt.param); got != tt.expected {
				t.Errorf("FormatValue() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatMetadata(t *testing.T) {
	lo, hi := int64(0), int64(65535)
	m := &model.ParameterMetadata{Type: model.DataTypeUnsignedInt, Access: model.AccessReadWrite, MinValue: &lo, MaxValue: &hi}
	if got := FormatMetadata(m); got != "(unsignedInt, read-write, 0..65535)" {
		t.Errorf("FormatMetadata() = %q", got)
	}
	if got := FormatAccess(model.AccessReadOnly); got != "read-only" {
		t.Errorf("FormatAccess() = %q", got)
	}
}

func TestFormatTree(t *testing.T) {
	f := plainFormatter()
	f.ShowMetadata = false

	out := f.FormatTree(testTree())
	expected := strings.Join([]string{
		"InternetGatewayDevice.",
		"  InternetGatewayDevice.DeviceInfo.",
		"    Manufacturer: \"Huawei\"",
		"    UpTime: 3600 seconds (1h0m0s)",
		"  InternetGatewayDevice.Time.",
		"    Enable: true",
		"    NTPServer1: \"pool.ntp.org\"",
		"  InternetGatewayDevice.LANDevice. [1]",
		"    InternetGatewayDevice.LANDevice.1.",
		"      InternetGatewayDevice.LANDevice.1.LANHostConfigManagement.",
		"        DHCPServerEnable: false",
		"",
	}, "\n")
	if out != expected {
		t.Errorf("FormatTree() =\n%s\nwant\n%s", out, expected)
	}
}

func TestFormatTreeShowUnset(t *testing.T) {
	f := plainFormatter()
	f.ShowUnset = true

	out, err := f.FormatSubtree(testTree(), "InternetGatewayDevice.Time.")
	if err != nil {
		t.Fatalf("FormatSubtree failed: %v", err)
	}
	if !strings.Contains(out, "NTPServer2: null (string, read-write, maxLength=64)") {
		t.Errorf("unset parameter missing:\n%s", out)
	}
	if !strings.Contains(out, "Status: null (string, read-only)") {
		t.Errorf("read-only parameter missing:\n%s", out)
	}

	if _, err := f.FormatSubtree(testTree(), "InternetGatewayDevice.Nope."); err == nil {
		t.Error("expected error for unknown object")
	}
}

func TestFormatChanges(t *testing.T) {
	f := plainFormatter()
	out := f.FormatChanges([]paramtree.Change{
		{Kind: paramtree.ChangeAdded, Path: "A.B", New: "1"},
		{Kind: paramtree.ChangeRemoved, Path: "A.C", Old: "2"},
		{Kind: paramtree.ChangeModified, Path: "A.D", Old: "x", New: "y"},
	})
	expected := "+ A.B = \"1\"\n- A.C = \"2\"\n~ A.D: \"x\" -> \"y\"\n"
	if out != expected {
		t.Errorf("FormatChanges() = %q, want %q", out, expected)
	}
	if got := f.FormatChanges(nil); got != "  (no changes)\n" {
		t.Errorf("FormatChanges(nil) = %q", got)
	}
}

func TestFormatViolations(t *testing.T) {
	f := plainFormatter()
	out := f.FormatViolations(validate.Violations{{Path: "A.B", Constraint: validate.MaxLength, Value: "long", Limit: 2}})
	if out != "A.B: maxLength=2, value \"long\"\n" {
		t.Errorf("FormatViolations() = %q", out)
	}
}

func TestFormatNamesAndParameters(t *testing.T) {
	f := plainFormatter()
	out := f.FormatNames([]paramtree.Name{{Path: "A.B."}, {Path: "A.B.C", Writable: true}})
	if out != "  A.B.\nw A.B.C\n" {
		t.Errorf("FormatNames() = %q", out)
	}
	if got := f.FormatParameters(nil); got != "  (no parameters)\n" {
		t.Errorf("FormatParameters(nil) = %q", got)
	}
}

func TestIndent(t *testing.T) {
	f := &Formatter{}
	if got := f.Indent(2, "x"); got != "    x" {
		t.Errorf("Indent() = %q", got)
	}
	f.IndentWidth = 3
	if got := f.Indent(1, "x"); got != "   x" {
		t.Errorf("Indent() = %q", got)
	}
}
