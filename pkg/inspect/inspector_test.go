package inspect

import (
	"errors"
	"strings"
	"testing"

	"github.com/cwmp-model/cwmp-go/pkg/paramtree"
	"github.com/cwmp-model/cwmp-go/pkg/stb"
)

func TestResolve(t *testing.T) {
	insp := NewInspector(testTree(), plainFormatter())

	tests := []struct {
		input    string
		expected string
	}{
		{"", "InternetGatewayDevice."},
		{"time.ntpserver1", "InternetGatewayDevice.Time.NTPServer1"},
		{"InternetGatewayDevice.Time.NTPServer1", "InternetGatewayDevice.Time.NTPServer1"},
		{"internetgatewaydevice.deviceinfo.", "InternetGatewayDevice.DeviceInfo."},
		{"landevice.1.lanhostconfigmanagement.dhcpserverenable", "InternetGatewayDevice.LANDevice.1.LANHostConfigManagement.DHCPServerEnable"},
		{"wandevice.", "InternetGatewayDevice.WANDevice."},
		{"wandevice.2", "InternetGatewayDevice.WANDevice.2."},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := insp.Resolve(tt.input)
			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestResolveErrors(t *testing.T) {
	insp := NewInspector(testTree(), nil)

	if _, err := insp.Resolve("time.nosuch"); !errors.Is(err, paramtree.ErrNoSuchParameter) {
		t.Errorf("expected ErrNoSuchParameter, got %v", err)
	}
	if _, err := insp.Resolve("nosuch.x"); !errors.Is(err, paramtree.ErrNoSuchObject) {
		t.Errorf("expected ErrNoSuchObject, got %v", err)
	}
	if _, err := insp.Resolve("landevice.lanhostconfigmanagement."); !errors.Is(err, paramtree.ErrNoSuchObject) {
		t.Errorf("expected ErrNoSuchObject for missing instance, got %v", err)
	}
}

func TestResolveInstancePrefix(t *testing.T) {
	tree := paramtree.MustNew(stb.NewSTBService(), "")
	insp := NewInspector(tree, nil)

	got, err := insp.Resolve("Device.Services.STBService.1.components.hdmi.")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != "Device.Services.STBService.1.Components.HDMI." {
		t.Errorf("Resolve() = %q", got)
	}
}

func TestShow(t *testing.T) {
	insp := NewInspector(testTree(), plainFormatter())

	out, err := insp.Show("time.ntpserver1")
	if err != nil {
		t.Fatalf("Show failed: %v", err)
	}
	if out != "InternetGatewayDevice.Time.NTPServer1: \"pool.ntp.org\" (string, read-write, maxLength=64)\n" {
		t.Errorf("Show() = %q", out)
	}

	out, err = insp.Show("deviceinfo.")
	if err != nil {
		t.Fatalf("Show failed: %v", err)
	}
	if !strings.HasPrefix(out, "InternetGatewayDevice.DeviceInfo.\n") || !strings.Contains(out, "Manufacturer") {
		t.Errorf("Show() =\n%s", out)
	}

	if _, err := insp.Show("landevice.3."); !errors.Is(err, paramtree.ErrNoSuchObject) {
		t.Errorf("expected ErrNoSuchObject, got %v", err)
	}
}

func TestComplete(t *testing.T) {
	insp := NewInspector(testTree(), nil)

	got := insp.Complete("time.ntp")
	if len(got) != 13 || got[0] != "InternetGatewayDevice.Time.Enable" {
		t.Errorf("Complete() = %v", got)
	}

	root := insp.Complete("dev")
	found := false
	for _, n := range root {
		if n == "InternetGatewayDevice.DeviceInfo." {
			found = true
		}
	}
	if !found {
		t.Errorf("Complete() at root missing DeviceInfo: %v", root)
	}

	if got := insp.Complete("nosuch.x"); got != nil {
		t.Errorf("Complete() = %v, want nil", got)
	}
}
