package interactive

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cwmp-model/cwmp-go/pkg/codec"
	"github.com/cwmp-model/cwmp-go/pkg/igd"
	"github.com/cwmp-model/cwmp-go/pkg/inspect"
	"github.com/cwmp-model/cwmp-go/pkg/journal"
	"github.com/cwmp-model/cwmp-go/pkg/paramtree"
)

type captureLogger struct{ events []journal.Event }

func (c *captureLogger) Log(e journal.Event) { c.events = append(c.events, e) }

func newTestShell(t *testing.T) (*Shell, *bytes.Buffer, *captureLogger, string) {
	t.Helper()
	file := filepath.Join(t.TempDir(), "gw.xml")
	root := igd.NewInternetGatewayDevice().
		WithDeviceInfo(igd.NewDeviceInfo().WithManufacturer("Huawei")).
		WithWANDevice(igd.NewWANDevice().WithWANCommonInterfaceConfig(igd.NewWANCommonInterfaceConfig()))
	if err := codec.WriteFile(file, root); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	f := inspect.NewFormatter()
	f.NoColor = true
	f.ShowMetadata = false
	capture := &captureLogger{}

	s := New(file, paramtree.MustNew(root, ""), f, capture, zerolog.Nop())
	var buf bytes.Buffer
	s.SetOutput(&buf)
	return s, &buf, capture, file
}

func TestShellSetGetDiffSave(t *testing.T) {
	s, buf, capture, file := newTestShell(t)

	if s.Exec(`set time.localtimezonename "Central European Time"`) {
		t.Fatal("set requested exit")
	}
	if !strings.Contains(buf.String(), `OK: InternetGatewayDevice.Time.LocalTimeZoneName = "Central European Time"`) {
		t.Errorf("set output: %q", buf.String())
	}
	if !s.Dirty() {
		t.Error("shell not dirty after set")
	}

	buf.Reset()
	s.Exec("get time.localtimezonename deviceinfo.manufacturer")
	want := "InternetGatewayDevice.Time.LocalTimeZoneName: \"Central European Time\"\nInternetGatewayDevice.DeviceInfo.Manufacturer: \"Huawei\"\n"
	if buf.String() != want {
		t.Errorf("get output: %q", buf.String())
	}

	buf.Reset()
	s.Exec("diff")
	if buf.String() != "+ InternetGatewayDevice.Time.LocalTimeZoneName = \"Central European Time\"\n" {
		t.Errorf("diff output: %q", buf.String())
	}

	buf.Reset()
	if s.Exec("quit") {
		t.Fatal("quit with unsaved changes exited")
	}
	if !strings.Contains(buf.String(), "Unsaved changes") {
		t.Errorf("quit output: %q", buf.String())
	}

	s.Exec("save")
	if s.Dirty() {
		t.Error("shell dirty after save")
	}
	gw := igd.NewInternetGatewayDevice()
	if err := codec.ReadFile(file, gw); err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if got := gw.GetTime().GetLocalTimeZoneName(); got == nil || *got != "Central European Time" {
		t.Errorf("saved LocalTimeZoneName = %v", got)
	}

	buf.Reset()
	s.Exec("diff")
	if buf.String() != "  (no changes)\n" {
		t.Errorf("diff after save: %q", buf.String())
	}

	if len(capture.events) != 1 || capture.events[0].Kind != journal.KindSet {
		t.Errorf("journal events: %+v", capture.events)
	}
	if !s.Exec("quit") {
		t.Error("quit after save did not exit")
	}
}

func TestShellReadOnlyAndForce(t *testing.T) {
	s, buf, capture, _ := newTestShell(t)

	s.Exec("set deviceinfo.manufacturer Other")
	if !strings.Contains(buf.String(), "(use 'force')") {
		t.Errorf("set read-only output: %q", buf.String())
	}
	if s.Dirty() {
		t.Error("rejected write marked shell dirty")
	}

	buf.Reset()
	s.Exec("force deviceinfo.manufacturer Other")
	if !strings.HasPrefix(buf.String(), "OK:") {
		t.Errorf("force output: %q", buf.String())
	}
	if len(capture.events) != 2 || capture.events[0].Kind != journal.KindRejected {
		t.Errorf("journal events: %+v", capture.events)
	}

	buf.Reset()
	s.Exec("unset deviceinfo.manufacturer")
	s.Exec("quit !")
	if !strings.Contains(buf.String(), "OK: InternetGatewayDevice.DeviceInfo.Manufacturer unset") ||
		!strings.Contains(buf.String(), "Exiting...") {
		t.Errorf("unset/quit output: %q", buf.String())
	}
}

func TestShellSetNeedsValue(t *testing.T) {
	s, buf, capture, _ := newTestShell(t)

	s.Exec("set time.ntpserver1")
	if !strings.HasPrefix(buf.String(), "Usage: set <path> <value>") {
		t.Errorf("set without value output: %q", buf.String())
	}
	if s.Dirty() || len(capture.events) != 0 {
		t.Error("set without value wrote the tree")
	}

	buf.Reset()
	s.Exec(`set time.ntpserver1 ""`)
	if !strings.Contains(buf.String(), `OK: InternetGatewayDevice.Time.NTPServer1 = ""`) {
		t.Errorf("set empty output: %q", buf.String())
	}
	p, err := s.tree.Get("InternetGatewayDevice.Time.NTPServer1")
	if err != nil || !p.Set || p.Text() != "" {
		t.Errorf("NTPServer1 = %+v, %v; want set and empty", p, err)
	}
}

func TestShellBrowse(t *testing.T) {
	s, buf, _, _ := newTestShell(t)

	s.Exec("ls wandevice.")
	if buf.String() != "  InternetGatewayDevice.WANDevice.1.\n" {
		t.Errorf("ls output: %q", buf.String())
	}

	buf.Reset()
	s.Exec("show wandevice.1.")
	if !strings.Contains(buf.String(), "InternetGatewayDevice.WANDevice.1.WANCommonInterfaceConfig.") {
		t.Errorf("show output: %q", buf.String())
	}

	buf.Reset()
	s.Exec("show nosuch.")
	s.Exec("frobnicate")
	s.Exec("get")
	out := buf.String()
	for _, want := range []string{"Error: no such object", "Unknown command: frobnicate", "Usage: get"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}

	buf.Reset()
	s.Exec("force time.localtimezone TOOLONGZONE")
	buf.Reset()
	s.Exec("validate")
	if !strings.Contains(buf.String(), "InternetGatewayDevice.Time.LocalTimeZone: maxLength=6") {
		t.Errorf("validate output: %q", buf.String())
	}

	buf.Reset()
	s.Exec("help")
	if !strings.Contains(buf.String(), "may omit InternetGatewayDevice.") {
		t.Errorf("help output: %q", buf.String())
	}
}
