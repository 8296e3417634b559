package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwmp-model/cwmp-go/pkg/codec"
	"github.com/cwmp-model/cwmp-go/pkg/igd"
	"github.com/cwmp-model/cwmp-go/pkg/inspect"
	"github.com/cwmp-model/cwmp-go/pkg/journal"
	"github.com/cwmp-model/cwmp-go/pkg/paramtree"
)

func testEnv() (*Env, *bytes.Buffer) {
	var buf bytes.Buffer
	env := NewEnv()
	env.Out = &buf
	env.Formatter = inspect.NewFormatter()
	env.Formatter.NoColor = true
	env.Formatter.ShowMetadata = false
	return env, &buf
}

func writeGateway(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	gw := igd.NewInternetGatewayDevice().
		WithDeviceInfo(igd.NewDeviceInfo().WithManufacturer("Huawei").WithUpTime(42)).
		WithTime(igd.NewTime().WithNTPServer1("pool.ntp.org"))
	if err := codec.WriteFile(path, gw); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestRunShow(t *testing.T) {
	env, buf := testEnv()
	path := writeGateway(t, "gw.xml")

	if err := RunShow(env, path, ShowOptions{}); err != nil {
		t.Fatalf("RunShow failed: %v", err)
	}
	if !strings.Contains(buf.String(), "NTPServer1: \"pool.ntp.org\"") {
		t.Errorf("output missing NTPServer1:\n%s", buf.String())
	}

	buf.Reset()
	if err := RunShow(env, path, ShowOptions{Path: "time.", Unset: true}); err != nil {
		t.Fatalf("RunShow failed: %v", err)
	}
	if !strings.Contains(buf.String(), "NTPServer5: null") || strings.Contains(buf.String(), "Manufacturer") {
		t.Errorf("unexpected subtree output:\n%s", buf.String())
	}
}

func TestRunGet(t *testing.T) {
	env, buf := testEnv()
	path := writeGateway(t, "gw.cbor")

	if err := RunGet(env, path, []string{"time.ntpserver1", "deviceinfo.uptime"}, true); err != nil {
		t.Fatalf("RunGet failed: %v", err)
	}
	if buf.String() != "pool.ntp.org\n42\n" {
		t.Errorf("RunGet raw = %q", buf.String())
	}

	buf.Reset()
	if err := RunGet(env, path, []string{"InternetGatewayDevice.Time.NTPServer2"}, false); err != nil {
		t.Fatalf("RunGet failed: %v", err)
	}
	if buf.String() != "InternetGatewayDevice.Time.NTPServer2: null\n" {
		t.Errorf("RunGet = %q", buf.String())
	}

	if err := RunGet(env, path, []string{"time.nosuch"}, true); !errors.Is(err, paramtree.ErrNoSuchParameter) {
		t.Errorf("expected ErrNoSuchParameter, got %v", err)
	}
}

func TestRunSetWithJournal(t *testing.T) {
	env, _ := testEnv()
	path := writeGateway(t, "gw.xml")
	jpath := filepath.Join(t.TempDir(), "changes.cjl")

	err := RunSet(env, path, SetOptions{
		Assignments: []string{"time.ntpserver2=time.google.com", "InternetGatewayDevice.ManagementServer.URL=https://acs.example.com"},
		Journal:     jpath,
	})
	if err != nil {
		t.Fatalf("RunSet failed: %v", err)
	}

	gw := igd.NewInternetGatewayDevice()
	if err := codec.ReadFile(path, gw); err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if got := gw.GetTime().GetNTPServer2(); got == nil || *got != "time.google.com" {
		t.Errorf("NTPServer2 = %v", got)
	}
	if got := gw.GetManagementServer().GetURL(); got == nil || *got != "https://acs.example.com" {
		t.Errorf("URL = %v", got)
	}

	r, err := journal.NewReader(jpath)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()
	events, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d journal events, want 2", len(events))
	}
	if events[0].Path != "InternetGatewayDevice.Time.NTPServer2" || events[0].Source != path {
		t.Errorf("unexpected event: %+v", events[0])
	}

	var out bytes.Buffer
	env.Out = &out
	if err := RunJournal(env, jpath, JournalOptions{Filter: journal.Filter{PathPrefix: "InternetGatewayDevice.ManagementServer."}}); err != nil {
		t.Fatalf("RunJournal failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 1 || !strings.Contains(lines[0], `URL: <unset> -> "https://acs.example.com"`) {
		t.Errorf("RunJournal output:\n%s", out.String())
	}

	out.Reset()
	if err := RunJournal(env, jpath, JournalOptions{JSON: true}); err != nil {
		t.Fatalf("RunJournal failed: %v", err)
	}
	if strings.Count(out.String(), "\n") != 2 || !strings.Contains(out.String(), `"Path":"InternetGatewayDevice.Time.NTPServer2"`) {
		t.Errorf("RunJournal JSON output:\n%s", out.String())
	}
}

func TestRunSetRejectsAndKeepsFile(t *testing.T) {
	env, _ := testEnv()
	path := writeGateway(t, "gw.xml")
	before, _ := os.ReadFile(path)

	err := RunSet(env, path, SetOptions{Assignments: []string{
		"time.ntpserver2=ok",
		"deviceinfo.manufacturer=Other",
		"bogus",
	}})
	if !errors.Is(err, paramtree.ErrNotWritable) || !errors.Is(err, ErrAssignment) {
		t.Fatalf("expected joined errors, got %v", err)
	}
	after, _ := os.ReadFile(path)
	if !bytes.Equal(before, after) {
		t.Error("file was rewritten after a failed write")
	}

	if err := RunSet(env, path, SetOptions{Assignments: []string{"deviceinfo.manufacturer=Other"}, Force: true}); err != nil {
		t.Fatalf("forced RunSet failed: %v", err)
	}
}

func TestRunSetUnsetAndOutput(t *testing.T) {
	env, _ := testEnv()
	path := writeGateway(t, "gw.xml")
	out := filepath.Join(t.TempDir(), "gw.yaml")

	env.Root = "igd"
	if err := RunSet(env, path, SetOptions{Assignments: []string{"time.ntpserver1"}, Unset: true, Output: out}); err != nil {
		t.Fatalf("RunSet failed: %v", err)
	}
	gw := igd.NewInternetGatewayDevice()
	if err := codec.ReadFile(out, gw); err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if gw.GetTime().GetNTPServer1() != nil {
		t.Error("NTPServer1 still set")
	}
}

func TestRunSetCreate(t *testing.T) {
	env, _ := testEnv()
	env.Root = "stb"
	path := filepath.Join(t.TempDir(), "new.json")

	if err := RunSet(env, path, SetOptions{Assignments: []string{"enable=true"}, Create: true}); err != nil {
		t.Fatalf("RunSet failed: %v", err)
	}
	var buf bytes.Buffer
	env.Out = &buf
	if err := RunGet(env, path, []string{"Device.Services.STBService.1.Enable"}, true); err != nil {
		t.Fatalf("RunGet failed: %v", err)
	}
	if buf.String() != "true\n" {
		t.Errorf("Enable = %q", buf.String())
	}
}

func TestParseAssignment(t *testing.T) {
	a, err := ParseAssignment("A.B=x=y")
	if err != nil || a.Path != "A.B" || a.Value != "x=y" {
		t.Errorf("ParseAssignment = %+v, %v", a, err)
	}
	a, err = ParseAssignment("A.B=")
	if err != nil || a.Value != "" {
		t.Errorf("ParseAssignment empty = %+v, %v", a, err)
	}
	if _, err := ParseAssignment("=x"); !errors.Is(err, ErrAssignment) {
		t.Errorf("expected ErrAssignment, got %v", err)
	}
}

func TestRunValidate(t *testing.T) {
	env, buf := testEnv()
	path := writeGateway(t, "gw.xml")

	if err := RunValidate(env, path); err != nil {
		t.Fatalf("RunValidate failed: %v", err)
	}
	if err := RunSet(env, path, SetOptions{Assignments: []string{"time.localtimezone=CET-1CEST,M3.5.0,M10.5.0/3"}}); err != nil {
		t.Fatalf("RunSet failed: %v", err)
	}
	buf.Reset()
	err := RunValidate(env, path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if !strings.Contains(buf.String(), "InternetGatewayDevice.Time.LocalTimeZone: maxLength=6") {
		t.Errorf("RunValidate output:\n%s", buf.String())
	}
}

func TestRunDiffAndConvert(t *testing.T) {
	env, buf := testEnv()
	a := writeGateway(t, "a.xml")
	b := filepath.Join(t.TempDir(), "b.cbor")

	if err := RunConvert(env, a, b); err != nil {
		t.Fatalf("RunConvert failed: %v", err)
	}
	if err := RunDiff(env, a, b); err != nil {
		t.Fatalf("RunDiff of converted document failed: %v", err)
	}

	if err := RunSet(env, b, SetOptions{Assignments: []string{"time.ntpserver1=other"}}); err != nil {
		t.Fatalf("RunSet failed: %v", err)
	}
	buf.Reset()
	if err := RunDiff(env, a, b); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if buf.String() != "~ InternetGatewayDevice.Time.NTPServer1: \"pool.ntp.org\" -> \"other\"\n" {
		t.Errorf("RunDiff = %q", buf.String())
	}
}

func TestRunNamesAndSchema(t *testing.T) {
	env, buf := testEnv()
	path := writeGateway(t, "gw.xml")

	if err := RunNames(env, path, "time.", true); err != nil {
		t.Fatalf("RunNames failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "w InternetGatewayDevice.Time.Enable\n  InternetGatewayDevice.Time.Status\n") {
		t.Errorf("RunNames output:\n%s", buf.String())
	}

	buf.Reset()
	if err := RunSchema(env, "InternetGatewayDevice.Time.", true); err != nil {
		t.Fatalf("RunSchema failed: %v", err)
	}
	if !strings.Contains(buf.String(), "  NTPServer1 (string, read-write, maxLength=64)\n") {
		t.Errorf("RunSchema output:\n%s", buf.String())
	}

	buf.Reset()
	if err := RunSchema(env, "", false); err != nil {
		t.Fatalf("RunSchema failed: %v", err)
	}
	for _, want := range []string{
		"InternetGatewayDevice.WANDevice.{i}.WANConnectionDevice.{i}.\n",
		"Device.Services.STBService.{i}.Components.HDMI.{i}.\n",
		"Device.Services.FAPService.{i}.CellConfig.UMTS.RAN.FDDFAP.\n",
	} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("RunSchema missing %q", want)
		}
	}
}

func TestRunFingerprint(t *testing.T) {
	env, buf := testEnv()
	a := writeGateway(t, "a.xml")
	b := writeGateway(t, "b.yaml")
	env.Root = "igd"

	if err := RunFingerprint(env, a); err != nil {
		t.Fatalf("RunFingerprint failed: %v", err)
	}
	first := buf.String()
	buf.Reset()
	if err := RunFingerprint(env, b); err != nil {
		t.Fatalf("RunFingerprint failed: %v", err)
	}
	if first != buf.String() || len(first) != 17 {
		t.Errorf("fingerprints %q and %q", first, buf.String())
	}
}
