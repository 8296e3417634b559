package journal

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/cwmp-model/cwmp-go/pkg/igd"
	"github.com/cwmp-model/cwmp-go/pkg/paramtree"
)

// captureLogger collects events in memory.
type captureLogger struct {
	mu     sync.Mutex
	events []Event
}

func (c *captureLogger) Log(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func createTestJournal(t *testing.T, events []Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.cjl")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return path
}

func TestEventEncodeDecode(t *testing.T) {
	ts := time.Date(2024, 6, 1, 10, 30, 0, 123456789, time.UTC)
	event := Event{
		Timestamp:   ts,
		SessionID:   "6f1c2b9e-7a51-4d0e-9a43-0c5f6f2a9b11",
		Root:        "InternetGatewayDevice",
		Kind:        KindSet,
		Path:        "InternetGatewayDevice.Time.NTPServer1",
		Old:         "pool.ntp.org",
		New:         "time.google.com",
		OldSet:      true,
		NewSet:      true,
		Fingerprint: 0xdeadbeef,
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if !decoded.Timestamp.Equal(ts) {
		t.Errorf("Timestamp: got %v, want %v", decoded.Timestamp, ts)
	}
	decoded.Timestamp = ts
	if decoded != event {
		t.Errorf("decoded event differs:\n got %+v\nwant %+v", decoded, event)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindSet, "SET"},
		{KindUnset, "UNSET"},
		{KindRejected, "REJECTED"},
		{Kind(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
		if tt.want == "UNKNOWN" {
			continue
		}
		if k, ok := ParseKind(strings.ToLower(tt.want)); !ok || k != tt.kind {
			t.Errorf("ParseKind(%q) = %v, %v", tt.want, k, ok)
		}
	}
	if _, ok := ParseKind("bogus"); ok {
		t.Error("ParseKind accepted bogus")
	}
}

func TestEventChanged(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  bool
	}{
		{"same value", Event{Kind: KindSet, Old: "a", New: "a", OldSet: true, NewSet: true}, false},
		{"new value", Event{Kind: KindSet, Old: "a", New: "b", OldSet: true, NewSet: true}, true},
		{"empty to unset", Event{Kind: KindUnset, OldSet: true}, true},
		{"rejected", Event{Kind: KindRejected, New: "b", NewSet: true}, false},
	}
	for _, tt := range tests {
		if got := tt.event.Changed(); got != tt.want {
			t.Errorf("%s: Changed() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFileLoggerAppends(t *testing.T) {
	path := createTestJournal(t, []Event{{Path: "A.B", Timestamp: time.Now()}})

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	logger.Log(Event{Path: "A.C", Timestamp: time.Now()})
	logger.Close()

	// closed loggers drop events
	logger.Log(Event{Path: "A.D", Timestamp: time.Now()})
	if err := logger.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	events, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Path != "A.B" || events[1].Path != "A.C" {
		t.Errorf("unexpected order: %q, %q", events[0].Path, events[1].Path)
	}
}

func TestFileLoggerConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.cjl")
	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				logger.Log(Event{Timestamp: time.Now(), Path: "A.B"})
			}
		}()
	}
	wg.Wait()
	logger.Close()

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()
	events, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(events) != 200 {
		t.Errorf("got %d events, want 200", len(events))
	}
}

func TestReaderFilter(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	path := createTestJournal(t, []Event{
		{Timestamp: base, SessionID: "s1", Root: "InternetGatewayDevice", Kind: KindSet, Path: "InternetGatewayDevice.Time.Enable"},
		{Timestamp: base.Add(time.Minute), SessionID: "s1", Root: "InternetGatewayDevice", Kind: KindRejected, Path: "InternetGatewayDevice.DeviceInfo.UpTime"},
		{Timestamp: base.Add(2 * time.Minute), SessionID: "s2", Root: "STBService", Kind: KindUnset, Path: "Device.Services.STBService.1.Enable"},
	})

	rejected := KindRejected
	start := base.Add(30 * time.Second)
	end := base.Add(2 * time.Minute)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"all", Filter{}, []string{"InternetGatewayDevice.Time.Enable", "InternetGatewayDevice.DeviceInfo.UpTime", "Device.Services.STBService.1.Enable"}},
		{"prefix", Filter{PathPrefix: "InternetGatewayDevice.Time."}, []string{"InternetGatewayDevice.Time.Enable"}},
		{"root", Filter{Root: "STBService"}, []string{"Device.Services.STBService.1.Enable"}},
		{"session", Filter{SessionID: "s1"}, []string{"InternetGatewayDevice.Time.Enable", "InternetGatewayDevice.DeviceInfo.UpTime"}},
		{"kind", Filter{Kind: &rejected}, []string{"InternetGatewayDevice.DeviceInfo.UpTime"}},
		{"time window", Filter{TimeStart: &start, TimeEnd: &end}, []string{"InternetGatewayDevice.DeviceInfo.UpTime"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader, err := NewFilteredReader(path, tt.filter)
			if err != nil {
				t.Fatalf("NewFilteredReader failed: %v", err)
			}
			defer reader.Close()

			var got []string
			for {
				e, err := reader.Next()
				if err == io.EOF {
					break
				}
				if err != nil {
					t.Fatalf("Next failed: %v", err)
				}
				got = append(got, e.Path)
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "missing.cjl")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestMultiLogger(t *testing.T) {
	a, b := &captureLogger{}, &captureLogger{}
	m := NewMultiLogger(a, nil, b, NoopLogger{})
	m.Log(Event{Path: "A.B"})

	if len(a.events) != 1 || len(b.events) != 1 {
		t.Errorf("events: a=%d b=%d, want 1 each", len(a.events), len(b.events))
	}
}

func TestZerologAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel))

	adapter.Log(Event{Kind: KindSet, Path: "InternetGatewayDevice.Time.NTPServer1", New: "pool.ntp.org", NewSet: true, Fingerprint: 0xff})
	adapter.Log(Event{Kind: KindRejected, Path: "InternetGatewayDevice.DeviceInfo.UpTime", Error: "parameter is not writable"})

	out := buf.String()
	for _, want := range []string{
		`"level":"debug"`,
		`"kind":"SET"`,
		`"new":"pool.ntp.org"`,
		`"fingerprint":"ff"`,
		`"level":"warn"`,
		`"error":"parameter is not writable"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
	if strings.Contains(out, `"old"`) {
		t.Errorf("unset old value logged:\n%s", out)
	}
}

func TestRecorder(t *testing.T) {
	root := igd.NewInternetGatewayDevice().WithTime(igd.NewTime().WithNTPServer1("pool.ntp.org"))
	tree := paramtree.MustNew(root, "")
	capture := &captureLogger{}

	rec := NewRecorder(tree, capture).WithSource("gw.xml")
	fixed := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	rec.now = func() time.Time { return fixed }

	if err := rec.Set("InternetGatewayDevice.Time.NTPServer1", "time.google.com"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := rec.Set("InternetGatewayDevice.DeviceInfo.UpTime", "5"); !errors.Is(err, paramtree.ErrNotWritable) {
		t.Fatalf("expected ErrNotWritable, got %v", err)
	}
	if err := rec.SetForce("InternetGatewayDevice.DeviceInfo.UpTime", "5"); err != nil {
		t.Fatalf("SetForce failed: %v", err)
	}
	if err := rec.Unset("InternetGatewayDevice.Time.NTPServer1"); err != nil {
		t.Fatalf("Unset failed: %v", err)
	}

	if len(capture.events) != 4 {
		t.Fatalf("got %d events, want 4", len(capture.events))
	}

	set := capture.events[0]
	if set.Kind != KindSet || set.Old != "pool.ntp.org" || set.New != "time.google.com" || !set.OldSet || !set.NewSet {
		t.Errorf("unexpected set event: %+v", set)
	}
	if set.Root != "InternetGatewayDevice" || set.Source != "gw.xml" || set.SessionID != rec.SessionID() {
		t.Errorf("unexpected event identity: %+v", set)
	}
	if !set.Timestamp.Equal(fixed) {
		t.Errorf("Timestamp = %v, want %v", set.Timestamp, fixed)
	}
	if set.Fingerprint == 0 {
		t.Error("Fingerprint not recorded")
	}

	rejected := capture.events[1]
	if rejected.Kind != KindRejected || !strings.Contains(rejected.Error, "not writable") || rejected.Fingerprint != 0 {
		t.Errorf("unexpected rejected event: %+v", rejected)
	}

	forced := capture.events[2]
	if forced.OldSet || forced.New != "5" {
		t.Errorf("unexpected forced event: %+v", forced)
	}

	unset := capture.events[3]
	if unset.Kind != KindUnset || unset.NewSet || unset.Old != "time.google.com" {
		t.Errorf("unexpected unset event: %+v", unset)
	}
	if unset.Fingerprint != tree.Fingerprint() {
		t.Error("fingerprint does not match final tree")
	}
	if root.GetTime().GetNTPServer1() != nil {
		t.Error("NTPServer1 still set")
	}
}

func TestRecorderNilLogger(t *testing.T) {
	rec := NewRecorder(paramtree.MustNew(igd.NewInternetGatewayDevice(), ""), nil)
	if err := rec.Set("InternetGatewayDevice.Time.Enable", "true"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if rec.Tree() == nil {
		t.Error("Tree() returned nil")
	}
}
