package cwmppath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		partial bool
		length  int
		wantErr error
	}{
		{"object", "InternetGatewayDevice.Time.", true, 2, nil},
		{"parameter", "InternetGatewayDevice.Time.NTPServer1", false, 3, nil},
		{"instance", "InternetGatewayDevice.WANDevice.1.", true, 3, nil},
		{"template", "Device.Services.STBService.{i}.Components.", true, 5, nil},
		{"whitespace", "  InternetGatewayDevice.  ", true, 1, nil},
		{"empty", "", false, 0, ErrEmptyPath},
		{"blank", "   ", false, 0, ErrEmptyPath},
		{"leading dot", ".InternetGatewayDevice.", false, 0, ErrInvalidPath},
		{"double dot", "InternetGatewayDevice..Time", false, 0, ErrInvalidPath},
		{"parameter ends in instance", "InternetGatewayDevice.WANDevice.1", false, 0, ErrInvalidPath},
		{"leading instance", "1.Time.", false, 0, ErrInvalidSegment},
		{"zero instance", "InternetGatewayDevice.WANDevice.0.", false, 0, ErrInvalidSegment},
		{"leading zero", "InternetGatewayDevice.WANDevice.01.", false, 0, ErrInvalidSegment},
		{"double instance", "InternetGatewayDevice.WANDevice.1.2.", false, 0, ErrInvalidSegment},
		{"bad character", "InternetGatewayDevice.Time!.", false, 0, ErrInvalidSegment},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.partial, p.IsPartial())
			assert.Equal(t, tt.length, p.Len())
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{
		"InternetGatewayDevice.",
		"InternetGatewayDevice.WANDevice.1.WANConnectionDevice.2.WANPPPConnection.3.Username",
		"Device.Services.FAPService.{i}.CellConfig.UMTS.RAN.FDDFAP.",
	} {
		assert.Equal(t, s, MustParse(s).String())
	}
	assert.Panics(t, func() { MustParse("") })
	assert.Equal(t, "", Path{}.String())
	assert.True(t, Path{}.IsZero())
}

func TestTemplateAndInstances(t *testing.T) {
	p := MustParse("InternetGatewayDevice.WANDevice.1.WANConnectionDevice.2.WANPPPConnection.3.Username")

	assert.Equal(t,
		"InternetGatewayDevice.WANDevice.{i}.WANConnectionDevice.{i}.WANPPPConnection.{i}.Username",
		p.Template().String())
	assert.Equal(t, []int{1, 2, 3}, p.Instances())
	assert.False(t, p.IsTemplate())
	assert.True(t, p.Template().IsTemplate())
	assert.Equal(t, []int{0}, MustParse("Device.Services.STBService.{i}.").Instances())
	assert.Equal(t, "Username", p.Last())
}

func TestParentAndBuilders(t *testing.T) {
	p := MustParse("InternetGatewayDevice.WANDevice.1.WANCommonInterfaceConfig.")

	parent, ok := p.Parent()
	require.True(t, ok)
	assert.Equal(t, "InternetGatewayDevice.WANDevice.1.", parent.String())

	collection, ok := parent.Parent()
	require.True(t, ok)
	assert.Equal(t, "InternetGatewayDevice.WANDevice.", collection.String())

	_, ok = MustParse("InternetGatewayDevice.").Parent()
	assert.False(t, ok)

	assert.Equal(t, "InternetGatewayDevice.WANDevice.2.", collection.Instance(2).String())
	assert.Equal(t, "InternetGatewayDevice.WANDevice.1.WANConnectionDevice.", parent.Child("WANConnectionDevice").String())
	assert.Equal(t, "InternetGatewayDevice.WANDevice.1.WANConnectionNumberOfEntries", parent.Param("WANConnectionNumberOfEntries").String())

	// builders never alias the receiver's segments
	a := parent.Child("A")
	b := parent.Child("B")
	assert.Equal(t, "InternetGatewayDevice.WANDevice.1.A.", a.String())
	assert.Equal(t, "InternetGatewayDevice.WANDevice.1.B.", b.String())

	segs := p.Segments()
	segs[0] = "Changed"
	assert.Equal(t, "InternetGatewayDevice", p.Segments()[0])
}

func TestHasPrefix(t *testing.T) {
	root := MustParse("InternetGatewayDevice.Time.")

	tests := []struct {
		path string
		want bool
	}{
		{"InternetGatewayDevice.Time.", true},
		{"InternetGatewayDevice.Time.NTPServer1", true},
		{"InternetGatewayDevice.TimeZone.", false},
		{"InternetGatewayDevice.", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, MustParse(tt.path).HasPrefix(root))
		})
	}

	assert.False(t, MustParse("InternetGatewayDevice.Time.Enable").HasPrefix(MustParse("InternetGatewayDevice.Time.Enable")),
		"a parameter path never covers anything")

	rel, ok := MustParse("InternetGatewayDevice.Time.NTPServer1").Rel(root)
	require.True(t, ok)
	assert.Equal(t, []string{"NTPServer1"}, rel)

	_, ok = MustParse("InternetGatewayDevice.DeviceInfo.").Rel(root)
	assert.False(t, ok)

	assert.True(t, root.Equal(MustParse("InternetGatewayDevice.Time.")))
	assert.False(t, root.Equal(MustParse("InternetGatewayDevice.Time")))
}
