package igd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwmp-model/cwmp-go/pkg/model"
)

func TestTimeBuilder(t *testing.T) {
	tm := NewTime().
		WithNTPServer1("pool.ntp.org").
		WithNTPServer2("time.google.com")

	require.NotNil(t, tm.GetNTPServer1())
	require.NotNil(t, tm.GetNTPServer2())
	assert.Equal(t, "pool.ntp.org", *tm.GetNTPServer1())
	assert.Equal(t, "time.google.com", *tm.GetNTPServer2())
	assert.Nil(t, tm.GetNTPServer3())
	assert.Nil(t, tm.GetNTPServer4())
	assert.Nil(t, tm.GetNTPServer5())
}

func TestNewLeavesEverythingUnset(t *testing.T) {
	info := NewDeviceInfo()
	assert.Equal(t, &DeviceInfo{}, info)
	assert.Nil(t, info.GetManufacturer())
	assert.Nil(t, info.GetUpTime())
	assert.Nil(t, info.GetFirstUseDate())
}

func TestSetterStoresPointerVerbatim(t *testing.T) {
	ms := NewManagementServer()
	url := "https://acs.example.com/cwmp"
	ms.SetURL(&url)
	assert.Same(t, &url, ms.GetURL())

	ms.SetURL(nil)
	assert.Nil(t, ms.GetURL())

	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	ms.WithPeriodicInformTime(ts)
	require.NotNil(t, ms.GetPeriodicInformTime())
	assert.True(t, ts.Equal(*ms.GetPeriodicInformTime()))
}

func TestWithCopiesValue(t *testing.T) {
	v := "first"
	cfg := NewDeviceConfig().WithPersistentData(v)
	v = "second"
	assert.Equal(t, "first", *cfg.GetPersistentData())
}

func TestOutOfRangeAccepted(t *testing.T) {
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'x'
	}

	tm := NewTime().WithNTPServer1(string(long)).WithLocalTimeZone("+01:00:00")
	assert.Len(t, *tm.GetNTPServer1(), 200, "maxLength=64 is not enforced by setters")

	ms := NewManagementServer().WithSTUNServerPort(70000).WithPeriodicInformInterval(0)
	assert.EqualValues(t, 70000, *ms.GetSTUNServerPort())
	assert.EqualValues(t, 0, *ms.GetPeriodicInformInterval())
}

func TestCollectionLazyInit(t *testing.T) {
	wan := NewWANDevice()
	assert.Nil(t, wan.WANConnectionDevices)

	devices := wan.GetWANConnectionDevices()
	require.NotNil(t, devices)
	assert.Empty(t, devices)
	assert.NotNil(t, wan.WANConnectionDevices, "getter allocates the collection")
}

func TestCollectionAppendPreservesOrder(t *testing.T) {
	first := NewWANPPPConnection().WithName("pppoe-1")
	second := NewWANPPPConnection().WithName("pppoe-2")
	third := NewWANPPPConnection().WithName("pppoe-3")

	cd := NewWANConnectionDevice().
		WithWANPPPConnection(first).
		WithWANPPPConnection(second)
	require.Len(t, cd.GetWANPPPConnections(), 2)

	cd.WithWANPPPConnection(third)
	conns := cd.GetWANPPPConnections()
	require.Len(t, conns, 3)
	assert.Same(t, first, conns[0])
	assert.Same(t, second, conns[1])
	assert.Same(t, third, conns[2])
}

func TestSetCollectionVerbatim(t *testing.T) {
	lan := NewLANDevice()
	hosts := []*WLANConfiguration{NewWLANConfiguration().WithSSID("home")}
	lan.SetWLANConfigurations(hosts)
	assert.Equal(t, hosts, lan.GetWLANConfigurations())

	lan.SetWLANConfigurations(nil)
	assert.NotNil(t, lan.GetWLANConfigurations(), "cleared collection is reallocated on access")
}

func TestSingularChild(t *testing.T) {
	root := NewInternetGatewayDevice()
	assert.Nil(t, root.GetTime())

	tm := NewTime()
	assert.Same(t, root, root.WithTime(tm))
	assert.Same(t, tm, root.GetTime())

	root.SetTime(nil)
	assert.Nil(t, root.GetTime())
}

func TestNilReceiverGetters(t *testing.T) {
	var tm *Time
	assert.Nil(t, tm.GetNTPServer1())

	var root *InternetGatewayDevice
	assert.Nil(t, root.GetDeviceInfo())
	assert.Nil(t, root.GetWANDevices())
}

func TestIdentityEquality(t *testing.T) {
	a := NewTime()
	b := NewTime()
	assert.NotSame(t, a, b)
	assert.Equal(t, a, b, "field-wise equal but distinct")
}

func TestPortMappingShared(t *testing.T) {
	pm := NewPortMapping().WithExternalPort(8080).WithInternalPort(80)
	ip := NewWANIPConnection().WithPortMapping(pm)
	ppp := NewWANPPPConnection().WithPortMapping(pm)
	assert.Same(t, ip.GetPortMappings()[0], ppp.GetPortMappings()[0])
}

func TestRegistered(t *testing.T) {
	spec, ok := model.DefaultRegistry.Root("igd")
	require.True(t, ok)
	assert.Equal(t, RootPath, spec.Path)
	assert.IsType(t, &InternetGatewayDevice{}, spec.New())

	meta, err := model.DefaultRegistry.Lookup("InternetGatewayDevice.WANDevice.{i}.WANConnectionDevice.{i}.WANPPPConnection.{i}.")
	require.NoError(t, err)
	assert.Equal(t, "WANPPPConnection", meta.Name)

	user, ok := meta.Parameter("Username")
	require.True(t, ok)
	assert.Equal(t, model.DataTypeString, user.Type)
	assert.True(t, user.Writable())
	assert.Equal(t, 64, user.MaxLength)

	meta, err = model.DefaultRegistry.Lookup("InternetGatewayDevice.Time.")
	require.NoError(t, err)
	ntp, _ := meta.Parameter("NTPServer1")
	assert.Equal(t, 64, ntp.MaxLength)
	status, _ := meta.Parameter("Status")
	assert.False(t, status.Writable())
}

func TestSchemaCoversEveryObject(t *testing.T) {
	meta, err := model.SchemaFor(NewInternetGatewayDevice())
	require.NoError(t, err)
	assert.Equal(t, "InternetGatewayDevice", meta.Name)

	wan, ok := meta.Child("WANDevice")
	require.True(t, ok)
	assert.True(t, wan.MultiInstance)
	assert.Equal(t, "WANDevices", wan.Field)

	info, ok := meta.Child("DeviceInfo")
	require.True(t, ok)
	oui, _ := info.Object.Parameter("ManufacturerOUI")
	assert.Equal(t, 6, oui.MinLength)
	assert.Equal(t, 6, oui.MaxLength)
}
