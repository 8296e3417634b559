package paramtree_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwmp-model/cwmp-go/pkg/cwmppath"
	"github.com/cwmp-model/cwmp-go/pkg/fap"
	"github.com/cwmp-model/cwmp-go/pkg/igd"
	"github.com/cwmp-model/cwmp-go/pkg/model"
	"github.com/cwmp-model/cwmp-go/pkg/paramtree"
	"github.com/cwmp-model/cwmp-go/pkg/stb"
)

func gateway() *igd.InternetGatewayDevice {
	return igd.NewInternetGatewayDevice().
		WithDeviceInfo(igd.NewDeviceInfo().
			WithManufacturer("Huawei").
			WithSerialNumber("48575443ABCDEF01").
			WithUpTime(3600)).
		WithTime(igd.NewTime().
			WithNTPServer1("pool.ntp.org").
			WithNTPServer2("time.google.com")).
		WithWANDevice(igd.NewWANDevice().
			WithWANConnectionDevice(igd.NewWANConnectionDevice().
				WithWANPPPConnection(igd.NewWANPPPConnection().
					WithUsername("user@isp").
					WithMACAddress("00:11:22:33:44:55"))))
}

func TestNew(t *testing.T) {
	tree, err := paramtree.New(gateway(), "")
	require.NoError(t, err)
	assert.Equal(t, "InternetGatewayDevice.", tree.Prefix())
	assert.Equal(t, "InternetGatewayDevice", tree.Schema().Name)

	svc, err := paramtree.New(stb.NewSTBService(), "")
	require.NoError(t, err)
	assert.Equal(t, "Device.Services.STBService.1.", svc.Prefix())

	_, err = paramtree.New(stb.NewSTBService(), "Device.Services.STBService.{i}.")
	assert.ErrorIs(t, err, paramtree.ErrInvalidPrefix)

	_, err = paramtree.New(igd.NewTime(), "InternetGatewayDevice.Time")
	assert.ErrorIs(t, err, paramtree.ErrInvalidPrefix)

	_, err = paramtree.New((*igd.Time)(nil), "")
	assert.ErrorIs(t, err, model.ErrNotEntity)

	sub, err := paramtree.New(igd.NewTime(), "InternetGatewayDevice.Time.")
	require.NoError(t, err)
	assert.Equal(t, "InternetGatewayDevice.Time.", sub.Prefix())

	cell, err := paramtree.New(fap.NewFAPService(), "Device.Services.FAPService.3.")
	require.NoError(t, err)
	assert.Equal(t, "Device.Services.FAPService.3.", cell.Prefix())
}

func TestNewPrefixMismatch(t *testing.T) {
	tests := []struct {
		name   string
		root   model.Node
		prefix string
	}{
		{"other root", igd.NewInternetGatewayDevice(), "Device.Services.STBService.1."},
		{"unknown object", igd.NewInternetGatewayDevice(), "Foo."},
		{"nested path", igd.NewInternetGatewayDevice(), "InternetGatewayDevice.WANDevice.1."},
		{"root below its path", stb.NewSTBService(), "Device.STBService.1."},
		{"object under wrong parent", igd.NewTime(), "InternetGatewayDevice.DeviceInfo."},
		{"known template of another type", stb.NewCapabilities(), "Device.Services.FAPService.1.Capabilities."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := paramtree.New(tt.root, tt.prefix)
			assert.ErrorIs(t, err, paramtree.ErrInvalidPrefix)
		})
	}
}

func TestGet(t *testing.T) {
	tree := paramtree.MustNew(gateway(), "")

	tests := []struct {
		path string
		text string
		set  bool
		typ  model.DataType
	}{
		{"InternetGatewayDevice.Time.NTPServer1", "pool.ntp.org", true, model.DataTypeString},
		{"InternetGatewayDevice.Time.NTPServer3", "", false, model.DataTypeString},
		{"InternetGatewayDevice.DeviceInfo.UpTime", "3600", true, model.DataTypeUnsignedInt},
		{"InternetGatewayDevice.WANDevice.1.WANConnectionDevice.1.WANPPPConnection.1.Username", "user@isp", true, model.DataTypeString},
		{"InternetGatewayDevice.ManagementServer.URL", "", false, model.DataTypeString},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			p, err := tree.Get(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.path, p.Path)
			assert.Equal(t, tt.set, p.Set)
			assert.Equal(t, tt.text, p.Text())
			assert.Equal(t, tt.typ, p.Type())
		})
	}

	p, err := tree.Get("InternetGatewayDevice.DeviceInfo.UpTime")
	require.NoError(t, err)
	assert.Equal(t, uint32(3600), p.Value)
	assert.False(t, p.Writable())
}

func TestGetErrors(t *testing.T) {
	tree := paramtree.MustNew(gateway(), "")

	tests := []struct {
		path string
		err  error
	}{
		{"InternetGatewayDevice.Time.NoSuch", paramtree.ErrNoSuchParameter},
		{"InternetGatewayDevice.NoSuch.Enable", paramtree.ErrNoSuchObject},
		{"InternetGatewayDevice.WANDevice.2.WANConnectionNumberOfEntries", paramtree.ErrNoSuchObject},
		{"InternetGatewayDevice.LANDevice.1.LANDeviceNumberOfEntries", paramtree.ErrNoSuchObject},
		{"InternetGatewayDevice.WANDevice.WANConnectionNumberOfEntries", paramtree.ErrNoSuchObject},
		{"Device.DeviceInfo.Manufacturer", paramtree.ErrNoSuchParameter},
		{"InternetGatewayDevice.Time.", paramtree.ErrNoSuchParameter},
		{"", cwmppath.ErrEmptyPath},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := tree.Get(tt.path)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestSet(t *testing.T) {
	root := gateway()
	tree := paramtree.MustNew(root, "")

	require.NoError(t, tree.Set("InternetGatewayDevice.Time.NTPServer3", "ntp3.example.com"))
	assert.Equal(t, "ntp3.example.com", *root.GetTime().GetNTPServer3())

	require.NoError(t, tree.Set("InternetGatewayDevice.Time.Enable", "1"))
	assert.True(t, *root.GetTime().GetEnable())

	require.NoError(t, tree.Set("InternetGatewayDevice.Time.DaylightSavingsStart", "2024-03-31T02:00:00Z"))
	assert.True(t, root.GetTime().GetDaylightSavingsStart().Equal(time.Date(2024, 3, 31, 2, 0, 0, 0, time.UTC)))

	t.Run("allocates absent singular objects", func(t *testing.T) {
		assert.Nil(t, root.GetManagementServer())
		require.NoError(t, tree.Set("InternetGatewayDevice.ManagementServer.PeriodicInformInterval", "300"))
		require.NotNil(t, root.GetManagementServer())
		assert.EqualValues(t, 300, *root.GetManagementServer().GetPeriodicInformInterval())
	})

	t.Run("no constraint enforcement", func(t *testing.T) {
		require.NoError(t, tree.Set("InternetGatewayDevice.ManagementServer.STUNServerPort", "70000"))
		assert.EqualValues(t, 70000, *root.GetManagementServer().GetSTUNServerPort())
	})

	t.Run("read-only refused", func(t *testing.T) {
		err := tree.Set("InternetGatewayDevice.DeviceInfo.Manufacturer", "Other")
		assert.ErrorIs(t, err, paramtree.ErrNotWritable)
		assert.Equal(t, "Huawei", *root.GetDeviceInfo().GetManufacturer())

		err = tree.Set("InternetGatewayDevice.LANConfigSecurity.ConfigPassword", "x")
		require.NoError(t, err, "ConfigPassword is writable")

		assert.Nil(t, root.GetLayer3Forwarding())
		err = tree.Set("InternetGatewayDevice.Layer3Forwarding.ForwardNumberOfEntries", "1")
		assert.ErrorIs(t, err, paramtree.ErrNotWritable)
		assert.Nil(t, root.GetLayer3Forwarding(), "rejected write allocates nothing")
	})

	t.Run("force", func(t *testing.T) {
		require.NoError(t, tree.SetForce("InternetGatewayDevice.DeviceInfo.Manufacturer", "Other"))
		assert.Equal(t, "Other", *root.GetDeviceInfo().GetManufacturer())
	})

	t.Run("invalid values", func(t *testing.T) {
		for path, value := range map[string]string{
			"InternetGatewayDevice.Time.Enable":                             "yes",
			"InternetGatewayDevice.ManagementServer.PeriodicInformInterval": "-1",
			"InternetGatewayDevice.ManagementServer.PeriodicInformTime":     "yesterday",
			"InternetGatewayDevice.ManagementServer.STUNServerPort":         "99999999999",
		} {
			assert.ErrorIs(t, tree.Set(path, value), paramtree.ErrInvalidValue, path)
		}
	})

	t.Run("instances are never created", func(t *testing.T) {
		err := tree.Set("InternetGatewayDevice.LANDevice.1.LANHostConfigManagement.DHCPServerEnable", "true")
		assert.ErrorIs(t, err, paramtree.ErrNoSuchObject)
		assert.Empty(t, root.GetLANDevices())
	})
}

func TestUnset(t *testing.T) {
	root := gateway()
	tree := paramtree.MustNew(root, "")

	require.NoError(t, tree.Unset("InternetGatewayDevice.Time.NTPServer1"))
	assert.Nil(t, root.GetTime().GetNTPServer1())
	require.NoError(t, tree.Unset("InternetGatewayDevice.ManagementServer.URL"))
	assert.Nil(t, root.GetManagementServer())
}

func TestFlatten(t *testing.T) {
	tree := paramtree.MustNew(gateway(), "")

	var paths []string
	for _, p := range tree.Flatten() {
		paths = append(paths, p.Path)
	}
	assert.Equal(t, []string{
		"InternetGatewayDevice.DeviceInfo.Manufacturer",
		"InternetGatewayDevice.DeviceInfo.SerialNumber",
		"InternetGatewayDevice.DeviceInfo.UpTime",
		"InternetGatewayDevice.Time.NTPServer1",
		"InternetGatewayDevice.Time.NTPServer2",
		"InternetGatewayDevice.WANDevice.1.WANConnectionDevice.1.WANPPPConnection.1.Username",
		"InternetGatewayDevice.WANDevice.1.WANConnectionDevice.1.WANPPPConnection.1.MACAddress",
	}, paths)
}

func TestBinaryValues(t *testing.T) {
	svc := stb.NewSTBService()
	tree := paramtree.MustNew(svc, "")

	hdmi := stb.NewHDMI()
	svc.WithComponents(stb.NewComponents().WithHDMI(hdmi))

	path := "Device.Services.STBService.1.Components.HDMI.1.DisplayDevice.EEDID"
	require.NoError(t, tree.SetForce(path, "AP///w=="))
	require.NotNil(t, hdmi.GetDisplayDevice().GetEEDID())
	assert.Equal(t, model.Base64{0x00, 0xff, 0xff, 0xff}, *hdmi.GetDisplayDevice().GetEEDID())

	p, err := tree.Get(path)
	require.NoError(t, err)
	assert.Equal(t, "AP///w==", p.Text())

	assert.ErrorIs(t, tree.SetForce(path, "***"), paramtree.ErrInvalidValue)
}

func TestEmptyBinaryIsSet(t *testing.T) {
	svc := fap.NewFAPService()
	tree := paramtree.MustNew(svc, "")
	path := "Device.Services.FAPService.1.CellConfig.UMTS.RAN.SIB11Bits"

	require.NoError(t, tree.Set(path, ""))
	sib := svc.GetCellConfig().GetUMTS().GetRAN().GetSIB11Bits()
	require.NotNil(t, sib)
	assert.Empty(t, *sib)

	p, err := tree.Get(path)
	require.NoError(t, err)
	assert.True(t, p.Set)
	assert.Equal(t, "", p.Text())

	require.NoError(t, tree.Unset(path))
	assert.Nil(t, svc.GetCellConfig().GetUMTS().GetRAN().GetSIB11Bits())
}
