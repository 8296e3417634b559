package codec

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwmp-model/cwmp-go/pkg/fap"
	"github.com/cwmp-model/cwmp-go/pkg/igd"
	"github.com/cwmp-model/cwmp-go/pkg/model"
	"github.com/cwmp-model/cwmp-go/pkg/paramtree"
	"github.com/cwmp-model/cwmp-go/pkg/stb"
)

func sampleGateway() *igd.InternetGatewayDevice {
	return igd.NewInternetGatewayDevice().
		WithDeviceInfo(igd.NewDeviceInfo().
			WithManufacturer("Huawei").
			WithUpTime(86400).
			WithFirstUseDate(time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC))).
		WithTime(igd.NewTime().
			WithEnable(true).
			WithNTPServer1("pool.ntp.org").
			WithNTPServer2("time.google.com")).
		WithWANDevice(igd.NewWANDevice().
			WithWANConnectionDevice(igd.NewWANConnectionDevice().
				WithWANIPConnection(igd.NewWANIPConnection().
					WithExternalIPAddress("192.0.2.10").
					WithPortMapping(igd.NewPortMapping().WithExternalPort(8080)).
					WithPortMapping(igd.NewPortMapping().WithExternalPort(8443)))))
}

func sampleSTB() *stb.STBService {
	return stb.NewSTBService().
		WithEnable(true).
		WithComponents(stb.NewComponents().
			WithHDMI(stb.NewHDMI().
				WithName("HDMI1").
				WithDisplayDevice(stb.NewHDMIDisplayDevice().WithEEDID(model.Base64{0x00, 0xff, 0xff, 0xff}))))
}

func TestFormats(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"xml", FormatXML},
		{"JSON", FormatJSON},
		{"yml", FormatYAML},
		{"yaml", FormatYAML},
		{"cbor", FormatCBOR},
	}
	for _, tt := range tests {
		f, err := ParseFormat(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, f)
	}

	_, err := ParseFormat("toml")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	f, err := FormatFromPath("/tmp/gw.YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)
	assert.Equal(t, "yaml", f.String())

	_, err = FormatFromPath("/tmp/gw")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRoundTripPreservesTree(t *testing.T) {
	roots := map[string]func() model.Node{
		"igd": func() model.Node { return sampleGateway() },
		"stb": func() model.Node { return sampleSTB() },
	}
	for name, build := range roots {
		for _, f := range []Format{FormatXML, FormatJSON, FormatYAML, FormatCBOR} {
			t.Run(name+"/"+f.String(), func(t *testing.T) {
				src := build()
				data, err := Marshal(f, src)
				require.NoError(t, err)

				dst := model.MustSchemaFor(src).New()
				require.NoError(t, Unmarshal(f, data, dst))

				before := paramtree.MustNew(src, "")
				after := paramtree.MustNew(dst, "")
				assert.Empty(t, paramtree.Diff(before, after))
				assert.Equal(t, before.Fingerprint(), after.Fingerprint())
			})
		}
	}
}

func TestEmptyBinaryRoundTrip(t *testing.T) {
	for _, f := range []Format{FormatXML, FormatJSON, FormatYAML, FormatCBOR} {
		t.Run(f.String(), func(t *testing.T) {
			src := stb.NewSTBService().
				WithComponents(stb.NewComponents().
					WithHDMI(stb.NewHDMI().
						WithDisplayDevice(stb.NewHDMIDisplayDevice().WithEEDID(model.Base64{}))))

			data, err := Marshal(f, src)
			require.NoError(t, err)
			dst := stb.NewSTBService()
			require.NoError(t, Unmarshal(f, data, dst))

			eedid := dst.GetComponents().GetHDMIs()[0].GetDisplayDevice().GetEEDID()
			require.NotNil(t, eedid, "empty value must survive as set")
			assert.Empty(t, *eedid)
			assert.Equal(t, paramtree.MustNew(src, "").Fingerprint(), paramtree.MustNew(dst, "").Fingerprint())
		})
	}
}

func TestEmptyBinaryFile(t *testing.T) {
	svc := fap.NewFAPService()
	tree := paramtree.MustNew(svc, "")
	require.NoError(t, tree.Set("Device.Services.FAPService.1.CellConfig.UMTS.RAN.SIB11Bits", ""))

	for _, name := range []string{"fap.cbor", "fap.xml", "fap.json", "fap.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, WriteFile(path, svc))

			back := fap.NewFAPService()
			require.NoError(t, ReadFile(path, back))
			sib := back.GetCellConfig().GetUMTS().GetRAN().GetSIB11Bits()
			require.NotNil(t, sib)
			assert.Empty(t, *sib)
		})
	}
}

func TestMarshalXML(t *testing.T) {
	data, err := MarshalXML(igd.NewInternetGatewayDevice().
		WithTime(igd.NewTime().WithNTPServer1("pool.ntp.org")))
	require.NoError(t, err)

	doc := string(data)
	assert.True(t, strings.HasPrefix(doc, "<?xml"))
	assert.Contains(t, doc, "<InternetGatewayDevice>")
	assert.Contains(t, doc, "<NTPServer1>pool.ntp.org</NTPServer1>")
	assert.NotContains(t, doc, "NTPServer2", "unset parameters are omitted")
	assert.NotContains(t, doc, "DeviceInfo")
}

func TestUnmarshalXMLRootMismatch(t *testing.T) {
	data, err := MarshalXML(sampleSTB())
	require.NoError(t, err)

	err = UnmarshalXML(data, igd.NewInternetGatewayDevice())
	assert.ErrorIs(t, err, ErrRootMismatch)

	root, err := XMLRoot(data)
	require.NoError(t, err)
	assert.Equal(t, "STBService", root)

	assert.ErrorIs(t, UnmarshalXML([]byte("  "), igd.NewInternetGatewayDevice()), ErrRootMismatch)
}

func TestUnmarshalXMLInstances(t *testing.T) {
	doc := `<InternetGatewayDevice>
  <LANDevice><LANHostConfigManagement><DHCPServerEnable>1</DHCPServerEnable></LANHostConfigManagement></LANDevice>
  <LANDevice/>
</InternetGatewayDevice>`
	gw := igd.NewInternetGatewayDevice()
	require.NoError(t, UnmarshalXML([]byte(doc), gw))
	require.Len(t, gw.GetLANDevices(), 2)
	assert.True(t, *gw.GetLANDevices()[0].GetLANHostConfigManagement().GetDHCPServerEnable())
	assert.Nil(t, gw.GetLANDevices()[1].GetLANHostConfigManagement())
}

func TestSnapshot(t *testing.T) {
	gw := sampleGateway()
	snap, err := NewSnapshot(gw)
	require.NoError(t, err)
	assert.Equal(t, "InternetGatewayDevice", snap.Root)
	assert.NotEqual(t, [16]byte{}, [16]byte(snap.ID))
	assert.Equal(t, paramtree.MustNew(gw, "").Fingerprint(), snap.Fingerprint)

	data, err := snap.Marshal()
	require.NoError(t, err)

	decoded, err := UnmarshalSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, snap.ID, decoded.ID)
	assert.True(t, snap.CreatedAt.Equal(decoded.CreatedAt))

	restored := igd.NewInternetGatewayDevice()
	require.NoError(t, decoded.Restore(restored))
	assert.Equal(t, "192.0.2.10", *restored.GetWANDevices()[0].GetWANConnectionDevices()[0].GetWANIPConnections()[0].GetExternalIPAddress())

	assert.ErrorIs(t, decoded.Restore(stb.NewSTBService()), ErrRootMismatch)

	decoded.Fingerprint++
	assert.ErrorIs(t, decoded.Restore(igd.NewInternetGatewayDevice()), ErrFingerprintMismatch)
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"gw.xml", "gw.json", "nested/gw.yaml", "gw.cbor"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, WriteFile(path, sampleGateway()))

			gw := igd.NewInternetGatewayDevice()
			require.NoError(t, ReadFile(path, gw))
			assert.Equal(t, "pool.ntp.org", *gw.GetTime().GetNTPServer1())
		})
	}

	assert.Error(t, ReadFile(filepath.Join(dir, "missing.xml"), igd.NewInternetGatewayDevice()))
	assert.ErrorIs(t, WriteFile(filepath.Join(dir, "gw.txt"), sampleGateway()), ErrUnknownFormat)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	xmlPath := filepath.Join(dir, "stb.xml")
	require.NoError(t, WriteFile(xmlPath, sampleSTB()))
	node, err := Load(model.DefaultRegistry, xmlPath, "")
	require.NoError(t, err)
	require.IsType(t, &stb.STBService{}, node)
	assert.True(t, *node.(*stb.STBService).GetEnable())

	cborPath := filepath.Join(dir, "gw.cbor")
	require.NoError(t, WriteFile(cborPath, sampleGateway()))
	node, err = Load(model.DefaultRegistry, cborPath, "")
	require.NoError(t, err)
	assert.IsType(t, &igd.InternetGatewayDevice{}, node)

	yamlPath := filepath.Join(dir, "gw.yaml")
	require.NoError(t, WriteFile(yamlPath, sampleGateway()))
	_, err = Load(model.DefaultRegistry, yamlPath, "")
	assert.ErrorIs(t, err, ErrRootMismatch)
	node, err = Load(model.DefaultRegistry, yamlPath, "igd")
	require.NoError(t, err)
	assert.IsType(t, &igd.InternetGatewayDevice{}, node)

	_, err = Load(model.DefaultRegistry, yamlPath, "nope")
	assert.ErrorIs(t, err, model.ErrObjectNotFound)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.xml"), []byte("<Device/>"), 0o644))
	_, err = Load(model.DefaultRegistry, filepath.Join(dir, "other.xml"), "")
	assert.ErrorIs(t, err, ErrRootMismatch)
}
