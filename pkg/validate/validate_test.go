package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwmp-model/cwmp-go/pkg/fap"
	"github.com/cwmp-model/cwmp-go/pkg/igd"
	"github.com/cwmp-model/cwmp-go/pkg/model"
	"github.com/cwmp-model/cwmp-go/pkg/paramtree"
)

func TestTreeValid(t *testing.T) {
	root := igd.NewInternetGatewayDevice().
		WithDeviceInfo(igd.NewDeviceInfo().WithManufacturerOUI("00259E")).
		WithTime(igd.NewTime().WithNTPServer1("pool.ntp.org")).
		WithManagementServer(igd.NewManagementServer().WithSTUNServerPort(3478))

	vs, err := Node(root)
	require.NoError(t, err)
	assert.Empty(t, vs)
	assert.NoError(t, vs.Err())
}

func TestStringLength(t *testing.T) {
	root := igd.NewInternetGatewayDevice().
		WithDeviceInfo(igd.NewDeviceInfo().WithManufacturerOUI("0025")).
		WithTime(igd.NewTime().WithNTPServer1(strings.Repeat("n", 65)))

	vs, err := Node(root)
	require.NoError(t, err)
	assert.Equal(t, Violations{
		{Path: "InternetGatewayDevice.DeviceInfo.ManufacturerOUI", Constraint: MinLength, Value: "0025", Limit: 6},
		{Path: "InternetGatewayDevice.Time.NTPServer1", Constraint: MaxLength, Value: strings.Repeat("n", 65), Limit: 64},
	}, vs)

	err = vs.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConstraint))
	assert.Contains(t, err.Error(), "InternetGatewayDevice.Time.NTPServer1")
}

func TestStringLengthCountsCharacters(t *testing.T) {
	// 64 two-byte characters fit maxLength=64
	root := igd.NewInternetGatewayDevice().
		WithTime(igd.NewTime().WithNTPServer1(strings.Repeat("ü", 64)))

	vs, err := Node(root)
	require.NoError(t, err)
	assert.Empty(t, vs)
}

func TestNumericRange(t *testing.T) {
	ran := fap.NewRAN().
		WithCellID(268435456).
		WithFDDFAP(fap.NewFDDFAP().WithMaxULTxPower(-51))
	svc := fap.NewFAPService().
		WithCellConfig(fap.NewCellConfig().WithUMTS(fap.NewUMTSCellConfig().WithRAN(ran))).
		WithFAPControl(fap.NewFAPControl().WithUMTS(fap.NewUMTSControl().WithGateway(fap.NewGateway().WithFAPGWPort(65536))))

	vs, err := Node(svc)
	require.NoError(t, err)
	require.Len(t, vs, 3)

	byPath := map[string]Violation{}
	for _, v := range vs {
		byPath[v.Path[strings.LastIndex(v.Path, ".")+1:]] = v
	}
	assert.Equal(t, MaxValue, byPath["FAPGWPort"].Constraint)
	assert.EqualValues(t, 65535, byPath["FAPGWPort"].Limit)
	assert.Equal(t, MaxValue, byPath["CellID"].Constraint)
	assert.Equal(t, MinValue, byPath["MaxULTxPower"].Constraint)
	assert.EqualValues(t, -50, byPath["MaxULTxPower"].Limit)
	assert.Equal(t, "-51", byPath["MaxULTxPower"].Value)
	assert.True(t, strings.HasPrefix(byPath["CellID"].Path, "Device.Services.FAPService.1.CellConfig.UMTS.RAN."))
}

func TestBinaryLength(t *testing.T) {
	ran := fap.NewRAN().WithSIB11Bits(model.HexBinary(make([]byte, 33)))
	svc := fap.NewFAPService().WithCellConfig(fap.NewCellConfig().WithUMTS(fap.NewUMTSCellConfig().WithRAN(ran)))

	vs := Tree(paramtree.MustNew(svc, "Device.Services.FAPService.2."))
	require.Len(t, vs, 1)
	assert.Equal(t, "Device.Services.FAPService.2.CellConfig.UMTS.RAN.SIB11Bits", vs[0].Path)
	assert.Equal(t, MaxLength, vs[0].Constraint)
	assert.EqualValues(t, 32, vs[0].Limit)
}

func TestSetterDoesNotValidate(t *testing.T) {
	gw := fap.NewGateway().WithFAPGWPort(70000)
	assert.EqualValues(t, 70000, *gw.GetFAPGWPort())
}

func TestCompareUnsignedOverflow(t *testing.T) {
	hi := int64(10)
	below, above := compare(uint64(1<<63), nil, &hi)
	assert.False(t, below)
	assert.True(t, above)

	below, above = compare("x", &hi, &hi)
	assert.False(t, below)
	assert.False(t, above)
}
