package fap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwmp-model/cwmp-go/pkg/model"
)

func TestBuildCellConfig(t *testing.T) {
	svc := NewFAPService().
		WithAlias("cpe-1").
		WithCellConfig(NewCellConfig().
			WithUMTS(NewUMTSCellConfig().
				WithRAN(NewRAN().
					WithCellID(42).
					WithFDDFAP(NewFDDFAP().WithMaxULTxPower(-10)))))

	ran := svc.GetCellConfig().GetUMTS().GetRAN()
	require.NotNil(t, ran)
	assert.EqualValues(t, 42, *ran.GetCellID())
	assert.EqualValues(t, -10, *ran.GetFDDFAP().GetMaxULTxPower())
	assert.Nil(t, svc.GetFAPControl().GetUMTS(), "nil chains stay nil")
}

func TestOutOfRangeAccepted(t *testing.T) {
	ran := NewRAN().WithCellID(1 << 30).WithSIB11Bits(model.HexBinary{0xde, 0xad})
	assert.EqualValues(t, 1<<30, *ran.GetCellID())
	assert.Equal(t, "dead", ran.GetSIB11Bits().String())
}

func TestRegistered(t *testing.T) {
	_, ok := model.DefaultRegistry.Root("fap")
	require.True(t, ok)

	meta, err := model.DefaultRegistry.Lookup("Device.Services.FAPService.{i}.FAPControl.UMTS.Gateway.")
	require.NoError(t, err)
	port, ok := meta.Parameter("FAPGWPort")
	require.True(t, ok)
	require.NotNil(t, port.MaxValue)
	assert.EqualValues(t, 65535, *port.MaxValue)
}
