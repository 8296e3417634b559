package stb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwmp-model/cwmp-go/pkg/model"
)

func TestComponentsCollections(t *testing.T) {
	c := NewComponents()
	assert.NotNil(t, c.GetHDMIs())
	assert.Empty(t, c.GetHDMIs())

	hdmi := NewHDMI().WithName("HDMI0").WithResolutionMode("Auto")
	c.WithHDMI(hdmi).WithVideoDecoder(NewVideoDecoder().WithName("dec0"))

	require.Len(t, c.GetHDMIs(), 1)
	assert.Same(t, hdmi, c.GetHDMIs()[0])
	assert.Equal(t, "dec0", *c.GetVideoDecoders()[0].GetName())
}

func TestCapabilityElementNames(t *testing.T) {
	caps := NewCapabilities().WithVideoDecoder(NewVideoDecoderCapabilities().WithVideoStandards("MPEG2-Part2,MPEG4-Part10"))
	assert.Equal(t, "VideoDecoder", caps.GetVideoDecoder().ObjectName())
	assert.Equal(t, "DisplayDevice", NewHDMIDisplayDevice().ObjectName())
	assert.Equal(t, "Total", NewMainStreamTotal().ObjectName())
}

func TestBinaryAndLongParameters(t *testing.T) {
	dd := NewHDMIDisplayDevice().WithEEDID(model.Base64{0x00, 0xff, 0xff})
	require.NotNil(t, dd.GetEEDID())
	assert.Equal(t, model.Base64{0x00, 0xff, 0xff}, *dd.GetEEDID())

	total := NewMainStreamTotal().WithDecodedFrames(1 << 40)
	assert.EqualValues(t, uint64(1<<40), *total.GetDecodedFrames())
}

func TestRegistered(t *testing.T) {
	spec, ok := model.DefaultRegistry.Root("stb")
	require.True(t, ok)
	assert.Equal(t, "Device.Services.STBService.1.", spec.Prefix(1))

	meta, err := model.DefaultRegistry.Lookup("Device.Services.STBService.{i}.Components.HDMI.{i}.DisplayDevice.")
	require.NoError(t, err)
	eedid, ok := meta.Parameter("EEDID")
	require.True(t, ok)
	assert.Equal(t, model.DataTypeBase64, eedid.Type)
	assert.Equal(t, 256, eedid.MaxLength)
}
