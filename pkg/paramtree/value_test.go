package paramtree

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwmp-model/cwmp-go/pkg/model"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		dt   model.DataType
		in   string
		want any
	}{
		{model.DataTypeString, " keep spaces ", " keep spaces "},
		{model.DataTypeInt, "-42", int32(-42)},
		{model.DataTypeUnsignedInt, "4294967295", uint32(4294967295)},
		{model.DataTypeLong, "-9000000000", int64(-9000000000)},
		{model.DataTypeUnsignedLong, "18446744073709551615", uint64(18446744073709551615)},
		{model.DataTypeBoolean, "TRUE", true},
		{model.DataTypeBoolean, "0", false},
		{model.DataTypeDateTime, "2024-01-02T03:04:05Z", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
		{model.DataTypeBase64, "aGk=", model.Base64("hi")},
		{model.DataTypeHexBinary, "cafe", model.HexBinary{0xca, 0xfe}},
	}
	for _, tt := range tests {
		t.Run(tt.dt.String()+"/"+tt.in, func(t *testing.T) {
			got, err := ParseValue(tt.dt, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if tt.dt != model.DataTypeBoolean && tt.dt != model.DataTypeString {
				assert.Equal(t, tt.in, FormatValue(got))
			}
		})
	}
}

func TestParseValueErrors(t *testing.T) {
	tests := []struct {
		dt model.DataType
		in string
	}{
		{model.DataTypeInt, "2147483648"},
		{model.DataTypeUnsignedInt, "-1"},
		{model.DataTypeBoolean, "yes"},
		{model.DataTypeDateTime, "2024-01-02"},
		{model.DataTypeBase64, "%%"},
		{model.DataTypeHexBinary, "abc"},
		{model.DataTypeUnknown, "x"},
	}
	for _, tt := range tests {
		t.Run(tt.dt.String()+"/"+tt.in, func(t *testing.T) {
			_, err := ParseValue(tt.dt, tt.in)
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}

func TestParseDateTimeWithoutZone(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-01-01T00:00:00", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-01-01T10:20:30.25", time.Date(2024, 1, 1, 10, 20, 30, 250000000, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseValue(model.DataTypeDateTime, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseValue(model.DataTypeDateTime, "2024-01-01T25:00:00")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "", FormatValue(nil))
	assert.Equal(t, "true", FormatValue(true))
	assert.Equal(t, "2024-01-02T03:04:05.5Z", FormatValue(time.Date(2024, 1, 2, 3, 4, 5, 500000000, time.UTC)))
}
