package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{" WARN ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"chatty", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", JSON: true, Output: &buf})
	log.Info().Str("path", "InternetGatewayDevice.Time.Enable").Msg("set")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "set", line["message"])
	assert.Equal(t, "InternetGatewayDevice.Time.Enable", line["path"])
	assert.Contains(t, line, "time")
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", JSON: true, Output: &buf})
	log.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{NoColor: true, Output: &buf})
	log.Info().Str("file", "igd.xml").Msg("loaded")

	out := buf.String()
	assert.Contains(t, out, "INF")
	assert.Contains(t, out, "loaded")
	assert.Contains(t, out, "file=igd.xml")
}

func TestFormatLevel(t *testing.T) {
	assert.Contains(t, formatLevel("debug"), "DEBU")
	assert.Equal(t, "????", formatLevel("nope"))
}
