// Package logging sets up the zerolog logger shared by the commands.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// Config controls the logger output.
type Config struct {
	// Level is a zerolog level name ("debug", "info", ...). Unknown
	// levels fall back to info.
	Level string

	// JSON switches from the console writer to JSON lines.
	JSON bool

	// NoColor disables ANSI colors in console output.
	NoColor bool

	// Output defaults to os.Stderr.
	Output io.Writer

	// TimeFormat defaults to time.TimeOnly.
	TimeFormat string
}

var levelColors = map[string]*color.Color{
	zerolog.LevelTraceValue: color.New(color.FgHiBlack, color.Bold),
	zerolog.LevelDebugValue: color.New(color.FgHiBlue, color.Bold),
	zerolog.LevelInfoValue:  color.New(color.FgHiGreen, color.Bold),
	zerolog.LevelWarnValue:  color.New(color.FgHiYellow, color.Bold),
	zerolog.LevelErrorValue: color.New(color.FgHiRed, color.Bold),
	zerolog.LevelFatalValue: color.New(color.FgHiRed, color.Bold),
	zerolog.LevelPanicValue: color.New(color.FgWhite, color.BgRed, color.Bold),
}

// New builds a logger from cfg.
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var logger zerolog.Logger
	if cfg.JSON {
		logger = zerolog.New(out)
	} else {
		logger = zerolog.New(consoleWriter(out, cfg))
	}
	return logger.Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
}

// Nop returns a disabled logger.
func Nop() zerolog.Logger { return zerolog.Nop() }

// ParseLevel parses a level name, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func consoleWriter(out io.Writer, cfg Config) zerolog.ConsoleWriter {
	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = time.TimeOnly
	}
	w := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    cfg.NoColor,
		TimeFormat: timeFormat,
		PartsOrder: []string{zerolog.TimestampFieldName, zerolog.LevelFieldName, zerolog.MessageFieldName},
	}
	if !cfg.NoColor {
		w.FormatLevel = formatLevel
	}
	return w
}

func formatLevel(i any) string {
	level, _ := i.(string)
	c, ok := levelColors[level]
	if !ok {
		return "????"
	}
	text := strings.ToUpper(level)
	if len(text) > 4 {
		text = text[:4]
	}
	return c.Sprint(text)
}
