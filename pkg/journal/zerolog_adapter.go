package journal

import (
	"strconv"

	"github.com/rs/zerolog"
)

// ZerologAdapter writes journal events to a zerolog.Logger, for watching
// changes on the console.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter creates an adapter writing to logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// Log writes the event at debug level, or warn for rejected writes.
func (a *ZerologAdapter) Log(event Event) {
	ev := a.logger.Debug()
	if event.Kind == KindRejected {
		ev = a.logger.Warn().Str("error", event.Error)
	}
	ev = ev.
		Str("kind", event.Kind.String()).
		Str("path", event.Path)

	if event.OldSet {
		ev = ev.Str("old", event.Old)
	}
	if event.NewSet {
		ev = ev.Str("new", event.New)
	}
	if event.Fingerprint != 0 {
		ev = ev.Str("fingerprint", strconv.FormatUint(event.Fingerprint, 16))
	}
	if event.Source != "" {
		ev = ev.Str("source", event.Source)
	}
	ev.Msg("parameter")
}

var _ Logger = (*ZerologAdapter)(nil)
