package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cwmp-model/cwmp-go/pkg/journal"
)

// JournalOptions configures the journal command.
type JournalOptions struct {
	Filter journal.Filter

	// JSON prints one JSON object per line.
	JSON bool
}

// RunJournal prints the events of a journal file.
func RunJournal(env *Env, file string, opts JournalOptions) error {
	r, err := journal.NewFilteredReader(file, opts.Filter)
	if err != nil {
		return err
	}
	defer r.Close()

	enc := json.NewEncoder(env.Out)
	for {
		event, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}
		if opts.JSON {
			if err := enc.Encode(event); err != nil {
				return err
			}
			continue
		}
		formatEvent(env.Out, event)
	}
}

// formatEvent writes one human-readable line per event.
func formatEvent(w io.Writer, e journal.Event) {
	ts := e.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	session := e.SessionID
	if len(session) > 8 {
		session = session[:8]
	}
	fmt.Fprintf(w, "%s [%s] %-8s %s", ts, session, e.Kind, e.Path)
	switch {
	case e.Kind == journal.KindRejected:
		fmt.Fprintf(w, ": %s", e.Error)
	case e.Kind == journal.KindUnset:
		fmt.Fprintf(w, " (was %s)", quoteIf(e.Old, e.OldSet))
	default:
		fmt.Fprintf(w, ": %s -> %s", quoteIf(e.Old, e.OldSet), quoteIf(e.New, e.NewSet))
	}
	fmt.Fprintln(w)
}

func quoteIf(s string, set bool) string {
	if !set {
		return "<unset>"
	}
	return fmt.Sprintf("%q", s)
}
