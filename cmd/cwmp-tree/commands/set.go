package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwmp-model/cwmp-go/pkg/codec"
	"github.com/cwmp-model/cwmp-go/pkg/inspect"
	"github.com/cwmp-model/cwmp-go/pkg/journal"
)

// ErrAssignment is returned for malformed path=value arguments.
var ErrAssignment = errors.New("assignment must be path=value")

// SetOptions configures the set command.
type SetOptions struct {
	// Assignments are "path=value" pairs; "path=" sets an empty string
	// and "path" alone (with Unset) clears the parameter.
	Assignments []string

	// Unset clears the named parameters instead of writing them.
	Unset bool

	// Force writes read-only parameters.
	Force bool

	// Create starts from an empty document of Env.Root when the file
	// does not exist.
	Create bool

	// Output is written instead of the input file when set.
	Output string

	// Journal appends one event per write to this file when set.
	Journal string
}

// Assignment is a parsed path=value argument.
type Assignment struct {
	Path  string
	Value string
}

// ParseAssignment splits "path=value" at the first '='.
func ParseAssignment(s string) (Assignment, error) {
	path, value, ok := strings.Cut(s, "=")
	path = strings.TrimSpace(path)
	if !ok || path == "" {
		return Assignment{}, fmt.Errorf("%w: %q", ErrAssignment, s)
	}
	return Assignment{Path: path, Value: value}, nil
}

// RunSet applies writes to a document and saves it. All writes are
// attempted; the document is saved only when every write succeeded.
func RunSet(env *Env, file string, opts SetOptions) error {
	tree, err := env.Open(file)
	if err != nil && opts.Create && env.Root != "" && isNotExist(err) {
		tree, err = env.New(env.Root)
	}
	if err != nil {
		return err
	}

	loggers := []journal.Logger{journal.NewZerologAdapter(env.Log)}
	if opts.Journal != "" {
		fl, err := journal.NewFileLogger(opts.Journal)
		if err != nil {
			return fmt.Errorf("opening journal: %w", err)
		}
		defer func() {
			if err := fl.Close(); err != nil {
				env.Log.Error().Err(err).Str("journal", opts.Journal).Msg("journal write failed")
			}
		}()
		loggers = append(loggers, fl)
	}
	rec := journal.NewRecorder(tree, journal.NewMultiLogger(loggers...)).WithSource(file)
	insp := inspect.NewInspector(tree, env.formatter())

	var errs []error
	for _, arg := range opts.Assignments {
		if err := apply(rec, insp, arg, opts); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	out := opts.Output
	if out == "" {
		out = file
	}
	if err := codec.WriteFile(out, tree.Root()); err != nil {
		return err
	}
	env.Log.Info().
		Str("file", out).
		Int("writes", len(opts.Assignments)).
		Str("fingerprint", fmt.Sprintf("%016x", tree.Fingerprint())).
		Msg("document saved")
	return nil
}

func apply(rec *journal.Recorder, insp *inspect.Inspector, arg string, opts SetOptions) error {
	if opts.Unset {
		path, err := insp.Resolve(strings.TrimSuffix(arg, "="))
		if err != nil {
			return err
		}
		return rec.Unset(path)
	}

	a, err := ParseAssignment(arg)
	if err != nil {
		return err
	}
	path, err := insp.Resolve(a.Path)
	if err != nil {
		return err
	}
	if opts.Force {
		return rec.SetForce(path, a.Value)
	}
	return rec.Set(path, a.Value)
}
