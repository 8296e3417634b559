package commands

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/cwmp-model/cwmp-go/pkg/codec"
	"github.com/cwmp-model/cwmp-go/pkg/paramtree"
	"github.com/cwmp-model/cwmp-go/pkg/validate"
)

func isNotExist(err error) bool { return errors.Is(err, fs.ErrNotExist) }

// RunValidate checks a document against its declared constraints.
// It returns ErrInvalid when there are violations.
func RunValidate(env *Env, file string) error {
	tree, err := env.Open(file)
	if err != nil {
		return err
	}
	vs := validate.Tree(tree)
	fmt.Fprint(env.Out, env.formatter().FormatViolations(vs))
	if len(vs) > 0 {
		return fmt.Errorf("%w: %d violations in %s", ErrInvalid, len(vs), file)
	}
	return nil
}

// RunDiff prints the parameter changes from one document to another.
// It returns ErrInvalid when the documents differ.
func RunDiff(env *Env, from, to string) error {
	a, err := env.Open(from)
	if err != nil {
		return err
	}
	b, err := env.Open(to)
	if err != nil {
		return err
	}
	if a.Schema() != b.Schema() {
		return fmt.Errorf("%w: %s and %s have different roots", codec.ErrRootMismatch, from, to)
	}

	changes := paramtree.Diff(a, b)
	fmt.Fprint(env.Out, env.formatter().FormatChanges(changes))
	if len(changes) > 0 {
		return fmt.Errorf("%w: %d changes", ErrInvalid, len(changes))
	}
	return nil
}

// RunConvert re-encodes a document; the formats follow the extensions.
func RunConvert(env *Env, in, out string) error {
	tree, err := env.Open(in)
	if err != nil {
		return err
	}
	if err := codec.WriteFile(out, tree.Root()); err != nil {
		return err
	}
	env.Log.Info().Str("from", in).Str("to", out).Msg("converted")
	return nil
}

// RunFingerprint prints the tree fingerprint of a document.
func RunFingerprint(env *Env, file string) error {
	tree, err := env.Open(file)
	if err != nil {
		return err
	}
	fmt.Fprintf(env.Out, "%016x\n", tree.Fingerprint())
	return nil
}
