package commands

import (
	"fmt"

	"github.com/cwmp-model/cwmp-go/pkg/inspect"
	"github.com/cwmp-model/cwmp-go/pkg/paramtree"
)

// ShowOptions configures the show command.
type ShowOptions struct {
	// Path limits output to a subtree or parameter; empty shows all.
	Path string

	// Unset includes parameters without a value.
	Unset bool
}

// RunShow prints a document as an indented tree.
func RunShow(env *Env, file string, opts ShowOptions) error {
	tree, err := env.Open(file)
	if err != nil {
		return err
	}

	f := *env.formatter()
	f.ShowUnset = opts.Unset

	if opts.Path == "" {
		fmt.Fprint(env.Out, f.FormatTree(tree))
		return nil
	}
	out, err := inspect.NewInspector(tree, &f).Show(opts.Path)
	if err != nil {
		return err
	}
	fmt.Fprint(env.Out, out)
	return nil
}

// RunGet prints the given parameters, one per line. With raw set only
// the CWMP string form of each value is printed.
func RunGet(env *Env, file string, paths []string, raw bool) error {
	tree, err := env.Open(file)
	if err != nil {
		return err
	}
	insp := inspect.NewInspector(tree, env.formatter())

	params := make([]paramtree.Parameter, 0, len(paths))
	for _, in := range paths {
		path, err := insp.Resolve(in)
		if err != nil {
			return err
		}
		p, err := tree.Get(path)
		if err != nil {
			return err
		}
		params = append(params, p)
	}

	if raw {
		for _, p := range params {
			fmt.Fprintln(env.Out, p.Text())
		}
		return nil
	}
	fmt.Fprint(env.Out, env.formatter().FormatParameters(params))
	return nil
}

// RunNames prints a GetParameterNames-style listing.
func RunNames(env *Env, file, path string, nextLevel bool) error {
	tree, err := env.Open(file)
	if err != nil {
		return err
	}
	resolved, err := inspect.NewInspector(tree, env.formatter()).Resolve(path)
	if err != nil {
		return err
	}
	names, err := tree.Names(resolved, nextLevel)
	if err != nil {
		return err
	}
	fmt.Fprint(env.Out, env.formatter().FormatNames(names))
	return nil
}
