// Package commands implements the cwmp-tree CLI commands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/cwmp-model/cwmp-go/pkg/codec"
	"github.com/cwmp-model/cwmp-go/pkg/inspect"
	"github.com/cwmp-model/cwmp-go/pkg/model"
	"github.com/cwmp-model/cwmp-go/pkg/paramtree"

	// registered data models
	_ "github.com/cwmp-model/cwmp-go/pkg/fap"
	_ "github.com/cwmp-model/cwmp-go/pkg/igd"
	_ "github.com/cwmp-model/cwmp-go/pkg/stb"
)

// ErrInvalid is returned by commands whose check failed, such as
// validate finding violations. The CLI exits with status 2 for it.
var ErrInvalid = errors.New("check failed")

// Env carries what every command needs.
type Env struct {
	// Out receives command output.
	Out io.Writer

	// Log is the operational logger.
	Log zerolog.Logger

	// Formatter renders trees and parameters.
	Formatter *inspect.Formatter

	// Registry resolves root objects; defaults to model.DefaultRegistry.
	Registry *model.Registry

	// Root is the registry name of the document root ("igd", "stb",
	// "fap"), needed for JSON and YAML documents.
	Root string
}

// NewEnv returns an Env writing to stdout with a disabled logger.
func NewEnv() *Env {
	return &Env{
		Out:       os.Stdout,
		Log:       zerolog.Nop(),
		Formatter: inspect.NewFormatter(),
		Registry:  model.DefaultRegistry,
	}
}

func (e *Env) registry() *model.Registry {
	if e.Registry == nil {
		return model.DefaultRegistry
	}
	return e.Registry
}

func (e *Env) formatter() *inspect.Formatter {
	if e.Formatter == nil {
		e.Formatter = inspect.NewFormatter()
	}
	return e.Formatter
}

// Open loads a document and wraps it in a tree.
func (e *Env) Open(path string) (*paramtree.Tree, error) {
	node, err := codec.Load(e.registry(), path, e.Root)
	if err != nil {
		return nil, err
	}
	tree, err := paramtree.New(node, "")
	if err != nil {
		return nil, err
	}
	e.Log.Debug().
		Str("file", path).
		Str("root", tree.Prefix()).
		Int("parameters", len(tree.Flatten())).
		Msg("loaded document")
	return tree, nil
}

// New creates an empty tree for a registry root name.
func (e *Env) New(root string) (*paramtree.Tree, error) {
	spec, ok := e.registry().Root(root)
	if !ok {
		return nil, fmt.Errorf("%w: root %q", model.ErrObjectNotFound, root)
	}
	return paramtree.New(spec.New(), "")
}
