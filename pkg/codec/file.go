package codec

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwmp-model/cwmp-go/pkg/model"
)

// ReadFile decodes the document at path into node. The format is taken
// from the file extension.
func ReadFile(path string, node model.Node) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := Unmarshal(f, data, node); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

// WriteFile encodes node into path, creating parent directories.
func WriteFile(path string, node model.Node) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Marshal(f, node)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads a document whose root type is not known in advance. XML and
// CBOR documents name their root object; for JSON and YAML rootName (a
// registry name such as "igd") selects the root.
func Load(reg *model.Registry, path, rootName string) (model.Node, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	spec, err := detectRoot(reg, f, data, rootName)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	node := spec.New()
	if err := Unmarshal(f, data, node); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return node, nil
}

func detectRoot(reg *model.Registry, f Format, data []byte, rootName string) (model.RootSpec, error) {
	if rootName != "" {
		spec, ok := reg.Root(rootName)
		if !ok {
			return model.RootSpec{}, fmt.Errorf("%w: root %q", model.ErrObjectNotFound, rootName)
		}
		return spec, nil
	}

	var object string
	switch f {
	case FormatXML:
		name, err := XMLRoot(data)
		if err != nil {
			return model.RootSpec{}, err
		}
		object = name
	case FormatCBOR:
		snap, err := UnmarshalSnapshot(data)
		if err != nil {
			return model.RootSpec{}, err
		}
		object = snap.Root
	default:
		return model.RootSpec{}, fmt.Errorf("%w: %s documents need a root name", ErrRootMismatch, f)
	}

	spec, ok := reg.RootByObject(object)
	if !ok {
		return model.RootSpec{}, fmt.Errorf("%w: %s", ErrRootMismatch, object)
	}
	return spec, nil
}
