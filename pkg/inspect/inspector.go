package inspect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwmp-model/cwmp-go/pkg/cwmppath"
	"github.com/cwmp-model/cwmp-go/pkg/model"
	"github.com/cwmp-model/cwmp-go/pkg/paramtree"
)

// ErrAmbiguousName is returned when a name matches more than one
// parameter or object case-insensitively.
var ErrAmbiguousName = errors.New("ambiguous name")

// Inspector resolves user input against a tree and renders the result.
type Inspector struct {
	tree      *paramtree.Tree
	formatter *Formatter
}

// NewInspector creates a new Inspector for the given tree.
func NewInspector(tree *paramtree.Tree, formatter *Formatter) *Inspector {
	if formatter == nil {
		formatter = NewFormatter()
	}
	return &Inspector{tree: tree, formatter: formatter}
}

// Tree returns the inspected tree.
func (i *Inspector) Tree() *paramtree.Tree { return i.tree }

// Formatter returns the formatter in use.
func (i *Inspector) Formatter() *Formatter { return i.formatter }

// Resolve canonicalizes a path typed by a user: segment names are matched
// case-insensitively and a path relative to the root prefix is accepted,
// so "time.ntpserver1" resolves to "InternetGatewayDevice.Time.NTPServer1".
func (i *Inspector) Resolve(input string) (string, error) {
	input = strings.TrimSpace(input)
	prefix := i.tree.Prefix()
	if input == "" || input == "." {
		return prefix, nil
	}

	partial := strings.HasSuffix(input, ".")
	segs := strings.Split(strings.TrimSuffix(input, "."), ".")

	rootSegs := strings.Split(strings.TrimSuffix(prefix, "."), ".")
	if len(segs) >= len(rootSegs) && strings.EqualFold(strings.Join(segs[:len(rootSegs)], "."), strings.Join(rootSegs, ".")) {
		segs = segs[len(rootSegs):]
	}

	out := prefix
	meta := i.tree.Schema()
	inCollection := false
	for n, seg := range segs {
		last := n == len(segs)-1
		if inCollection {
			if !cwmppath.IsIndex(seg) {
				return "", fmt.Errorf("%w: %s%s", paramtree.ErrNoSuchObject, out, seg)
			}
			out += seg + "."
			inCollection = false
			continue
		}
		if last && !partial {
			name, err := matchParameter(meta, seg)
			if err != nil {
				return "", err
			}
			return out + name, nil
		}
		c, err := matchChild(meta, seg)
		if err != nil {
			return "", err
		}
		out += c.Name + "."
		meta = c.Object
		inCollection = c.MultiInstance
	}
	return out, nil
}

func matchParameter(meta *model.ObjectMetadata, seg string) (string, error) {
	if p, ok := meta.Parameter(seg); ok {
		return p.Name, nil
	}
	var found []string
	for _, p := range meta.Parameters {
		if strings.EqualFold(p.Name, seg) {
			found = append(found, p.Name)
		}
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("%w: %s has no parameter %s", paramtree.ErrNoSuchParameter, meta.Name, seg)
	case 1:
		return found[0], nil
	}
	return "", fmt.Errorf("%w: %s", ErrAmbiguousName, strings.Join(found, ", "))
}

func matchChild(meta *model.ObjectMetadata, seg string) (*model.ChildMetadata, error) {
	if c, ok := meta.Child(seg); ok {
		return c, nil
	}
	var found []*model.ChildMetadata
	for _, c := range meta.Children {
		if strings.EqualFold(c.Name, seg) {
			found = append(found, c)
		}
	}
	switch len(found) {
	case 0:
		return nil, fmt.Errorf("%w: %s has no object %s", paramtree.ErrNoSuchObject, meta.Name, seg)
	case 1:
		return found[0], nil
	}
	return nil, fmt.Errorf("%w: %s", ErrAmbiguousName, seg)
}

// Show renders the parameter or subtree at a user-typed path.
func (i *Inspector) Show(input string) (string, error) {
	path, err := i.Resolve(input)
	if err != nil {
		return "", err
	}
	if strings.HasSuffix(path, ".") {
		return i.formatter.FormatSubtree(i.tree, path)
	}
	p, err := i.tree.Get(path)
	if err != nil {
		return "", err
	}
	return i.formatter.FormatParameters([]paramtree.Parameter{p}), nil
}

// Complete returns the canonical child names of the object at a
// user-typed partial path, for shell completion.
func (i *Inspector) Complete(input string) []string {
	dir := ""
	if k := strings.LastIndex(input, "."); k >= 0 {
		dir = input[:k+1]
	}
	path, err := i.Resolve(dir)
	if err != nil {
		return nil
	}
	names, err := i.tree.Names(path, true)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, n.Path)
	}
	return out
}
