package paramtree

import (
	"hash"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash"
)

// ChangeKind classifies a difference between two trees.
type ChangeKind uint8

const (
	// ChangeAdded means the parameter is set only in the new tree.
	ChangeAdded ChangeKind = iota

	// ChangeRemoved means the parameter is set only in the old tree.
	ChangeRemoved

	// ChangeModified means the parameter is set in both with different values.
	ChangeModified
)

// String returns the change kind name.
func (k ChangeKind) String() string {
	switch k {
	case ChangeAdded:
		return "added"
	case ChangeRemoved:
		return "removed"
	case ChangeModified:
		return "modified"
	default:
		return "unknown"
	}
}

// Change is one parameter difference.
type Change struct {
	Kind ChangeKind
	Path string
	Old  string
	New  string
}

// Diff compares the set parameters of two trees by path and CWMP string
// form. Changes are ordered by path with instance numbers compared
// numerically.
func Diff(from, to *Tree) []Change {
	old := textByPath(from)
	cur := textByPath(to)

	var changes []Change
	for path, o := range old {
		n, ok := cur[path]
		switch {
		case !ok:
			changes = append(changes, Change{Kind: ChangeRemoved, Path: path, Old: o})
		case n != o:
			changes = append(changes, Change{Kind: ChangeModified, Path: path, Old: o, New: n})
		}
	}
	for path, n := range cur {
		if _, ok := old[path]; !ok {
			changes = append(changes, Change{Kind: ChangeAdded, Path: path, New: n})
		}
	}

	sort.Slice(changes, func(i, j int) bool {
		return ComparePaths(changes[i].Path, changes[j].Path) < 0
	})
	return changes
}

func textByPath(t *Tree) map[string]string {
	out := make(map[string]string)
	if t == nil {
		return out
	}
	for _, p := range t.Flatten() {
		out[p.Path] = p.Text()
	}
	return out
}

// ComparePaths orders dotted paths segment by segment, comparing
// instance numbers numerically ("X.2." sorts before "X.10.").
func ComparePaths(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] == bs[i] {
			continue
		}
		an, aerr := strconv.Atoi(as[i])
		bn, berr := strconv.Atoi(bs[i])
		if aerr == nil && berr == nil {
			if an < bn {
				return -1
			}
			return 1
		}
		return strings.Compare(as[i], bs[i])
	}
	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	}
	return 0
}

// Fingerprint hashes the set parameters (path, type and value) with
// xxhash. Trees with the same parameter values have the same fingerprint
// regardless of how they were built.
func (t *Tree) Fingerprint() uint64 {
	params := t.Flatten()
	sort.Slice(params, func(i, j int) bool { return params[i].Path < params[j].Path })

	var h hash.Hash64 = xxhash.New()
	for _, p := range params {
		h.Write([]byte(p.Path))
		h.Write([]byte{0})
		h.Write([]byte(p.Type().String()))
		h.Write([]byte{0})
		h.Write([]byte(p.Text()))
		h.Write([]byte{0})
	}
	return h.Sum64()
}
