package delta

import (
	"bytes"
	"errors"
	"io"
	"sort"

	"github.com/arbortree/arbor/pkg/tree"
)

var errChildNotFound = errors.New("child not found")

// memFile and memDir are minimal in-memory tree.File/tree.Directory
// fixtures for exercising the differ without touching a real filesystem.
// Unlike fsnode, identity here is assigned explicitly by the test so that
// ancestor-resolution scenarios (§4.E) can be constructed deterministically
// rather than relying on content hashing.

type memFile struct {
	id       tree.Id
	version  uint64
	props    tree.PropertyList
	contents []byte
}

func (f *memFile) Kind() tree.Kind                        { return tree.KindFile }
func (f *memFile) Id() tree.Id                             { return f.id }
func (f *memFile) Version() uint64                         { return f.version }
func (f *memFile) Properties() (tree.PropertyList, error)  { return f.props, nil }
func (f *memFile) Contents() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.contents)), nil
}

type memEntry struct {
	name  string
	node  tree.Node
	props tree.PropertyList
}

type memDir struct {
	id      tree.Id
	version uint64
	props   tree.PropertyList
	kids    []memEntry
}

func (d *memDir) Kind() tree.Kind                       { return tree.KindDirectory }
func (d *memDir) Id() tree.Id                            { return d.id }
func (d *memDir) Version() uint64                        { return d.version }
func (d *memDir) Properties() (tree.PropertyList, error) { return d.props, nil }

func (d *memDir) Entries() ([]tree.Entry, error) {
	entries := make([]tree.Entry, len(d.kids))
	for i, k := range d.kids {
		entries[i] = tree.Entry{Name: k.name, Id: k.node.Id()}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

func (d *memDir) EntryProperties(name string) (tree.PropertyList, error) {
	for _, k := range d.kids {
		if k.name == name {
			return k.props, nil
		}
	}
	return nil, nil
}

func (d *memDir) OpenChild(name string) (tree.Node, error) {
	for _, k := range d.kids {
		if k.name == name {
			return k.node, nil
		}
	}
	return nil, errChildNotFound
}

// memStore implements tree.Store with an explicit relatedness table keyed
// by Id pair, falling back to "related with distance 0 iff equal" when no
// table entry exists, matching the common case used by most test trees.
type memStore struct {
	distances map[[2]tree.Id]uint64
}

func (s *memStore) Distance(a, b tree.Id) (uint64, bool) {
	if a == b {
		return 0, true
	}
	if s.distances != nil {
		if d, ok := s.distances[[2]tree.Id{a, b}]; ok {
			return d, true
		}
		if d, ok := s.distances[[2]tree.Id{b, a}]; ok {
			return d, true
		}
	}
	return 0, false
}

func (s *memStore) NodeId(root tree.Directory, relpath string) (tree.Id, error) {
	return root.Id(), nil
}
