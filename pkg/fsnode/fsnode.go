// Package fsnode adapts a real filesystem directory into the tree.Store,
// tree.Directory, and tree.File capability bundles the delta engine drives
// against. It follows the teacher's os.File/*at-descriptor style for
// directory access (pkg/filesystem/directory_posix.go) but, since the
// engine only ever reads a tree rather than mutating one, exposes a
// read-only subset: list entries, stat a child, open a file's contents.
//
// Node identity (tree.Id) has no filesystem analogue the way it does in a
// real version-control repository, where every node carries an intrinsic
// revision-stamped identity. fsnode synthesizes one instead: a file's Id is
// a content digest, and a directory's Id is a digest of its sorted
// (name, child Id) pairs, so that an unchanged subtree collapses to the
// same Id across two filesystem snapshots and the directory differ's
// equal-Id short-circuit applies exactly when nothing underneath changed.
package fsnode

import (
	"crypto/sha1"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/pkg/errors"

	"github.com/arbortree/arbor/pkg/tree"
)

// Node is the concrete type backing both tree.Directory and tree.File for
// a path on disk. Its Kind is fixed at construction time; Id and the
// directory entry list are computed lazily and cached, since a single
// traversal may query the same node's Id more than once (root replace,
// then again during a sibling's distance search).
type Node struct {
	path   string
	info   os.FileInfo
	device uint64

	id       tree.Id
	idCached bool

	entries       []tree.Entry
	entriesCached bool
}

// Open stats path and returns a Node wrapping it. It follows symbolic
// links, matching the engine's notion of a node as content rather than a
// filesystem inode.
//
// Open is meant for constructing a traversal root. Entries compares each
// child's own device number with its parent's and leaves out children on
// a different device, so that a walk never silently crosses a mount-point
// boundary.
func Open(path string) (*Node, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to stat path")
	}
	device, err := deviceID(path)
	if err != nil {
		return nil, err
	}
	return &Node{path: path, info: info, device: device}, nil
}

// openChild stats path and queries its own device number, for comparison
// against the parent's to detect a mount-point boundary.
func openChild(path string) (*Node, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to stat path")
	}
	device, err := deviceID(path)
	if err != nil {
		return nil, err
	}
	return &Node{path: path, info: info, device: device}, nil
}

// Kind implements tree.Node.Kind.
func (n *Node) Kind() tree.Kind {
	if n.info.IsDir() {
		return tree.KindDirectory
	}
	return tree.KindFile
}

// Version implements tree.Node.Version. The filesystem has no notion of a
// monotonic revision counter, so a node's modification time (in Unix nanoseconds)
// stands in for one: it still lets an Ancestor reference a specific point
// in a file's history, even though that history is just "before or after
// this mtime" rather than a true revision number.
func (n *Node) Version() uint64 {
	return uint64(n.info.ModTime().UnixNano())
}

// Properties implements tree.Node.Properties. The only property the
// filesystem backend tracks is the POSIX permission bits, exposed under
// the name "unix:mode" so that a permission-only change still drives a
// ChangeFileProp/ChangeDirProp call even when content is untouched.
func (n *Node) Properties() (tree.PropertyList, error) {
	mode := strconv.FormatUint(uint64(n.info.Mode().Perm()), 8)
	return tree.PropertyList{{Name: "unix:mode", Value: []byte(mode)}}, nil
}

// Id implements tree.Node.Id, computing and caching it on first access.
func (n *Node) Id() tree.Id {
	if n.idCached {
		return n.id
	}
	id, err := n.computeId()
	if err != nil {
		// Id has no error return in the tree.Node contract; a node whose
		// identity can't be computed is treated as unrelated to
		// everything, including itself under re-computation, which is
		// safe (it just forces a from-scratch replace) rather than
		// silently wrong.
		id = tree.Id("")
	}
	n.id = id
	n.idCached = true
	return n.id
}

func (n *Node) computeId() (tree.Id, error) {
	if n.Kind() == tree.KindFile {
		return n.computeFileId()
	}
	return n.computeDirectoryId()
}

func (n *Node) computeFileId() (tree.Id, error) {
	f, err := os.Open(n.path)
	if err != nil {
		return "", errors.Wrap(err, "unable to open file for identity hash")
	}
	defer f.Close()

	hasher := sha1.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", errors.Wrap(err, "unable to hash file contents")
	}
	return tree.Id("file:" + hex.EncodeToString(hasher.Sum(nil))), nil
}

func (n *Node) computeDirectoryId() (tree.Id, error) {
	entries, err := n.Entries()
	if err != nil {
		return "", err
	}

	hasher := sha1.New()
	for _, e := range entries {
		io.WriteString(hasher, e.Name)
		hasher.Write([]byte{0})
		io.WriteString(hasher, string(e.Id))
		hasher.Write([]byte{'\n'})
	}
	return tree.Id("dir:" + hex.EncodeToString(hasher.Sum(nil))), nil
}

// Entries implements tree.Directory.Entries, returning the directory's
// children sorted by name, computing and caching the list (and, through
// it, each child's Id) on first access.
func (n *Node) Entries() ([]tree.Entry, error) {
	if n.entriesCached {
		return n.entries, nil
	}

	dirEntries, err := os.ReadDir(n.path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read directory")
	}

	names := make([]string, len(dirEntries))
	for i, e := range dirEntries {
		names[i] = e.Name()
	}
	sort.Strings(names)

	entries := make([]tree.Entry, 0, len(names))
	for _, name := range names {
		child, err := openChild(filepath.Join(n.path, name))
		if err != nil {
			return nil, err
		}
		if child.device != n.device {
			// The child is a mount-point boundary; skip it rather than
			// descending into a different filesystem.
			continue
		}
		entries = append(entries, tree.Entry{Name: name, Id: child.Id()})
	}

	n.entries = entries
	n.entriesCached = true
	return entries, nil
}

// EntryProperties implements tree.Directory.EntryProperties. The
// filesystem backend has no notion of entry-scoped properties distinct
// from the child node's own properties, so it reports none; exercising
// ChangeEntryProp is left to stores (such as the in-memory test fixture)
// that do model entry-level metadata.
func (n *Node) EntryProperties(name string) (tree.PropertyList, error) {
	return nil, nil
}

// OpenChild implements tree.Directory.OpenChild. It does not re-apply the
// device-boundary guard Entries applies; a caller that already obtained
// name from Entries has already had that chance to skip it.
func (n *Node) OpenChild(name string) (tree.Node, error) {
	return openChild(filepath.Join(n.path, name))
}

// Contents implements tree.File.Contents.
func (n *Node) Contents() (io.ReadCloser, error) {
	f, err := os.Open(n.path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open file contents")
	}
	return f, nil
}
