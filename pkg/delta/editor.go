package delta

import "github.com/arbortree/arbor/pkg/textdelta"

// Ancestor identifies the source-tree node a replace operation should use
// as its reconstruction starting point. A nil *Ancestor means "no
// ancestor, build from scratch" (§4.E's from-scratch branch).
type Ancestor struct {
	// Relpath is the ancestor's canonical relpath measured from the
	// delta's top, per §3's invariant that replace-with-ancestor always
	// expresses its ancestor this way.
	Relpath string
	// Version is the ancestor node's version number.
	Version uint64
}

// Editor is the push-style callback bundle the engine drives. Every
// open/replace call must be matched by exactly one Close* call; opens are
// strictly nested, and within a single directory, calls follow ascending
// entry-name order (§5). Batons are opaque values the editor itself
// chooses and returns from open/replace calls; the engine only threads
// them back into subsequent calls and the matching close.
type Editor interface {
	// ReplaceRoot begins the edit, returning a directory baton for the
	// root. ancestor is nil unless the caller wants to hint a starting
	// point for the root itself (rarely used, but permitted by the
	// contract).
	ReplaceRoot(ancestor *Ancestor, editBaton any) (dirBaton any, err error)

	// ReplaceDirectory opens an existing entry as a directory, optionally
	// relative to ancestor (nil for a from-scratch replace).
	ReplaceDirectory(name string, parentBaton any, ancestor *Ancestor) (dirBaton any, err error)
	// AddDirectory opens a new entry as a directory (no ancestor is ever
	// passed in the pure-addition path per §4.D's cmp > 0 branch).
	AddDirectory(name string, parentBaton any) (dirBaton any, err error)
	// ReplaceFile opens an existing entry as a file, optionally relative
	// to ancestor.
	ReplaceFile(name string, parentBaton any, ancestor *Ancestor) (fileBaton any, err error)
	// AddFile opens a new entry as a file.
	AddFile(name string, parentBaton any) (fileBaton any, err error)
	// Delete removes an entry that exists in the source but not the
	// target.
	Delete(name string, parentBaton any) error

	// ChangeDirProp records a property change (or, if deleted is true, a
	// deletion) on the directory identified by dirBaton itself.
	ChangeDirProp(dirBaton any, name string, value []byte, deleted bool) error
	// ChangeEntryProp records a property change on a specific entry
	// within the directory identified by dirBaton, distinct from
	// ChangeDirProp per the open question in §9(iii).
	ChangeEntryProp(dirBaton any, entryName, name string, value []byte, deleted bool) error
	// ChangeFileProp records a property change on the file identified by
	// fileBaton.
	ChangeFileProp(fileBaton any, name string, value []byte, deleted bool) error

	// ApplyTextDelta returns a window handler that the file differ will
	// drive with the window sequence describing the file's new
	// contents, terminated by a nil window.
	ApplyTextDelta(fileBaton any) (textdelta.Handler, error)

	// CloseDirectory closes a directory baton. Every nested baton opened
	// below it must already be closed.
	CloseDirectory(dirBaton any) error
	// CloseFile closes a file baton.
	CloseFile(fileBaton any) error
}
