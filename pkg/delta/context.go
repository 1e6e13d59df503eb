package delta

import (
	"github.com/arbortree/arbor/pkg/logging"
	"github.com/arbortree/arbor/pkg/tree"
)

// CancelFunc is consulted between entry-pair steps in the directory differ
// and between windows in the file differ (§4.G's cancellation guarantee).
// It should return true if the caller wants the current Diff call aborted.
type CancelFunc func() bool

// Options carries the pieces of a Diff call that aren't the store, the
// source/target trees, or the editor itself: an optional cancellation
// predicate, an optional logger, and optional text-delta size overrides.
// A zero-value Options is valid; Cancel and Logger are both nil-safe.
type Options struct {
	// Cancel is polled at the granularity described in §4.G. A nil Cancel
	// is treated as "never cancel".
	Cancel CancelFunc
	// Logger receives a Debug line when the walk begins and another when
	// it completes; no per-directory or per-file lines are logged. A nil
	// Logger discards everything, matching the teacher's nil-safe logger
	// convention.
	Logger *logging.Logger
	// BlockSize and MaxWindowSize override the text-delta generator's
	// defaults when non-zero (see textdelta.NewGenerator).
	BlockSize     int
	MaxWindowSize int
}

func (o Options) cancelled() bool {
	return o.Cancel != nil && o.Cancel()
}

// walker bundles the state threaded through every recursive call of the
// directory differ, the replace resolver, and the file differ: the store
// (for distance and relpath resolution), the editor being driven, and the
// caller's options. It exists so that those three files don't each repeat
// the same four-argument prefix on every function.
type walker struct {
	store  tree.Store
	editor Editor
	opts   Options
}
