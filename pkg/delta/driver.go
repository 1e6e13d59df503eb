package delta

import (
	"github.com/arbortree/arbor/pkg/tree"
)

// Diff implements §4.G, the engine's sole entry point: it drives editor
// through a complete, well-nested call sequence that, if replayed against
// source, reproduces target. editBaton is passed through unchanged to
// editor.ReplaceRoot.
//
// On success, editor has observed the entire edit and every opened baton
// has been closed. On failure, editor may have observed a prefix of the
// edit; the caller must not treat it as committed.
func Diff(store tree.Store, source, target tree.Directory, editor Editor, editBaton any, opts Options) error {
	if opts.cancelled() {
		return Cancelled
	}

	logger := opts.Logger
	logger.Debug("beginning tree delta")

	rootBaton, err := editor.ReplaceRoot(nil, editBaton)
	if err != nil {
		return wrap(CodeIOUpstream, err, "replace root")
	}

	w := &walker{store: store, editor: editor, opts: opts}
	if err := w.diffDirectory(source, target, rootBaton, ""); err != nil {
		return err
	}

	if err := editor.CloseDirectory(rootBaton); err != nil {
		return wrap(CodeIOUpstream, err, "close root")
	}

	logger.Debug("tree delta complete")
	return nil
}
