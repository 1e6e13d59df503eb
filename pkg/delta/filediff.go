package delta

import (
	"bytes"
	"io"

	"github.com/arbortree/arbor/pkg/textdelta"
	"github.com/arbortree/arbor/pkg/tree"
)

// diffFile implements §4.F. ancestor may be nil, meaning "no ancestor";
// its property list and byte stream are then both treated as empty.
func (w *walker) diffFile(ancestor, target tree.File, fileBaton any) error {
	ancestorProps, err := w.fileProperties(ancestor)
	if err != nil {
		return wrap(CodeIOUpstream, err, "read ancestor file properties")
	}
	targetProps, err := target.Properties()
	if err != nil {
		return wrap(CodeIOUpstream, err, "read target file properties")
	}
	if err := diffProperties(ancestorProps, targetProps, func(name string, value []byte, deleted bool) error {
		return w.editor.ChangeFileProp(fileBaton, name, value, deleted)
	}); err != nil {
		return err
	}

	ancestorStream, err := w.fileContents(ancestor)
	if err != nil {
		return wrap(CodeIOUpstream, err, "open ancestor file contents")
	}
	defer ancestorStream.Close()

	targetStream, err := target.Contents()
	if err != nil {
		return wrap(CodeIOUpstream, err, "open target file contents")
	}
	defer targetStream.Close()

	generator, err := textdelta.NewGenerator(ancestorStream, targetStream, w.opts.BlockSize, w.opts.MaxWindowSize)
	if err != nil {
		return wrap(CodeIOUpstream, err, "build text-delta generator")
	}

	handler, err := w.editor.ApplyTextDelta(fileBaton)
	if err != nil {
		return wrap(CodeIOUpstream, err, "obtain apply-text-delta handler")
	}

	for {
		if w.opts.cancelled() {
			return Cancelled
		}
		window, err := generator.Next()
		if err != nil {
			return wrap(CodeIOUpstream, err, "generate text-delta window")
		}
		if err := handler(window); err != nil {
			return wrap(CodeIOUpstream, err, "apply text-delta window")
		}
		if window == nil {
			return nil
		}
	}
}

// fileProperties returns file's properties, or an empty list if file is
// nil (no ancestor).
func (w *walker) fileProperties(file tree.File) (tree.PropertyList, error) {
	if file == nil {
		return nil, nil
	}
	return file.Properties()
}

// fileContents returns a stream over file's contents, or an empty stream
// if file is nil.
func (w *walker) fileContents(file tree.File) (io.ReadCloser, error) {
	if file == nil {
		return io.NopCloser(bytes.NewReader(nil)), nil
	}
	return file.Contents()
}
