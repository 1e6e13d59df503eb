package textdelta

import (
	"io"

	"github.com/pkg/errors"
)

// Apply reconstructs a target byte stream by pulling windows from next
// (which must follow the Generator.Next contract: a nil, nil result marks
// the end of the stream) and writing the reconstructed bytes to out. It
// reads all of source into memory to support OpSourceCopy random access;
// callers reconstructing large files should prefer an io.ReaderAt-backed
// variant, but this is the same in-memory approach the teacher's rsync
// patch path uses for its reference (non-streaming) receiver.
func Apply(source io.Reader, next func() (*Window, error), out io.Writer) error {
	sourceBytes, err := io.ReadAll(source)
	if err != nil {
		return errors.Wrap(err, "unable to read source")
	}

	var target []byte
	for {
		window, err := next()
		if err != nil {
			return errors.Wrap(err, "unable to obtain next window")
		}
		if window == nil {
			break
		}
		for _, op := range window.Ops {
			switch op.Kind {
			case OpSourceCopy:
				if op.Offset < 0 || op.Offset+op.Length > int64(len(sourceBytes)) {
					return errors.New("source copy out of range")
				}
				target = append(target, sourceBytes[op.Offset:op.Offset+op.Length]...)
			case OpTargetCopy:
				if op.Offset < 0 || op.Offset+op.Length > int64(len(target)) {
					return errors.New("target copy out of range")
				}
				target = append(target, target[op.Offset:op.Offset+op.Length]...)
			case OpInsert:
				target = append(target, op.Data...)
			default:
				return errors.New("unknown op kind")
			}
		}
	}

	if _, err := out.Write(target); err != nil {
		return errors.Wrap(err, "unable to write reconstructed target")
	}
	return nil
}
