// Package textdelta implements the lazy, window-based byte stream that the
// file differ (§4.F) uses to describe how to reconstruct a target byte
// sequence from a source byte sequence plus literal data. It is adapted
// from the block-hash signature/delta algorithm in the teacher's rsync
// engine, simplified to fixed block-aligned matching (the contract only
// requires that concatenating and applying all windows reproduce the
// target byte-for-byte, not any particular compression scheme) and
// extended with a second table so that repeated runs within the target
// itself can be expressed as intra-target copies rather than literals.
package textdelta

// OpKind identifies what kind of reconstruction instruction an Op carries.
type OpKind int

const (
	// OpSourceCopy copies Length bytes starting at Offset from the source
	// byte stream.
	OpSourceCopy OpKind = iota
	// OpTargetCopy copies Length bytes starting at Offset from the
	// target bytes reconstructed so far (by this or any preceding
	// window).
	OpTargetCopy
	// OpInsert supplies Data verbatim.
	OpInsert
)

// Op is a single reconstruction instruction within a Window.
type Op struct {
	// Kind indicates how to interpret Offset/Length/Data.
	Kind OpKind
	// Offset is the starting offset for OpSourceCopy and OpTargetCopy.
	Offset int64
	// Length is the byte count for OpSourceCopy and OpTargetCopy.
	Length int64
	// Data holds the literal bytes for OpInsert.
	Data []byte
}

// length returns the number of reconstructed bytes this op contributes.
func (o Op) length() int64 {
	if o.Kind == OpInsert {
		return int64(len(o.Data))
	}
	return o.Length
}

// Window is a single unit of text-delta output: a batch of Ops which,
// applied in order, reconstruct the next contiguous slice of the target.
// A nil *Window is the terminal marker signaling end-of-stream; no Window
// is sent after it.
type Window struct {
	// Ops is the ordered list of reconstruction instructions.
	Ops []Op
}

// Length returns the total number of target bytes this window reconstructs.
func (w *Window) Length() int64 {
	var total int64
	for _, op := range w.Ops {
		total += op.length()
	}
	return total
}

// Handler is the callback signature the editor's apply_textdelta operation
// exposes: it is invoked once per Window, and finally once with nil to
// mark the end of the stream (§6).
type Handler func(window *Window) error
