package textdelta

import (
	"crypto/sha1"
	"hash"
	"io"

	"github.com/pkg/errors"
)

const (
	// DefaultBlockSize is the block size used for matching when callers
	// don't specify one, chosen for the same reasons the teacher's rsync
	// engine picks its default: large enough to amortize per-block
	// overhead, small enough to keep memory bounded.
	DefaultBlockSize = 1 << 13
	// DefaultMaximumWindowSize bounds how many reconstructed bytes a
	// single Window may describe, so that windows stay reasonably sized
	// for transmission and in-memory buffering.
	DefaultMaximumWindowSize = 1 << 18
)

// blockKey is the strong-hash digest used to key both the source and
// target self-reference match tables.
type blockKey string

// Generator lazily produces the Window sequence that reconstructs a target
// byte stream from a source byte stream. It consumes both streams
// incrementally: the source is hashed into a signature up front (a single
// forward pass), and the target is read block by block as Next is called.
type Generator struct {
	target    io.Reader
	blockSize int
	maxWindow int
	hasher    hash.Hash

	sourceBlocks map[blockKey]sourceBlock
	targetBlocks map[blockKey]int64

	targetOffset int64
	pendingOps   []Op
	pendingLen   int64
	buffer       []byte

	// eof indicates the target stream has been fully read; there may
	// still be one more non-terminal window of buffered ops to emit.
	eof bool
	// terminalSent indicates the nil terminal window has already been
	// returned; any further call to Next is a programmer error.
	terminalSent bool
}

// sourceBlock records where a given block content was found in the source
// stream and how long it is (the final block may be shorter than
// blockSize).
type sourceBlock struct {
	offset int64
	length int64
}

// NewGenerator builds a Generator by hashing source into fixed-size
// blocks. If blockSize is 0, DefaultBlockSize is used. If maxWindowSize is
// 0, DefaultMaximumWindowSize is used. source is fully consumed by this
// call; target is consumed lazily by calls to Next.
func NewGenerator(source, target io.Reader, blockSize, maxWindowSize int) (*Generator, error) {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	if maxWindowSize <= 0 {
		maxWindowSize = DefaultMaximumWindowSize
	}

	g := &Generator{
		target:       target,
		blockSize:    blockSize,
		maxWindow:    maxWindowSize,
		hasher:       sha1.New(),
		sourceBlocks: make(map[blockKey]sourceBlock),
		targetBlocks: make(map[blockKey]int64),
		buffer:       make([]byte, blockSize),
	}

	if source != nil {
		var offset int64
		block := make([]byte, blockSize)
		for {
			n, err := io.ReadFull(source, block)
			if n > 0 {
				key := g.hashBlock(block[:n])
				if _, exists := g.sourceBlocks[key]; !exists {
					g.sourceBlocks[key] = sourceBlock{offset: offset, length: int64(n)}
				}
				offset += int64(n)
			}
			if err == io.EOF {
				break
			} else if err == io.ErrUnexpectedEOF {
				break
			} else if err != nil {
				return nil, errors.Wrap(err, "unable to read source block")
			}
		}
	}

	return g, nil
}

// hashBlock computes the strong-hash key for a block of data.
func (g *Generator) hashBlock(data []byte) blockKey {
	g.hasher.Reset()
	g.hasher.Write(data)
	return blockKey(g.hasher.Sum(nil))
}

// flushInsert converts any buffered literal bytes into a pending OpInsert
// and records their block hash in the target self-reference table so that
// a later repeat of this exact block can be expressed as an OpTargetCopy.
func (g *Generator) flushInsert(literal []byte) {
	if len(literal) == 0 {
		return
	}
	data := make([]byte, len(literal))
	copy(data, literal)

	key := g.hashBlock(data)
	if _, exists := g.targetBlocks[key]; !exists {
		g.targetBlocks[key] = g.targetOffset
	}

	g.pendingOps = append(g.pendingOps, Op{Kind: OpInsert, Data: data})
	g.pendingLen += int64(len(data))
	g.targetOffset += int64(len(data))
}

// appendCopy appends a copy op (from source or target) to the pending
// window, coalescing it with an immediately preceding copy of the same
// kind from a contiguous region.
func (g *Generator) appendCopy(kind OpKind, offset, length int64) {
	if n := len(g.pendingOps); n > 0 {
		last := &g.pendingOps[n-1]
		if last.Kind == kind && last.Offset+last.Length == offset {
			last.Length += length
			g.pendingLen += length
			g.targetOffset += length
			return
		}
	}
	g.pendingOps = append(g.pendingOps, Op{Kind: kind, Offset: offset, Length: length})
	g.pendingLen += length
	g.targetOffset += length
}

// Next produces the next Window in the sequence. Once the target stream is
// exhausted, the first call after the last content-bearing window returns
// (nil, nil) to signal end-of-stream, matching the terminal-window
// contract in §4.F/§6. Calling Next again after that point is a
// programmer error and returns an error.
func (g *Generator) Next() (*Window, error) {
	if g.terminalSent {
		return nil, errors.New("text-delta generator already exhausted")
	}

	for !g.eof && g.pendingLen < int64(g.maxWindow) {
		n, err := io.ReadFull(g.target, g.buffer)
		if n > 0 {
			block := g.buffer[:n]
			key := g.hashBlock(block)
			if src, ok := g.sourceBlocks[key]; ok {
				g.appendCopy(OpSourceCopy, src.offset, src.length)
			} else if targetOffset, ok := g.targetBlocks[key]; ok {
				g.appendCopy(OpTargetCopy, targetOffset, int64(len(block)))
			} else {
				g.flushInsert(block)
			}
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			g.eof = true
		} else if err != nil {
			return nil, errors.Wrap(err, "unable to read target block")
		}
	}

	if len(g.pendingOps) == 0 {
		g.terminalSent = true
		return nil, nil
	}

	window := &Window{Ops: g.pendingOps}
	g.pendingOps = nil
	g.pendingLen = 0
	return window, nil
}

// Drive pulls windows from the generator and pushes them to handler until
// the terminal nil window, matching §4.F step 4: "push every window to the
// handler until the terminal window".
func Drive(generator *Generator, handler Handler) error {
	for {
		window, err := generator.Next()
		if err != nil {
			return err
		}
		if err := handler(window); err != nil {
			return errors.Wrap(err, "window handler failed")
		}
		if window == nil {
			return nil
		}
	}
}
