package fsnode

import (
	"encoding/hex"
	"math/bits"
	"strings"

	"github.com/pkg/errors"

	"github.com/arbortree/arbor/pkg/tree"
)

// errNotDirectory is returned by NodeId when relpath descends through a
// path component that names a file rather than a directory.
var errNotDirectory = errors.New("path component is not a directory")

// Store implements tree.Store over fsnode's synthesized content-digest
// identities. Its Distance heuristic is deliberately crude: two identities
// of different kinds ("file:" vs "dir:") are unrelated, and two of the
// same kind are related with a distance equal to the Hamming distance
// between their digests. This is the simplest possible stand-in for
// "expected binary-delta size" (§9's remark that a stricter estimate is
// permitted but not required) — it costs nothing beyond the two
// identities already computed during the walk, and two digests that agree
// in more bits are, on average, more likely to share content.
type Store struct {
	Root *Node
}

// Distance implements tree.Store.Distance.
func (s *Store) Distance(a, b tree.Id) (uint64, bool) {
	if a == b {
		return 0, true
	}

	aKind, aDigest, aOk := splitId(a)
	bKind, bDigest, bOk := splitId(b)
	if !aOk || !bOk || aKind != bKind || len(aDigest) != len(bDigest) {
		return 0, false
	}

	aBytes, aErr := hex.DecodeString(aDigest)
	bBytes, bErr := hex.DecodeString(bDigest)
	if aErr != nil || bErr != nil {
		return 0, false
	}

	var distance uint64
	for i := range aBytes {
		distance += uint64(bits.OnesCount8(aBytes[i] ^ bBytes[i]))
	}
	return distance, true
}

// NodeId implements tree.Store.NodeId by resolving relpath against root
// through successive OpenChild calls.
func (s *Store) NodeId(root tree.Directory, relpath string) (tree.Id, error) {
	if relpath == "" {
		return root.Id(), nil
	}

	var current tree.Node = root
	for _, segment := range strings.Split(relpath, "/") {
		if segment == "" {
			continue
		}
		dir, ok := current.(tree.Directory)
		if !ok {
			return "", errNotDirectory
		}
		child, err := dir.OpenChild(segment)
		if err != nil {
			return "", err
		}
		current = child
	}
	return current.Id(), nil
}

func splitId(id tree.Id) (kind, digest string, ok bool) {
	s := string(id)
	idx := strings.IndexByte(s, ':')
	if idx < 0 {
		return "", "", false
	}
	return s[:idx], s[idx+1:], true
}
