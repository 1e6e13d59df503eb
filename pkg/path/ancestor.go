package path

import "strings"

// ancestorRemainder returns the portion of q that follows p, when p is an
// ancestor of (or equal to) q. The second return value reports whether p
// is in fact an ancestor. A root-like p that already ends in '/' or ':'
// (a bare drive reference) doesn't require an additional separator before
// the remainder; any other p does.
func ancestorRemainder(p, q string) (string, bool) {
	if p == q {
		return "", true
	}
	if p == "" {
		return q, true
	}
	if !strings.HasPrefix(q, p) {
		return "", false
	}
	rest := q[len(p):]
	if strings.HasSuffix(p, "/") || strings.HasSuffix(p, ":") {
		return rest, true
	}
	if strings.HasPrefix(rest, "/") {
		return rest[1:], true
	}
	return "", false
}

// IsAncestor reports whether q equals p, or q descends from p (q == p +
// "/" + rest, with the DOS exception that a root ending in ':' needs no
// separator).
func IsAncestor(kind Kind, p, q string, style Style) bool {
	_, ok := ancestorRemainder(p, q)
	return ok
}

// IsChild returns the trailing portion of q after p, and true, if p is a
// strict ancestor of q. It never considers q == p a child relationship.
func IsChild(kind Kind, p, q string, style Style) (string, bool) {
	if p == q {
		return "", false
	}
	return ancestorRemainder(p, q)
}

// SkipAncestor returns q with the p prefix (and its separator) removed, if
// p is an ancestor of q; otherwise it returns q unchanged.
func SkipAncestor(kind Kind, p, q string, style Style) string {
	if rest, ok := ancestorRemainder(p, q); ok {
		return rest
	}
	return q
}

// LongestAncestor returns the longest path that is a prefix of both p and
// q, ending at a segment boundary. For URLs, the schemes and authorities
// of p and q must match exactly or the result is empty. It never returns a
// path that isn't itself an ancestor of both inputs.
func LongestAncestor(kind Kind, p, q string, style Style) string {
	if kind == KindURL {
		return longestAncestorURL(p, q)
	}

	var root string
	var pRest, qRest string
	if kind == KindDirent {
		pRoot, pr := direntRoot(p, style)
		qRoot, qr := direntRoot(q, style)
		if pRoot != qRoot {
			return ""
		}
		root, pRest, qRest = pRoot, pr, qr
	} else {
		pRest, qRest = p, q
	}

	pSegments := splitSegments(pRest)
	qSegments := splitSegments(qRest)
	common := make([]string, 0, len(pSegments))
	for i := 0; i < len(pSegments) && i < len(qSegments); i++ {
		if pSegments[i] != qSegments[i] {
			break
		}
		common = append(common, pSegments[i])
	}
	return assembleDirent(root, common)
}

// longestAncestorURL implements LongestAncestor for KindURL: an exact
// scheme/authority match is required, after which the longest common path
// segment prefix is computed as for dirents/relpaths.
func longestAncestorURL(p, q string) string {
	pScheme, pAuthority, pPath, pOK := splitURL(p)
	qScheme, qAuthority, qPath, qOK := splitURL(q)
	if !pOK || !qOK || pScheme != qScheme || pAuthority != qAuthority {
		return ""
	}
	pSegments := splitSegments(pPath)
	qSegments := splitSegments(qPath)
	common := make([]string, 0, len(pSegments))
	for i := 0; i < len(pSegments) && i < len(qSegments); i++ {
		if pSegments[i] != qSegments[i] {
			break
		}
		common = append(common, pSegments[i])
	}
	result := pScheme + "://" + pAuthority
	if len(common) > 0 {
		result += "/" + joinSegments(common)
	}
	return result
}
