package path

import "strings"

// cleanSegments collapses "." segments (already absent after splitSegments)
// and ".." segments against the preceding real segment. If rooted is true,
// a ".." with no preceding segment to cancel is dropped (you can't go above
// the root); otherwise it is preserved, since a canonical relative path is
// permitted to walk above its starting point.
func cleanSegments(segments []string, rooted bool) []string {
	stack := make([]string, 0, len(segments))
	for _, segment := range segments {
		if segment == ".." {
			if n := len(stack); n > 0 && stack[n-1] != ".." {
				stack = stack[:n-1]
				continue
			}
			if rooted {
				continue
			}
		}
		stack = append(stack, segment)
	}
	return stack
}

// direntRoot splits a dirent into its root prefix and the remainder that
// follows it, according to style. The returned root is already in
// canonical form (uppercase drive letter, lowercase UNC server). rest may
// still contain "." and ".." segments and needs further cleaning.
func direntRoot(s string, style Style) (root, rest string) {
	if style == StyleWindows {
		if strings.HasPrefix(s, "//") {
			// UNC path: "//server/share/rest...". Windows treats the
			// server name as case-insensitive; the share name's case is
			// left alone because it's sometimes configured to be
			// case-sensitive.
			remainder := s[2:]
			slash := strings.IndexByte(remainder, '/')
			if slash == -1 {
				// "//server" with no share: not a complete UNC root, but
				// canonicalization is total, so normalize what we can.
				return "//" + strings.ToLower(remainder), ""
			}
			server := strings.ToLower(remainder[:slash])
			afterServer := remainder[slash+1:]
			shareEnd := strings.IndexByte(afterServer, '/')
			if shareEnd == -1 {
				return "//" + server + "/" + afterServer, ""
			}
			share := afterServer[:shareEnd]
			return "//" + server + "/" + share, afterServer[shareEnd+1:]
		}
		if len(s) >= 2 && isDriveLetter(s[0]) && s[1] == ':' {
			drive := string(upperDriveLetter(s[0])) + ":"
			if len(s) >= 3 && s[2] == '/' {
				return drive + "/", s[3:]
			}
			return drive, s[2:]
		}
	}
	if strings.HasPrefix(s, "/") {
		return "/", s[1:]
	}
	return "", s
}

// assembleDirent reattaches a cleaned relative body to a canonical root,
// eliding the separator when the root already ends in '/' or ':' (a bare
// drive reference), per the join rule in §4.A.
func assembleDirent(root string, segments []string) string {
	body := joinSegments(segments)
	if root == "" {
		return body
	}
	if body == "" {
		return root
	}
	if strings.HasSuffix(root, "/") || strings.HasSuffix(root, ":") {
		return root + body
	}
	return root + "/" + body
}

// normalizeDirentSeparators converts backslashes to forward slashes for
// Windows-style dirents, matching the "internal style" conversion SVN
// performs before canonicalizing a local path.
func normalizeDirentSeparators(s string, style Style) string {
	if style == StyleWindows && strings.IndexByte(s, '\\') != -1 {
		return strings.ReplaceAll(s, "\\", "/")
	}
	return s
}

// Canonicalize reduces s to canonical form for the given kind (and, for
// dirents, the given style). Canonicalization is total and idempotent:
// Canonicalize(k, Canonicalize(k, s, style), style) == Canonicalize(k, s, style).
func Canonicalize(kind Kind, s string, style Style) string {
	switch kind {
	case KindRelpath:
		return joinSegments(cleanSegments(splitSegments(s), false))
	case KindDirent:
		s = normalizeDirentSeparators(s, style)
		root, rest := direntRoot(s, style)
		rooted := root != "" && root != "//"
		return assembleDirent(root, cleanSegments(splitSegments(rest), rooted))
	case KindURL:
		return canonicalizeURL(s)
	default:
		panic("unknown path kind")
	}
}

// IsCanonical reports whether s is already in canonical form for the given
// kind and style: is_canonical(k, s) <=> canonicalize(k, s) == s.
func IsCanonical(kind Kind, s string, style Style) bool {
	return Canonicalize(kind, s, style) == s
}
