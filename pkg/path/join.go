package path

import "strings"

// IsAbsoluteDirent reports whether s is an absolute dirent under style. On
// POSIX, that means a leading "/". On DOS, only "X:/..." and
// "//host/share/..." count as absolute; a bare "X:" (drive-relative, no
// slash) or a bare leading "/" (drive-relative to the current drive) do
// not.
func IsAbsoluteDirent(s string, style Style) bool {
	if style != StyleWindows {
		return strings.HasPrefix(s, "/")
	}
	if strings.HasPrefix(s, "//") {
		return true
	}
	return len(s) >= 3 && isDriveLetter(s[0]) && s[1] == ':' && s[2] == '/'
}

// isRootDirent reports whether s is exactly a root dirent for style: "/",
// "X:", "X:/", or "//server/share".
func isRootDirent(s string, style Style) bool {
	root, rest := direntRoot(s, style)
	return root != "" && rest == ""
}

// Join combines a and b for the given kind and style. If b is absolute
// (for Dirent) or non-empty for Relpath/URL, the join follows the rules in
// §4.A: an absolute b replaces a entirely; an empty a or b yields the
// other; otherwise the two are concatenated with a single separating
// slash, elided when a already ends in '/' or ':'.
//
// The DOS rule that a leading-'/' component is drive-relative to a's root
// (rather than replacing it outright) is applied for Dirent/Windows.
func Join(kind Kind, a, b string, style Style) string {
	if b == "" {
		return a
	}
	if a == "" {
		return b
	}

	if kind == KindDirent {
		if style == StyleWindows && strings.HasPrefix(b, "/") && !strings.HasPrefix(b, "//") {
			// A leading-slash component is drive-relative to a's root.
			root, _ := direntRoot(a, style)
			return assembleDirentJoin(root, b[1:])
		}
		if IsAbsoluteDirent(b, style) {
			return b
		}
	} else if kind == KindURL {
		if strings.Contains(b, "://") {
			return b
		}
	}

	if strings.HasSuffix(a, "/") || strings.HasSuffix(a, ":") {
		return a + b
	}
	return a + "/" + b
}

// assembleDirentJoin joins a canonical root directly to a relative body,
// following the same separator-elision rule as Join.
func assembleDirentJoin(root, body string) string {
	if root == "" {
		return body
	}
	if strings.HasSuffix(root, "/") || strings.HasSuffix(root, ":") {
		return root + body
	}
	return root + "/" + body
}

// Split breaks s into (dirname, basename) for the given kind and style.
// For a root dirent, dirname is the root's "basename source": the root
// itself, with basename empty.
func Split(kind Kind, s string, style Style) (string, string) {
	return Dirname(kind, s, style), Basename(kind, s, style)
}

// Dirname returns everything in s before the last internal separator. For
// a root dirent, Dirname returns the root itself.
func Dirname(kind Kind, s string, style Style) string {
	if kind == KindDirent {
		if isRootDirent(s, style) {
			return s
		}
		root, rest := direntRoot(s, style)
		if idx := strings.LastIndexByte(rest, '/'); idx != -1 {
			return assembleDirentJoin(root, rest[:idx])
		}
		if root != "" {
			return root
		}
		return ""
	}
	// Relpath/URL: plain slash splitting.
	if idx := strings.LastIndexByte(s, '/'); idx != -1 {
		return s[:idx]
	}
	return ""
}

// Basename returns the last path component of s. For a root dirent it
// returns the empty string.
func Basename(kind Kind, s string, style Style) string {
	if kind == KindDirent {
		if isRootDirent(s, style) {
			return ""
		}
		_, rest := direntRoot(s, style)
		if idx := strings.LastIndexByte(rest, '/'); idx != -1 {
			return rest[idx+1:]
		}
		return rest
	}
	if idx := strings.LastIndexByte(s, '/'); idx != -1 {
		return s[idx+1:]
	}
	return s
}
