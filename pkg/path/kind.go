// Package path implements the canonical path algebra used throughout the
// tree delta engine: canonicalization, joining, splitting, ancestor and
// child tests, longest-common-ancestor computation, target condensation, and
// URL/dirent interconversion.
//
// Three path flavors are recognized:
//
//   - Dirent: a local filesystem path, platform-conditioned (POSIX or DOS
//     style).
//   - Relpath: a canonical relative path with no leading slash, no "."
//     segments, no "//", and no trailing slash.
//   - URL: a "scheme://authority/path" string with a percent-encoded path
//     component.
//
// Canonical form is a total function of (kind, style, input); it never
// fails. Operations that expect canonical input do not verify it: given a
// non-canonical path they neither panic nor return an error, so passing
// canonical input is the caller's responsibility.
package path

// Kind identifies which of the three path flavors an operation applies to.
type Kind int

const (
	// KindDirent identifies a local filesystem path.
	KindDirent Kind = iota
	// KindRelpath identifies a canonical relative path.
	KindRelpath
	// KindURL identifies a "scheme://authority/path" URL.
	KindURL
)

// String returns a human-readable name for the kind, primarily for use in
// panic and error messages.
func (k Kind) String() string {
	switch k {
	case KindDirent:
		return "dirent"
	case KindRelpath:
		return "relpath"
	case KindURL:
		return "url"
	default:
		return "unknown"
	}
}

// Style selects the platform-specific rules applied to Dirent operations:
// POSIX-style single-rooted paths, or DOS-style drive letters and UNC
// shares. It has no effect on Relpath or URL operations, which are
// platform-independent by construction.
type Style int

const (
	// StylePOSIX selects POSIX dirent rules: a single root "/", no drive
	// letters, no UNC shares.
	StylePOSIX Style = iota
	// StyleWindows selects DOS dirent rules: "X:", "X:/", and
	// "//server/share" roots.
	StyleWindows
)

// String returns a human-readable name for the style.
func (s Style) String() string {
	if s == StyleWindows {
		return "windows"
	}
	return "posix"
}
