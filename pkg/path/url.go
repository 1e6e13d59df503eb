package path

import (
	"strings"
)

// isUnreservedByte reports whether b is an RFC 3986 "unreserved" byte:
// ALPHA / DIGIT / "-" / "." / "_" / "~". Percent-escapes of unreserved
// bytes are decoded during canonicalization; everything else stays (or
// becomes) percent-encoded.
func isUnreservedByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') || b == '-' || b == '.' || b == '_' || b == '~'
}

// isPathLiteralByte reports whether b may appear literally (unescaped) in
// a canonical URL path, beyond the unreserved set: the segment separator
// and the sub-delims/"@"/":" characters commonly left unescaped in path
// segments.
func isPathLiteralByte(b byte) bool {
	if isUnreservedByte(b) {
		return true
	}
	switch b {
	case '/', ':', '@', '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	}
	return false
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func hexValue(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}

const upperHex = "0123456789ABCDEF"

// canonicalizePathBytes re-encodes a percent-encoded URL path component:
// percent-escapes of unreserved bytes are decoded, all other bytes that
// aren't already safe to appear literally are escaped, and any remaining
// hex digits in an escape are upper-cased.
func canonicalizePathBytes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' && i+2 < len(s) && isHexDigit(s[i+1]) && isHexDigit(s[i+2]) {
			decoded := hexValue(s[i+1])<<4 | hexValue(s[i+2])
			if isUnreservedByte(decoded) {
				b.WriteByte(decoded)
			} else {
				b.WriteByte('%')
				b.WriteByte(upperHex[decoded>>4])
				b.WriteByte(upperHex[decoded&0xF])
			}
			i += 2
			continue
		}
		if isPathLiteralByte(c) {
			b.WriteByte(c)
		} else {
			b.WriteByte('%')
			b.WriteByte(upperHex[c>>4])
			b.WriteByte(upperHex[c&0xF])
		}
	}
	return b.String()
}

// splitURL breaks a URL into its scheme, authority, and path components.
// If s doesn't contain a "scheme://" prefix, ok is false and the other
// return values are unspecified.
func splitURL(s string) (scheme, authority, urlPath string, ok bool) {
	schemeEnd := strings.Index(s, "://")
	if schemeEnd == -1 {
		return "", "", "", false
	}
	scheme = s[:schemeEnd]
	rest := s[schemeEnd+3:]
	slash := strings.IndexByte(rest, '/')
	if slash == -1 {
		return scheme, rest, "", true
	}
	return scheme, rest[:slash], rest[slash:], true
}

// canonicalizeURL implements Canonicalize for KindURL: it lowercases the
// scheme and authority, cleans "." and ".." segments from the path, and
// normalizes the path's percent-encoding.
func canonicalizeURL(s string) string {
	scheme, authority, urlPath, ok := splitURL(s)
	if !ok {
		// Not a recognizable "scheme://" string; canonicalization is total,
		// so fall back to relpath-style segment cleaning without a scheme.
		return joinSegments(cleanSegments(splitSegments(s), false))
	}
	scheme = strings.ToLower(scheme)
	authority = strings.ToLower(authority)
	body := joinSegments(cleanSegments(splitSegments(urlPath), true))
	result := scheme + "://" + authority
	if body != "" {
		result += "/" + canonicalizePathBytes(body)
	}
	return result
}

// URLToDirent converts a "file://" URL to a local dirent, applying
// percent-decoding and the platform-specific drive-letter and UNC rules
// described in §4.A. It returns ErrMalformedURL if the URL doesn't carry a
// "file://" prefix, names an unsupported authority, or names only a
// hostname with no path.
func URLToDirent(url string, style Style) (string, error) {
	scheme, authority, urlPath, ok := splitURL(url)
	if !ok || scheme != "file" {
		return "", ErrMalformedURL
	}
	if urlPath == "" {
		urlPath = "/"
	}
	hostname := percentDecode(authority)
	if hostname == "localhost" {
		hostname = ""
	}

	decodedPath := percentDecode(urlPath)

	if style != StyleWindows {
		if hostname != "" {
			return "", ErrMalformedURL
		}
		return decodedPath, nil
	}

	// DOS rules: strip a leading slash before a drive letter written as
	// "/C:/..." or "/C|/...", normalizing '|' to ':'.
	if hostname == "" {
		if len(decodedPath) >= 3 && decodedPath[0] == '/' && isDriveLetter(decodedPath[1]) &&
			(decodedPath[2] == ':' || decodedPath[2] == '|') {
			drive := string(decodedPath[1]) + ":"
			rest := decodedPath[3:]
			if rest == "" {
				rest = "/"
			}
			return drive + rest, nil
		}
		return decodedPath, nil
	}

	// A non-empty, non-localhost authority becomes a UNC prefix.
	if decodedPath == "/" || decodedPath == "" {
		return "", ErrMalformedURL
	}
	return "//" + hostname + decodedPath, nil
}

// DirentToURL converts a canonical, absolute dirent to a "file://" URL,
// the inverse of URLToDirent.
func DirentToURL(dirent string, style Style) (string, error) {
	if !IsAbsoluteDirent(dirent, style) && !(style == StyleWindows && strings.HasPrefix(dirent, "/")) {
		return "", ErrNotCanonical
	}
	if style == StyleWindows && strings.HasPrefix(dirent, "//") {
		// UNC dirent: "//server/share/..." becomes "file://server/share/...",
		// with "server" read back as the authority.
		encoded := canonicalizePathBytes(strings.TrimPrefix(dirent, "//"))
		return "file://" + encoded, nil
	}
	// Non-UNC: an empty authority, so the path must start with its own
	// separating slash ("file:///a/b", not "file://a/b", which would read
	// back with "a" mistaken for the authority).
	encoded := canonicalizePathBytes(strings.TrimPrefix(dirent, "/"))
	return "file:///" + encoded, nil
}

// percentDecode decodes percent-escapes in s without otherwise altering
// byte content; malformed escapes are left untouched.
func percentDecode(s string) string {
	if strings.IndexByte(s, '%') == -1 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHexDigit(s[i+1]) && isHexDigit(s[i+2]) {
			b.WriteByte(hexValue(s[i+1])<<4 | hexValue(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
