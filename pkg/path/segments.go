package path

import "strings"

// splitSegments splits s on '/' into non-empty, non-"." segments, in order.
// It's the shared building block for canonicalization and for the lockstep
// ancestor/join logic below: every flavor of canonical form is "no empty
// segments, no '.' segments, joined by a single '/'".
func splitSegments(s string) []string {
	raw := strings.Split(s, "/")
	segments := make([]string, 0, len(raw))
	for _, segment := range raw {
		if segment == "" || segment == "." {
			continue
		}
		segments = append(segments, segment)
	}
	return segments
}

// joinSegments re-assembles segments produced by splitSegments (or any
// other non-empty, non-"." segment slice) into a canonical relative path
// body, with no leading or trailing slash.
func joinSegments(segments []string) string {
	return strings.Join(segments, "/")
}

// isDriveLetter reports whether b is an ASCII drive letter, 'A'-'Z' or
// 'a'-'z'.
func isDriveLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// upperDriveLetter upper-cases an ASCII drive letter; other bytes pass
// through unchanged.
func upperDriveLetter(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
