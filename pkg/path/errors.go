package path

import (
	"github.com/pkg/errors"
)

// ErrMalformedURL indicates that a URL could not be converted to a dirent
// because it was missing the "file://" prefix, carried an authority that
// isn't supported on the current platform, or named a hostname with no
// path component.
var ErrMalformedURL = errors.New("malformed URL")

// ErrNotCanonical is returned by DirentToURL when the dirent it is handed
// is not absolute. DirentToURL does not otherwise check that its input is
// canonical; it reports this one condition as an error rather than
// panicking because the input may have come from an external, untrusted
// source (e.g. a path typed by a user).
var ErrNotCanonical = errors.New("path is not canonical")
