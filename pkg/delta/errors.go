// Package delta implements the tree delta engine: given a source and
// target directory node, it drives a caller-supplied Editor through a
// strictly nested sequence of calls that, if replayed against the source,
// would produce the target. See §4 of the design for the per-component
// breakdown this package's files follow.
package delta

import (
	"github.com/pkg/errors"
)

// Code classifies the kind of failure a delta operation can report,
// mirroring §7's error taxonomy.
type Code int

const (
	// CodeMalformedURL indicates a path-algebra URL conversion failure.
	CodeMalformedURL Code = iota
	// CodeMalformedPath indicates a path-algebra operation was handed an
	// unparseable path.
	CodeMalformedPath
	// CodeNotCanonical indicates a precondition violation: an operation
	// that requires canonical input received non-canonical input.
	CodeNotCanonical
	// CodeUnrelated is never produced by Diff: the replace resolver's
	// ancestor search reports "no related ancestor" as a boolean and falls
	// through to the from-scratch branch (§4.E).
	CodeUnrelated
	// CodeIOUpstream wraps an error returned by the entity store or the
	// editor.
	CodeIOUpstream
	// CodeCancelled indicates the caller's cancellation predicate fired.
	CodeCancelled
	// CodeInvariant indicates an internal consistency violation: a bug
	// in the engine rather than a problem with its inputs.
	CodeInvariant
)

func (c Code) String() string {
	switch c {
	case CodeMalformedURL:
		return "malformed URL"
	case CodeMalformedPath:
		return "malformed path"
	case CodeNotCanonical:
		return "not canonical"
	case CodeUnrelated:
		return "unrelated"
	case CodeIOUpstream:
		return "upstream I/O error"
	case CodeCancelled:
		return "cancelled"
	case CodeInvariant:
		return "invariant violation"
	default:
		return "unknown"
	}
}

// Error is the error type returned by Diff and its helpers. The first
// error encountered aborts the current Diff call; it's returned to the
// caller unchanged except for Code/call-site attribution, per §7.
type Error struct {
	Code  Code
	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause == nil {
		return e.Code.String()
	}
	return e.Code.String() + ": " + e.cause.Error()
}

// Unwrap allows errors.Is/errors.As to see through to the wrapped cause.
func (e *Error) Unwrap() error {
	return e.cause
}

// wrap creates a new *Error with the given code, wrapping cause with the
// supplied call-site message via github.com/pkg/errors, matching the way
// the teacher attributes rsync/store failures to their call site.
func wrap(code Code, cause error, message string) error {
	if cause == nil {
		return &Error{Code: code, cause: errors.New(message)}
	}
	return &Error{Code: code, cause: errors.Wrap(cause, message)}
}

// newError creates a new *Error with no wrapped cause, for invariant
// violations and other internally-detected conditions.
func newError(code Code, message string) error {
	return &Error{Code: code, cause: errors.New(message)}
}

// Cancelled is returned by operations aborted by a caller-supplied cancel
// predicate.
var Cancelled = &Error{Code: CodeCancelled, cause: errors.New("operation cancelled")}
