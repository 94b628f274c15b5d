package deref

import (
	"errors"
	"fmt"
)

// ErrorKind classifies resolution failures. These are the only externally
// observable failure categories.
type ErrorKind int

const (
	// ErrorMalformedPointer means a $ref is not a canonical in-document
	// pointer of the form #/components/<section>/<name> — including
	// external file and URL references, which are never followed.
	ErrorMalformedPointer ErrorKind = iota

	// ErrorUnknownComponent means a pointer names a component that does
	// not exist in the document.
	ErrorUnknownComponent

	// ErrorKindMismatch means a pointer's section does not match the type
	// expected at the reference site (e.g. a schema reference found where
	// a parameter was expected).
	ErrorKindMismatch

	// ErrorDuplicateComponent means the same canonical pointer was
	// registered twice while building the component index. Fatal.
	ErrorDuplicateComponent

	// ErrorTooDeep means traversal exceeded the recursion depth guard.
	// Fatal.
	ErrorTooDeep
)

// String returns the stable name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrorMalformedPointer:
		return "MalformedPointer"
	case ErrorUnknownComponent:
		return "UnknownComponent"
	case ErrorKindMismatch:
		return "KindMismatch"
	case ErrorDuplicateComponent:
		return "DuplicateComponent"
	case ErrorTooDeep:
		return "TooDeep"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Fatal reports whether this kind aborts the whole Resolve call rather than
// being recorded against a single slot.
func (k ErrorKind) Fatal() bool {
	return k == ErrorDuplicateComponent || k == ErrorTooDeep
}

// Sentinel errors for use with errors.Is().
var (
	// ErrMalformedPointer matches ResolveErrors with ErrorMalformedPointer.
	ErrMalformedPointer = errors.New("malformed pointer")

	// ErrUnknownComponent matches ResolveErrors with ErrorUnknownComponent.
	ErrUnknownComponent = errors.New("unknown component")

	// ErrKindMismatch matches ResolveErrors with ErrorKindMismatch.
	ErrKindMismatch = errors.New("component kind mismatch")

	// ErrDuplicateComponent matches ResolveErrors with ErrorDuplicateComponent.
	ErrDuplicateComponent = errors.New("duplicate component")

	// ErrTooDeep matches ResolveErrors with ErrorTooDeep.
	ErrTooDeep = errors.New("resolution too deep")
)

// ResolveError describes a single resolution failure with enough context
// to be actionable without re-walking the tree.
type ResolveError struct {
	// Kind is the failure category.
	Kind ErrorKind
	// Pointer is the $ref string involved, if any.
	Pointer string
	// Location is the slot's path in the document,
	// e.g. $.paths['/pets'].get.responses['200'].
	Location string
	// Expected is the kind the slot required (KindMismatch only).
	Expected ComponentKind
	// Actual is the kind the pointer's section names (KindMismatch only).
	Actual ComponentKind
	// Suggestion is a likely intended component name (UnknownComponent only).
	Suggestion string
	// Message provides additional context about the failure.
	Message string
}

// Error returns a human-readable error message.
func (e *ResolveError) Error() string {
	msg := e.Kind.String()
	if e.Location != "" {
		msg += " at " + e.Location
	}
	if e.Pointer != "" {
		msg += ": " + e.Pointer
	}
	if e.Kind == ErrorKindMismatch {
		msg += fmt.Sprintf(": expected %s, found %s", e.Expected, e.Actual)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

// Is reports whether target matches this error's kind sentinel.
func (e *ResolveError) Is(target error) bool {
	switch target {
	case ErrMalformedPointer:
		return e.Kind == ErrorMalformedPointer
	case ErrUnknownComponent:
		return e.Kind == ErrorUnknownComponent
	case ErrKindMismatch:
		return e.Kind == ErrorKindMismatch
	case ErrDuplicateComponent:
		return e.Kind == ErrorDuplicateComponent
	case ErrTooDeep:
		return e.Kind == ErrorTooDeep
	default:
		return false
	}
}
