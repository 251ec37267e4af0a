package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so it can cross service boundaries and be
// translated to a transport code at the edge. The set is closed: anything
// that does not fit one of the specific kinds is KindInternal.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidArgument
	KindUnauthenticated
	KindPermissionDenied
	KindNotFound
	KindAlreadyExists
	KindFailedPrecondition
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "INVALID_ARGUMENT"
	case KindUnauthenticated:
		return "UNAUTHENTICATED"
	case KindPermissionDenied:
		return "PERMISSION_DENIED"
	case KindNotFound:
		return "NOT_FOUND"
	case KindAlreadyExists:
		return "ALREADY_EXISTS"
	case KindFailedPrecondition:
		return "FAILED_PRECONDITION"
	default:
		return "INTERNAL"
	}
}

// ParseKind is the inverse of Kind.String. Unrecognized values collapse to
// KindInternal so a remote peer can never smuggle an unknown kind through.
func ParseKind(s string) Kind {
	switch s {
	case "INVALID_ARGUMENT":
		return KindInvalidArgument
	case "UNAUTHENTICATED":
		return KindUnauthenticated
	case "PERMISSION_DENIED":
		return KindPermissionDenied
	case "NOT_FOUND":
		return KindNotFound
	case "ALREADY_EXISTS":
		return KindAlreadyExists
	case "FAILED_PRECONDITION":
		return KindFailedPrecondition
	default:
		return KindInternal
	}
}

// Error is a failure with a classified kind. Message is safe to show to
// callers for every kind except KindInternal, which the edge replaces with a
// generic message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// E builds a classified error.
func E(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Ef builds a classified error with a formatted message.
func Ef(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the kind of err. Errors that carry no kind are internal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
