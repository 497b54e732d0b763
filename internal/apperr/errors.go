// Package apperr defines the error kinds the services report and the
// sentinels the stores use to signal absent or conflicting records.
package apperr

import "errors"

type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidRequest
	KindDuplicateResource
	KindResourceNotFound
)

func (k Kind) String() string {
	switch k {
	case KindInvalidRequest:
		return "invalid_request"
	case KindDuplicateResource:
		return "duplicate_resource"
	case KindResourceNotFound:
		return "resource_not_found"
	default:
		return "unknown"
	}
}

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
)

// Error is a client-facing failure. Message is returned verbatim to callers.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func InvalidRequest(msg string) error {
	return &Error{Kind: KindInvalidRequest, Message: msg}
}

func DuplicateResource(msg string) error {
	return &Error{Kind: KindDuplicateResource, Message: msg}
}

func ResourceNotFound(msg string) error {
	return &Error{Kind: KindResourceNotFound, Message: msg}
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
