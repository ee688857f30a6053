package leaderboard

import "fmt"

// Kind classifies the errors the service can return, matching the three
// kinds the HTTP layer maps to status codes: InvalidArgument -> 400,
// NotFound -> 404, Internal -> 500.
type Kind int

const (
	// KindInvalidArgument reports a caller-supplied parameter that violates
	// a precondition. No state is mutated.
	KindInvalidArgument Kind = iota
	// KindNotFound reports that a customer is not present in the Ranked
	// Index (absent from the Registry, or its score is <= 0).
	KindNotFound
	// KindInternal reports an unanticipated failure, such as decimal
	// overflow.
	KindInternal
)

// Error is the error type every exported operation returns on failure. The
// HTTP layer inspects Kind to choose a status code.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func invalidArgument(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func notFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func internal(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}
