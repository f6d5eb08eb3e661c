package apperror

import (
	"errors"
	"net/http"
)

// Kind 错误类别，决定 HTTP 状态码
type Kind int

const (
	KindUnknown Kind = iota
	KindInvariant
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindNotImplemented
)

func (k Kind) String() string {
	switch k {
	case KindInvariant:
		return "InvariantError"
	case KindAuthentication:
		return "AuthenticationError"
	case KindAuthorization:
		return "AuthorizationError"
	case KindNotFound:
		return "NotFoundError"
	case KindNotImplemented:
		return "NotImplementedError"
	default:
		return "UnknownError"
	}
}

// HTTPStatus maps a kind to its response status. Not-implemented is a
// programming defect and surfaces as a plain 500.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindInvariant:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is the single error type raised by entities, use cases and
// repositories. Code is zero for errors that carry a free-form message
// (not-found lookups, credential failures).
type Error struct {
	Kind     Kind
	Code     Code
	Field    string
	Expected string
	Message  string
	Err      error
}

func (e *Error) Error() string {
	if e.Code != CodeNone {
		return e.Code.String()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// UserMessage 返回面向用户的本地化文案
func (e *Error) UserMessage() string {
	if e.Code != CodeNone {
		return e.Code.Message()
	}
	return e.Message
}

// Missing reports a required field that is absent or falsy.
func Missing(code Code, field string) *Error {
	return &Error{Kind: code.Kind(), Code: code, Field: field}
}

// InvalidType reports a field present with the wrong type.
func InvalidType(code Code, field, expected string) *Error {
	return &Error{Kind: code.Kind(), Code: code, Field: field, Expected: expected}
}

func FromCode(code Code) *Error {
	return &Error{Kind: code.Kind(), Code: code}
}

func Invariant(message string) *Error {
	return &Error{Kind: KindInvariant, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Authentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

// NotImplemented is returned by repository contracts that were not overridden.
func NotImplemented(scope string) *Error {
	return &Error{Kind: KindNotImplemented, Message: scope + ".METHOD_NOT_IMPLEMENTED"}
}

// As extracts an *Error from the chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return KindUnknown
}

func HasCode(err error, code Code) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == code
}

// Translate rewrites an error into the status and message sent to clients.
// ok is false when the error is not a domain error and must be treated as a
// server failure.
func Translate(err error) (status int, message string, ok bool) {
	appErr, found := As(err)
	if !found || appErr.Kind == KindNotImplemented || appErr.Kind == KindUnknown {
		return http.StatusInternalServerError, "terjadi kegagalan pada server kami", false
	}
	return appErr.Kind.HTTPStatus(), appErr.UserMessage(), true
}
