// Package errx provides a registry-based error vocabulary. Each domain
// package registers its error codes once, tagged with a semantic type and the
// HTTP status they translate to at the edge.
package errx

import (
	"fmt"
)

// Type classifies an error by its semantic category.
type Type string

const (
	TypeValidation     Type = "VALIDATION"
	TypeAuthentication Type = "AUTHENTICATION"
	TypeAuthorization  Type = "AUTHORIZATION"
	TypeNotFound       Type = "NOT_FOUND"
	TypeConflict       Type = "CONFLICT"
	TypeBusiness       Type = "BUSINESS"
	TypeExternal       Type = "EXTERNAL"
	TypeInternal       Type = "INTERNAL"
)

// Code identifies a registered error within a registry.
type Code string

type definition struct {
	code       Code
	errType    Type
	httpStatus int
	message    string
}

// Registry holds the error definitions of one domain package under a common
// prefix.
type Registry struct {
	prefix      string
	definitions map[Code]definition
}

// NewRegistry creates an error registry with the given code prefix.
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix:      prefix,
		definitions: make(map[Code]definition),
	}
}

// Register records an error definition and returns its code. Meant to be
// called from package-level var blocks.
func (r *Registry) Register(code string, errType Type, httpStatus int, message string) Code {
	full := Code(r.prefix + "." + code)
	r.definitions[full] = definition{
		code:       full,
		errType:    errType,
		httpStatus: httpStatus,
		message:    message,
	}
	return full
}

// New creates an error instance from a registered code. Unregistered codes
// yield a generic internal error rather than panicking.
func (r *Registry) New(code Code) *Error {
	def, ok := r.definitions[code]
	if !ok {
		return &Error{
			Type:       TypeInternal,
			Code:       code,
			Message:    "Unknown error",
			HTTPStatus: 500,
		}
	}

	return &Error{
		Type:       def.errType,
		Code:       def.code,
		Message:    def.message,
		HTTPStatus: def.httpStatus,
	}
}

// Error is a structured error carrying its semantic type, stable code, and
// HTTP mapping. Details are free-form context added along the way up.
type Error struct {
	Type       Type           `json:"type"`
	Code       Code           `json:"code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is/As.
func (e *Error) Unwrap() error { return e.cause }

// WithDetail attaches a key/value pair and returns the error for chaining.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause attaches an underlying error and returns the error for chaining.
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// ToHTTPResponse returns the JSON body the transport layer serves for this
// error.
func (e *Error) ToHTTPResponse() map[string]any {
	body := map[string]any{
		"success": false,
		"type":    e.Type,
		"code":    e.Code,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		body["details"] = e.Details
	}
	return body
}

// Wrap converts an arbitrary error into an *Error of the given type. The
// HTTP status is derived from the type.
func Wrap(err error, message string, errType Type) *Error {
	return &Error{
		Type:       errType,
		Code:       Code(string(errType) + ".WRAPPED"),
		Message:    message,
		HTTPStatus: statusForType(errType),
		cause:      err,
	}
}

func statusForType(t Type) int {
	switch t {
	case TypeValidation, TypeBusiness:
		return 400
	case TypeAuthentication:
		return 401
	case TypeAuthorization:
		return 403
	case TypeNotFound:
		return 404
	case TypeConflict:
		return 409
	default:
		return 500
	}
}

// IsType reports whether err is an *Error of the given type.
func IsType(err error, t Type) bool {
	e, ok := err.(*Error)
	return ok && e.Type == t
}
