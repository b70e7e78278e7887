package mock

import (
	"encoding/json"
	"fmt"
)

// Error represents a structured error with snake_case JSON format
type Error struct {
	ErrorCode        string `json:"error_code"`
	ErrorMessage     string `json:"error_message"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// Error implements error interface
func (e *Error) Error() string {
	if e.ErrorDescription == "" {
		return e.ErrorMessage
	}
	return e.ErrorMessage + ": " + e.ErrorDescription
}

// Is matches errors by code, so errors.Is(err, ErrInvalidArgument) holds for
// any invalid argument error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.ErrorCode == e.ErrorCode
}

// MarshalJSON returns the JSON encoding with snake_case format
func (e *Error) MarshalJSON() ([]byte, error) {
	type Alias Error
	return json.Marshal((*Alias)(e))
}

// Common errors.
var (
	ErrInvalidArgument = &Error{ErrorCode: "invalid_argument", ErrorMessage: "invalid argument"}
	ErrClosed          = &Error{ErrorCode: "closed", ErrorMessage: "database closed"}
)

// NewInvalidArgumentError creates an invalid argument error
func NewInvalidArgumentError(argument, reason string) *Error {
	return &Error{
		ErrorCode:        "invalid_argument",
		ErrorMessage:     "invalid argument",
		ErrorDescription: fmt.Sprintf("argument '%s': %s", argument, reason),
	}
}
