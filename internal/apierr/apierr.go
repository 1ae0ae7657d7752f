// Package apierr defines the user-facing API error taxonomy.
//
// Every error carries a stable negative status code, a human-readable
// message and a more-info reference. The HTTP layer serializes these
// verbatim; anything that is not an *APIError is logged and replaced by
// the generic internal error so details never leak to clients.
package apierr

import (
	"fmt"
	"net/http"
	"strings"
)

// DocsBaseURL is the base for more-info links in error responses.
// Overridable from configuration at startup.
var DocsBaseURL = "http://quaggy.com/api/docs"

// APIError is a user-facing API failure.
type APIError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	MoreInfo   string `json:"more_info"`
	HTTPCode   int    `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Internal is the catch-all for unclassified failures. Details of the
// underlying error are withheld from the client.
func Internal() *APIError {
	return &APIError{
		StatusCode: -9,
		Message:    "Something went wrong. Send us a bug report so this doesn't happen again!",
		MoreInfo:   "mailto:bugs@dev.quaggy.com",
		HTTPCode:   http.StatusInternalServerError,
	}
}

// BadParameter reports a parameter the resource does not allow.
func BadParameter(resource, field string) *APIError {
	return &APIError{
		StatusCode: -1,
		Message:    fmt.Sprintf("%s does not have a field '%s'", resource, field),
		MoreInfo:   DocsBaseURL + "/" + resource,
		HTTPCode:   http.StatusBadRequest,
	}
}

// BadType reports a structural mismatch between the expected and
// supplied type of a field.
func BadType(resource, field, expectedType string) *APIError {
	return &APIError{
		StatusCode: -2,
		Message:    fmt.Sprintf("%s expects '%s' to be of type '%s'", resource, field, expectedType),
		MoreInfo:   DocsBaseURL + "/" + resource,
		HTTPCode:   http.StatusBadRequest,
	}
}

// NotImplemented marks an endpoint that is declared but not built.
func NotImplemented() *APIError {
	return &APIError{
		StatusCode: -3,
		Message:    "This endpoint is not implemented.",
		MoreInfo:   "mailto:support@dev.quaggy.com",
		HTTPCode:   http.StatusNotImplemented,
	}
}

// MissingParameters reports required fields that were absent.
func MissingParameters(resource string, fields ...string) *APIError {
	var msg string
	if len(fields) == 1 {
		msg = fmt.Sprintf("%s requires field: %s", resource, fields[0])
	} else {
		msg = fmt.Sprintf("%s requires fields: %s", resource, strings.Join(fields, ", "))
	}
	return &APIError{
		StatusCode: -4,
		Message:    msg,
		MoreInfo:   DocsBaseURL + "/" + resource,
		HTTPCode:   http.StatusBadRequest,
	}
}

// UserAlreadyExists reports a signup collision.
func UserAlreadyExists() *APIError {
	return &APIError{
		StatusCode: -5,
		Message:    "User with this username already exists",
		MoreInfo:   "Try a different username",
		HTTPCode:   http.StatusConflict,
	}
}

// InvalidCredentials reports a failed login.
func InvalidCredentials() *APIError {
	return &APIError{
		StatusCode: -5,
		Message:    "The Username/Password combination is incorrect.",
		MoreInfo:   "http://quaggy.com/api/reset",
		HTTPCode:   http.StatusUnauthorized,
	}
}

// NeedCredentials reports a missing or expired session on an endpoint
// that requires login.
func NeedCredentials() *APIError {
	return &APIError{
		StatusCode: -6,
		Message:    "You have not logged in, or a previous login has expired.",
		MoreInfo:   "http://quaggy.com/api/login",
		HTTPCode:   http.StatusUnauthorized,
	}
}

// HaveCredentials reports an active session on an endpoint that
// requires being logged out.
func HaveCredentials() *APIError {
	return &APIError{
		StatusCode: -6,
		Message:    "Already logged in. Please log out and try again.",
		MoreInfo:   "http://quaggy.com/api/logout",
		HTTPCode:   http.StatusForbidden,
	}
}

// ValidationError reports a domain rule violation.
func ValidationError(message string) *APIError {
	return &APIError{
		StatusCode: -7,
		Message:    message,
		MoreInfo:   DocsBaseURL,
		HTTPCode:   http.StatusBadRequest,
	}
}

// BadValue reports a value outside an enumerated allowed set.
func BadValue(field string, validValues []string, value string) *APIError {
	return &APIError{
		StatusCode: -8,
		Message:    fmt.Sprintf("%s cannot be %s. Choose from: %s", field, value, strings.Join(validValues, ", ")),
		MoreInfo:   DocsBaseURL + "/" + field,
		HTTPCode:   http.StatusBadRequest,
	}
}
