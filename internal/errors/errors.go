package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrRecordNotFound is returned when an id-addressed entity does not exist.
	ErrRecordNotFound = errors.New("record not found")
	// ErrDuplicateName is returned when a uniqueness constraint on a name is violated.
	ErrDuplicateName = errors.New("a record with the same name already exists")
	// ErrHasRelatedRecords is returned when deletion would orphan dependent rows.
	ErrHasRelatedRecords = errors.New("the record cannot be deleted because it has related records")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// ErrLockedOut is returned when too many failed login attempts locked the account.
	ErrLockedOut = errors.New("account temporarily locked, try again later")
	// ErrEmailNotConfirmed is returned when the account's email is not yet verified.
	ErrEmailNotConfirmed = errors.New("email address has not been confirmed")
	// ErrInvalidToken is returned when a confirmation or reset token is unknown or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Not-found maps to 404;
// everything else a repository or service surfaces collapses to 400 with the
// failure's own message.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrRecordNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrDuplicateName):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "DUPLICATE_NAME")
	case errors.Is(err, ErrHasRelatedRecords):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "HAS_RELATED_RECORDS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrLockedOut):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "LOCKED_OUT")
	case errors.Is(err, ErrEmailNotConfirmed):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMAIL_NOT_CONFIRMED")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_TOKEN")
	default:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "REQUEST_FAILED")
	}
}
