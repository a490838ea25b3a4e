package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the transport-level view of an error, consumed by handlers.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

// ToHTTP resolves any error into an HTTPError. Unknown errors are hidden
// behind a generic 500 so internals never leak to clients.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}
	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "Internal server error",
	}
}
