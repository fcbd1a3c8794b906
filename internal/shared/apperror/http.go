package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is the transport-facing view of a failure.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

// ToHTTP converts any error into an HTTPError. AppErrors keep their own
// status and message; everything else becomes a 500 that carries the raw
// error text, so storage failures surface verbatim to the client.
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
		Message: fmt.Sprintf("An error occurred: %s", err.Error()),
	}
}
