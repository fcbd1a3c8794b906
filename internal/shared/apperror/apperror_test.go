package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"employee-api/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps its status and message", func(t *testing.T) {
		err := apperror.New(apperror.CodeConflict, "Email already exists.", http.StatusConflict)

		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusConflict, httpErr.Status)
		assert.Equal(t, apperror.CodeConflict, httpErr.Code)
		assert.Equal(t, "Email already exists.", httpErr.Message)
	})

	t.Run("wrapped app error is unwrapped", func(t *testing.T) {
		inner := apperror.New(apperror.CodeNotFound, "Employee not found.", http.StatusNotFound)
		err := fmt.Errorf("handling request: %w", inner)

		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
	})

	t.Run("plain error becomes 500 with raw text", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("dial tcp: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, "An error occurred: dial tcp: connection refused", httpErr.Message)
	})
}

func TestFieldErrors(t *testing.T) {
	err := apperror.RequiredField("First Name")
	assert.Equal(t, "First Name is required.", err.Message)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)

	err = apperror.InvalidField("Email")
	assert.Equal(t, "Email is invalid.", err.Message)
}
