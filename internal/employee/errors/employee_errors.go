package employeeerrors

import (
	"net/http"

	"employee-api/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found.",
		http.StatusNotFound,
	)
	ErrEmailExists = apperror.New(
		apperror.CodeConflict,
		"Email already exists.",
		http.StatusConflict,
	)
	ErrEmailExistsForOther = apperror.New(
		apperror.CodeConflict,
		"Email already exists for another employee.",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID.",
		http.StatusBadRequest,
	)
	ErrFirstNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"First name is required.",
		http.StatusBadRequest,
	)
	ErrLastNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Last name is required.",
		http.StatusBadRequest,
	)
	ErrEmailRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Email is required.",
		http.StatusBadRequest,
	)
	ErrInvalidEmailFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid email format.",
		http.StatusBadRequest,
	)
	ErrInvalidPageNumber = apperror.New(
		apperror.CodeInvalidInput,
		"Page number must be greater than 0.",
		http.StatusBadRequest,
	)
	ErrInvalidPageSize = apperror.New(
		apperror.CodeInvalidInput,
		"Page size must be between 1 and 100.",
		http.StatusBadRequest,
	)
)
