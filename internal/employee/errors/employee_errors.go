package employeeerrors

import (
	"net/http"

	"go-sapmock/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidCount = apperror.New(
		apperror.CodeInvalidInput,
		"count must be a positive integer",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	// ErrNoRolesDefined guards regeneration: fabricating employees without
	// any master role to assign would violate the one-role-minimum rule.
	ErrNoRolesDefined = apperror.New(
		apperror.CodeInvalidState,
		"No master roles defined; cannot assign roles to generated employees",
		http.StatusInternalServerError,
	)
)
