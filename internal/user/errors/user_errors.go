package usererrors

import (
	"net/http"

	"go-sapmock/internal/shared/apperror"
)

var ErrUserNotFound = apperror.New(
	apperror.CodeNotFound,
	"User not found",
	http.StatusNotFound,
)
