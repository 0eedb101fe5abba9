package http

import (
	"errors"
	"net/http"

	"fasttechfoods/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps the application error taxonomy onto the HTTP surface.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, errs.ErrVersionConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrItemUnavailable):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrRemoteCollaborator):
		code = http.StatusBadGateway
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

// writeBadRequest reports a malformed request with the given message.
func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
