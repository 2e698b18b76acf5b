package http

import (
	"errors"
	"net/http"

	"logistima/internal/core/domain/model/delivery"
	"logistima/internal/core/domain/services"
	"logistima/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeDomainError maps application errors to HTTP status codes:
// missing aggregates are 404, lifecycle conflicts are 409, an empty driver
// pool is 422, anything else is 500 with the detail withheld.
func writeDomainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, delivery.ErrAlreadyDelivered), errors.Is(err, errs.ErrInvalidState):
		return writeError(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrNoDriverAvailable):
		return writeError(ctx, http.StatusUnprocessableEntity, err.Error())
	default:
		return writeError(ctx, http.StatusInternalServerError, "internal error")
	}
}

func writeError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
