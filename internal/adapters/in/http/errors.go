package http

import (
	"errors"
	"net/http"

	"msosihub/internal/core/application/usecases/commands"
	"msosihub/internal/core/domain/model/cart"
	"msosihub/internal/core/domain/model/order"
	"msosihub/internal/core/domain/model/user"
	"msosihub/internal/core/ports"
	"msosihub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error envelope returned by every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps application and domain errors onto HTTP status codes.
// Unknown errors become a generic 500 so internals never leak to clients.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, user.ErrInsufficientFunds):
		status = http.StatusPaymentRequired
		message = err.Error()
	case errors.Is(err, order.ErrForbiddenRole),
		errors.Is(err, commands.ErrForbiddenSelfAction):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, order.ErrOrderNotAvailable),
		errors.Is(err, order.ErrNotAssignedDriver),
		errors.Is(err, commands.ErrEmailAlreadyRegistered),
		errors.Is(err, commands.ErrHasActiveOrders),
		errors.Is(err, commands.ErrOwnerAlreadyHasRestaurant),
		errors.Is(err, commands.ErrDishNotAvailable),
		errors.Is(err, cart.ErrMixedRestaurant):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, cart.ErrEmptyCart),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, user.ErrInvalidAmount),
		errors.Is(err, commands.ErrDeliveryAddressIsRequired),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, ports.ErrStorageUnavailable):
		status = http.StatusServiceUnavailable
		message = "storage unavailable"
	}

	return ctx.JSON(status, Error{Code: status, Message: message})
}
