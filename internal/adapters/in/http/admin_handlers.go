package http

import (
	"net/http"

	"msosihub/internal/core/application/usecases/commands"
	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/core/domain/model/order"
	"msosihub/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// AdminChangeUserRole handles PATCH /api/v1/admin/users/:userID/role.
func (s *Server) AdminChangeUserRole(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid X-User-ID header")
	}

	targetID, err := pathUUID(ctx, "userID")
	if err != nil {
		return badRequest(ctx, "invalid user ID")
	}

	var req struct {
		Role string `json:"role"`
	}
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	role, err := user.RoleFromString(req.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAdminChangeUserRoleCommand(actor, targetID, role)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AdminChangeUserRole.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdminCreditWallet handles POST /api/v1/admin/users/:userID/wallet/credit.
func (s *Server) AdminCreditWallet(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid X-User-ID header")
	}

	targetID, err := pathUUID(ctx, "userID")
	if err != nil {
		return badRequest(ctx, "invalid user ID")
	}

	var req struct {
		Amount int64 `json:"amount"`
	}
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	amount, err := kernel.NewMoney(req.Amount)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAdminCreditWalletCommand(actor, targetID, amount)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AdminCreditWallet.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdminResetWallet handles POST /api/v1/admin/users/:userID/wallet/reset.
func (s *Server) AdminResetWallet(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid X-User-ID header")
	}

	targetID, err := pathUUID(ctx, "userID")
	if err != nil {
		return badRequest(ctx, "invalid user ID")
	}

	cmd, err := commands.NewAdminResetWalletCommand(actor, targetID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AdminResetWallet.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdminDeleteUser handles DELETE /api/v1/admin/users/:userID.
func (s *Server) AdminDeleteUser(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid X-User-ID header")
	}

	targetID, err := pathUUID(ctx, "userID")
	if err != nil {
		return badRequest(ctx, "invalid user ID")
	}

	cmd, err := commands.NewAdminDeleteUserCommand(actor, targetID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AdminDeleteUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdminSetOrderStatus handles PATCH /api/v1/admin/orders/:orderID/status.
func (s *Server) AdminSetOrderStatus(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid X-User-ID header")
	}

	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order ID")
	}

	var req struct {
		Status      string `json:"status"`
		DriverID    string `json:"driver_id"`
		ClearDriver bool   `json:"clear_driver"`
	}
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	newStatus, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	var driverID *kernel.UUID
	if req.DriverID != "" {
		parsed, err := kernel.UUIDFromString(req.DriverID)
		if err != nil {
			return badRequest(ctx, "invalid driver_id")
		}
		driverID = &parsed
	}

	cmd, err := commands.NewAdminSetOrderStatusCommand(orderID, actor, newStatus, driverID, req.ClearDriver)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AdminSetOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdminSetRestaurantActive handles PATCH /api/v1/admin/restaurants/:restaurantID/active.
func (s *Server) AdminSetRestaurantActive(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid X-User-ID header")
	}

	restaurantID, err := pathUUID(ctx, "restaurantID")
	if err != nil {
		return badRequest(ctx, "invalid restaurant ID")
	}

	var req struct {
		Active bool `json:"active"`
	}
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAdminSetRestaurantActiveCommand(actor, restaurantID, req.Active)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AdminSetRestaurantActive.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdminUpdateRestaurantInfo handles PUT /api/v1/admin/restaurants/:restaurantID.
func (s *Server) AdminUpdateRestaurantInfo(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid X-User-ID header")
	}

	restaurantID, err := pathUUID(ctx, "restaurantID")
	if err != nil {
		return badRequest(ctx, "invalid restaurant ID")
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Address     string `json:"address"`
		Phone       string `json:"phone"`
	}
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAdminUpdateRestaurantInfoCommand(
		actor, restaurantID, req.Name, req.Description, req.Address, req.Phone,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AdminUpdateRestaurantInfo.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdminDeleteRestaurant handles DELETE /api/v1/admin/restaurants/:restaurantID.
func (s *Server) AdminDeleteRestaurant(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid X-User-ID header")
	}

	restaurantID, err := pathUUID(ctx, "restaurantID")
	if err != nil {
		return badRequest(ctx, "invalid restaurant ID")
	}

	cmd, err := commands.NewAdminDeleteRestaurantCommand(actor, restaurantID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AdminDeleteRestaurant.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
