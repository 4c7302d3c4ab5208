package http

import (
	"net/http"

	"msosihub/internal/core/application/usecases/commands"
	"msosihub/internal/core/application/usecases/queries"
	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// RegisterUser handles POST /api/v1/users.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
		Role  string `json:"role"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	role, err := user.RoleFromString(req.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRegisterUserCommand(req.Name, req.Email, req.Phone, role)
	if err != nil {
		return respondError(ctx, err)
	}

	userID, err := s.handlers.RegisterUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": userID.String()})
}

// GetWallet handles GET /api/v1/wallet.
func (s *Server) GetWallet(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid X-User-ID header")
	}

	query, err := queries.NewGetWalletQuery(actor)
	if err != nil {
		return respondError(ctx, err)
	}

	wallet, err := s.handlers.GetWallet.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"user_id": wallet.UserID.String(),
		"balance": wallet.Balance,
	})
}

// RechargeWallet handles POST /api/v1/wallet/recharge.
func (s *Server) RechargeWallet(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid X-User-ID header")
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

	cmd, err := commands.NewRechargeWalletCommand(actor, amount)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RechargeWallet.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCart handles GET /api/v1/cart.
func (s *Server) GetCart(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid X-User-ID header")
	}

	query, err := queries.NewGetCartQuery(actor)
	if err != nil {
		return respondError(ctx, err)
	}

	c, err := s.handlers.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	lines := make([]map[string]any, 0, len(c.Lines))
	for _, line := range c.Lines {
		lines = append(lines, map[string]any{
			"dish_id":  line.DishID.String(),
			"title":    line.Title,
			"quantity": line.Quantity,
			"price":    line.Price,
			"subtotal": line.Subtotal,
		})
	}

	resp := map[string]any{
		"customer_id": c.CustomerID.String(),
		"lines":       lines,
		"item_count":  c.ItemCount,
		"subtotal":    c.Subtotal,
	}
	if c.RestaurantID != nil {
		resp["restaurant_id"] = c.RestaurantID.String()
	}

	return ctx.JSON(http.StatusOK, resp)
}

// AddToCart handles POST /api/v1/cart/items.
func (s *Server) AddToCart(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid X-User-ID header")
	}

	var req struct {
		DishID   string `json:"dish_id"`
		Quantity int    `json:"quantity"`
	}
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	dishID, err := kernel.UUIDFromString(req.DishID)
	if err != nil {
		return badRequest(ctx, "invalid dish_id")
	}

	cmd, err := commands.NewAddToCartCommand(actor, dishID, req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	totals, err := s.handlers.AddToCart.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"item_count": totals.ItemCount,
		"subtotal":   totals.Subtotal.Amount(),
	})
}

// UpdateCartQuantity handles PATCH /api/v1/cart/items/:dishID.
func (s *Server) UpdateCartQuantity(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid X-User-ID header")
	}

	dishID, err := pathUUID(ctx, "dishID")
	if err != nil {
		return badRequest(ctx, "invalid dish ID")
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateCartQuantityCommand(actor, dishID, req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateCartQuantity.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveFromCart handles DELETE /api/v1/cart/items/:dishID.
func (s *Server) RemoveFromCart(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid X-User-ID header")
	}

	dishID, err := pathUUID(ctx, "dishID")
	if err != nil {
		return badRequest(ctx, "invalid dish ID")
	}

	cmd, err := commands.NewRemoveFromCartCommand(actor, dishID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RemoveFromCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearCart handles DELETE /api/v1/cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid X-User-ID header")
	}

	cmd, err := commands.NewClearCartCommand(actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.ClearCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
