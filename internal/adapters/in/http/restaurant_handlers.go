package http

import (
	"net/http"

	"msosihub/internal/core/application/usecases/commands"
	"msosihub/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// SetupRestaurant handles POST /api/v1/restaurants.
func (s *Server) SetupRestaurant(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid X-User-ID header")
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

	cmd, err := commands.NewSetupRestaurantCommand(actor, req.Name, req.Description, req.Address, req.Phone)
	if err != nil {
		return respondError(ctx, err)
	}

	restaurantID, err := s.handlers.SetupRestaurant.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"restaurant_id": restaurantID.String()})
}

// AddDish handles POST /api/v1/restaurants/dishes.
func (s *Server) AddDish(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid X-User-ID header")
	}

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Price       int64  `json:"price"`
		Category    string `json:"category"`
		Inventory   int    `json:"inventory"`
	}
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	price, err := kernel.NewMoney(req.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAddDishCommand(actor, req.Title, req.Description, price, req.Category, req.Inventory)
	if err != nil {
		return respondError(ctx, err)
	}

	dishID, err := s.handlers.AddDish.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"dish_id": dishID.String()})
}

// RemoveDish handles DELETE /api/v1/restaurants/dishes/:dishID.
func (s *Server) RemoveDish(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid X-User-ID header")
	}

	dishID, err := pathUUID(ctx, "dishID")
	if err != nil {
		return badRequest(ctx, "invalid dish ID")
	}

	cmd, err := commands.NewRemoveDishCommand(actor, dishID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RemoveDish.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetDishAvailability handles PATCH /api/v1/restaurants/dishes/:dishID/availability.
func (s *Server) SetDishAvailability(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid X-User-ID header")
	}

	dishID, err := pathUUID(ctx, "dishID")
	if err != nil {
		return badRequest(ctx, "invalid dish ID")
	}

	var req struct {
		Available bool `json:"available"`
	}
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetDishAvailabilityCommand(actor, dishID, req.Available)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.SetDishAvailable.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
