package http

import (
	"net/http"

	"msosihub/internal/core/application/usecases/commands"
	"msosihub/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Checkout handles POST /api/v1/orders. It converts the caller's cart into a
// wallet-paid order.
func (s *Server) Checkout(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid X-User-ID header")
	}

	var req struct {
		DeliveryAddress     string `json:"delivery_address"`
		Phone               string `json:"phone"`
		SpecialInstructions string `json:"special_instructions"`
	}
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCheckoutCommand(actor, req.DeliveryAddress, req.Phone, req.SpecialInstructions)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := s.handlers.Checkout.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"order_id": orderID.String()})
}

// GetCustomerOrders handles GET /api/v1/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid X-User-ID header")
	}

	query, err := queries.NewGetCustomerOrdersQuery(actor)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.handlers.GetCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	resp := make([]map[string]any, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, map[string]any{
			"order_id":       o.OrderID.String(),
			"restaurant_id":  o.RestaurantID.String(),
			"status":         o.Status,
			"payment_status": o.PaymentStatus,
			"total_amount":   o.TotalAmount,
			"created_at":     o.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, resp)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid X-User-ID header")
	}

	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order ID")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvancePreparation handles POST /api/v1/orders/:orderID/advance. Restaurant
// owners move their orders confirmed -> preparing -> ready.
func (s *Server) AdvancePreparation(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid X-User-ID header")
	}

	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order ID")
	}

	cmd, err := commands.NewAdvancePreparationCommand(orderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AdvancePreparation.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClaimDelivery handles POST /api/v1/orders/:orderID/claim.
func (s *Server) ClaimDelivery(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid X-User-ID header")
	}

	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order ID")
	}

	cmd, err := commands.NewClaimDeliveryCommand(orderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.ClaimDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/orders/:orderID/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid X-User-ID header")
	}

	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order ID")
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CompleteDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAvailableDeliveries handles GET /api/v1/deliveries/available.
func (s *Server) GetAvailableDeliveries(ctx echo.Context) error {
	query := queries.NewGetAvailableDeliveriesQuery()

	deliveries, err := s.handlers.GetAvailableDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	resp := make([]map[string]any, 0, len(deliveries))
	for _, d := range deliveries {
		resp = append(resp, map[string]any{
			"order_id":         d.OrderID.String(),
			"restaurant_id":    d.RestaurantID.String(),
			"delivery_address": d.DeliveryAddress,
			"total_amount":     d.TotalAmount,
		})
	}

	return ctx.JSON(http.StatusOK, resp)
}
