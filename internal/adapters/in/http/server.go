// Package http exposes the application's commands and queries over a REST
// API. The caller's identity comes from the X-User-ID header; role checks
// happen in the command handlers, not here.
package http

import (
	"net/http"

	"msosihub/internal/core/application/usecases/commands"
	"msosihub/internal/core/application/usecases/queries"
	"msosihub/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Handlers bundles every command and query handler the server routes to.
type Handlers struct {
	RegisterUser       commands.RegisterUserCommandHandler
	RechargeWallet     commands.RechargeWalletCommandHandler
	AddToCart          commands.AddToCartCommandHandler
	UpdateCartQuantity commands.UpdateCartQuantityCommandHandler
	RemoveFromCart     commands.RemoveFromCartCommandHandler
	ClearCart          commands.ClearCartCommandHandler
	Checkout           commands.CheckoutCommandHandler
	AdvancePreparation commands.AdvancePreparationCommandHandler
	ClaimDelivery      commands.ClaimDeliveryCommandHandler
	CompleteDelivery   commands.CompleteDeliveryCommandHandler
	CancelOrder        commands.CancelOrderCommandHandler
	SetupRestaurant    commands.SetupRestaurantCommandHandler
	AddDish            commands.AddDishCommandHandler
	SetDishAvailable   commands.SetDishAvailabilityCommandHandler
	RemoveDish         commands.RemoveDishCommandHandler

	AdminChangeUserRole       commands.AdminChangeUserRoleCommandHandler
	AdminCreditWallet         commands.AdminCreditWalletCommandHandler
	AdminResetWallet          commands.AdminResetWalletCommandHandler
	AdminDeleteUser           commands.AdminDeleteUserCommandHandler
	AdminSetOrderStatus       commands.AdminSetOrderStatusCommandHandler
	AdminSetRestaurantActive  commands.AdminSetRestaurantActiveCommandHandler
	AdminUpdateRestaurantInfo commands.AdminUpdateRestaurantInfoCommandHandler
	AdminDeleteRestaurant     commands.AdminDeleteRestaurantCommandHandler

	GetCart                queries.GetCartQueryHandler
	GetWallet              queries.GetWalletQueryHandler
	GetCustomerOrders      queries.GetCustomerOrdersQueryHandler
	GetAvailableDeliveries queries.GetAvailableDeliveriesQueryHandler
}

// Server routes HTTP requests to the application layer.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server with the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/users", s.RegisterUser)
	api.GET("/wallet", s.GetWallet)
	api.POST("/wallet/recharge", s.RechargeWallet)

	api.GET("/cart", s.GetCart)
	api.POST("/cart/items", s.AddToCart)
	api.PATCH("/cart/items/:dishID", s.UpdateCartQuantity)
	api.DELETE("/cart/items/:dishID", s.RemoveFromCart)
	api.DELETE("/cart", s.ClearCart)

	api.POST("/orders", s.Checkout)
	api.GET("/orders", s.GetCustomerOrders)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)
	api.POST("/orders/:orderID/advance", s.AdvancePreparation)
	api.POST("/orders/:orderID/claim", s.ClaimDelivery)
	api.POST("/orders/:orderID/complete", s.CompleteDelivery)
	api.GET("/deliveries/available", s.GetAvailableDeliveries)

	api.POST("/restaurants", s.SetupRestaurant)
	api.POST("/restaurants/dishes", s.AddDish)
	api.PATCH("/restaurants/dishes/:dishID/availability", s.SetDishAvailability)
	api.DELETE("/restaurants/dishes/:dishID", s.RemoveDish)

	admin := api.Group("/admin")
	admin.PATCH("/users/:userID/role", s.AdminChangeUserRole)
	admin.POST("/users/:userID/wallet/credit", s.AdminCreditWallet)
	admin.POST("/users/:userID/wallet/reset", s.AdminResetWallet)
	admin.DELETE("/users/:userID", s.AdminDeleteUser)
	admin.PATCH("/orders/:orderID/status", s.AdminSetOrderStatus)
	admin.PATCH("/restaurants/:restaurantID/active", s.AdminSetRestaurantActive)
	admin.PUT("/restaurants/:restaurantID", s.AdminUpdateRestaurantInfo)
	admin.DELETE("/restaurants/:restaurantID", s.AdminDeleteRestaurant)
}

// actorID extracts the calling user's identity from the X-User-ID header.
func actorID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get("X-User-ID"))
}

// pathUUID parses a UUID path parameter.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
