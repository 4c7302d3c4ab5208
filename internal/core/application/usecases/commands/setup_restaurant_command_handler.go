package commands

import (
	"context"
	"errors"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/core/domain/model/order"
	"msosihub/internal/core/domain/model/restaurant"
	"msosihub/internal/core/domain/model/user"
	"msosihub/internal/pkg/errs"
)

// ErrOwnerAlreadyHasRestaurant is returned when the owner already set up a venue.
var ErrOwnerAlreadyHasRestaurant = errors.New("owner already has a restaurant")

// SetupRestaurantCommandHandler creates a restaurant for a restaurant-role
// user. One venue per owner.
type SetupRestaurantCommandHandler struct {
	uowFactory UoWFactory
}

// NewSetupRestaurantCommandHandler creates a handler for restaurant setup.
func NewSetupRestaurantCommandHandler(uowFactory UoWFactory) SetupRestaurantCommandHandler {
	return SetupRestaurantCommandHandler{uowFactory: uowFactory}
}

// Handle processes the setup command and returns the new restaurant's ID.
func (h *SetupRestaurantCommandHandler) Handle(ctx context.Context, cmd SetupRestaurantCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owner, err := uow.UserRepository().Get(ctx, cmd.OwnerID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if owner.Role() != user.RoleRestaurant {
		return kernel.UUID{}, order.ErrForbiddenRole
	}

	_, err = uow.RestaurantRepository().GetByOwner(ctx, cmd.OwnerID())
	if err == nil {
		return kernel.UUID{}, ErrOwnerAlreadyHasRestaurant
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.UUID{}, err
	}

	rst, err := restaurant.NewRestaurant(
		kernel.NewUUID(), cmd.OwnerID(),
		cmd.Name(), cmd.Description(), cmd.Address(), cmd.Phone(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.RestaurantRepository().Add(ctx, rst); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return rst.ID(), nil
}
