package commands_test

import (
	"testing"

	"msosihub/internal/core/application/usecases/commands"
	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/core/domain/model/order"
	"msosihub/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func buildOwnedRestaurant(t *testing.T, id, ownerID kernel.UUID) *restaurant.Restaurant {
	t.Helper()
	rst, err := restaurant.RestoreRestaurant(
		id, ownerID, "Mama Ntilie", "", "Kariakoo, Dar es Salaam", "", true, nil,
	)
	require.NoError(t, err)
	return rst
}

func TestAdvancePreparationCommandHandler_Handle_OwnerAdvances(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	ord := buildOrder(t, kernel.NewUUID())
	rst := buildOwnedRestaurant(t, ord.RestaurantID(), ownerID)

	cmd, err := commands.NewAdvancePreparationCommand(ord.ID(), ownerID)
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	orderRepo := new(MockOrderRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, ord.RestaurantID()).Return(rst, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("NotifyStatusChanged", ctx, mock.AnythingOfType("ports.StatusChangedEvent")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvancePreparationCommandHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.StatusPreparing, ord.Status())
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestAdvancePreparationCommandHandler_Handle_ForeignOwnerForbidden(t *testing.T) {
	ctx := t.Context()
	ord := buildOrder(t, kernel.NewUUID())
	rst := buildOwnedRestaurant(t, ord.RestaurantID(), kernel.NewUUID())
	strangerID := kernel.NewUUID()

	cmd, err := commands.NewAdvancePreparationCommand(ord.ID(), strangerID)
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, ord.RestaurantID()).Return(rst, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvancePreparationCommandHandler(factory, new(MockNotifier))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrForbiddenRole)
	assert.Equal(t, order.StatusConfirmed, ord.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
