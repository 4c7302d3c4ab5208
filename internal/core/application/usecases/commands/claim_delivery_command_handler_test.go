package commands_test

import (
	"testing"

	"msosihub/internal/core/application/usecases/commands"
	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/core/domain/model/order"
	"msosihub/internal/core/domain/model/user"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func buildOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Chips Mayai", 2, mustMoney(t, 8000))
	require.NoError(t, err)
	ord, err := order.NewOrder(
		kernel.NewUUID(), customerID, kernel.NewUUID(),
		[]order.Item{item}, mustMoney(t, 2000),
		"Kariakoo, Dar es Salaam", "+255700000001", "",
	)
	require.NoError(t, err)
	return ord
}

func buildDriver(t *testing.T, id kernel.UUID) *user.User {
	t.Helper()
	u, err := user.NewUser(id, "Neema", "neema@example.com", "+255700000002", user.RoleDriver)
	require.NoError(t, err)
	return u
}

func TestClaimDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	ord := buildOrder(t, customerID)
	require.NoError(t, ord.ForceStatus(order.StatusOutForDelivery))
	require.NoError(t, ord.ReassignDriver(&driverID))

	cmd, err := commands.NewClaimDeliveryCommand(ord.ID(), driverID)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	orderRepo := new(MockOrderRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, driverID).Return(buildDriver(t, driverID), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("ClaimForDriver", mock.Anything, ord.ID(), driverID).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("NotifyStatusChanged", ctx, mock.AnythingOfType("ports.StatusChangedEvent")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClaimDeliveryCommandHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))
	userRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestClaimDeliveryCommandHandler_Handle_NotADriver(t *testing.T) {
	ctx := t.Context()
	actorID := kernel.NewUUID()
	customer, err := user.NewUser(actorID, "Juma", "juma@example.com", "", user.RoleCustomer)
	require.NoError(t, err)

	cmd, err := commands.NewClaimDeliveryCommand(kernel.NewUUID(), actorID)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, actorID).Return(customer, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClaimDeliveryCommandHandler(factory, new(MockNotifier))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrForbiddenRole)
	orderRepo.AssertNotCalled(t, "ClaimForDriver", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestClaimDeliveryCommandHandler_Handle_LostRace(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewClaimDeliveryCommand(orderID, driverID)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, driverID).Return(buildDriver(t, driverID), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("ClaimForDriver", mock.Anything, orderID, driverID).
			Return(order.ErrOrderNotAvailable).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClaimDeliveryCommandHandler(factory, new(MockNotifier))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrOrderNotAvailable)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}
