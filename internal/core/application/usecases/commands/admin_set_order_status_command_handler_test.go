package commands_test

import (
	"log/slog"
	"testing"

	"msosihub/internal/core/application/usecases/commands"
	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminSetOrderStatusCommandHandler_Handle_ForcesStatusAndClearsDriver(t *testing.T) {
	ctx := t.Context()
	adminID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	ord := buildOrder(t, kernel.NewUUID())
	require.NoError(t, ord.ForceStatus(order.StatusOutForDelivery))
	require.NoError(t, ord.ReassignDriver(&driverID))

	cmd, err := commands.NewAdminSetOrderStatusCommand(ord.ID(), adminID, order.StatusReady, nil, true)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	orderRepo := new(MockOrderRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, adminID).Return(buildAdmin(t, adminID), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("NotifyStatusChanged", ctx, mock.AnythingOfType("ports.StatusChangedEvent")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdminSetOrderStatusCommandHandler(factory, notifier, slog.New(slog.DiscardHandler))
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.StatusReady, ord.Status())
	assert.Nil(t, ord.Driver())
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestAdminSetOrderStatusCommandHandler_Handle_NonAdminForbidden(t *testing.T) {
	ctx := t.Context()
	actorID := kernel.NewUUID()

	cmd, err := commands.NewAdminSetOrderStatusCommand(
		kernel.NewUUID(), actorID, order.StatusCancelled, nil, false,
	)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, actorID).Return(buildCustomer(t, actorID), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdminSetOrderStatusCommandHandler(factory, new(MockNotifier), slog.New(slog.DiscardHandler))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrForbiddenRole)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestNewAdminSetOrderStatusCommand_DriverAndClearAreExclusive(t *testing.T) {
	driverID := kernel.NewUUID()

	_, err := commands.NewAdminSetOrderStatusCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.StatusReady, &driverID, true,
	)

	require.Error(t, err)
}
