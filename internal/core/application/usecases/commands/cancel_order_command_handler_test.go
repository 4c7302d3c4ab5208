package commands_test

import (
	"testing"

	"msosihub/internal/core/application/usecases/commands"
	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/core/domain/model/order"
	"msosihub/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func buildCustomer(t *testing.T, id kernel.UUID) *user.User {
	t.Helper()
	u, err := user.NewUser(id, "Juma", "juma@example.com", "", user.RoleCustomer)
	require.NoError(t, err)
	return u
}

func TestCancelOrderCommandHandler_Handle_CustomerCancelsOwnOrder(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	ord := buildOrder(t, customerID)
	cmd, err := commands.NewCancelOrderCommand(ord.ID(), customerID)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	orderRepo := new(MockOrderRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, customerID).Return(buildCustomer(t, customerID), nil).Once(),
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

	h := commands.NewCancelOrderCommandHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.StatusCancelled, ord.Status())
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_AdminCancelsAnyOrder(t *testing.T) {
	ctx := t.Context()
	adminID := kernel.NewUUID()
	ord := buildOrder(t, kernel.NewUUID())
	cmd, err := commands.NewCancelOrderCommand(ord.ID(), adminID)
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

	h := commands.NewCancelOrderCommandHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.StatusCancelled, ord.Status())
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_ForeignCustomerForbidden(t *testing.T) {
	ctx := t.Context()
	strangerID := kernel.NewUUID()
	ord := buildOrder(t, kernel.NewUUID())
	cmd, err := commands.NewCancelOrderCommand(ord.ID(), strangerID)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, strangerID).Return(buildCustomer(t, strangerID), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, new(MockNotifier))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrForbiddenRole)
	assert.Equal(t, order.StatusConfirmed, ord.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_DeliveredOrderStaysDelivered(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	ord := buildOrder(t, customerID)
	require.NoError(t, ord.ForceStatus(order.StatusDelivered))
	cmd, err := commands.NewCancelOrderCommand(ord.ID(), customerID)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, customerID).Return(buildCustomer(t, customerID), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, new(MockNotifier))
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, order.StatusDelivered, ord.Status())
	uow.AssertExpectations(t)
}
