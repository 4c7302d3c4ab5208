package commands_test

import (
	"errors"
	"log/slog"
	"testing"

	"msosihub/internal/core/application/usecases/commands"
	"msosihub/internal/core/domain/model/cart"
	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/core/domain/model/restaurant"
	"msosihub/internal/core/domain/model/user"
	"msosihub/internal/core/domain/services"
	"msosihub/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func filledCart(t *testing.T, customerID, restaurantID kernel.UUID) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(customerID)
	require.NoError(t, err)
	require.NoError(t, c.Add(kernel.NewUUID(), restaurantID, "Chips Mayai", mustMoney(t, 8000), 2))
	require.NoError(t, c.Add(kernel.NewUUID(), restaurantID, "Mishkaki", mustMoney(t, 9000), 1))
	return c
}

func cartRestaurant(t *testing.T, restaurantID, ownerID kernel.UUID) *restaurant.Restaurant {
	t.Helper()
	rst, err := restaurant.NewRestaurant(restaurantID, ownerID, "Mama Lishe", "", "Kariakoo, Dar es Salaam", "")
	require.NoError(t, err)
	return rst
}

func TestCheckoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(customerID, "Kariakoo, Dar es Salaam", "+255700000001", "")
	require.NoError(t, err)

	restaurantID := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	c := filledCart(t, customerID, restaurantID)
	rst := cartRestaurant(t, restaurantID, ownerID)
	// 2x8000 + 9000 + 2000 delivery fee
	total := mustMoney(t, 27000)

	cartStore := new(MockCartStore)
	userRepo := new(MockUserRepository)
	orderRepo := new(MockOrderRepository)
	restaurantRepo := new(MockRestaurantRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)
	mock.InOrder(
		cartStore.On("Get", ctx, customerID).Return(c, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("DebitWallet", mock.Anything, customerID, total).Return(mustMoney(t, 23000), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, restaurantID).Return(rst, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		cartStore.On("Clear", ctx, customerID).Return(nil).Once(),
		notifier.On("NotifyOrderConfirmed", ctx, mock.MatchedBy(func(e ports.OrderConfirmedEvent) bool {
			return e.RestaurantOwnerID.IsEqual(ownerID) &&
				e.CustomerID.IsEqual(customerID) &&
				len(e.Items) == 2 &&
				e.TotalAmount.Amount() == 27000
		})).Once(),
		notifier.On("NotifyWalletChanged", ctx, mock.AnythingOfType("ports.WalletChangedEvent")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCheckoutHandler(t, factory, cartStore, notifier)
	orderID, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NoError(t, orderID.Validate())
	cartStore.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	restaurantRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func newCheckoutHandler(
	t *testing.T, factory commands.UoWFactory, cartStore *MockCartStore, notifier *MockNotifier,
) commands.CheckoutCommandHandler {
	t.Helper()
	return commands.NewCheckoutCommandHandler(
		factory, cartStore, services.NewReceiptCalculator(mustMoney(t, 2000)),
		notifier, slog.New(slog.DiscardHandler),
	)
}

func TestCheckoutCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(customerID, "Kariakoo, Dar es Salaam", "", "")
	require.NoError(t, err)

	empty, err := cart.NewCart(customerID)
	require.NoError(t, err)

	cartStore := new(MockCartStore)
	cartStore.On("Get", ctx, customerID).Return(empty, nil).Once()

	factory := new(MockUoWFactory)

	h := newCheckoutHandler(t, factory, cartStore, new(MockNotifier))
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, cart.ErrEmptyCart)
	cartStore.AssertExpectations(t)
	factory.AssertNotCalled(t, "Create")
}

func TestCheckoutCommandHandler_Handle_InsufficientFunds(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(customerID, "Kariakoo, Dar es Salaam", "", "")
	require.NoError(t, err)

	c := filledCart(t, customerID, kernel.NewUUID())

	cartStore := new(MockCartStore)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		cartStore.On("Get", ctx, customerID).Return(c, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("DebitWallet", mock.Anything, customerID, mustMoney(t, 27000)).
			Return(kernel.Money{}, user.ErrInsufficientFunds).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCheckoutHandler(t, factory, cartStore, new(MockNotifier))
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, user.ErrInsufficientFunds)
	// cart survives the failed checkout
	cartStore.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(customerID, "Kariakoo, Dar es Salaam", "", "")
	require.NoError(t, err)

	restaurantID := kernel.NewUUID()
	c := filledCart(t, customerID, restaurantID)
	rst := cartRestaurant(t, restaurantID, kernel.NewUUID())

	cartStore := new(MockCartStore)
	userRepo := new(MockUserRepository)
	orderRepo := new(MockOrderRepository)
	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockUoW)
	mock.InOrder(
		cartStore.On("Get", ctx, customerID).Return(c, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("DebitWallet", mock.Anything, customerID, mustMoney(t, 27000)).
			Return(mustMoney(t, 23000), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, restaurantID).Return(rst, nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCheckoutHandler(t, factory, cartStore, new(MockNotifier))
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	cartStore.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_CartClearFailureDoesNotFailCheckout(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(customerID, "Kariakoo, Dar es Salaam", "", "")
	require.NoError(t, err)

	restaurantID := kernel.NewUUID()
	c := filledCart(t, customerID, restaurantID)
	rst := cartRestaurant(t, restaurantID, kernel.NewUUID())

	cartStore := new(MockCartStore)
	userRepo := new(MockUserRepository)
	orderRepo := new(MockOrderRepository)
	restaurantRepo := new(MockRestaurantRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)
	mock.InOrder(
		cartStore.On("Get", ctx, customerID).Return(c, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("DebitWallet", mock.Anything, customerID, mustMoney(t, 27000)).
			Return(mustMoney(t, 23000), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, restaurantID).Return(rst, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		cartStore.On("Clear", ctx, customerID).Return(errors.New("redis unavailable")).Once(),
		notifier.On("NotifyOrderConfirmed", ctx, mock.AnythingOfType("ports.OrderConfirmedEvent")).Once(),
		notifier.On("NotifyWalletChanged", ctx, mock.AnythingOfType("ports.WalletChangedEvent")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCheckoutHandler(t, factory, cartStore, notifier)
	orderID, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NoError(t, orderID.Validate())
	cartStore.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	h := newCheckoutHandler(t, new(MockUoWFactory), new(MockCartStore), new(MockNotifier))
	_, err := h.Handle(ctx, commands.CheckoutCommand{})
	require.ErrorIs(t, err, commands.ErrCheckoutCommandIsNotConstructed)
}
