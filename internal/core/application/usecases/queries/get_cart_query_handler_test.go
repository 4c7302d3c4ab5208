package queries_test

import (
	"context"
	"testing"

	"msosihub/internal/core/application/usecases/queries"
	"msosihub/internal/core/domain/model/cart"
	"msosihub/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCartStore struct{ mock.Mock }

func (m *MockCartStore) Get(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}
func (m *MockCartStore) Save(ctx context.Context, aggregate *cart.Cart) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockCartStore) Clear(ctx context.Context, customerID kernel.UUID) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func TestGetCartQueryHandler_Handle_FilledCart(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	c, err := cart.NewCart(customerID)
	require.NoError(t, err)
	require.NoError(t, c.Add(kernel.NewUUID(), restaurantID, "Chips Mayai", money(t, 8000), 2))
	require.NoError(t, c.Add(kernel.NewUUID(), restaurantID, "Mishkaki", money(t, 9000), 1))

	store := new(MockCartStore)
	store.On("Get", ctx, customerID).Return(c, nil).Once()

	query, err := queries.NewGetCartQuery(customerID)
	require.NoError(t, err)

	handler := queries.NewGetCartQueryHandler(store)
	resp, err := handler.Handle(ctx, query)
	require.NoError(t, err)

	require.NotNil(t, resp.RestaurantID)
	assert.True(t, resp.RestaurantID.IsEqual(restaurantID))
	require.Len(t, resp.Lines, 2)
	assert.Equal(t, "Chips Mayai", resp.Lines[0].Title)
	assert.Equal(t, int64(16000), resp.Lines[0].Subtotal)
	assert.Equal(t, "Mishkaki", resp.Lines[1].Title)
	assert.Equal(t, int64(9000), resp.Lines[1].Subtotal)
	assert.Equal(t, 3, resp.ItemCount)
	assert.Equal(t, int64(25000), resp.Subtotal)
	store.AssertExpectations(t)
}

func TestGetCartQueryHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()

	empty, err := cart.NewCart(customerID)
	require.NoError(t, err)

	store := new(MockCartStore)
	store.On("Get", ctx, customerID).Return(empty, nil).Once()

	query, err := queries.NewGetCartQuery(customerID)
	require.NoError(t, err)

	handler := queries.NewGetCartQueryHandler(store)
	resp, err := handler.Handle(ctx, query)
	require.NoError(t, err)

	assert.Nil(t, resp.RestaurantID)
	assert.Empty(t, resp.Lines)
	assert.Zero(t, resp.Subtotal)
}

func TestGetCartQueryHandler_Handle_InvalidQuery(t *testing.T) {
	handler := queries.NewGetCartQueryHandler(new(MockCartStore))
	_, err := handler.Handle(t.Context(), queries.GetCartQuery{})
	require.ErrorIs(t, err, queries.ErrGetCartQueryIsNotConstructed)
}
