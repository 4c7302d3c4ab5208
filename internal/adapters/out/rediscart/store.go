// Package rediscart persists carts in Redis.
//
// Carts are short-lived pre-checkout state, so they live in Redis under a
// per-customer key with a TTL instead of the relational store. Every Save
// refreshes the TTL; an idle cart simply expires and the next Get returns a
// fresh empty one.
package rediscart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"time"

	"msosihub/internal/core/domain/model/cart"
	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "cart:"

// cartDTO is the JSON document stored per customer.
type cartDTO struct {
	CustomerID   string    `json:"customer_id"`
	RestaurantID string    `json:"restaurant_id,omitempty"`
	Lines        []lineDTO `json:"lines"`
}

type lineDTO struct {
	DishID   string `json:"dish_id"`
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

// Store implements ports.CartStore on a Redis client.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a cart store with the given idle TTL.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Get retrieves the customer's cart. A missing or expired key yields a fresh
// empty cart.
func (s *Store) Get(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	raw, err := s.client.Get(ctx, key(customerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return cart.NewCart(customerID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrStorageUnavailable, err)
	}

	var dto cartDTO
	if err = json.Unmarshal(raw, &dto); err != nil {
		return nil, fmt.Errorf("decode cart %s: %w", customerID, err)
	}

	return toDomain(dto)
}

// Save persists the cart and refreshes its expiry.
func (s *Store) Save(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	raw, err := json.Marshal(fromDomain(aggregate))
	if err != nil {
		return err
	}

	if err = s.client.Set(ctx, key(aggregate.CustomerID()), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %w", ports.ErrStorageUnavailable, err)
	}
	return nil
}

// Clear removes the customer's cart.
func (s *Store) Clear(ctx context.Context, customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	if err := s.client.Del(ctx, key(customerID)).Err(); err != nil {
		return fmt.Errorf("%w: %w", ports.ErrStorageUnavailable, err)
	}
	return nil
}

func key(customerID kernel.UUID) string {
	return keyPrefix + customerID.String()
}

func fromDomain(aggregate *cart.Cart) cartDTO {
	dto := cartDTO{
		CustomerID: aggregate.CustomerID().String(),
		Lines:      make([]lineDTO, 0, len(aggregate.Lines())),
	}
	if id := aggregate.RestaurantID(); id != nil {
		dto.RestaurantID = id.String()
	}
	for _, line := range aggregate.Lines() {
		dto.Lines = append(dto.Lines, lineDTO{
			DishID:   line.DishID.String(),
			Title:    line.Title,
			Quantity: line.Quantity,
			Price:    line.Price.Amount(),
		})
	}
	return dto
}

func toDomain(dto cartDTO) (*cart.Cart, error) {
	customerID, err := kernel.UUIDFromString(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	var restaurantID *kernel.UUID
	if dto.RestaurantID != "" {
		id, idErr := kernel.UUIDFromString(dto.RestaurantID)
		if idErr != nil {
			return nil, idErr
		}
		restaurantID = &id
	}

	lines := make([]cart.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		dishID, lineErr := kernel.UUIDFromString(l.DishID)
		if lineErr != nil {
			return nil, lineErr
		}
		price, lineErr := kernel.NewMoney(l.Price)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, cart.Line{
			DishID:   dishID,
			Title:    l.Title,
			Quantity: l.Quantity,
			Price:    price,
		})
	}

	return cart.RestoreCart(customerID, restaurantID, lines)
}
