// Package restaurantrepo provides data transfer objects and mapping functions for restaurant persistence.
// This package implements the repository pattern for the restaurant domain aggregate, handling
// the conversion between domain entities and database representations.
package restaurantrepo

import (
	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for persisting restaurant aggregates.
// Maps restaurant domain entities to relational database tables with proper foreign key relationships.
type RestaurantDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string
	Address     string `gorm:"not null"`
	Phone       string
	Active      bool      `gorm:"not null;default:true"`
	Dishes      []DishDTO `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// DishDTO represents the database structure for persisting dish entities.
// Links to restaurant via foreign key; prices are stored in minor units.
type DishDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  string
	Price        int64 `gorm:"not null"`
	Category     string
	Available    bool `gorm:"not null;default:true"`
	Inventory    int  `gorm:"not null;default:0"`
}

// TableName specifies the database table name for dish entities.
func (DishDTO) TableName() string {
	return "dishes"
}

// fromDomain converts a restaurant domain aggregate to its database representation.
// Maps all aggregate entities including the dish catalog.
func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	restaurantID := aggregate.ID().Bytes()
	dishes := make([]DishDTO, 0, len(aggregate.Dishes()))

	for _, d := range aggregate.Dishes() {
		dishes = append(dishes, DishDTO{
			ID:           d.ID().Bytes(),
			RestaurantID: restaurantID,
			Title:        d.Title(),
			Description:  d.Description(),
			Price:        d.Price().Amount(),
			Category:     d.Category(),
			Available:    d.IsAvailable(),
			Inventory:    d.Inventory(),
		})
	}

	return RestaurantDTO{
		ID:          restaurantID,
		OwnerID:     aggregate.OwnerID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Address:     aggregate.Address(),
		Phone:       aggregate.Phone(),
		Active:      aggregate.IsActive(),
		Dishes:      dishes,
	}
}

// toDomain converts a database DTO to a restaurant domain aggregate.
// Reconstructs the complete aggregate including all dishes using RestoreRestaurant.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	dishes := make([]*restaurant.Dish, 0, len(dto.Dishes))
	for _, dishDto := range dto.Dishes {
		d, dishErr := dishToDomain(dishDto)
		if dishErr != nil {
			return nil, dishErr
		}
		dishes = append(dishes, d)
	}

	return restaurant.RestoreRestaurant(
		id, ownerID,
		dto.Name, dto.Description, dto.Address, dto.Phone,
		dto.Active, dishes,
	)
}

// dishToDomain converts a dish DTO to a domain entity using RestoreDish.
func dishToDomain(dto DishDTO) (*restaurant.Dish, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreDish(
		id, restaurantID,
		dto.Title, dto.Description, price, dto.Category,
		dto.Available, dto.Inventory,
	)
}
