// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses are stored as their string names so the rows stay readable and
// survive renumbering of the domain enums.
type OrderDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	RestaurantID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	DriverID            *uuid.UUID `gorm:"type:uuid;index"`
	TotalAmount         int64      `gorm:"not null"`
	Status              string     `gorm:"type:varchar(32);not null;index"`
	PaymentStatus       string     `gorm:"type:varchar(32);not null"`
	PaymentMethod       string     `gorm:"type:varchar(32);not null"`
	DeliveryAddress     string     `gorm:"not null"`
	Phone               string
	SpecialInstructions string
	CreatedAt           time.Time  `gorm:"not null"`
	Items               []ItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents the database structure for persisting order line items.
// Lines carry title and price snapshots and never change after creation.
type ItemDTO struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	DishID   uuid.UUID `gorm:"type:uuid;not null"`
	Title    string    `gorm:"type:varchar(255);not null"`
	Quantity int       `gorm:"not null"`
	Price    int64     `gorm:"not null"`
}

// TableName specifies the database table name for order item entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:  orderID,
			DishID:   item.DishID().Bytes(),
			Title:    item.Title(),
			Quantity: item.Quantity(),
			Price:    item.Price().Amount(),
		})
	}

	return OrderDTO{
		ID:                  orderID,
		CustomerID:          aggregate.CustomerID().Bytes(),
		RestaurantID:        aggregate.RestaurantID().Bytes(),
		DriverID:            driverID,
		TotalAmount:         aggregate.TotalAmount().Amount(),
		Status:              aggregate.Status().String(),
		PaymentStatus:       aggregate.PaymentStatus().String(),
		PaymentMethod:       aggregate.PaymentMethod().String(),
		DeliveryAddress:     aggregate.DeliveryAddress(),
		Phone:               aggregate.Phone(),
		SpecialInstructions: aggregate.SpecialInstructions(),
		CreatedAt:           aggregate.CreatedAt(),
		Items:               items,
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	totalAmount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, customerID, restaurantID, driverID,
		items, totalAmount,
		status, paymentStatus, paymentMethod,
		dto.DeliveryAddress, dto.Phone, dto.SpecialInstructions,
		dto.CreatedAt,
	)
}

// itemToDomain converts an item DTO to a domain value object using NewItem.
func itemToDomain(dto ItemDTO) (order.Item, error) {
	dishID, err := kernel.UUIDFromBytes(dto.DishID[:])
	if err != nil {
		return order.Item{}, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(dishID, dto.Title, dto.Quantity, price)
}
