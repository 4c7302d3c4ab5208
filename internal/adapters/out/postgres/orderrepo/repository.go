package orderrepo

import (
	"context"
	"errors"
	"time"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/core/domain/model/order"
	"msosihub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves lifecycle changes of an existing order.
// Items are immutable after creation and are not touched.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"driver_id":      dto.DriverID,
			"status":         dto.Status,
			"payment_status": dto.PaymentStatus,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ClaimForDriver atomically assigns an order to a driver.
//
// The single conditional update is the whole race arbiter: it succeeds only
// while the row is still ready and unassigned, so of N drivers claiming
// concurrently exactly one sees RowsAffected == 1. Everyone else gets
// order.ErrOrderNotAvailable.
func (r *GormOrderRepository) ClaimForDriver(ctx context.Context, orderID, driverID kernel.UUID) error {
	if err := errors.Join(orderID.Validate(), driverID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ? AND driver_id IS NULL", orderID.Bytes(), order.StatusReady.String()).
		Updates(map[string]any{
			"driver_id": driverID.Bytes(),
			"status":    order.StatusOutForDelivery.String(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", orderID.Bytes()).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", orderID.String())
		}
		return order.ErrOrderNotAvailable
	}

	return nil
}

// CountActiveByUser returns how many non-terminal orders the user has, either
// as the ordering customer or as the assigned driver.
func (r *GormOrderRepository) CountActiveByUser(
	ctx context.Context, userID kernel.UUID,
) (int64, error) {
	if err := userID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("(customer_id = ? OR driver_id = ?) AND status NOT IN ?",
			userID.Bytes(), userID.Bytes(), terminalStatusStrings()).
		Count(&count).Error
	return count, err
}

// CountActiveByRestaurant returns how many non-terminal orders the restaurant has.
func (r *GormOrderRepository) CountActiveByRestaurant(
	ctx context.Context, restaurantID kernel.UUID,
) (int64, error) {
	if err := restaurantID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("restaurant_id = ? AND status NOT IN ?", restaurantID.Bytes(), terminalStatusStrings()).
		Count(&count).Error
	return count, err
}

// GetExpiredPending retrieves orders still awaiting payment confirmation
// created before the cutoff. Orders already in a terminal state are skipped
// so a cancelled order with a stale payment status cannot wedge the sweep.
func (r *GormOrderRepository) GetExpiredPending(
	ctx context.Context, cutoff time.Time,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").
		Where("payment_status = ? AND status NOT IN ? AND created_at < ?",
			order.PaymentPending.String(), terminalStatusStrings(), cutoff).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func terminalStatusStrings() []string {
	return []string{order.StatusDelivered.String(), order.StatusCancelled.String()}
}
