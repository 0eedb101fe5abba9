package orderrepo

import (
	"context"
	"errors"

	"fasttechfoods/internal/core/domain/model/kernel"
	"fasttechfoods/internal/core/domain/model/order"
	"fasttechfoods/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database. The version starts at 1 and the
// database assigns the order id. A duplicate event id means the creation
// event was already consumed and returns errs.AlreadyExistsError.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order, eventID kernel.UUID) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := eventID.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate, eventID)
	dto.ID = 0
	dto.Version = 1

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyExistsErrorWithCause("eventId", eventID.String(), err)
		}
		return err
	}

	return nil
}

// Update saves the mutable part of an existing order: status, timestamps, and
// cancellation reason. The write only lands when the stored version still
// matches the aggregate's; a stale version returns errs.VersionConflictError.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", aggregate.ID(), aggregate.Version()).
		Updates(map[string]any{
			"version":             aggregate.Version() + 1,
			"status":              aggregate.Status().String(),
			"updated_at":          aggregate.UpdatedAt(),
			"cancellation_reason": aggregate.CancellationReason(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", aggregate.ID()).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("orderId", aggregate.ID())
		}
		return errs.NewVersionConflictError("order", aggregate.ID())
	}

	return nil
}

// Get retrieves an order with its lines by id.
func (r *GormOrderRepository) Get(ctx context.Context, id uint64) (*order.Order, error) {
	if id == 0 {
		return nil, errs.NewValueIsRequiredError("orderId")
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
