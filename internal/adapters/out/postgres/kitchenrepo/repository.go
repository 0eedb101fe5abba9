package kitchenrepo

import (
	"context"
	"errors"

	"fasttechfoods/internal/core/domain/model/kernel"
	"fasttechfoods/internal/core/domain/model/kitchen"
	"fasttechfoods/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTicketRepository implements ports.KitchenTicketRepository using GORM.
type GormTicketRepository struct {
	db *gorm.DB
}

// NewGormTicketRepository creates a new GORM kitchen ticket repository.
func NewGormTicketRepository(db *gorm.DB) *GormTicketRepository {
	return &GormTicketRepository{db: db}
}

// Add saves a new kitchen ticket. The database assigns the ticket id. A
// duplicate event id means the event was already consumed and returns
// errs.AlreadyExistsError.
func (r *GormTicketRepository) Add(ctx context.Context, aggregate *kitchen.Ticket) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyExistsErrorWithCause("eventId", aggregate.EventID().String(), err)
		}
		return err
	}

	return nil
}

// GetByEventID retrieves the ticket created from the given event, with its items.
func (r *GormTicketRepository) GetByEventID(ctx context.Context, eventID kernel.UUID) (*kitchen.Ticket, error) {
	if err := eventID.Validate(); err != nil {
		return nil, err
	}

	var dto TicketDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "event_id = ?", eventID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("eventId", eventID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func kernelUUID(raw uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(raw[:])
}
