// Package outboxrepo persists the transactional outbox. Rows are written in
// the same transaction as the business change that produced them; the relay
// job drains unpublished rows and hands them to the broker.
package outboxrepo

import (
	"time"

	"fasttechfoods/internal/core/domain/model/kernel"
	"fasttechfoods/internal/core/domain/model/outbox"

	"github.com/google/uuid"
)

// MessageDTO represents the database structure for persisting outbox messages.
type MessageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Payload     []byte
	CreatedAt   time.Time  `gorm:"autoCreateTime:false;index"`
	PublishedAt *time.Time `gorm:"index"`
	Attempts    int
}

// TableName specifies the database table name for outbox messages.
func (MessageDTO) TableName() string {
	return "outbox_messages"
}

func fromDomain(message *outbox.Message) MessageDTO {
	return MessageDTO{
		ID:          message.ID().Bytes(),
		Payload:     message.Payload(),
		CreatedAt:   message.CreatedAt(),
		PublishedAt: message.PublishedAt(),
		Attempts:    message.Attempts(),
	}
}

func toDomain(dto MessageDTO) (*outbox.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return outbox.RestoreMessage(id, dto.Payload, dto.CreatedAt, dto.PublishedAt, dto.Attempts)
}
