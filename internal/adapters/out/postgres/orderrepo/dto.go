// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"fasttechfoods/internal/core/domain/model/kernel"
	"fasttechfoods/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The event id of the creation event is stored with a uniqueness constraint,
// so a redelivered creation event cannot produce a second row. The version
// column backs the optimistic-concurrency check on updates.
type OrderDTO struct {
	ID                 uint64    `gorm:"primaryKey;autoIncrement"`
	Version            int       `gorm:"not null"`
	EventID            uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CustomerID         uint64    `gorm:"index"`
	CustomerName       string
	TotalAmount        float64
	DeliveryChannel    string
	Status             string `gorm:"index"`
	CreatedAt          time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt          *time.Time `gorm:"autoUpdateTime:false"`
	CancellationReason string
	Lines              []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one persisted order line with its price snapshot.
type OrderLineDTO struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	OrderID      uint64 `gorm:"index"`
	MenuItemID   uint64
	MenuItemName string
	Quantity     int
	UnitPrice    float64
	TotalPrice   float64
}

// TableName specifies the database table name for order lines.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order aggregate and its creation event id to the
// database representation.
func fromDomain(aggregate *order.Order, eventID kernel.UUID) OrderDTO {
	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, l := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			MenuItemID:   l.MenuItemID(),
			MenuItemName: l.MenuItemName(),
			Quantity:     l.Quantity(),
			UnitPrice:    l.UnitPrice(),
			TotalPrice:   l.TotalPrice(),
		})
	}

	return OrderDTO{
		ID:                 aggregate.ID(),
		Version:            aggregate.Version(),
		EventID:            eventID.Bytes(),
		CustomerID:         aggregate.CustomerID(),
		CustomerName:       aggregate.CustomerName(),
		TotalAmount:        aggregate.TotalAmount(),
		DeliveryChannel:    aggregate.DeliveryChannel().String(),
		Status:             aggregate.Status().String(),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
		CancellationReason: aggregate.CancellationReason(),
		Lines:              lines,
	}
}

// toDomain converts a database row back to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	channel, err := order.ChannelFromString(dto.DeliveryChannel)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		line, lineErr := order.RestoreLine(l.MenuItemID, l.MenuItemName, l.Quantity, l.UnitPrice, l.TotalPrice)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		dto.ID,
		dto.Version,
		dto.CustomerID,
		dto.CustomerName,
		channel,
		lines,
		dto.TotalAmount,
		status,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.CancellationReason,
	)
}
