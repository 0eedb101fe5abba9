// Package kitchenrepo persists the kitchen's ticket projection. Tickets live
// in the kitchen's own tables with their own identifier sequence, keyed for
// idempotency by the creation event id.
package kitchenrepo

import (
	"time"

	"fasttechfoods/internal/core/domain/model/kitchen"
	"fasttechfoods/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// TicketDTO represents the database structure for persisting kitchen tickets.
type TicketDTO struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement"`
	EventID         uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CustomerID      uint64
	CustomerName    string
	TotalAmount     float64
	DeliveryChannel string
	Status          string
	CreatedAt       time.Time       `gorm:"autoCreateTime:false"`
	Items           []TicketItemDTO `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for kitchen tickets.
func (TicketDTO) TableName() string {
	return "kitchen_tickets"
}

// TicketItemDTO represents one persisted ticket line.
type TicketItemDTO struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	TicketID     uint64 `gorm:"index"`
	MenuItemID   uint64
	MenuItemName string
	Quantity     int
	UnitPrice    float64
	TotalPrice   float64
}

// TableName specifies the database table name for ticket items.
func (TicketItemDTO) TableName() string {
	return "kitchen_ticket_items"
}

func fromDomain(ticket *kitchen.Ticket) TicketDTO {
	items := make([]TicketItemDTO, 0, len(ticket.Items()))
	for _, item := range ticket.Items() {
		items = append(items, TicketItemDTO{
			MenuItemID:   item.MenuItemID,
			MenuItemName: item.MenuItemName,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			TotalPrice:   item.TotalPrice,
		})
	}

	return TicketDTO{
		ID:              ticket.ID(),
		EventID:         ticket.EventID().Bytes(),
		CustomerID:      ticket.CustomerID(),
		CustomerName:    ticket.CustomerName(),
		TotalAmount:     ticket.TotalAmount(),
		DeliveryChannel: ticket.DeliveryChannel().String(),
		Status:          ticket.Status().String(),
		CreatedAt:       ticket.CreatedAt(),
		Items:           items,
	}
}

func toDomain(dto TicketDTO) (*kitchen.Ticket, error) {
	eventID, err := kernelUUID(dto.EventID)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	channel, err := order.ChannelFromString(dto.DeliveryChannel)
	if err != nil {
		return nil, err
	}

	items := make([]kitchen.Item, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, kitchen.Item{
			MenuItemID:   item.MenuItemID,
			MenuItemName: item.MenuItemName,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			TotalPrice:   item.TotalPrice,
		})
	}

	return kitchen.RestoreTicket(
		dto.ID,
		eventID,
		dto.CustomerID,
		dto.CustomerName,
		channel,
		items,
		dto.TotalAmount,
		status,
		dto.CreatedAt,
	)
}
