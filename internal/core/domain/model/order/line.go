package order

import (
	"errors"
	"fmt"

	"fasttechfoods/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through NewLine or RestoreLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine")

// Line is an order line item. It denormalizes the catalog item's name and
// unit price as they were at order time, so later catalog changes never
// retroactively alter historical orders (the snapshot-price rule). Lines are
// immutable once the order exists.
type Line struct {
	// menuItemID references the catalog item the line was built from
	menuItemID uint64

	// menuItemName is the item name snapshot taken at order time
	menuItemName string

	// quantity is the ordered amount, always greater than 0
	quantity int

	// unitPrice is the catalog price snapshot taken at order time
	unitPrice float64

	// totalPrice is quantity multiplied by unitPrice, computed at creation
	totalPrice float64

	// isConstructed ensures the line was created via a constructor
	isConstructed bool
}

// NewLine creates a validated order line and computes its total from the
// snapshot price.
//
// Parameters:
//   - menuItemID: catalog item reference (must be non-zero)
//   - menuItemName: item name captured at order time (must be non-empty)
//   - quantity: ordered amount (must be greater than 0)
//   - unitPrice: catalog price captured at order time (must be greater than 0)
func NewLine(menuItemID uint64, menuItemName string, quantity int, unitPrice float64) (Line, error) {
	line := Line{isConstructed: true}

	if err := errors.Join(
		line.setMenuItem(menuItemID, menuItemName),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
	); err != nil {
		return Line{}, err
	}

	line.totalPrice = float64(line.quantity) * line.unitPrice
	return line, nil
}

// RestoreLine reconstructs a line from persistence or from an event payload,
// keeping the stored total rather than recomputing it.
func RestoreLine(menuItemID uint64, menuItemName string, quantity int, unitPrice, totalPrice float64) (Line, error) {
	line, err := NewLine(menuItemID, menuItemName, quantity, unitPrice)
	if err != nil {
		return Line{}, err
	}

	line.totalPrice = totalPrice
	return line, nil
}

// Validate ensures the Line was created through a constructor.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// MenuItemID returns the catalog item reference.
func (l Line) MenuItemID() uint64 {
	return l.menuItemID
}

// MenuItemName returns the item name snapshot.
func (l Line) MenuItemName() string {
	return l.menuItemName
}

// Quantity returns the ordered amount.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price snapshot taken at order time.
func (l Line) UnitPrice() float64 {
	return l.unitPrice
}

// TotalPrice returns the line total (quantity times unit price).
func (l Line) TotalPrice() float64 {
	return l.totalPrice
}

func (l *Line) setMenuItem(id uint64, name string) error {
	if id == 0 {
		return errs.NewValueIsRequiredError("menuItemID")
	}
	if name == "" {
		return errs.NewValueIsRequiredError("menuItemName")
	}
	l.menuItemID = id
	l.menuItemName = name
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%v is not greater than 0", price))
	}
	l.unitPrice = price
	return nil
}
