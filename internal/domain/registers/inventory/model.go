// Package inventory provides the store register: goods received into and
// issued from the nursery store, with running balances per item.
package inventory

import (
	"context"

	"tcnursery/internal/core/apperror"
	"tcnursery/internal/core/entity"
	"tcnursery/internal/core/types"
)

// Direction is the movement direction.
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// Movement is one receipt or issue of an item.
type Movement struct {
	entity.Record

	Date      string    `json:"date"`
	ItemName  string    `json:"itemName"`
	Category  string    `json:"category"`
	Direction Direction `json:"direction"`

	// Quantity is always positive; Direction gives the sign
	Quantity     types.Quantity `json:"quantity"`
	Unit         string         `json:"unit"`
	SupplierName string         `json:"supplierName,omitempty"`

	// Reference is the receipt or issue note number, generated when empty
	Reference string `json:"reference"`
}

// NewMovement creates a movement with required fields.
func NewMovement(date, itemName, category string, dir Direction, qty types.Quantity, unit string) *Movement {
	return &Movement{
		Record:    entity.NewRecord(),
		Date:      date,
		ItemName:  itemName,
		Category:  category,
		Direction: dir,
		Quantity:  qty,
		Unit:      unit,
	}
}

// Validate implements entity.Validatable interface.
func (m *Movement) Validate(ctx context.Context) error {
	if err := entity.RequireDate("date", m.Date); err != nil {
		return err
	}
	if err := entity.RequireText("itemName", m.ItemName); err != nil {
		return err
	}
	if err := entity.RequireText("category", m.Category); err != nil {
		return err
	}
	if err := entity.RequireOneOf("direction", m.Direction, DirectionIn, DirectionOut); err != nil {
		return err
	}
	if !m.Quantity.IsPositive() {
		return apperror.NewInvalidField("quantity", "quantity must be positive", m.Quantity.String())
	}
	return entity.RequireText("unit", m.Unit)
}

// Clone implements entity.Entity.
func (m *Movement) Clone() *Movement {
	c := *m
	return &c
}

// Signed returns the quantity with the direction's sign.
func (m *Movement) Signed() types.Quantity {
	if m.Direction == DirectionOut {
		return m.Quantity.Neg()
	}
	return m.Quantity
}
