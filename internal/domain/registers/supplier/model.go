// Package supplier provides the supplier directory of the nursery store.
package supplier

import (
	"context"
	"regexp"

	"tcnursery/internal/core/apperror"
	"tcnursery/internal/core/entity"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Supplier is a vendor of chemicals, glassware or planting material.
type Supplier struct {
	entity.Record

	// LastOrderDate is the date of the most recent order
	LastOrderDate string `json:"lastOrderDate"`

	Name     string `json:"name"`
	Category string `json:"category"`
	Contact  string `json:"contact,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	City     string `json:"city,omitempty"`
}

// NewSupplier creates a supplier with required fields.
func NewSupplier(lastOrderDate, name, category string) *Supplier {
	return &Supplier{
		Record:        entity.NewRecord(),
		LastOrderDate: lastOrderDate,
		Name:          name,
		Category:      category,
	}
}

// Validate implements entity.Validatable interface.
func (s *Supplier) Validate(ctx context.Context) error {
	if err := entity.RequireDate("lastOrderDate", s.LastOrderDate); err != nil {
		return err
	}
	if err := entity.RequireText("name", s.Name); err != nil {
		return err
	}
	if err := entity.RequireText("category", s.Category); err != nil {
		return err
	}
	if s.Email != "" && !emailPattern.MatchString(s.Email) {
		return apperror.NewInvalidField("email", "invalid email format", s.Email)
	}
	return nil
}

// Clone implements entity.Entity.
func (s *Supplier) Clone() *Supplier {
	c := *s
	return &c
}
