package supplier

import (
	"context"
	"strings"

	"tcnursery/internal/core/apperror"
	"tcnursery/internal/domain"
	"tcnursery/internal/domain/filter"
)

// Repository is the storage contract of the supplier directory.
type Repository = domain.Repository[*Supplier]

// Definition describes the supplier directory: the filter bar narrows
// category to supplier name, the edit dialog picks by last order date.
func Definition() domain.Definition[*Supplier] {
	var (
		date     = domain.Field[*Supplier]{Name: "lastOrderDate", Get: func(s *Supplier) string { return s.LastOrderDate }}
		category = domain.Field[*Supplier]{Name: "category", Get: func(s *Supplier) string { return s.Category }}
		name     = domain.Field[*Supplier]{Name: "name", Get: func(s *Supplier) string { return s.Name }}
	)

	return domain.Definition[*Supplier]{
		Name:       "supplier",
		Label:      "Suppliers",
		Field1:     category,
		Field2:     name,
		Date:       date,
		Identifier: name,
		Fields: filter.Fields[*Supplier]{
			"lastOrderDate": date.Get,
			"name":          name.Get,
			"category":      category.Get,
			"contact":       func(s *Supplier) string { return s.Contact },
			"phone":         func(s *Supplier) string { return s.Phone },
			"email":         func(s *Supplier) string { return s.Email },
			"city":          func(s *Supplier) string { return s.City },
		},
	}
}

// Service provides business logic for the supplier directory.
type Service struct {
	*domain.RegisterService[*Supplier]
}

// NewService creates a new supplier service.
func NewService(repo Repository) *Service {
	svc := &Service{RegisterService: domain.NewRegisterService(repo, Definition())}

	svc.Hooks().OnBeforeCreate(svc.checkUniqueName)
	svc.Hooks().OnBeforeUpdate(svc.checkUniqueName)

	return svc
}

// checkUniqueName rejects a second supplier with the same name, ignoring case.
func (s *Service) checkUniqueName(ctx context.Context, sup *Supplier) error {
	records, err := s.Records(ctx)
	if err != nil {
		return err
	}
	for _, r := range records {
		if r.ID != sup.ID && strings.EqualFold(strings.TrimSpace(r.Name), strings.TrimSpace(sup.Name)) {
			return apperror.NewDuplicate("supplier", "name", sup.Name)
		}
	}
	return nil
}
