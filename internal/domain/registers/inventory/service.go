package inventory

import (
	"context"
	"fmt"

	"tcnursery/internal/core/apperror"
	"tcnursery/internal/core/entity"
	"tcnursery/internal/core/id"
	"tcnursery/internal/core/numerator"
	"tcnursery/internal/domain"
	"tcnursery/internal/domain/filter"
	"tcnursery/pkg/logger"
)

// Repository is the storage contract of the inventory register.
type Repository = domain.Repository[*Movement]

// Reference numbering: goods received notes and issue notes.
var (
	ReceiptNumbering = numerator.DefaultConfig("GRN")
	IssueNumbering   = numerator.DefaultConfig("ISS")
)

// Definition describes the inventory register: the filter bar narrows
// category to item, the edit dialog picks a movement by date and reference.
func Definition() domain.Definition[*Movement] {
	var (
		date      = domain.Field[*Movement]{Name: "date", Get: func(m *Movement) string { return m.Date }}
		category  = domain.Field[*Movement]{Name: "category", Get: func(m *Movement) string { return m.Category }}
		item      = domain.Field[*Movement]{Name: "itemName", Get: func(m *Movement) string { return m.ItemName }}
		reference = domain.Field[*Movement]{Name: "reference", Get: func(m *Movement) string { return m.Reference }}
	)

	return domain.Definition[*Movement]{
		Name:       "inventory",
		Label:      "Inventory",
		Field1:     category,
		Field2:     item,
		Date:       date,
		Identifier: reference,
		Fields: filter.Fields[*Movement]{
			"date":         date.Get,
			"itemName":     item.Get,
			"category":     category.Get,
			"direction":    func(m *Movement) string { return string(m.Direction) },
			"quantity":     func(m *Movement) string { return m.Quantity.String() },
			"unit":         func(m *Movement) string { return m.Unit },
			"supplierName": func(m *Movement) string { return m.SupplierName },
			"reference":    reference.Get,
		},
	}
}

// Service provides business logic for the inventory register.
type Service struct {
	*domain.RegisterService[*Movement]
	numerator numerator.Generator
}

// NewService creates a new inventory service.
func NewService(repo Repository, gen numerator.Generator) *Service {
	svc := &Service{
		RegisterService: domain.NewRegisterService(repo, Definition()),
		numerator:       gen,
	}

	svc.Hooks().OnBeforeCreate(svc.prepareForCreate)
	svc.Hooks().OnBeforeUpdate(svc.checkStock)
	svc.Hooks().OnBeforeDelete(svc.checkRemoval)
	svc.Hooks().OnAfterCreate(svc.logMovement)

	return svc
}

// prepareForCreate numbers the note and rejects issues that exceed stock.
func (s *Service) prepareForCreate(ctx context.Context, m *Movement) error {
	if m.Reference == "" {
		cfg := ReceiptNumbering
		if m.Direction == DirectionOut {
			cfg = IssueNumbering
		}
		ref, err := s.numerator.GetNextNumber(ctx, cfg, entity.PeriodOf(m.Date))
		if err != nil {
			return fmt.Errorf("generate reference: %w", err)
		}
		m.Reference = ref
	}
	return s.checkStock(ctx, m)
}

// checkStock fails when storing m, in place of any movement with its ID,
// would leave an affected item below zero.
func (s *Service) checkStock(ctx context.Context, m *Movement) error {
	return s.checkProjected(ctx, m.ID, m)
}

// checkRemoval fails when deleting m would leave its item below zero.
func (s *Service) checkRemoval(ctx context.Context, m *Movement) error {
	return s.checkProjected(ctx, m.ID, nil)
}

// checkProjected recomputes on-hand with the movement replacedID swapped for
// replacement (nil removes it) and checks every item the change touches.
func (s *Service) checkProjected(ctx context.Context, replacedID id.ID, replacement *Movement) error {
	records, err := s.Records(ctx)
	if err != nil {
		return err
	}

	projected := make([]*Movement, 0, len(records)+1)
	touched := make([]string, 0, 2)
	for _, r := range records {
		if r.ID == replacedID {
			touched = append(touched, r.ItemName)
			continue
		}
		projected = append(projected, r)
	}
	if replacement != nil {
		projected = append(projected, replacement)
		touched = append(touched, replacement.ItemName)
	}

	for _, item := range touched {
		onHand := OnHand(projected, item)
		if !onHand.IsNegative() {
			continue
		}
		if replacement != nil && replacement.Direction == DirectionOut && replacement.ItemName == item {
			available := onHand.Add(replacement.Quantity)
			return apperror.NewInsufficientStock(item, replacement.Quantity.String(), available.String())
		}
		in, out := totals(projected, item)
		return apperror.NewInsufficientStock(item, out.String(), in.String())
	}
	return nil
}

func (s *Service) logMovement(ctx context.Context, m *Movement) error {
	logger.Info(ctx, "recorded inventory movement",
		"item", m.ItemName,
		"direction", m.Direction,
		"quantity", m.Quantity.String(),
		"reference", m.Reference,
	)
	return nil
}

// Balances returns the stock position of every item.
func (s *Service) Balances(ctx context.Context) ([]Balance, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}
	return Balances(records), nil
}
