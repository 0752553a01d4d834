package subculture

import (
	"strconv"

	"tcnursery/internal/core/numerator"
	"tcnursery/internal/domain"
	"tcnursery/internal/domain/filter"
)

// Repository is the storage contract of the subculture register.
type Repository = domain.Repository[*Transfer]

// BatchNumbering numbers subculture batches as SC-YYYY-NNNNN.
var BatchNumbering = numerator.DefaultConfig("SC")

// Definition describes the subculture register.
func Definition() domain.Definition[*Transfer] {
	var (
		date  = domain.Field[*Transfer]{Name: "date", Get: func(t *Transfer) string { return t.Date }}
		crop  = domain.Field[*Transfer]{Name: "cropName", Get: func(t *Transfer) string { return t.CropName }}
		batch = domain.Field[*Transfer]{Name: "batchNumber", Get: func(t *Transfer) string { return t.BatchNumber }}
	)

	return domain.Definition[*Transfer]{
		Name:       "subculture",
		Label:      "Subculture",
		Field1:     crop,
		Field2:     batch,
		Date:       date,
		Identifier: batch,
		Fields: filter.Fields[*Transfer]{
			"date":          date.Get,
			"cropName":      crop.Get,
			"batchNumber":   batch.Get,
			"stage":         func(t *Transfer) string { return string(t.Stage) },
			"motherBottles": func(t *Transfer) string { return strconv.Itoa(t.MotherBottles) },
			"newBottles":    func(t *Transfer) string { return strconv.Itoa(t.NewBottles) },
			"contaminated":  func(t *Transfer) string { return strconv.Itoa(t.Contaminated) },
			"operator":      func(t *Transfer) string { return t.Operator },
		},
	}
}

// Service provides business logic for the subculture register.
type Service struct {
	*domain.RegisterService[*Transfer]
}

// NewService creates a new subculture service.
func NewService(repo Repository, gen numerator.Generator) *Service {
	base := domain.NewRegisterService(repo, Definition())

	base.Hooks().OnBeforeCreate(domain.AutoNumber(gen, BatchNumbering,
		func(t *Transfer) string { return t.Date },
		func(t *Transfer) *string { return &t.BatchNumber },
	))

	return &Service{RegisterService: base}
}
