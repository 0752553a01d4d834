package incubation

import (
	"strconv"

	"tcnursery/internal/core/numerator"
	"tcnursery/internal/domain"
	"tcnursery/internal/domain/filter"
)

// Repository is the storage contract of the incubation register.
type Repository = domain.Repository[*Batch]

// BatchNumbering numbers incubation batches as IN-YYYY-NNNNN.
var BatchNumbering = numerator.DefaultConfig("IN")

// Definition describes the incubation register.
func Definition() domain.Definition[*Batch] {
	var (
		date  = domain.Field[*Batch]{Name: "date", Get: func(b *Batch) string { return b.Date }}
		crop  = domain.Field[*Batch]{Name: "cropName", Get: func(b *Batch) string { return b.CropName }}
		batch = domain.Field[*Batch]{Name: "batchNumber", Get: func(b *Batch) string { return b.BatchNumber }}
	)

	return domain.Definition[*Batch]{
		Name:       "incubation",
		Label:      "Incubation",
		Field1:     crop,
		Field2:     batch,
		Date:       date,
		Identifier: batch,
		Fields: filter.Fields[*Batch]{
			"date":         date.Get,
			"cropName":     crop.Get,
			"batchNumber":  batch.Get,
			"mediaCode":    func(b *Batch) string { return b.MediaCode },
			"bottles":      func(b *Batch) string { return strconv.Itoa(b.Bottles) },
			"temperatureC": func(b *Batch) string { return b.TemperatureC.String() },
			"lightHours":   func(b *Batch) string { return strconv.Itoa(b.LightHours) },
			"operator":     func(b *Batch) string { return b.Operator },
		},
	}
}

// Service provides business logic for the incubation register.
type Service struct {
	*domain.RegisterService[*Batch]
}

// NewService creates a new incubation service.
func NewService(repo Repository, gen numerator.Generator) *Service {
	base := domain.NewRegisterService(repo, Definition())

	base.Hooks().OnBeforeCreate(domain.AutoNumber(gen, BatchNumbering,
		func(b *Batch) string { return b.Date },
		func(b *Batch) *string { return &b.BatchNumber },
	))

	return &Service{RegisterService: base}
}
