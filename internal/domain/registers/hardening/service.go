package hardening

import (
	"context"
	"strconv"

	"tcnursery/internal/core/numerator"
	"tcnursery/internal/core/types"
	"tcnursery/internal/domain"
	"tcnursery/internal/domain/filter"
)

// Repository is the storage contract of the hardening register.
type Repository = domain.Repository[*Batch]

// BatchNumbering numbers hardening batches as HB-YYYY-NNNNN.
var BatchNumbering = numerator.DefaultConfig("HB")

// Definition describes the hardening register.
func Definition() domain.Definition[*Batch] {
	var (
		date  = domain.Field[*Batch]{Name: "date", Get: func(b *Batch) string { return b.Date }}
		crop  = domain.Field[*Batch]{Name: "cropName", Get: func(b *Batch) string { return b.CropName }}
		batch = domain.Field[*Batch]{Name: "batchNumber", Get: func(b *Batch) string { return b.BatchNumber }}
	)

	return domain.Definition[*Batch]{
		Name:       "hardening",
		Label:      "Hardening",
		Field1:     crop,
		Field2:     batch,
		Date:       date,
		Identifier: batch,
		Fields: filter.Fields[*Batch]{
			"date":        date.Get,
			"stage":       func(b *Batch) string { return string(b.Stage) },
			"cropName":    crop.Get,
			"batchNumber": batch.Get,
			"plants":      func(b *Batch) string { return strconv.Itoa(b.Plants) },
			"mortality":   func(b *Batch) string { return strconv.Itoa(b.Mortality) },
			"location":    func(b *Batch) string { return b.Location },
		},
	}
}

// Service provides business logic for the hardening register.
type Service struct {
	*domain.RegisterService[*Batch]
}

// NewService creates a new hardening service.
func NewService(repo Repository, gen numerator.Generator) *Service {
	base := domain.NewRegisterService(repo, Definition())

	base.Hooks().OnBeforeCreate(domain.AutoNumber(gen, BatchNumbering,
		func(b *Batch) string { return b.Date },
		func(b *Batch) *string { return &b.BatchNumber },
	))

	return &Service{RegisterService: base}
}

// StageSummary aggregates one stage's plants.
type StageSummary struct {
	Stage        Stage          `json:"stage"`
	Batches      int            `json:"batches"`
	Plants       int            `json:"plants"`
	Mortality    int            `json:"mortality"`
	SurvivalRate types.Quantity `json:"survivalRate"`
}

// Summary returns survival per stage, primary first.
func (s *Service) Summary(ctx context.Context) ([]StageSummary, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}

	byStage := map[Stage]*StageSummary{
		StagePrimary:   {Stage: StagePrimary},
		StageSecondary: {Stage: StageSecondary},
	}
	for _, b := range records {
		sum, ok := byStage[b.Stage]
		if !ok {
			continue
		}
		sum.Batches++
		sum.Plants += b.Plants
		sum.Mortality += b.Mortality
	}

	out := make([]StageSummary, 0, 2)
	for _, st := range []Stage{StagePrimary, StageSecondary} {
		sum := byStage[st]
		sum.SurvivalRate = types.Ratio(sum.Plants-sum.Mortality, sum.Plants, 4)
		out = append(out, *sum)
	}
	return out, nil
}
