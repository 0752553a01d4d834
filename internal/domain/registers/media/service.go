package media

import (
	"tcnursery/internal/core/numerator"
	"tcnursery/internal/domain"
	"tcnursery/internal/domain/filter"
)

// Repository is the storage contract of the media register.
type Repository = domain.Repository[*Preparation]

// BatchNumbering numbers media batches as MB-YYYY-NNNNN.
var BatchNumbering = numerator.DefaultConfig("MB")

// Definition describes the media register: the filter bar narrows media name
// to batch number, the edit dialog picks a batch by date.
func Definition() domain.Definition[*Preparation] {
	var (
		date      = domain.Field[*Preparation]{Name: "date", Get: func(p *Preparation) string { return p.Date }}
		mediaName = domain.Field[*Preparation]{Name: "mediaName", Get: func(p *Preparation) string { return p.MediaName }}
		batch     = domain.Field[*Preparation]{Name: "batchNumber", Get: func(p *Preparation) string { return p.BatchNumber }}
	)

	return domain.Definition[*Preparation]{
		Name:       "media",
		Label:      "Media preparation",
		Field1:     mediaName,
		Field2:     batch,
		Date:       date,
		Identifier: batch,
		Fields: filter.Fields[*Preparation]{
			"date":         date.Get,
			"mediaCode":    func(p *Preparation) string { return p.MediaCode },
			"mediaName":    mediaName.Get,
			"batchNumber":  batch.Get,
			"volumeLiters": func(p *Preparation) string { return p.VolumeLiters.String() },
			"ph":           func(p *Preparation) string { return p.PH.String() },
			"operator":     func(p *Preparation) string { return p.Operator },
		},
	}
}

// Service provides business logic for the media register.
type Service struct {
	*domain.RegisterService[*Preparation]
}

// NewService creates a new media service.
func NewService(repo Repository, gen numerator.Generator) *Service {
	base := domain.NewRegisterService(repo, Definition())

	base.Hooks().OnBeforeCreate(domain.AutoNumber(gen, BatchNumbering,
		func(p *Preparation) string { return p.Date },
		func(p *Preparation) *string { return &p.BatchNumber },
	))

	return &Service{RegisterService: base}
}
