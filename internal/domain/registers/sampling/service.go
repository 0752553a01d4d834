package sampling

import (
	"context"
	"fmt"
	"strconv"

	"tcnursery/internal/core/apperror"
	"tcnursery/internal/domain"
	"tcnursery/internal/domain/filter"
)

// Repository is the storage contract of the sampling register.
type Repository = domain.Repository[*Sample]

// Definition describes the sampling register. The edit dialog picks a
// sample by date and sample number.
func Definition() domain.Definition[*Sample] {
	var (
		date   = domain.Field[*Sample]{Name: "date", Get: func(s *Sample) string { return s.Date }}
		crop   = domain.Field[*Sample]{Name: "cropName", Get: func(s *Sample) string { return s.CropName }}
		batch  = domain.Field[*Sample]{Name: "batchNumber", Get: func(s *Sample) string { return s.BatchNumber }}
		number = domain.Field[*Sample]{Name: "sampleNo", Get: func(s *Sample) string { return strconv.Itoa(s.SampleNo) }}
	)

	return domain.Definition[*Sample]{
		Name:       "sampling",
		Label:      "Sampling",
		Field1:     crop,
		Field2:     batch,
		Date:       date,
		Identifier: number,
		Fields: filter.Fields[*Sample]{
			"date":        date.Get,
			"cropName":    crop.Get,
			"batchNumber": batch.Get,
			"sampleNo":    number.Get,
			"status":      func(s *Sample) string { return string(s.Status) },
			"lab":         func(s *Sample) string { return s.Lab },
			"result":      func(s *Sample) string { return s.Result },
		},
	}
}

// Service provides business logic for the sampling register.
type Service struct {
	*domain.RegisterService[*Sample]
}

// NewService creates a new sampling service.
func NewService(repo Repository) *Service {
	svc := &Service{RegisterService: domain.NewRegisterService(repo, Definition())}
	svc.Hooks().OnBeforeCreate(svc.assignSampleNo)
	svc.Hooks().OnBeforeCreate(svc.checkUniqueNo)
	svc.Hooks().OnBeforeUpdate(svc.checkUniqueNo)
	return svc
}

// assignSampleNo numbers a sample after the highest one of its date.
func (s *Service) assignSampleNo(ctx context.Context, sample *Sample) error {
	if sample.SampleNo != 0 {
		return nil
	}
	records, err := s.Records(ctx)
	if err != nil {
		return fmt.Errorf("assign sample number: %w", err)
	}
	sample.SampleNo = NextSampleNo(records, sample.Date)
	return nil
}

// checkUniqueNo rejects a second sample with the same number on the same date.
func (s *Service) checkUniqueNo(ctx context.Context, sample *Sample) error {
	records, err := s.Records(ctx)
	if err != nil {
		return err
	}
	for _, r := range records {
		if r.ID != sample.ID && r.Date == sample.Date && r.SampleNo == sample.SampleNo {
			return apperror.NewDuplicate("sampling", "sampleNo", sample.Date+"/"+strconv.Itoa(sample.SampleNo))
		}
	}
	return nil
}

// NextSampleNo returns one past the highest sample number on date.
func NextSampleNo(records []*Sample, date string) int {
	highest := 0
	for _, r := range records {
		if r.Date == date && r.SampleNo > highest {
			highest = r.SampleNo
		}
	}
	return highest + 1
}
