// Package sampling provides the laboratory sampling register: samples drawn
// from culture batches for virus indexing and contamination tests.
package sampling

import (
	"context"

	"tcnursery/internal/core/apperror"
	"tcnursery/internal/core/entity"
)

// Status is the lab progress of a sample.
type Status string

const (
	StatusReceived Status = "received"
	StatusTesting  Status = "testing"
	StatusPassed   Status = "passed"
	StatusFailed   Status = "failed"
)

// Sample is one sample sent to the lab. SampleNo is unique per date.
type Sample struct {
	entity.Record

	Date        string `json:"date"`
	CropName    string `json:"cropName"`
	BatchNumber string `json:"batchNumber"`

	// SampleNo is assigned per date when zero
	SampleNo int    `json:"sampleNo"`
	Status   Status `json:"status"`
	Lab      string `json:"lab"`
	Result   string `json:"result,omitempty"`
}

// NewSample creates a received sample for a batch.
func NewSample(date, cropName, batchNumber string) *Sample {
	return &Sample{
		Record:      entity.NewRecord(),
		Date:        date,
		CropName:    cropName,
		BatchNumber: batchNumber,
		Status:      StatusReceived,
	}
}

// Validate implements entity.Validatable interface.
func (s *Sample) Validate(ctx context.Context) error {
	if err := entity.RequireDate("date", s.Date); err != nil {
		return err
	}
	if err := entity.RequireText("cropName", s.CropName); err != nil {
		return err
	}
	if err := entity.RequireText("batchNumber", s.BatchNumber); err != nil {
		return err
	}
	if s.SampleNo < 1 {
		return apperror.NewInvalidField("sampleNo", "sample number must be positive", s.SampleNo)
	}
	if err := entity.RequireOneOf("status", s.Status, StatusReceived, StatusTesting, StatusPassed, StatusFailed); err != nil {
		return err
	}
	if s.IsFinal() {
		return entity.RequireText("result", s.Result)
	}
	return nil
}

// Clone implements entity.Entity.
func (s *Sample) Clone() *Sample {
	c := *s
	return &c
}

// IsFinal reports whether the lab has concluded.
func (s *Sample) IsFinal() bool {
	return s.Status == StatusPassed || s.Status == StatusFailed
}
