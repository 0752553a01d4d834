package dto

import (
	"tcnursery/internal/domain/registers/sampling"
)

// CreateSamplingRequest is the request body for logging a lab sample.
type CreateSamplingRequest struct {
	Date        string          `json:"date" binding:"required"`
	CropName    string          `json:"cropName" binding:"required"`
	BatchNumber string          `json:"batchNumber" binding:"required"`
	SampleNo    int             `json:"sampleNo" binding:"min=0"`
	Status      sampling.Status `json:"status"`
	Lab         string          `json:"lab"`
	Result      string          `json:"result"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateSamplingRequest) ToEntity() *sampling.Sample {
	s := sampling.NewSample(r.Date, r.CropName, r.BatchNumber)
	r.fill(s)
	return s
}

func (r *CreateSamplingRequest) fill(s *sampling.Sample) {
	s.Date = r.Date
	s.CropName = r.CropName
	s.BatchNumber = r.BatchNumber
	s.SampleNo = r.SampleNo
	if r.Status != "" {
		s.Status = r.Status
	}
	s.Lab = r.Lab
	s.Result = r.Result
}

// UpdateSamplingRequest is the request body for editing a sample.
type UpdateSamplingRequest struct {
	CreateSamplingRequest
	Version int `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity. A zero sample number keeps the current one.
func (r *UpdateSamplingRequest) ApplyTo(s *sampling.Sample) {
	current := s.SampleNo
	r.fill(s)
	if s.SampleNo == 0 {
		s.SampleNo = current
	}
	s.Version = r.Version
}

// SamplingResponse is the response body for a sample.
type SamplingResponse struct {
	BaseResponse
	Date        string          `json:"date"`
	CropName    string          `json:"cropName"`
	BatchNumber string          `json:"batchNumber"`
	SampleNo    int             `json:"sampleNo"`
	Status      sampling.Status `json:"status"`
	Lab         string          `json:"lab"`
	Result      string          `json:"result,omitempty"`
}

// FromSampling creates response DTO from domain entity.
func FromSampling(s *sampling.Sample) *SamplingResponse {
	return &SamplingResponse{
		BaseResponse: FromRecord(s.Record),
		Date:         s.Date,
		CropName:     s.CropName,
		BatchNumber:  s.BatchNumber,
		SampleNo:     s.SampleNo,
		Status:       s.Status,
		Lab:          s.Lab,
		Result:       s.Result,
	}
}
