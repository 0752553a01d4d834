package dto

import (
	"tcnursery/internal/core/types"
	"tcnursery/internal/domain/registers/hardening"
)

// CreateHardeningRequest is the request body for moving plantlets into hardening.
type CreateHardeningRequest struct {
	Date        string          `json:"date" binding:"required"`
	Stage       hardening.Stage `json:"stage" binding:"required"`
	CropName    string          `json:"cropName" binding:"required"`
	BatchNumber string          `json:"batchNumber"`
	Plants      int             `json:"plants" binding:"min=0"`
	Mortality   int             `json:"mortality" binding:"min=0"`
	Location    string          `json:"location"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateHardeningRequest) ToEntity() *hardening.Batch {
	b := hardening.NewBatch(r.Date, r.Stage, r.CropName, r.Plants)
	r.fill(b)
	return b
}

func (r *CreateHardeningRequest) fill(b *hardening.Batch) {
	b.Date = r.Date
	b.Stage = r.Stage
	b.CropName = r.CropName
	b.BatchNumber = r.BatchNumber
	b.Plants = r.Plants
	b.Mortality = r.Mortality
	b.Location = r.Location
}

// UpdateHardeningRequest is the request body for editing a hardening batch.
type UpdateHardeningRequest struct {
	CreateHardeningRequest
	Version int `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateHardeningRequest) ApplyTo(b *hardening.Batch) {
	r.fill(b)
	b.Version = r.Version
}

// HardeningResponse is the response body for a hardening batch.
type HardeningResponse struct {
	BaseResponse
	Date         string          `json:"date"`
	Stage        hardening.Stage `json:"stage"`
	CropName     string          `json:"cropName"`
	BatchNumber  string          `json:"batchNumber"`
	Plants       int             `json:"plants"`
	Mortality    int             `json:"mortality"`
	Survivors    int             `json:"survivors"`
	SurvivalRate types.Quantity  `json:"survivalRate"`
	Location     string          `json:"location"`
}

// FromHardening creates response DTO from domain entity.
func FromHardening(b *hardening.Batch) *HardeningResponse {
	return &HardeningResponse{
		BaseResponse: FromRecord(b.Record),
		Date:         b.Date,
		Stage:        b.Stage,
		CropName:     b.CropName,
		BatchNumber:  b.BatchNumber,
		Plants:       b.Plants,
		Mortality:    b.Mortality,
		Survivors:    b.Survivors(),
		SurvivalRate: b.SurvivalRate(),
		Location:     b.Location,
	}
}
