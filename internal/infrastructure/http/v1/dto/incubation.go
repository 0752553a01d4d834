package dto

import (
	"tcnursery/internal/core/types"
	"tcnursery/internal/domain/registers/incubation"
)

// CreateIncubationRequest is the request body for placing a batch in the growth room.
type CreateIncubationRequest struct {
	Date         string         `json:"date" binding:"required"`
	CropName     string         `json:"cropName" binding:"required"`
	BatchNumber  string         `json:"batchNumber"`
	MediaCode    string         `json:"mediaCode"`
	Bottles      int            `json:"bottles" binding:"min=0"`
	TemperatureC types.Quantity `json:"temperatureC"`
	LightHours   int            `json:"lightHours" binding:"min=0,max=24"`
	Operator     string         `json:"operator"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateIncubationRequest) ToEntity() *incubation.Batch {
	b := incubation.NewBatch(r.Date, r.CropName, r.Bottles)
	r.fill(b)
	return b
}

func (r *CreateIncubationRequest) fill(b *incubation.Batch) {
	b.Date = r.Date
	b.CropName = r.CropName
	b.BatchNumber = r.BatchNumber
	b.MediaCode = r.MediaCode
	b.Bottles = r.Bottles
	b.TemperatureC = r.TemperatureC
	b.LightHours = r.LightHours
	b.Operator = r.Operator
}

// UpdateIncubationRequest is the request body for editing an incubation batch.
type UpdateIncubationRequest struct {
	CreateIncubationRequest
	Version int `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateIncubationRequest) ApplyTo(b *incubation.Batch) {
	r.fill(b)
	b.Version = r.Version
}

// IncubationResponse is the response body for an incubation batch.
type IncubationResponse struct {
	BaseResponse
	Date         string         `json:"date"`
	CropName     string         `json:"cropName"`
	BatchNumber  string         `json:"batchNumber"`
	MediaCode    string         `json:"mediaCode"`
	Bottles      int            `json:"bottles"`
	TemperatureC types.Quantity `json:"temperatureC"`
	LightHours   int            `json:"lightHours"`
	Operator     string         `json:"operator"`
}

// FromIncubation creates response DTO from domain entity.
func FromIncubation(b *incubation.Batch) *IncubationResponse {
	return &IncubationResponse{
		BaseResponse: FromRecord(b.Record),
		Date:         b.Date,
		CropName:     b.CropName,
		BatchNumber:  b.BatchNumber,
		MediaCode:    b.MediaCode,
		Bottles:      b.Bottles,
		TemperatureC: b.TemperatureC,
		LightHours:   b.LightHours,
		Operator:     b.Operator,
	}
}
