package dto

import (
	"tcnursery/internal/core/types"
	"tcnursery/internal/domain/registers/subculture"
)

// CreateSubcultureRequest is the request body for recording a transfer.
type CreateSubcultureRequest struct {
	Date          string           `json:"date" binding:"required"`
	CropName      string           `json:"cropName" binding:"required"`
	BatchNumber   string           `json:"batchNumber"`
	Stage         subculture.Stage `json:"stage" binding:"required"`
	MotherBottles int              `json:"motherBottles" binding:"min=0"`
	NewBottles    int              `json:"newBottles" binding:"min=0"`
	Contaminated  int              `json:"contaminated" binding:"min=0"`
	Operator      string           `json:"operator"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateSubcultureRequest) ToEntity() *subculture.Transfer {
	t := subculture.NewTransfer(r.Date, r.CropName, r.Stage)
	r.fill(t)
	return t
}

func (r *CreateSubcultureRequest) fill(t *subculture.Transfer) {
	t.Date = r.Date
	t.CropName = r.CropName
	t.BatchNumber = r.BatchNumber
	t.Stage = r.Stage
	t.MotherBottles = r.MotherBottles
	t.NewBottles = r.NewBottles
	t.Contaminated = r.Contaminated
	t.Operator = r.Operator
}

// UpdateSubcultureRequest is the request body for editing a transfer.
type UpdateSubcultureRequest struct {
	CreateSubcultureRequest
	Version int `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateSubcultureRequest) ApplyTo(t *subculture.Transfer) {
	r.fill(t)
	t.Version = r.Version
}

// SubcultureResponse is the response body for a transfer.
type SubcultureResponse struct {
	BaseResponse
	Date               string           `json:"date"`
	CropName           string           `json:"cropName"`
	BatchNumber        string           `json:"batchNumber"`
	Stage              subculture.Stage `json:"stage"`
	MotherBottles      int              `json:"motherBottles"`
	NewBottles         int              `json:"newBottles"`
	Contaminated       int              `json:"contaminated"`
	MultiplicationRate types.Quantity   `json:"multiplicationRate"`
	Operator           string           `json:"operator"`
}

// FromSubculture creates response DTO from domain entity.
func FromSubculture(t *subculture.Transfer) *SubcultureResponse {
	return &SubcultureResponse{
		BaseResponse:       FromRecord(t.Record),
		Date:               t.Date,
		CropName:           t.CropName,
		BatchNumber:        t.BatchNumber,
		Stage:              t.Stage,
		MotherBottles:      t.MotherBottles,
		NewBottles:         t.NewBottles,
		Contaminated:       t.Contaminated,
		MultiplicationRate: t.MultiplicationRate(),
		Operator:           t.Operator,
	}
}
