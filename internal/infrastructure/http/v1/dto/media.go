package dto

import (
	"tcnursery/internal/core/types"
	"tcnursery/internal/domain/registers/media"
)

// --- Request DTOs ---

// CreateMediaRequest is the request body for recording a media batch.
type CreateMediaRequest struct {
	Date         string         `json:"date" binding:"required"`
	MediaCode    string         `json:"mediaCode"`
	MediaName    string         `json:"mediaName" binding:"required"`
	BatchNumber  string         `json:"batchNumber"`
	VolumeLiters types.Quantity `json:"volumeLiters"`
	PH           types.Quantity `json:"ph"`
	Operator     string         `json:"operator"`
	Notes        string         `json:"notes"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateMediaRequest) ToEntity() *media.Preparation {
	p := media.NewPreparation(r.Date, r.MediaCode, r.MediaName)
	r.fill(p)
	return p
}

func (r *CreateMediaRequest) fill(p *media.Preparation) {
	p.Date = r.Date
	p.MediaCode = r.MediaCode
	p.MediaName = r.MediaName
	p.BatchNumber = r.BatchNumber
	p.VolumeLiters = r.VolumeLiters
	p.PH = r.PH
	p.Operator = r.Operator
	p.Notes = r.Notes
}

// UpdateMediaRequest is the request body for editing a media batch.
type UpdateMediaRequest struct {
	CreateMediaRequest
	Version int `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateMediaRequest) ApplyTo(p *media.Preparation) {
	r.fill(p)
	p.Version = r.Version
}

// --- Response DTOs ---

// MediaResponse is the response body for a media batch.
type MediaResponse struct {
	BaseResponse
	Date         string         `json:"date"`
	MediaCode    string         `json:"mediaCode"`
	MediaName    string         `json:"mediaName"`
	BatchNumber  string         `json:"batchNumber"`
	VolumeLiters types.Quantity `json:"volumeLiters"`
	PH           types.Quantity `json:"ph"`
	Operator     string         `json:"operator"`
	Notes        string         `json:"notes,omitempty"`
}

// FromMedia creates response DTO from domain entity.
func FromMedia(p *media.Preparation) *MediaResponse {
	return &MediaResponse{
		BaseResponse: FromRecord(p.Record),
		Date:         p.Date,
		MediaCode:    p.MediaCode,
		MediaName:    p.MediaName,
		BatchNumber:  p.BatchNumber,
		VolumeLiters: p.VolumeLiters,
		PH:           p.PH,
		Operator:     p.Operator,
		Notes:        p.Notes,
	}
}
