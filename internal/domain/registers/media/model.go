// Package media provides the media preparation register: every batch of
// culture medium mixed in the lab, identified by its batch number.
package media

import (
	"context"

	"github.com/shopspring/decimal"

	"tcnursery/internal/core/apperror"
	"tcnursery/internal/core/entity"
	"tcnursery/internal/core/types"
)

// Preparation is one prepared batch of culture medium.
type Preparation struct {
	entity.Record

	Date string `json:"date"`

	// MediaCode is the recipe code, e.g. "MS-01"
	MediaCode string `json:"mediaCode"`

	// MediaName is the recipe name, e.g. "Murashige & Skoog"
	MediaName string `json:"mediaName"`

	// BatchNumber is generated when left empty (MB-YYYY-NNNNN)
	BatchNumber string `json:"batchNumber"`

	VolumeLiters types.Quantity `json:"volumeLiters"`
	PH           types.Quantity `json:"ph"`
	Operator     string         `json:"operator"`
	Notes        string         `json:"notes,omitempty"`
}

var (
	minPH = decimal.Zero
	maxPH = decimal.NewFromInt(14)
)

// NewPreparation creates a preparation with required fields.
func NewPreparation(date, mediaCode, mediaName string) *Preparation {
	return &Preparation{
		Record:    entity.NewRecord(),
		Date:      date,
		MediaCode: mediaCode,
		MediaName: mediaName,
	}
}

// Validate implements entity.Validatable interface.
func (p *Preparation) Validate(ctx context.Context) error {
	if err := entity.RequireDate("date", p.Date); err != nil {
		return err
	}
	if err := entity.RequireText("mediaName", p.MediaName); err != nil {
		return err
	}
	if p.VolumeLiters.IsNegative() {
		return apperror.NewInvalidField("volumeLiters", "volume cannot be negative", p.VolumeLiters.String())
	}
	if p.PH.LessThan(minPH) || p.PH.GreaterThan(maxPH) {
		return apperror.NewInvalidField("ph", "pH must be between 0 and 14", p.PH.String())
	}
	return nil
}

// Clone implements entity.Entity.
func (p *Preparation) Clone() *Preparation {
	c := *p
	return &c
}
