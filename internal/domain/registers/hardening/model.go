// Package hardening provides the acclimatisation register: rooted plantlets
// moved out of the lab into primary and secondary hardening.
package hardening

import (
	"context"

	"tcnursery/internal/core/apperror"
	"tcnursery/internal/core/entity"
	"tcnursery/internal/core/types"
)

// Stage is the hardening phase.
type Stage string

const (
	StagePrimary   Stage = "primary"
	StageSecondary Stage = "secondary"
)

// Batch is a lot of plantlets in a hardening stage.
type Batch struct {
	entity.Record

	Date        string `json:"date"`
	Stage       Stage  `json:"stage"`
	CropName    string `json:"cropName"`
	BatchNumber string `json:"batchNumber"`
	Plants      int    `json:"plants"`
	Mortality   int    `json:"mortality"`

	// Location is the greenhouse or shade net bay
	Location string `json:"location"`
}

// NewBatch creates a hardening batch with required fields.
func NewBatch(date string, stage Stage, cropName string, plants int) *Batch {
	return &Batch{
		Record:   entity.NewRecord(),
		Date:     date,
		Stage:    stage,
		CropName: cropName,
		Plants:   plants,
	}
}

// Validate implements entity.Validatable interface.
func (b *Batch) Validate(ctx context.Context) error {
	if err := entity.RequireDate("date", b.Date); err != nil {
		return err
	}
	if err := entity.RequireOneOf("stage", b.Stage, StagePrimary, StageSecondary); err != nil {
		return err
	}
	if err := entity.RequireText("cropName", b.CropName); err != nil {
		return err
	}
	if err := entity.RequireNonNegative("plants", b.Plants); err != nil {
		return err
	}
	if err := entity.RequireNonNegative("mortality", b.Mortality); err != nil {
		return err
	}
	if b.Mortality > b.Plants {
		return apperror.NewInvalidField("mortality", "mortality exceeds plants", b.Mortality)
	}
	return nil
}

// Clone implements entity.Entity.
func (b *Batch) Clone() *Batch {
	c := *b
	return &c
}

// Survivors is plants minus mortality.
func (b *Batch) Survivors() int {
	return b.Plants - b.Mortality
}

// SurvivalRate is the surviving share of plants, 0..1 with four decimals.
func (b *Batch) SurvivalRate() types.Quantity {
	return types.Ratio(b.Survivors(), b.Plants, 4)
}
