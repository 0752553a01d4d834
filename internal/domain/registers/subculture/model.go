// Package subculture provides the subculturing register: transfers of
// explants from mother bottles into fresh media.
package subculture

import (
	"context"

	"tcnursery/internal/core/apperror"
	"tcnursery/internal/core/entity"
	"tcnursery/internal/core/types"
)

// Stage is the propagation stage of a transfer.
type Stage string

const (
	StageInitiation     Stage = "initiation"
	StageMultiplication Stage = "multiplication"
	StageRooting        Stage = "rooting"
)

// Transfer is one subculture session of a batch.
type Transfer struct {
	entity.Record

	Date          string `json:"date"`
	CropName      string `json:"cropName"`
	BatchNumber   string `json:"batchNumber"`
	Stage         Stage  `json:"stage"`
	MotherBottles int    `json:"motherBottles"`
	NewBottles    int    `json:"newBottles"`

	// Contaminated counts new bottles discarded for contamination
	Contaminated int    `json:"contaminated"`
	Operator     string `json:"operator"`
}

// NewTransfer creates a transfer with required fields.
func NewTransfer(date, cropName string, stage Stage) *Transfer {
	return &Transfer{
		Record:   entity.NewRecord(),
		Date:     date,
		CropName: cropName,
		Stage:    stage,
	}
}

// Validate implements entity.Validatable interface.
func (t *Transfer) Validate(ctx context.Context) error {
	if err := entity.RequireDate("date", t.Date); err != nil {
		return err
	}
	if err := entity.RequireText("cropName", t.CropName); err != nil {
		return err
	}
	if err := entity.RequireOneOf("stage", t.Stage, StageInitiation, StageMultiplication, StageRooting); err != nil {
		return err
	}
	for field, v := range map[string]int{
		"motherBottles": t.MotherBottles,
		"newBottles":    t.NewBottles,
		"contaminated":  t.Contaminated,
	} {
		if err := entity.RequireNonNegative(field, v); err != nil {
			return err
		}
	}
	if t.Contaminated > t.NewBottles {
		return apperror.NewInvalidField("contaminated", "contaminated bottles exceed new bottles", t.Contaminated)
	}
	return nil
}

// Clone implements entity.Entity.
func (t *Transfer) Clone() *Transfer {
	c := *t
	return &c
}

// MultiplicationRate is clean new bottles per mother bottle.
func (t *Transfer) MultiplicationRate() types.Quantity {
	return types.Ratio(t.NewBottles-t.Contaminated, t.MotherBottles, 2)
}
