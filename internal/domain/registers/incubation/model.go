// Package incubation provides the growth room register: culture batches placed
// under controlled temperature and light.
package incubation

import (
	"context"

	"tcnursery/internal/core/apperror"
	"tcnursery/internal/core/entity"
	"tcnursery/internal/core/types"
)

// Batch is one lot of culture bottles placed in the growth room.
type Batch struct {
	entity.Record

	Date        string `json:"date"`
	CropName    string `json:"cropName"`
	BatchNumber string `json:"batchNumber"`

	// MediaCode refers to the recipe the bottles were poured with
	MediaCode string `json:"mediaCode"`

	Bottles      int            `json:"bottles"`
	TemperatureC types.Quantity `json:"temperatureC"`

	// LightHours is the photoperiod per day
	LightHours int    `json:"lightHours"`
	Operator   string `json:"operator"`
}

// NewBatch creates an incubation batch with required fields.
func NewBatch(date, cropName string, bottles int) *Batch {
	return &Batch{
		Record:   entity.NewRecord(),
		Date:     date,
		CropName: cropName,
		Bottles:  bottles,
	}
}

// Validate implements entity.Validatable interface.
func (b *Batch) Validate(ctx context.Context) error {
	if err := entity.RequireDate("date", b.Date); err != nil {
		return err
	}
	if err := entity.RequireText("cropName", b.CropName); err != nil {
		return err
	}
	if err := entity.RequireNonNegative("bottles", b.Bottles); err != nil {
		return err
	}
	if b.LightHours < 0 || b.LightHours > 24 {
		return apperror.NewInvalidField("lightHours", "photoperiod must be between 0 and 24 hours", b.LightHours)
	}
	return nil
}

// Clone implements entity.Entity.
func (b *Batch) Clone() *Batch {
	c := *b
	return &c
}
