package domain

import (
	"context"
	"fmt"

	"tcnursery/internal/core/entity"
	"tcnursery/internal/core/numerator"
	"tcnursery/internal/domain/filter"
)

// AutoNumber returns a before-create hook that fills an empty field with the
// next number of cfg, in the period of the record's date.
func AutoNumber[T any](gen numerator.Generator, cfg numerator.Config, date filter.Accessor[T], target func(T) *string) Hook[T] {
	return func(ctx context.Context, record T) error {
		field := target(record)
		if *field != "" {
			return nil
		}
		number, err := gen.GetNextNumber(ctx, cfg, entity.PeriodOf(date(record)))
		if err != nil {
			return fmt.Errorf("generate %s number: %w", cfg.Prefix, err)
		}
		*field = number
		return nil
	}
}
