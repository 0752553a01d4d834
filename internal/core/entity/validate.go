package entity

import (
	"strings"
	"time"

	"tcnursery/internal/core/apperror"
)

// DateLayout is the calendar date format used by every register.
// Dates stay strings: the filter and selector compare them as opaque values.
const DateLayout = "2006-01-02"

// RequireText fails when value is blank.
func RequireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperror.NewValidation(field + " is required").
			WithDetail("field", field)
	}
	return nil
}

// RequireDate fails when value is blank or not a YYYY-MM-DD date.
func RequireDate(field, value string) error {
	if err := RequireText(field, value); err != nil {
		return err
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		return apperror.NewInvalidField(field, field+" must use YYYY-MM-DD", value)
	}
	return nil
}

// RequireNonNegative fails for negative counts.
func RequireNonNegative(field string, value int) error {
	if value < 0 {
		return apperror.NewInvalidField(field, field+" cannot be negative", value)
	}
	return nil
}

// RequireOneOf fails when value is not in allowed.
func RequireOneOf[S ~string](field string, value S, allowed ...S) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return apperror.NewInvalidField(field, "invalid "+field, string(value)).
		WithDetail("allowed", allowed)
}

// PeriodOf parses a YYYY-MM-DD date for numbering periods, falling back to now.
func PeriodOf(value string) time.Time {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t
	}
	return time.Now().UTC()
}
