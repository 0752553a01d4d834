// Package numerator provides the contract for batch and reference auto-numbering.
package numerator

// Reset periods for a numbering sequence.
const (
	ResetYear  = "year"
	ResetMonth = "month"
	ResetNever = "never"
)

// Config holds numbering configuration for one register field.
type Config struct {
	// Prefix added to all numbers (e.g. "MB" for media batches)
	Prefix string

	// IncludeYear adds the year to the number
	IncludeYear bool

	// PadWidth is the minimum width of the counter (default 5)
	PadWidth int

	// ResetPeriod: "year", "month", "never"
	ResetPeriod string
}

// DefaultConfig numbers as PREFIX-YYYY-NNNNN, restarting every year.
func DefaultConfig(prefix string) Config {
	return Config{
		Prefix:      prefix,
		IncludeYear: true,
		PadWidth:    5,
		ResetPeriod: ResetYear,
	}
}
