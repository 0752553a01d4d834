// Package seed loads the demo dataset that the nursery registers start with.
package seed

import (
	"context"
	"fmt"

	"tcnursery/internal/core/entity"
	"tcnursery/internal/core/numerator"
	"tcnursery/internal/domain"
	"tcnursery/internal/domain/registers"
	"tcnursery/internal/domain/registers/hardening"
	"tcnursery/internal/domain/registers/incubation"
	"tcnursery/internal/domain/registers/inventory"
	"tcnursery/internal/domain/registers/media"
	"tcnursery/internal/domain/registers/subculture"
	numeratorimpl "tcnursery/internal/infrastructure/numerator"
	"tcnursery/pkg/logger"
)

// Summary counts seeded records per register.
type Summary map[string]int

// Load creates the demo records through the register services, then moves the
// numbering sequences past the seeded numbers so new records do not collide.
func Load(ctx context.Context, set *registers.Set, gen numerator.Generator) (Summary, error) {
	summary := make(Summary)

	steps := []func() error{
		func() error { return createAll(ctx, summary, set.Supplier.RegisterService, demoSuppliers()) },
		func() error { return createAll(ctx, summary, set.Inventory.RegisterService, demoInventory()) },
		func() error { return createAll(ctx, summary, set.Media.RegisterService, demoMedia()) },
		func() error { return createAll(ctx, summary, set.Incubation.RegisterService, demoIncubation()) },
		func() error { return createAll(ctx, summary, set.Subculture.RegisterService, demoSubculture()) },
		func() error { return createAll(ctx, summary, set.Sampling.RegisterService, demoSampling()) },
		func() error { return createAll(ctx, summary, set.Hardening.RegisterService, demoHardening()) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return summary, err
		}
	}

	sequences := []struct {
		cfg     numerator.Config
		numbers []numbered
	}{
		{media.BatchNumbering, collect(demoMedia(), func(p *media.Preparation) numbered { return numbered{p.Date, p.BatchNumber} })},
		{incubation.BatchNumbering, collect(demoIncubation(), func(b *incubation.Batch) numbered { return numbered{b.Date, b.BatchNumber} })},
		{subculture.BatchNumbering, collect(demoSubculture(), func(t *subculture.Transfer) numbered { return numbered{t.Date, t.BatchNumber} })},
		{hardening.BatchNumbering, collect(demoHardening(), func(b *hardening.Batch) numbered { return numbered{b.Date, b.BatchNumber} })},
		{inventory.ReceiptNumbering, collectDir(inventory.DirectionIn)},
		{inventory.IssueNumbering, collectDir(inventory.DirectionOut)},
	}
	for _, seq := range sequences {
		if err := advance(ctx, gen, seq.cfg, seq.numbers); err != nil {
			return summary, err
		}
	}

	logger.Info(ctx, "demo dataset loaded", "registers", len(summary))
	return summary, nil
}

func createAll[T entity.Entity[T]](ctx context.Context, summary Summary, svc *domain.RegisterService[T], records []T) error {
	name := svc.Definition().Name
	for _, r := range records {
		if err := svc.Create(ctx, r); err != nil {
			return fmt.Errorf("seed %s: %w", name, err)
		}
	}
	summary[name] = len(records)
	return nil
}

// numbered is a generated number together with the date that picks its period.
type numbered struct {
	date   string
	number string
}

func collect[T any](records []T, fn func(T) numbered) []numbered {
	out := make([]numbered, len(records))
	for i, r := range records {
		out[i] = fn(r)
	}
	return out
}

func collectDir(dir inventory.Direction) []numbered {
	var out []numbered
	for _, m := range demoInventory() {
		if m.Direction == dir {
			out = append(out, numbered{m.Date, m.Reference})
		}
	}
	return out
}

// advance sets each period's sequence to follow its highest seeded number.
func advance(ctx context.Context, gen numerator.Generator, cfg numerator.Config, numbers []numbered) error {
	for _, n := range numbers {
		value := numeratorimpl.ParseNumber(n.number)
		if value < 0 {
			continue
		}
		// SetNextNumber only moves forward, so the order of numbers does not matter.
		if err := gen.SetNextNumber(ctx, cfg, entity.PeriodOf(n.date), value+1); err != nil {
			return fmt.Errorf("advance %s sequence: %w", cfg.Prefix, err)
		}
	}
	return nil
}
