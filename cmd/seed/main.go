// Package main provides a CLI tool that exports the demo dataset as JSON fixtures.
//
// Usage: seed [output-dir]
//
// Without an output directory the whole dataset is written to stdout.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"tcnursery/internal/app"
	"tcnursery/internal/domain/registers"
	"tcnursery/internal/infrastructure/numerator"
	"tcnursery/internal/seed"
	"tcnursery/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	gen := numerator.New()
	set := app.NewRegisters(gen, nil)

	summary, err := seed.Load(ctx, set, gen)
	if err != nil {
		log.Fatalw("failed to load demo data", "error", err)
	}
	log.Infow("demo data loaded", "records", summary)

	dataset, err := snapshot(ctx, set)
	if err != nil {
		log.Fatalw("failed to read registers", "error", err)
	}

	if len(os.Args) < 2 {
		if err := writeJSON(os.Stdout, dataset); err != nil {
			log.Fatalw("failed to write dataset", "error", err)
		}
		return
	}

	dir := os.Args[1]
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatalw("failed to create output dir", "dir", dir, "error", err)
	}
	for name, records := range dataset {
		path := filepath.Join(dir, name+".json")
		if err := writeFile(path, records); err != nil {
			log.Fatalw("failed to write fixture", "path", path, "error", err)
		}
		log.Infow("fixture written", "path", path)
	}

	log.Info("export completed successfully")
}

// snapshot reads every register keyed by register name.
func snapshot(ctx context.Context, set *registers.Set) (map[string]any, error) {
	out := make(map[string]any, 7)
	readers := []struct {
		name string
		read func(context.Context) (any, error)
	}{
		{"media", func(ctx context.Context) (any, error) { return set.Media.Records(ctx) }},
		{"incubation", func(ctx context.Context) (any, error) { return set.Incubation.Records(ctx) }},
		{"subculture", func(ctx context.Context) (any, error) { return set.Subculture.Records(ctx) }},
		{"sampling", func(ctx context.Context) (any, error) { return set.Sampling.Records(ctx) }},
		{"hardening", func(ctx context.Context) (any, error) { return set.Hardening.Records(ctx) }},
		{"inventory", func(ctx context.Context) (any, error) { return set.Inventory.Records(ctx) }},
		{"supplier", func(ctx context.Context) (any, error) { return set.Supplier.Records(ctx) }},
	}
	for _, r := range readers {
		records, err := r.read(ctx)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", r.name, err)
		}
		out[r.name] = records
	}
	return out, nil
}

func writeFile(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeJSON(f, v); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
