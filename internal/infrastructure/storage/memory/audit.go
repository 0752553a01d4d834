package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"

	"tcnursery/internal/core/id"
	"tcnursery/internal/domain/audit"
)

// CompressionAlgo specifies the compression algorithm used for a payload.
type CompressionAlgo string

const (
	CompressionNone CompressionAlgo = "none"
	CompressionZstd CompressionAlgo = "zstd"
)

// DefaultCompressThreshold is the payload size in bytes above which changes are compressed.
const DefaultCompressThreshold = 10 * 1024

// journalRow is an entry as kept in memory: large payloads live compressed.
type journalRow struct {
	entry      audit.Entry
	compressed []byte
	algo       CompressionAlgo
}

// Journal is an append-only audit log kept in memory.
type Journal struct {
	encoder           *zstd.Encoder
	decoder           *zstd.Decoder
	compressThreshold int

	mu   sync.RWMutex
	rows []journalRow
}

var _ audit.Journal = (*Journal)(nil)

// NewJournal creates a journal. threshold <= 0 selects DefaultCompressThreshold.
func NewJournal(threshold int) (*Journal, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		_ = encoder.Close()
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	if threshold <= 0 {
		threshold = DefaultCompressThreshold
	}

	return &Journal{
		encoder:           encoder,
		decoder:           decoder,
		compressThreshold: threshold,
	}, nil
}

// Log records an audit entry.
func (j *Journal) Log(ctx context.Context, entry audit.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if id.IsNil(entry.ID) {
		entry.ID = id.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	row := journalRow{entry: entry, algo: CompressionNone}
	if len(entry.Changes) > j.compressThreshold {
		row.compressed = j.encoder.EncodeAll(entry.Changes, nil)
		row.entry.Changes = nil
		row.algo = CompressionZstd
	}

	j.mu.Lock()
	j.rows = append(j.rows, row)
	j.mu.Unlock()
	return nil
}

// List returns entries of entityType, newest first.
func (j *Journal) List(ctx context.Context, entityType string, limit int) ([]audit.Entry, error) {
	return j.collect(ctx, limit, func(e audit.Entry) bool {
		return e.EntityType == entityType
	})
}

// History returns entries of one record, newest first.
func (j *Journal) History(ctx context.Context, entityType string, entityID id.ID, limit int) ([]audit.Entry, error) {
	return j.collect(ctx, limit, func(e audit.Entry) bool {
		return e.EntityType == entityType && e.EntityID == entityID
	})
}

// Compressed reports how many stored payloads are zstd-compressed.
func (j *Journal) Compressed() int {
	j.mu.RLock()
	defer j.mu.RUnlock()

	n := 0
	for _, r := range j.rows {
		if r.algo == CompressionZstd {
			n++
		}
	}
	return n
}

// Close releases the codec resources.
func (j *Journal) Close() error {
	j.decoder.Close()
	return j.encoder.Close()
}

func (j *Journal) collect(ctx context.Context, limit int, keep func(audit.Entry) bool) ([]audit.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	j.mu.RLock()
	rows := j.rows
	j.mu.RUnlock()

	entries := make([]audit.Entry, 0)
	for i := len(rows) - 1; i >= 0; i-- {
		if limit > 0 && len(entries) >= limit {
			break
		}
		r := rows[i]
		if !keep(r.entry) {
			continue
		}

		e := r.entry
		// Decompress if needed
		if r.algo == CompressionZstd && len(r.compressed) > 0 {
			decompressed, err := j.decoder.DecodeAll(r.compressed, nil)
			if err != nil {
				return nil, fmt.Errorf("decompress changes: %w", err)
			}
			e.Changes = decompressed
		}
		entries = append(entries, e)
	}
	return entries, nil
}
