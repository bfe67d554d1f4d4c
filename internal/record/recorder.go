// Package record persists per-tick engine output for later analysis.
package record

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/408adamelb/IMCPROSPERITY/internal/quote"
)

// TickRecord is one line of session output: everything the engine emitted
// for one tick, stamped with the session run id.
type TickRecord struct {
	RunID       string                   `json:"run_id"`
	Timestamp   int64                    `json:"timestamp"`
	Orders      map[string][]quote.Order `json:"orders"`
	Conversions int                      `json:"conversions"`
	CarryState  string                   `json:"carry_state"`
}

// Recorder captures tick records somewhere.
type Recorder interface {
	Record(TickRecord)
}

// JSONLRecorder appends tick records as JSON lines.
type JSONLRecorder struct {
	mu   sync.Mutex
	file *os.File
	enc  *json.Encoder
}

// NewJSONLRecorder creates/opens the target file and returns a recorder.
func NewJSONLRecorder(path string) (*JSONLRecorder, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &JSONLRecorder{
		file: file,
		enc:  json.NewEncoder(file),
	}, nil
}

// Record writes a single tick record to the underlying JSONL file.
func (r *JSONLRecorder) Record(rec TickRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = r.enc.Encode(rec)
}

// Close flushes and closes the file handle.
func (r *JSONLRecorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// Ledger stores tick records in memory for quick inspection.
type Ledger struct {
	mu      sync.Mutex
	records []TickRecord
}

// NewLedger creates an empty ledger optionally pre-sizing storage.
func NewLedger(capacity int) *Ledger {
	if capacity < 0 {
		capacity = 0
	}
	return &Ledger{records: make([]TickRecord, 0, capacity)}
}

// Record appends a tick record to the ledger.
func (l *Ledger) Record(rec TickRecord) {
	l.mu.Lock()
	l.records = append(l.records, rec)
	l.mu.Unlock()
}

// Snapshot returns a copy of the recorded ticks.
func (l *Ledger) Snapshot() []TickRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]TickRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Reset clears all stored records.
func (l *Ledger) Reset() {
	l.mu.Lock()
	l.records = l.records[:0]
	l.mu.Unlock()
}
