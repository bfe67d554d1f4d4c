package record

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/408adamelb/IMCPROSPERITY/internal/quote"
)

func sampleRecord(ts int64) TickRecord {
	return TickRecord{
		RunID:     "run-1",
		Timestamp: ts,
		Orders: map[string][]quote.Order{
			"PEARLS": {{Product: "PEARLS", Price: 99, Quantity: 5}},
		},
		Conversions: 1,
		CarryState:  "blob",
	}
}

func TestJSONLRecorderWritesLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "orders.jsonl")
	rec, err := NewJSONLRecorder(path)
	if err != nil {
		t.Fatalf("NewJSONLRecorder returned error: %v", err)
	}
	rec.Record(sampleRecord(0))
	rec.Record(sampleRecord(100))
	if err := rec.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("second Close should be a no-op: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open recorded file: %v", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	count := 0
	for scanner.Scan() {
		var decoded TickRecord
		if err := json.Unmarshal(scanner.Bytes(), &decoded); err != nil {
			t.Fatalf("line %d not valid JSON: %v", count, err)
		}
		if decoded.RunID != "run-1" || decoded.Conversions != 1 {
			t.Fatalf("line %d mismatch: %+v", count, decoded)
		}
		count++
	}
	if count != 2 {
		t.Fatalf("expected 2 lines, got %d", count)
	}
}

func TestLedgerSnapshotIsolation(t *testing.T) {
	ledger := NewLedger(4)
	ledger.Record(sampleRecord(0))

	snap := ledger.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("expected 1 record, got %d", len(snap))
	}
	snap[0].RunID = "mutated"
	if ledger.Snapshot()[0].RunID != "run-1" {
		t.Fatalf("snapshot mutation leaked into ledger")
	}

	ledger.Reset()
	if len(ledger.Snapshot()) != 0 {
		t.Fatalf("expected empty ledger after reset")
	}
}
