package host

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/408adamelb/IMCPROSPERITY/internal/engine"
)

// Replay streams recorded snapshots from a JSONL file, one TickState per
// line.
type Replay struct {
	path string
}

// NewReplay builds a replay source over the given file.
func NewReplay(path string) *Replay {
	return &Replay{path: path}
}

// Run reads the file to the end, pushing each decoded snapshot. Blank lines
// are skipped; a malformed line fails the session.
func (r *Replay) Run(ctx context.Context, out chan<- engine.TickState) error {
	file, err := os.Open(r.path)
	if err != nil {
		return fmt.Errorf("open replay: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var state engine.TickState
		if err := json.Unmarshal(raw, &state); err != nil {
			return fmt.Errorf("replay line %d: %w", line, err)
		}
		select {
		case out <- state:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read replay: %w", err)
	}
	return nil
}
