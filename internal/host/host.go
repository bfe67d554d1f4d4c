// Package host connects the decision engine to whatever supplies tick
// snapshots: a deterministic stub generator, a JSONL replay file, or a live
// simulator over websocket.
package host

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/408adamelb/IMCPROSPERITY/internal/config"
	"github.com/408adamelb/IMCPROSPERITY/internal/engine"
)

const (
	// SourceStub emits deterministic synthetic snapshots (useful for tests/offline work).
	SourceStub = "stub"
	// SourceReplay reads recorded snapshots from a JSONL file.
	SourceReplay = "replay"
	// SourceWS bridges to a live simulator host over websocket.
	SourceWS = "ws"
)

// Source streams tick snapshots until the context is canceled or the
// session ends.
type Source interface {
	Run(ctx context.Context, out chan<- engine.TickState) error
}

// Sink consumes per-tick results. Only the websocket bridge has a real
// destination; the others discard.
type Sink interface {
	Submit(result engine.Result) error
}

// NopSink discards results for sources with no return channel.
type NopSink struct{}

// Submit drops the result.
func (NopSink) Submit(engine.Result) error { return nil }

// Build constructs the source (and matching sink) named by configuration.
func Build(cfg config.Host, log zerolog.Logger) (Source, Sink, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Source)) {
	case "", SourceStub:
		return NewStub(cfg.Products, cfg.TickCount), NopSink{}, nil
	case SourceReplay:
		return NewReplay(cfg.ReplayPath), NopSink{}, nil
	case SourceWS:
		bridge := NewBridge(cfg.WSURL, log)
		return bridge, bridge, nil
	default:
		return nil, nil, fmt.Errorf("host: unknown source %q", cfg.Source)
	}
}
