package host

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/408adamelb/IMCPROSPERITY/internal/engine"
)

// Bridge connects to a simulator host over websocket: snapshots arrive as
// JSON text messages and results are written back on the same connection.
type Bridge struct {
	url string
	log zerolog.Logger

	mu   sync.Mutex
	conn *websocket.Conn
}

// NewBridge builds a bridge for the given websocket endpoint.
func NewBridge(url string, log zerolog.Logger) *Bridge {
	return &Bridge{url: url, log: log}
}

// Run dials the host and pushes decoded snapshots until the context is
// canceled, reconnecting with backoff on transport errors.
func (b *Bridge) Run(ctx context.Context, out chan<- engine.TickState) error {
	if b.url == "" {
		return fmt.Errorf("host: ws bridge requires an endpoint url")
	}

	backoff := time.Second
	const maxBackoff = 30 * time.Second

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := b.consume(ctx, out); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			b.log.Warn().Err(err).Msg("host bridge disconnected, retrying")
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
			backoff = time.Duration(math.Min(float64(maxBackoff), float64(backoff)*1.8))
			continue
		}
		return nil
	}
}

func (b *Bridge) consume(ctx context.Context, out chan<- engine.TickState) error {
	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, _, err := dialer.DialContext(ctx, b.url, nil)
	if err != nil {
		return err
	}
	defer func() {
		b.setConn(nil)
		conn.Close()
	}()
	b.setConn(conn)

	b.log.Info().Str("url", b.url).Msg("connected to simulator host")

	conn.SetReadLimit(1 << 20)
	conn.SetReadDeadline(time.Now().Add(30 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(30 * time.Second))
		return nil
	})

	pingCtx, pingCancel := context.WithCancel(ctx)
	defer pingCancel()
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				b.mu.Lock()
				conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
				err := conn.WriteMessage(websocket.PingMessage, nil)
				b.mu.Unlock()
				if err != nil {
					b.log.Warn().Err(err).Msg("host ping failed")
					return
				}
			case <-pingCtx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		_, message, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		var state engine.TickState
		if err := json.Unmarshal(message, &state); err != nil {
			b.log.Warn().Err(err).Msg("failed to decode host snapshot")
			continue
		}
		select {
		case out <- state:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Submit writes a result message back to the host. Fails when the bridge is
// not currently connected.
func (b *Bridge) Submit(result engine.Result) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.conn == nil {
		return fmt.Errorf("host: bridge not connected")
	}
	b.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	return b.conn.WriteJSON(result)
}

func (b *Bridge) setConn(conn *websocket.Conn) {
	b.mu.Lock()
	b.conn = conn
	b.mu.Unlock()
}
