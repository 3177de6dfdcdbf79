// Package ws implements ports.TransportPort over a websocket connection.
// It knows nothing about the protocol: it frames, delivers and notifies.
package ws

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"boardroom/internal/ports"
)

// ErrNotConnected is returned by Send while no connection is open.
var ErrNotConnected = errors.New("ws: not connected")

// Transport dials a websocket endpoint and pumps inbound frames to the
// subscribed sink. Each dial starts a new connection epoch identified for
// log correlation; frames from a superseded epoch are discarded.
type Transport struct {
	url  string
	log  *zap.Logger
	sink ports.TransportSink

	mu    sync.Mutex
	conn  *websocket.Conn
	epoch string
}

// New constructs a transport for the given websocket URL.
func New(url string, log *zap.Logger) *Transport {
	return &Transport{url: url, log: log}
}

// Subscribe implements ports.TransportPort.
func (t *Transport) Subscribe(sink ports.TransportSink) {
	t.sink = sink
}

// Dial connects and starts the read pump. The sink's OnOpen fires once the
// connection is established.
func (t *Transport) Dial(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, t.url, nil)
	if err != nil {
		return err
	}

	epoch := uuid.NewString()

	t.mu.Lock()
	t.conn = conn
	t.epoch = epoch
	t.mu.Unlock()

	t.log.Info("connected", zap.String("url", t.url), zap.String("epoch", epoch))
	t.sink.OnOpen()

	go t.readPump(conn, epoch)
	return nil
}

// Send implements ports.TransportPort. Writes are serialized; gorilla
// permits one concurrent writer per connection.
func (t *Transport) Send(raw []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conn == nil {
		return ErrNotConnected
	}
	return t.conn.WriteMessage(websocket.TextMessage, raw)
}

// Close tears the connection down. The read pump reports the close to the
// sink.
func (t *Transport) Close() error {
	t.mu.Lock()
	conn := t.conn
	t.conn = nil
	t.mu.Unlock()

	if conn == nil {
		return nil
	}
	return conn.Close()
}

func (t *Transport) readPump(conn *websocket.Conn, epoch string) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			t.mu.Lock()
			stale := t.epoch != epoch
			if !stale {
				t.conn = nil
			}
			t.mu.Unlock()

			if stale {
				return
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				err = nil
			}
			t.log.Info("read pump ended", zap.String("epoch", epoch), zap.Error(err))
			t.sink.OnClose(err)
			return
		}

		t.mu.Lock()
		stale := t.epoch != epoch
		t.mu.Unlock()
		if stale {
			t.log.Debug("discarding frame from stale epoch", zap.String("epoch", epoch))
			return
		}
		t.sink.OnMessage(raw)
	}
}
