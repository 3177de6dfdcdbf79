// Package app contains the client core: the dispatcher that owns the
// outbound path and the orchestrator state machine that applies server
// events to the session state.
package app

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"boardroom/internal/ports"
	"boardroom/internal/protocol"
)

// Dispatcher serializes outbound commands onto the transport and decodes
// inbound frames into typed events. While the connection is down, commands
// queue FIFO and are flushed in order exactly once on open. The queue is
// the only shared mutable here; it is appended and drained under mu.
type Dispatcher struct {
	transport ports.TransportPort
	log       *zap.Logger

	mu    sync.Mutex
	open  bool
	queue [][]byte
}

// NewDispatcher constructs a dispatcher over the given transport.
func NewDispatcher(transport ports.TransportPort, log *zap.Logger) *Dispatcher {
	return &Dispatcher{transport: transport, log: log}
}

// Send builds the command's envelope and transmits it, or queues it while
// disconnected. Fire-and-forget: failures are logged, never returned, and
// no reply is awaited.
func (d *Dispatcher) Send(cmd protocol.Command) {
	raw, err := protocol.EncodeCommand(cmd)
	if err != nil {
		d.log.Error("encode command", zap.String("action", cmd.CommandAction()), zap.Error(err))
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.open {
		d.queue = append(d.queue, raw)
		d.log.Debug("queued command while disconnected",
			zap.String("action", cmd.CommandAction()), zap.Int("queued", len(d.queue)))
		return
	}
	if err := d.transport.Send(raw); err != nil {
		d.log.Warn("send command", zap.String("action", cmd.CommandAction()), zap.Error(err))
	}
}

// HandleOpen marks the connection writable and flushes the outbound queue
// in FIFO order.
func (d *Dispatcher) HandleOpen() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.open = true
	for _, raw := range d.queue {
		if err := d.transport.Send(raw); err != nil {
			d.log.Warn("flush queued command", zap.Error(err))
		}
	}
	d.queue = nil
}

// HandleClose marks the connection down; subsequent sends queue.
func (d *Dispatcher) HandleClose() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.open = false
}

// Decode parses one raw frame. Unknown actions and malformed frames are
// dropped with a diagnostic; the second return is false for both.
func (d *Dispatcher) Decode(raw []byte) (protocol.Event, bool) {
	ev, err := protocol.DecodeEvent(raw)
	if err != nil {
		if errors.Is(err, protocol.ErrUnknownAction) {
			d.log.Debug("ignoring unknown action", zap.Error(err))
		} else {
			d.log.Warn("dropping malformed frame", zap.Error(err))
		}
		return nil, false
	}
	return ev, true
}
