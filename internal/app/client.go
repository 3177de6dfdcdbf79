package app

import (
	"context"

	"go.uber.org/zap"
)

type signalKind int

const (
	signalOpen signalKind = iota
	signalMessage
	signalClose
)

type signal struct {
	kind signalKind
	raw  []byte
	err  error
}

// Client ties the transport notifications, dispatcher and orchestrator into
// a single-consumer loop: one inbound event is fully handled, presentation
// included, before the next is taken.
type Client struct {
	dispatcher   *Dispatcher
	orchestrator *Orchestrator
	log          *zap.Logger

	inbox chan signal
}

// NewClient constructs the event loop over an already-wired dispatcher and
// orchestrator. The client itself is the transport sink.
func NewClient(dispatcher *Dispatcher, orchestrator *Orchestrator, log *zap.Logger) *Client {
	return &Client{
		dispatcher:   dispatcher,
		orchestrator: orchestrator,
		log:          log,
		inbox:        make(chan signal, 64),
	}
}

// OnOpen implements ports.TransportSink.
func (c *Client) OnOpen() {
	c.inbox <- signal{kind: signalOpen}
}

// OnMessage implements ports.TransportSink.
func (c *Client) OnMessage(raw []byte) {
	c.inbox <- signal{kind: signalMessage, raw: raw}
}

// OnClose implements ports.TransportSink.
func (c *Client) OnClose(err error) {
	c.inbox <- signal{kind: signalClose, err: err}
}

// Run consumes transport signals until the context ends. Events are handled
// strictly one at a time in arrival order.
func (c *Client) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case sig := <-c.inbox:
			c.handle(sig)
		}
	}
}

func (c *Client) handle(sig signal) {
	switch sig.kind {
	case signalOpen:
		c.log.Info("connection open")
		c.dispatcher.HandleOpen()
	case signalMessage:
		ev, ok := c.dispatcher.Decode(sig.raw)
		if !ok {
			return
		}
		c.orchestrator.HandleEvent(ev)
	case signalClose:
		c.log.Info("connection closed", zap.Error(sig.err))
		c.dispatcher.HandleClose()
	}
}
