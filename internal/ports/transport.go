// Package ports defines the interfaces the client core depends on: the
// persistent connection and the presentation layer. Implementations live in
// subpackages.
package ports

// TransportSink receives connection lifecycle notifications from a
// transport. Implementations must not block; frames are handed off to the
// single-consumer event loop.
type TransportSink interface {
	// OnOpen signals the connection is established and writable.
	OnOpen()
	// OnMessage delivers one raw inbound frame.
	OnMessage(raw []byte)
	// OnClose signals the connection is gone. err is nil on a clean close.
	OnClose(err error)
}

// TransportPort is the persistent connection the dispatcher writes to. It
// carries no protocol knowledge: framing, delivery and reconnect policy are
// its implementation's concern, and delivery is assumed at-most-once in
// order within a connection epoch.
type TransportPort interface {
	// Subscribe registers the sink notified of opens, frames and closes.
	// Must be called before Dial-style activation.
	Subscribe(sink TransportSink)

	// Send transmits one raw frame. Returns an error when the connection
	// is not open; callers queue and retry on the next open.
	Send(raw []byte) error
}
