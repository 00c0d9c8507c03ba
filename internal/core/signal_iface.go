package core

import "errors"

var (
	ErrBackpressure = errors.New("backpressure")
	ErrConnClosed   = errors.New("connection closed")
)

// Frame is a raw encoded payload ready for the wire.
type Frame []byte

// ClientConn abstracts a client's outbound event channel.
// Owned by the adapter; the adapter must Close() it.
// Deliver must not block: a full buffer yields ErrBackpressure.
type ClientConn interface {
	Deliver(Event) error
	Close()
}
