package app

import (
	"sync"

	"github.com/dkeye/Meet/internal/core"
)

// recordingConn is an in-memory ClientConn.
type recordingConn struct {
	mu     sync.Mutex
	events []core.Event
	err    error
	closed bool
}

func (c *recordingConn) Deliver(ev core.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.events = append(c.events, ev)
	return nil
}

func (c *recordingConn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

func (c *recordingConn) Events() []core.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]core.Event, len(c.events))
	copy(out, c.events)
	return out
}

func (c *recordingConn) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Reset forgets everything received so far.
func (c *recordingConn) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = nil
}

func ofType[T core.Event](events []core.Event) []T {
	var out []T
	for _, ev := range events {
		if t, ok := ev.(T); ok {
			out = append(out, t)
		}
	}
	return out
}
