package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Bind_RejectsLiveID(t *testing.T) {
	req := require.New(t)
	r := NewRegistry()

	req.True(r.Bind("a", &recordingConn{}))
	req.False(r.Bind("a", &recordingConn{}))
	req.Equal(1, r.Len())
}

func TestRegistry_Lifecycle(t *testing.T) {
	req := require.New(t)
	r := NewRegistry()
	conn := &recordingConn{}
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	// Given a connected client
	r.Bind("a", conn)
	state, ok := r.State("a")
	req.True(ok)
	req.Equal(StateConnected, state)

	// When it joins
	req.True(r.MarkJoined("a", at))

	// Then its state and join time are tracked
	state, _ = r.State("a")
	req.Equal(StateJoined, state)
	got, ok := r.Conn("a")
	req.True(ok)
	req.Same(conn, got)

	joinedAt, ok := r.Unbind("a")
	req.True(ok)
	req.Equal(at, joinedAt)

	_, ok = r.Unbind("a")
	req.False(ok)
	_, ok = r.State("a")
	req.False(ok)
}

func TestRegistry_MarkJoined_Unknown(t *testing.T) {
	require.False(t, NewRegistry().MarkJoined("ghost", time.Now()))
}
