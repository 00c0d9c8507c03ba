package app

import (
	"time"

	"github.com/dkeye/Meet/internal/core"
	"github.com/dkeye/Meet/internal/domain"
	"github.com/rs/zerolog/log"
)

// ClientState is the per-session lifecycle: Connected -> Joined -> gone.
type ClientState int

const (
	StateConnected ClientState = iota
	StateJoined
)

func (s ClientState) String() string {
	switch s {
	case StateConnected:
		return "connected"
	case StateJoined:
		return "joined"
	default:
		return "unknown"
	}
}

type clientEntry struct {
	Conn     core.ClientConn
	State    ClientState
	JoinedAt time.Time
}

// Registry tracks live clients, their outbound connection and presence
// metadata. It is not safe for concurrent use; the Engine serializes access.
type Registry struct {
	clients map[domain.ClientID]*clientEntry
}

func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[domain.ClientID]*clientEntry),
	}
}

// Bind registers a freshly connected client. It returns false if the id is
// already live.
func (r *Registry) Bind(id domain.ClientID, conn core.ClientConn) bool {
	if _, ok := r.clients[id]; ok {
		return false
	}
	r.clients[id] = &clientEntry{Conn: conn, State: StateConnected}
	log.Debug().Str("module", "app.registry").Str("client", id.String()).Msg("bound client")
	return true
}

func (r *Registry) Conn(id domain.ClientID) (core.ClientConn, bool) {
	e, ok := r.clients[id]
	if !ok {
		return nil, false
	}
	return e.Conn, true
}

func (r *Registry) State(id domain.ClientID) (ClientState, bool) {
	e, ok := r.clients[id]
	if !ok {
		return 0, false
	}
	return e.State, true
}

// MarkJoined moves the client to StateJoined and records its join time.
func (r *Registry) MarkJoined(id domain.ClientID, at time.Time) bool {
	e, ok := r.clients[id]
	if !ok {
		return false
	}
	e.State = StateJoined
	e.JoinedAt = at
	return true
}

// Unbind drops every reference to the client and returns the join time, if
// one was recorded.
func (r *Registry) Unbind(id domain.ClientID) (joinedAt time.Time, ok bool) {
	e, ok := r.clients[id]
	if !ok {
		return time.Time{}, false
	}
	delete(r.clients, id)
	log.Debug().Str("module", "app.registry").Str("client", id.String()).Msg("unbind client")
	return e.JoinedAt, true
}

func (r *Registry) Len() int { return len(r.clients) }
