package app

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dkeye/Meet/internal/core"
	"github.com/dkeye/Meet/internal/domain"
	"github.com/rs/zerolog/log"
)

// Engine is the relay core. It owns the client registry, the room directory
// and the transcripts, and serializes every event under one lock so that
// chat fan-out order always matches transcript order.
type Engine struct {
	mu sync.Mutex

	clients     *Registry
	rooms       *RoomDirectory
	transcripts *TranscriptStore

	policy           Policy
	evictTranscripts bool
	now              func() time.Time
}

type Option func(*Engine)

func WithPolicy(p Policy) Option {
	return func(e *Engine) { e.policy = p }
}

// WithTranscriptEviction drops a room's chat history once its last member leaves.
func WithTranscriptEviction(on bool) Option {
	return func(e *Engine) { e.evictTranscripts = on }
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		clients:     NewRegistry(),
		rooms:       NewRoomDirectory(),
		transcripts: NewTranscriptStore(),
		policy:      DropPolicy{},
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Connect registers a transport-assigned client id with its outbound
// connection and greets it with its own id.
func (e *Engine) Connect(id domain.ClientID, conn core.ClientConn) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.clients.Bind(id, conn) {
		return fmt.Errorf("connect %s: %w", id, ErrClientExists)
	}
	log.Info().Str("module", "app.engine").Str("client", id.String()).Int("clients", e.clients.Len()).Msg("client connected")
	e.deliver(id, core.NewConnected(id))
	return nil
}

// JoinRoom puts a Connected client into room, announces the new member list
// to everyone in the room including the joiner, then replays the transcript
// to the joiner only.
func (e *Engine) JoinRoom(id domain.ClientID, room domain.RoomID) error {
	if room == "" {
		return ErrEmptyRoom
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	state, ok := e.clients.State(id)
	if !ok {
		return fmt.Errorf("join %s: %w", id, ErrUnknownClient)
	}
	if state == StateJoined {
		current, _ := e.rooms.RoomOf(id)
		log.Warn().Str("module", "app.engine").Str("client", id.String()).Str("room", room.String()).Str("current", current.String()).Msg("rejected second join")
		return fmt.Errorf("join %s: %w", room, ErrAlreadyJoined)
	}

	e.clients.MarkJoined(id, e.now())
	members := e.rooms.Join(room, id)

	joined := core.NewMemberJoined(id, members)
	for _, m := range members {
		e.deliver(m, joined)
	}

	history := e.transcripts.ReplayTo(room)
	for _, entry := range history {
		e.deliver(id, core.NewChatMessage(entry))
	}
	log.Info().Str("module", "app.engine").Str("client", id.String()).Str("room", room.String()).Int("members", len(members)).Int("replayed", len(history)).Msg("joined room")
	return nil
}

// Signal forwards payload verbatim to target, tagged with the sender. The
// target is not required to share a room with the sender; an unknown target
// is silently dropped.
func (e *Engine) Signal(from, target domain.ClientID, payload string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireJoined(from); err != nil {
		return fmt.Errorf("signal: %w", err)
	}
	e.deliver(target, core.NewSignal(from, payload))
	return nil
}

// ChatMessage appends to the sender's room transcript and broadcasts to every
// member, the sender included.
func (e *Engine) ChatMessage(from domain.ClientID, payload, displayName string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireJoined(from); err != nil {
		return fmt.Errorf("chat: %w", err)
	}
	room, ok := e.rooms.RoomOf(from)
	if !ok {
		return nil
	}

	entry := domain.NewChatEntry(from, displayName, payload)
	e.transcripts.Append(room, entry)

	msg := core.NewChatMessage(entry)
	for _, m := range e.rooms.MembersOf(room) {
		e.deliver(m, msg)
	}
	log.Debug().Str("module", "app.engine").Str("client", from.String()).Str("room", room.String()).Msg("chat message")
	return nil
}

// Disconnect removes the client from its room, tells the remaining members
// and releases the id. Safe to call for unknown or never-joined clients and
// safe to call twice.
func (e *Engine) Disconnect(id domain.ClientID) {
	e.mu.Lock()
	defer e.mu.Unlock()

	joinedAt, ok := e.clients.Unbind(id)
	if !ok {
		return
	}

	logger := log.Info().Str("module", "app.engine").Str("client", id.String())
	if !joinedAt.IsZero() {
		logger = logger.Dur("online", e.now().Sub(joinedAt))
	}

	room, ok := e.rooms.Leave(id)
	if !ok {
		logger.Msg("client disconnected")
		return
	}

	left := core.NewMemberLeft(id)
	remaining := e.rooms.MembersOf(room)
	for _, m := range remaining {
		e.deliver(m, left)
	}
	if len(remaining) == 0 && e.evictTranscripts {
		e.transcripts.Evict(room)
	}
	logger.Str("room", room.String()).Int("remaining", len(remaining)).Msg("client disconnected")
}

// MembersOf is a read-only snapshot of a room's members.
func (e *Engine) MembersOf(room domain.RoomID) []domain.ClientID {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rooms.MembersOf(room)
}

func (e *Engine) Rooms() []core.RoomInfo {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rooms.List()
}

func (e *Engine) requireJoined(id domain.ClientID) error {
	state, ok := e.clients.State(id)
	if !ok {
		return ErrUnknownClient
	}
	if state != StateJoined {
		return ErrNotJoined
	}
	return nil
}

// deliver hands ev to the client's connection. Failures are absorbed: the
// sender is never told, and a full buffer is resolved by the Policy.
func (e *Engine) deliver(to domain.ClientID, ev core.Event) {
	conn, ok := e.clients.Conn(to)
	if !ok {
		log.Debug().Str("module", "app.engine").Str("to", to.String()).Str("event", ev.EventType()).Msg("dropped event for unknown client")
		return
	}
	err := conn.Deliver(ev)
	if err == nil {
		return
	}
	log.Debug().Err(err).Str("module", "app.engine").Str("to", to.String()).Str("event", ev.EventType()).Msg("delivery failed")
	if !errors.Is(err, core.ErrBackpressure) || e.policy == nil {
		return
	}
	switch e.policy.OnBackPressure(to) {
	case KickMember:
		log.Warn().Str("module", "app.engine").Str("client", to.String()).Msg("kicking slow client")
		conn.Close()
	case DropFrame, NoAction:
	}
}
