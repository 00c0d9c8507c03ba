package core

import "github.com/dkeye/Meet/internal/domain"

// Server to client event names.
const (
	EventConnected    = "connected"
	EventMemberJoined = "member-joined"
	EventMemberLeft   = "member-left"
	EventSignal       = "signal"
	EventChatMessage  = "chat-message"
	EventPong         = "pong"
	EventError        = "error"
)

// Event is anything the engine hands to a ClientConn.
type Event interface {
	EventType() string
}

type Connected struct {
	Type     string          `json:"type"`
	ClientID domain.ClientID `json:"clientId"`
}

func NewConnected(id domain.ClientID) Connected {
	return Connected{Type: EventConnected, ClientID: id}
}

func (Connected) EventType() string { return EventConnected }

// MemberJoined carries the joiner and the full member list after the join.
type MemberJoined struct {
	Type     string            `json:"type"`
	ClientID domain.ClientID   `json:"clientId"`
	Members  []domain.ClientID `json:"members"`
}

func NewMemberJoined(id domain.ClientID, members []domain.ClientID) MemberJoined {
	return MemberJoined{Type: EventMemberJoined, ClientID: id, Members: members}
}

func (MemberJoined) EventType() string { return EventMemberJoined }

type MemberLeft struct {
	Type     string          `json:"type"`
	ClientID domain.ClientID `json:"clientId"`
}

func NewMemberLeft(id domain.ClientID) MemberLeft {
	return MemberLeft{Type: EventMemberLeft, ClientID: id}
}

func (MemberLeft) EventType() string { return EventMemberLeft }

// Signal is an opaque negotiation payload tagged with its originator.
type Signal struct {
	Type    string          `json:"type"`
	From    domain.ClientID `json:"from"`
	Payload string          `json:"payload"`
}

func NewSignal(from domain.ClientID, payload string) Signal {
	return Signal{Type: EventSignal, From: from, Payload: payload}
}

func (Signal) EventType() string { return EventSignal }

type ChatMessage struct {
	Type        string          `json:"type"`
	Payload     string          `json:"payload"`
	DisplayName string          `json:"displayName"`
	From        domain.ClientID `json:"from"`
}

func NewChatMessage(e domain.ChatEntry) ChatMessage {
	return ChatMessage{Type: EventChatMessage, Payload: e.Data, DisplayName: e.Sender, From: e.Origin}
}

func (ChatMessage) EventType() string { return EventChatMessage }

type Pong struct {
	Type string `json:"type"`
}

func NewPong() Pong { return Pong{Type: EventPong} }

func (Pong) EventType() string { return EventPong }

// ErrorEvent tells a single client its last event was rejected.
type ErrorEvent struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

func NewErrorEvent(msg string) ErrorEvent { return ErrorEvent{Type: EventError, Error: msg} }

func (ErrorEvent) EventType() string { return EventError }
