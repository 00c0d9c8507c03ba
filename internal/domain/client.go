// Package domain contains entity without logic, just meta-data
package domain

import (
	"github.com/google/uuid"
)

// ClientID identifies one connected session. It is assigned by the transport
// on connect and never reused while the session is live.
type ClientID string

// NewClientID is a tiny helper to avoid ad-hoc id generation in adapters.
func NewClientID() ClientID {
	return ClientID(uuid.NewString())
}

func (id ClientID) String() string { return string(id) }
