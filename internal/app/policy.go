package app

import (
	"fmt"

	"github.com/dkeye/Meet/internal/domain"
)

type BackpressureAction int

const (
	NoAction BackpressureAction = iota
	DropFrame
	KickMember
)

// Policy decides what happens to a client whose send buffer is full.
type Policy interface {
	OnBackPressure(id domain.ClientID) BackpressureAction
}

// DropPolicy loses the event and keeps the client.
type DropPolicy struct{}

func (DropPolicy) OnBackPressure(domain.ClientID) BackpressureAction { return DropFrame }

// KickPolicy closes the slow client's connection; the transport then
// reports a regular disconnect.
type KickPolicy struct{}

func (KickPolicy) OnBackPressure(domain.ClientID) BackpressureAction { return KickMember }

// PolicyFromString maps the config value to a Policy.
func PolicyFromString(name string) (Policy, error) {
	switch name {
	case "", "drop":
		return DropPolicy{}, nil
	case "kick":
		return KickPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown backpressure policy %q", name)
	}
}
