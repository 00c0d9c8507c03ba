package app

import "errors"

var (
	ErrClientExists  = errors.New("client already connected")
	ErrUnknownClient = errors.New("unknown client")
	ErrAlreadyJoined = errors.New("already in a room")
	ErrNotJoined     = errors.New("not in a room")
	ErrEmptyRoom     = errors.New("empty room id")
)
