package domain

// RoomID is a caller-supplied opaque key, usually derived from the call URL.
type RoomID string

func (id RoomID) String() string { return string(id) }
