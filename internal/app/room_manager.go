package app

import (
	"sort"

	"github.com/dkeye/Meet/internal/core"
	"github.com/dkeye/Meet/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// RoomDirectory maps rooms to their ordered members and keeps the reverse
// client -> room index in step with every Join and Leave.
// Empty rooms are removed immediately. Not safe for concurrent use.
type RoomDirectory struct {
	rooms    map[domain.RoomID][]domain.ClientID
	memberOf map[domain.ClientID]domain.RoomID
}

func NewRoomDirectory() *RoomDirectory {
	return &RoomDirectory{
		rooms:    make(map[domain.RoomID][]domain.ClientID),
		memberOf: make(map[domain.ClientID]domain.RoomID),
	}
}

// Join appends id to room, creating the room if needed, and returns the
// current member sequence. A client already in room is not appended twice.
func (d *RoomDirectory) Join(room domain.RoomID, id domain.ClientID) []domain.ClientID {
	if lo.Contains(d.rooms[room], id) {
		return d.MembersOf(room)
	}
	d.rooms[room] = append(d.rooms[room], id)
	d.memberOf[id] = room
	log.Info().Str("module", "app.rooms").Str("room", room.String()).Str("client", id.String()).Int("members", len(d.rooms[room])).Msg("member added")
	return d.MembersOf(room)
}

// Leave removes id from the room it belongs to and deletes the room when it
// becomes empty. ok is false if the client was in no room.
func (d *RoomDirectory) Leave(id domain.ClientID) (room domain.RoomID, ok bool) {
	room, ok = d.memberOf[id]
	if !ok {
		return "", false
	}
	delete(d.memberOf, id)

	rest := lo.Without(d.rooms[room], id)
	if len(rest) == 0 {
		delete(d.rooms, room)
		log.Info().Str("module", "app.rooms").Str("room", room.String()).Msg("room removed")
	} else {
		d.rooms[room] = rest
	}
	log.Info().Str("module", "app.rooms").Str("room", room.String()).Str("client", id.String()).Msg("member removed")
	return room, true
}

// RoomOf is the O(1) reverse lookup used for chat routing.
func (d *RoomDirectory) RoomOf(id domain.ClientID) (domain.RoomID, bool) {
	room, ok := d.memberOf[id]
	return room, ok
}

// MembersOf returns a snapshot of the room's members, empty if it does not exist.
func (d *RoomDirectory) MembersOf(room domain.RoomID) []domain.ClientID {
	members := d.rooms[room]
	out := make([]domain.ClientID, len(members))
	copy(out, members)
	return out
}

func (d *RoomDirectory) Exists(room domain.RoomID) bool {
	_, ok := d.rooms[room]
	return ok
}

// List returns all rooms sorted by name.
func (d *RoomDirectory) List() []core.RoomInfo {
	out := make([]core.RoomInfo, 0, len(d.rooms))
	for name, members := range d.rooms {
		out = append(out, core.RoomInfo{Name: name, MemberCount: len(members)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
