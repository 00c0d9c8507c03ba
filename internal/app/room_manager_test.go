package app

import (
	"testing"

	"github.com/dkeye/Meet/internal/core"
	"github.com/dkeye/Meet/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestRoomDirectory_Join_KeepsOrder(t *testing.T) {
	req := require.New(t)
	d := NewRoomDirectory()

	req.Equal([]domain.ClientID{"a"}, d.Join("r1", "a"))
	req.Equal([]domain.ClientID{"a", "b"}, d.Join("r1", "b"))
	req.Equal([]domain.ClientID{"a", "b"}, d.MembersOf("r1"))

	room, ok := d.RoomOf("b")
	req.True(ok)
	req.Equal(domain.RoomID("r1"), room)
}

func TestRoomDirectory_Join_NoDuplicates(t *testing.T) {
	req := require.New(t)
	d := NewRoomDirectory()

	d.Join("r1", "a")
	members := d.Join("r1", "a")

	req.Equal([]domain.ClientID{"a"}, members)
}

func TestRoomDirectory_Leave_RemovesEmptyRoom(t *testing.T) {
	req := require.New(t)
	d := NewRoomDirectory()

	// Given a room with a single member
	d.Join("r1", "a")

	// When that member leaves
	room, ok := d.Leave("a")

	// Then the room is gone
	req.True(ok)
	req.Equal(domain.RoomID("r1"), room)
	req.Empty(d.MembersOf("r1"))
	req.False(d.Exists("r1"))
	_, ok = d.RoomOf("a")
	req.False(ok)
}

func TestRoomDirectory_Leave_KeepsOthers(t *testing.T) {
	req := require.New(t)
	d := NewRoomDirectory()
	d.Join("r1", "a")
	d.Join("r1", "b")
	d.Join("r1", "c")

	_, ok := d.Leave("b")

	req.True(ok)
	req.Equal([]domain.ClientID{"a", "c"}, d.MembersOf("r1"))
}

func TestRoomDirectory_Leave_Unknown(t *testing.T) {
	d := NewRoomDirectory()
	d.Join("r1", "a")

	_, ok := d.Leave("zzz")

	require.False(t, ok)
	require.Equal(t, []domain.ClientID{"a"}, d.MembersOf("r1"))
}

func TestRoomDirectory_MembersOf_IsSnapshot(t *testing.T) {
	d := NewRoomDirectory()
	d.Join("r1", "a")

	members := d.MembersOf("r1")
	members[0] = "mutated"

	require.Equal(t, []domain.ClientID{"a"}, d.MembersOf("r1"))
	require.NotNil(t, d.MembersOf("missing"))
	require.Empty(t, d.MembersOf("missing"))
}

func TestRoomDirectory_List(t *testing.T) {
	d := NewRoomDirectory()
	d.Join("r2", "a")
	d.Join("r1", "b")
	d.Join("r1", "c")

	require.Equal(t, []core.RoomInfo{
		{Name: "r1", MemberCount: 2},
		{Name: "r2", MemberCount: 1},
	}, d.List())
}
