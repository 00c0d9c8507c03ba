package app

import (
	"testing"

	"github.com/dkeye/Meet/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestTranscriptStore_ReplayTo_Ordered(t *testing.T) {
	req := require.New(t)
	s := NewTranscriptStore()
	m1 := domain.NewChatEntry("a", "Ann", "one")
	m2 := domain.NewChatEntry("b", "Bob", "two")
	m3 := domain.NewChatEntry("a", "Ann", "three")

	s.Append("r1", m1)
	s.Append("r1", m2)
	s.Append("r2", domain.NewChatEntry("c", "Cid", "elsewhere"))
	s.Append("r1", m3)

	req.Equal([]domain.ChatEntry{m1, m2, m3}, s.ReplayTo("r1"))
	req.Len(s.ReplayTo("r2"), 1)
}

func TestTranscriptStore_ReplayTo_UnknownRoom(t *testing.T) {
	s := NewTranscriptStore()

	got := s.ReplayTo("nope")

	require.NotNil(t, got)
	require.Empty(t, got)
	require.False(t, s.Has("nope"))
}

func TestTranscriptStore_Evict(t *testing.T) {
	s := NewTranscriptStore()
	s.Append("r1", domain.NewChatEntry("a", "Ann", "one"))

	s.Evict("r1")

	require.False(t, s.Has("r1"))
	require.Empty(t, s.ReplayTo("r1"))
}
