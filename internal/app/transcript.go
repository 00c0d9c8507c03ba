package app

import "github.com/dkeye/Meet/internal/domain"

// TranscriptStore keeps the ordered chat history of every room.
// Not safe for concurrent use.
type TranscriptStore struct {
	entries map[domain.RoomID][]domain.ChatEntry
}

func NewTranscriptStore() *TranscriptStore {
	return &TranscriptStore{entries: make(map[domain.RoomID][]domain.ChatEntry)}
}

func (s *TranscriptStore) Append(room domain.RoomID, e domain.ChatEntry) {
	s.entries[room] = append(s.entries[room], e)
}

// ReplayTo returns a copy of the room's transcript in append order.
func (s *TranscriptStore) ReplayTo(room domain.RoomID) []domain.ChatEntry {
	entries := s.entries[room]
	out := make([]domain.ChatEntry, len(entries))
	copy(out, entries)
	return out
}

func (s *TranscriptStore) Evict(room domain.RoomID) {
	delete(s.entries, room)
}

func (s *TranscriptStore) Has(room domain.RoomID) bool {
	_, ok := s.entries[room]
	return ok
}
