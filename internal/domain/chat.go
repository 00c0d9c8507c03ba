package domain

// ChatEntry is one message of a room transcript. Immutable once created.
type ChatEntry struct {
	Sender string   `json:"displayName"`
	Data   string   `json:"payload"`
	Origin ClientID `json:"from"`
}

// NewChatEntry keeps construction obvious in the engine.
func NewChatEntry(origin ClientID, sender, data string) ChatEntry {
	return ChatEntry{Sender: sender, Data: data, Origin: origin}
}
