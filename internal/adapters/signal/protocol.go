package signal

// Client to server event names.
const (
	typeJoinRoom    = "join-room"
	typeSignal      = "signal"
	typeChatMessage = "chat-message"
	typePing        = "ping"
)

type envelope struct {
	Type string `json:"type"`
}

type joinPayload struct {
	Type string `json:"type"`
	Room string `json:"room"`
}

type relayPayload struct {
	Type    string `json:"type"`
	To      string `json:"to"`
	Payload string `json:"payload"`
}

type chatPayload struct {
	Type        string `json:"type"`
	Payload     string `json:"payload"`
	DisplayName string `json:"displayName"`
}
