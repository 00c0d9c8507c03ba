package signal

import (
	"encoding/json"

	"github.com/dkeye/Meet/internal/domain"
	"github.com/rs/zerolog/log"
)

func (ctl *SignalWSController) handleChat(
	sid domain.ClientID,
	conn *WsSignalConn,
	data []byte,
) {
	var p chatPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "adapters.signal").Msg("bad chat payload")
		ctl.sendError(conn, "bad_payload")
		return
	}
	if err := ctl.Engine.ChatMessage(sid, p.Payload, p.DisplayName); err != nil {
		ctl.sendError(conn, errorCode(err))
	}
}
