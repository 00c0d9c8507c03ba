package signal

import (
	"encoding/json"

	"github.com/dkeye/Meet/internal/domain"
	"github.com/rs/zerolog/log"
)

// handleRelay forwards an opaque negotiation payload to one peer.
func (ctl *SignalWSController) handleRelay(
	sid domain.ClientID,
	conn *WsSignalConn,
	data []byte,
) {
	var p relayPayload
	if err := json.Unmarshal(data, &p); err != nil || p.To == "" {
		log.Warn().Err(err).Str("module", "adapters.signal").Msg("bad signal payload")
		ctl.sendError(conn, "bad_payload")
		return
	}
	if err := ctl.Engine.Signal(sid, domain.ClientID(p.To), p.Payload); err != nil {
		ctl.sendError(conn, errorCode(err))
	}
}
