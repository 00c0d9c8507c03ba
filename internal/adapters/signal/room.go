package signal

import (
	"encoding/json"
	"errors"

	"github.com/dkeye/Meet/internal/app"
	"github.com/dkeye/Meet/internal/domain"
	"github.com/rs/zerolog/log"
)

func (ctl *SignalWSController) handleJoin(
	sid domain.ClientID,
	conn *WsSignalConn,
	data []byte,
) {
	var p joinPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "adapters.signal").Msg("bad join payload")
		ctl.sendError(conn, "bad_payload")
		return
	}

	log.Info().Str("module", "adapters.signal").Str("client", sid.String()).Str("room", p.Room).Msg("join")
	if err := ctl.Engine.JoinRoom(sid, domain.RoomID(p.Room)); err != nil {
		ctl.sendError(conn, errorCode(err))
	}
}

// errorCode maps engine errors onto the short codes clients see.
func errorCode(err error) string {
	switch {
	case errors.Is(err, app.ErrAlreadyJoined):
		return "already_joined"
	case errors.Is(err, app.ErrNotJoined):
		return "not_joined"
	case errors.Is(err, app.ErrEmptyRoom):
		return "empty_room"
	case errors.Is(err, app.ErrUnknownClient):
		return "unknown_client"
	default:
		return "internal"
	}
}
