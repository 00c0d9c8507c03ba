package core

import "github.com/dkeye/Meet/internal/domain"

// RoomInfo is a read-only view of one room for APIs.
type RoomInfo struct {
	Name        domain.RoomID `json:"name"`
	MemberCount int           `json:"client_count"`
}
