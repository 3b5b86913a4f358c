// Package event defines the inbound push events of a room subscription.
// The set is closed: servers push chat messages and join notices, nothing else.
package event

import (
	"time"

	"room-sync/domain"
)

type RoomEvent interface {
	RoomID() domain.RoomID
}

// ChatReceived is a CHAT frame pushed over the live connection.
type ChatReceived struct {
	Room     int
	Username string
	Nickname string
	Content  string
	At       time.Time
}

func (e ChatReceived) RoomID() domain.RoomID {
	return domain.RoomID(e.Room)
}

// JoinReceived is a JOIN frame pushed over the live connection.
// Content may carry a join marker or be empty.
type JoinReceived struct {
	Room     int
	Username string
	Nickname string
	Content  string
	At       time.Time
}

func (e JoinReceived) RoomID() domain.RoomID {
	return domain.RoomID(e.Room)
}
