package transport

import "time"

// Frame type discriminators shared with the server.
const (
	frameChat = "CHAT"
	frameJoin = "JOIN"
)

// JoinFrame subscribes this client to a room.
// Content carries the join marker only on a genuine first-ever join;
// re-opens and reconnects join silently.
type JoinFrame struct {
	Type    string `json:"type" validate:"required,eq=JOIN"`
	RoomID  int    `json:"roomId" validate:"required,gt=0"`
	Content string `json:"content,omitempty"`
}

// ChatFrame carries one outbound chat message.
type ChatFrame struct {
	Type    string `json:"type" validate:"required,eq=CHAT"`
	RoomID  int    `json:"roomId" validate:"required,gt=0"`
	Content string `json:"content" validate:"required"`
}

// PushFrame is the wire shape of every inbound push event.
type PushFrame struct {
	Type      string    `json:"type"`
	RoomID    int       `json:"roomId"`
	Username  string    `json:"username"`
	Nickname  string    `json:"nickname"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
