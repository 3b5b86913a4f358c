//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"

	"room-sync/domain"
	"room-sync/domain/event"
	"room-sync/scroll"
)

// ConnState is the lifecycle state of the live room connection.
type ConnState int32

const (
	Disconnected ConnState = iota
	Connecting
	Connected
	Failed
)

func (s ConnState) String() string {
	switch s {
	case Connecting:
		return "CONNECTING"
	case Connected:
		return "CONNECTED"
	case Failed:
		return "FAILED"
	default:
		return "DISCONNECTED"
	}
}

// EventSink receives inbound push events, delivered asynchronously
// by the connection's read loop.
type EventSink interface {
	Consume(ctx context.Context, e event.RoomEvent) error
}

// IConnection owns one live connection per open room.
// Exactly one connect attempt is made per room-open; there is no retry loop.
type IConnection interface {
	Connect(ctx context.Context) error
	SendJoin(roomID domain.RoomID, marker string) error
	SendChat(roomID domain.RoomID, content string) error
	Disconnect()
	State() ConnState
}

// IHistoryLoader fetches older messages through cursor pagination.
type IHistoryLoader interface {
	LoadHistory(ctx context.Context, roomID domain.RoomID, cursor *string, size int) (domain.HistoryPage, error)
	MarkRead(ctx context.Context, roomID domain.RoomID) (domain.ReadReceipt, error)
	// Forget drops the duplicate-cursor memo of a room whose pagination
	// state was reset.
	Forget(roomID domain.RoomID)
}

// IJoinedStore is the persisted per-room first-join capability.
// Any durable local store satisfies the contract.
type IJoinedStore interface {
	HasJoinedBefore(roomID domain.RoomID) (bool, error)
	MarkJoined(roomID domain.RoomID) error
}

// Notifier surfaces transient user-facing notices (the toast boundary).
type Notifier interface {
	Notify(message string)
}

// Viewport is the scroll container boundary. The view supplies metrics and
// applies positioning plans; it owns all rendering.
type Viewport interface {
	Metrics() scroll.Metrics
	Apply(plan scroll.Plan)
	Render(messages []domain.Message)
}
