// Package transport owns the live connection of an open room.
// One connection per room-open, exactly one connect attempt, no retry loop:
// every retry in this engine is a deliberate user action.
package transport

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"

	"room-sync/contract"
	"room-sync/domain"
	"room-sync/domain/event"
	rserrors "room-sync/errors"
)

const writeTimeout = 10 * time.Second

var validate = validator.New()

// Connection implements contract.IConnection over a WebSocket.
//
// State transitions: Disconnected -> Connecting -> Connected, and
// Connecting -> Failed. A mid-session drop moves back to Disconnected.
type Connection struct {
	mu     sync.Mutex
	url    string
	dialer *websocket.Dialer
	conn   *websocket.Conn
	state  contract.ConnState
	sink   contract.EventSink
	log    *slog.Logger
	cancel context.CancelFunc
}

func NewConnection(url string, sink contract.EventSink, log *slog.Logger) *Connection {
	return &Connection{
		url:    url,
		dialer: websocket.DefaultDialer,
		state:  contract.Disconnected,
		sink:   sink,
		log:    log,
	}
}

// Connect performs the single connection attempt for this room-open.
// It is a no-op when already connecting or connected. On failure the state
// moves to Failed and the error is returned to the caller; there is no
// automatic retry.
func (c *Connection) Connect(ctx context.Context) error {
	c.mu.Lock()
	if c.state == contract.Connecting || c.state == contract.Connected {
		c.mu.Unlock()
		return nil
	}
	c.state = contract.Connecting
	c.mu.Unlock()

	conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		c.mu.Lock()
		c.state = contract.Failed
		c.mu.Unlock()
		return fmt.Errorf("%w: %v", rserrors.ErrConnectFailed, err)
	}

	readCtx, cancel := context.WithCancel(context.Background())

	c.mu.Lock()
	c.conn = conn
	c.state = contract.Connected
	c.cancel = cancel
	c.mu.Unlock()

	go c.readLoop(readCtx, conn)
	return nil
}

// readLoop delivers inbound push events to the sink until the connection
// drops or is torn down. A drop only downgrades the state; reconnecting is
// the caller's decision.
func (c *Connection) readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		var frame PushFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("Live connection dropped", "error", err)
			}
			c.mu.Lock()
			if c.conn == conn {
				c.conn = nil
				c.state = contract.Disconnected
			}
			c.mu.Unlock()
			return
		}
		if ctx.Err() != nil {
			return
		}
		c.dispatch(ctx, frame)
	}
}

func (c *Connection) dispatch(ctx context.Context, frame PushFrame) {
	var evt event.RoomEvent
	switch frame.Type {
	case frameChat:
		evt = event.ChatReceived{
			Room:     frame.RoomID,
			Username: frame.Username,
			Nickname: frame.Nickname,
			Content:  frame.Content,
			At:       frame.CreatedAt,
		}
	case frameJoin:
		evt = event.JoinReceived{
			Room:     frame.RoomID,
			Username: frame.Username,
			Nickname: frame.Nickname,
			Content:  frame.Content,
			At:       frame.CreatedAt,
		}
	default:
		c.log.Debug("Ignoring unknown push frame", "type", frame.Type)
		return
	}
	if err := c.sink.Consume(ctx, evt); err != nil {
		c.log.Error("Event sink rejected push event", "type", frame.Type, "error", err)
	}
}

// SendJoin sends a join frame for the room. The marker is included only on
// a genuine first-ever join from this client.
func (c *Connection) SendJoin(roomID domain.RoomID, marker string) error {
	return c.write(JoinFrame{Type: frameJoin, RoomID: int(roomID), Content: marker})
}

// SendChat fails immediately when not connected; it never queues the
// message for later delivery.
func (c *Connection) SendChat(roomID domain.RoomID, content string) error {
	if content == "" {
		return rserrors.ErrEmptyContent
	}
	return c.write(ChatFrame{Type: frameChat, RoomID: int(roomID), Content: content})
}

func (c *Connection) write(frame any) error {
	if err := validate.Struct(frame); err != nil {
		return fmt.Errorf("%w: %v", rserrors.ErrInvalidFrame, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != contract.Connected || c.conn == nil {
		return rserrors.ErrNotConnected
	}
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteJSON(frame)
}

// Disconnect is an idempotent teardown, safe to call multiple times.
// It must run when the room view closes or the room identity changes,
// to avoid duplicate connections.
func (c *Connection) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if c.conn != nil {
		_ = c.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		_ = c.conn.Close()
		c.conn = nil
	}
	c.state = contract.Disconnected
}

func (c *Connection) State() contract.ConnState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}
