package errors

import "fmt"

var (
	ErrNotConnected    = fmt.Errorf("not connected to the room")
	ErrConnectFailed   = fmt.Errorf("connection attempt failed")
	ErrRoomMismatch    = fmt.Errorf("response belongs to another room")
	ErrEmptyContent    = fmt.Errorf("message content is empty")
	ErrSessionClosed   = fmt.Errorf("room session is closed")
	ErrInvalidFrame    = fmt.Errorf("outbound frame failed validation")
	ErrDuplicateCursor = fmt.Errorf("history already requested for this cursor")
)
