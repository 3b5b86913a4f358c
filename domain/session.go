package domain

// RoomSession is the per-open state of a room view.
// It is created when the view opens, reset whenever the room identity
// changes, and torn down when the view closes.
type RoomSession struct {
	RoomID         RoomID
	Messages       []Message // ordered unique timeline, mutated only via timeline.Merge
	NextCursor     *string
	HasMore        bool
	JoinedThisOpen bool
	Pending        []PendingEntry
}

func NewRoomSession(roomID RoomID) *RoomSession {
	return &RoomSession{RoomID: roomID}
}

// Reset clears everything tied to the previous room identity.
func (s *RoomSession) Reset(roomID RoomID) {
	s.RoomID = roomID
	s.Messages = nil
	s.NextCursor = nil
	s.HasMore = false
	s.JoinedThisOpen = false
	s.Pending = nil
}
