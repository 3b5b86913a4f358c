package domain

// HistoryPage is one cursor-paginated batch of older messages.
// Items are ascending by CreatedAt.
type HistoryPage struct {
	RoomID     RoomID
	Items      []Message
	NextCursor *string
	HasMore    bool
}

// ReadReceipt is the response of the best-effort read-marker side channel.
type ReadReceipt struct {
	RoomID            int    `json:"roomId"`
	UnreadCount       int    `json:"unreadCount"`
	LastReadMessageID string `json:"lastReadMessageId"`
}
