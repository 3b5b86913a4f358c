// Package domain contains core concepts of the room synchronization engine.
// This file defines Message, its kind/origin variants and the dedup key.
// No transport, storage, or UI logic should be added here.
package domain

import (
	"time"
)

type RoomID int

// Kind discriminates rendering and merge treatment.
// Closed set: a message is either user chat or a system join notice.
type Kind int

const (
	KindChat Kind = iota
	KindSystemJoin
)

func (k Kind) String() string {
	switch k {
	case KindSystemJoin:
		return "SYSTEM_JOIN"
	default:
		return "CHAT"
	}
}

// Origin records which input stream produced the message.
type Origin int

const (
	// OriginPending marks a locally composed message awaiting its server echo.
	OriginPending Origin = iota
	// OriginLive marks a message pushed over the live connection.
	OriginLive
	// OriginHistorical marks a message fetched through cursor pagination.
	OriginHistorical
)

func (o Origin) String() string {
	switch o {
	case OriginPending:
		return "PENDING"
	case OriginLive:
		return "LIVE"
	default:
		return "HISTORICAL"
	}
}

// Message is the unit of the timeline.
// IDs are opaque and NOT globally unique across sources: history items and
// live items use non-overlapping id schemes, so identity is content-based
// (see DedupKey), never id-based.
type Message struct {
	ID        string
	Sender    string // username, stable identity
	Nickname  string // display name
	AvatarRef string // optional
	Content   string
	CreatedAt time.Time
	Kind      Kind
	Origin    Origin
	IsOwn     bool
}

// DedupKey is the identity triple of a message.
// Two messages sharing the triple are the same logical message,
// whatever stream each one arrived on.
type DedupKey struct {
	Sender  string
	At      int64 // exact instant, UnixNano
	Content string
}

func (m Message) Key() DedupKey {
	return DedupKey{
		Sender:  m.Sender,
		At:      m.CreatedAt.UnixNano(),
		Content: m.Content,
	}
}
