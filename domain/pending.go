package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReconcileWindow bounds how old a pending entry may be and still be
// matched against a self-echo. Echoes arriving later are treated as new
// messages rather than dropped.
const ReconcileWindow = 15 * time.Second

// PendingEntry tracks a self-sent message between the optimistic append
// and its server confirmation.
type PendingEntry struct {
	LocalID uuid.UUID
	Content string
	SentAt  time.Time
}

func NewPendingEntry(content string, sentAt time.Time) PendingEntry {
	return PendingEntry{
		LocalID: uuid.New(),
		Content: content,
		SentAt:  sentAt,
	}
}

// Matches reports whether a server echo with the given content, observed
// at the given instant, confirms this entry.
func (p PendingEntry) Matches(content string, at time.Time) bool {
	return p.Content == content && at.Sub(p.SentAt) < ReconcileWindow
}

// Expired reports whether the entry can no longer be reconciled.
func (p PendingEntry) Expired(at time.Time) bool {
	return at.Sub(p.SentAt) >= ReconcileWindow
}
