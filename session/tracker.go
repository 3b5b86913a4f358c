package session

import (
	"time"

	"room-sync/domain"
)

// reconcilePending searches the session's pending entries for one whose
// content matches the self-echo inside the reconciliation window, removes
// it and returns it. Entries past the window are swept on the way; they
// never match again, so there is no reason to keep them.
func reconcilePending(s *domain.RoomSession, content string, at time.Time) (domain.PendingEntry, bool) {
	var kept []domain.PendingEntry
	var matched domain.PendingEntry
	found := false

	for _, entry := range s.Pending {
		if !found && entry.Matches(content, at) {
			matched = entry
			found = true
			continue
		}
		if entry.Expired(at) {
			continue
		}
		kept = append(kept, entry)
	}

	s.Pending = kept
	return matched, found
}

// dropOptimistic removes the optimistic timeline entry backing a pending
// record, so the server-confirmed copy can take its place without
// duplicating the message.
func dropOptimistic(s *domain.RoomSession, entry domain.PendingEntry) {
	for i, m := range s.Messages {
		if m.Origin == domain.OriginPending &&
			m.Content == entry.Content &&
			m.CreatedAt.Equal(entry.SentAt) {
			s.Messages = append(s.Messages[:i], s.Messages[i+1:]...)
			return
		}
	}
}
