// Package timeline builds the rendered message list from observed batches.
// It handles ordering and deduplication; arrival order is irrelevant.
// It does not talk to the network or the UI.
package timeline

import (
	"sort"

	"room-sync/domain"
)

// Merge combines any message batch (live, pending, historical) with the
// existing timeline into one deduplicated, chronologically ordered list.
//
// The map is keyed by the identity triple (sender, instant, content) rather
// than by id, because history and live sources do not share an id scheme.
// Incoming entries overwrite existing ones under the same key, so the
// server-confirmed copy of a message wins over its optimistic twin.
//
// Merging the same batch twice, or batches in either order, yields the same
// final set; only the final sort is authoritative for display order.
func Merge(existing, incoming []domain.Message, self string) []domain.Message {
	byKey := make(map[domain.DedupKey]domain.Message, len(existing)+len(incoming))
	for _, m := range existing {
		byKey[m.Key()] = m
	}
	for _, m := range incoming {
		byKey[m.Key()] = m
	}

	merged := make([]domain.Message, 0, len(byKey))
	for _, m := range byKey {
		m.IsOwn = m.Sender == self
		merged = append(merged, m)
	}

	sort.Slice(merged, func(i, j int) bool {
		a, b := merged[i], merged[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		// Distinct messages on the same instant: deterministic tie-break.
		if a.Sender != b.Sender {
			return a.Sender < b.Sender
		}
		return a.Content < b.Content
	})
	return merged
}
