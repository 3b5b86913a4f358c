package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"room-sync/domain"
)

func msg(sender, content string, at time.Time, origin domain.Origin) domain.Message {
	return domain.Message{
		Sender:    sender,
		Nickname:  sender,
		Content:   content,
		CreatedAt: at,
		Origin:    origin,
	}
}

func TestMerge_SortsAscendingAcrossBatches(t *testing.T) {
	req := require.New(t)
	at := time.Now().UTC()

	history := []domain.Message{
		msg("Bob", "older", at.Add(-2*time.Minute), domain.OriginHistorical),
		msg("Alice", "old", at.Add(-1*time.Minute), domain.OriginHistorical),
	}
	live := []domain.Message{
		msg("Clara", "newest", at, domain.OriginLive),
	}

	// Live batch arrives first, history is prepended afterwards.
	merged := Merge(nil, live, "Alice")
	merged = Merge(merged, history, "Alice")

	req.Len(merged, 3)
	req.Equal("older", merged[0].Content)
	req.Equal("old", merged[1].Content)
	req.Equal("newest", merged[2].Content)
	for i := 1; i < len(merged); i++ {
		req.False(merged[i].CreatedAt.Before(merged[i-1].CreatedAt))
	}
}

func TestMerge_Idempotence(t *testing.T) {
	req := require.New(t)
	at := time.Now().UTC()

	a := []domain.Message{
		msg("Alice", "hello", at, domain.OriginHistorical),
		msg("Bob", "hi", at.Add(time.Second), domain.OriginHistorical),
	}
	b := []domain.Message{
		msg("Bob", "hi", at.Add(time.Second), domain.OriginLive),
		msg("Clara", "hey", at.Add(2*time.Second), domain.OriginLive),
	}

	once := Merge(a, b, "Alice")
	twice := Merge(once, b, "Alice")

	req.Equal(once, twice)
}

func TestMerge_DedupByTripleNotID(t *testing.T) {
	req := require.New(t)
	at := time.Now().UTC()

	// Same logical message, different id schemes (history vs live).
	fromHistory := msg("Alice", "hello", at, domain.OriginHistorical)
	fromHistory.ID = "hist-42"
	fromLive := msg("Alice", "hello", at, domain.OriginLive)
	fromLive.ID = "live-1756372800000"

	merged := Merge([]domain.Message{fromHistory}, []domain.Message{fromLive}, "Bob")

	req.Len(merged, 1)
	// Incoming overwrites the existing entry under the same key.
	req.Equal(domain.OriginLive, merged[0].Origin)

	seen := make(map[domain.DedupKey]struct{})
	for _, m := range merged {
		_, dup := seen[m.Key()]
		req.False(dup)
		seen[m.Key()] = struct{}{}
	}
}

func TestMerge_DerivesIsOwn(t *testing.T) {
	req := require.New(t)
	at := time.Now().UTC()

	merged := Merge(nil, []domain.Message{
		msg("Alice", "mine", at, domain.OriginLive),
		msg("Bob", "theirs", at.Add(time.Second), domain.OriginLive),
	}, "Alice")

	req.True(merged[0].IsOwn)
	req.False(merged[1].IsOwn)
}

func TestMerge_BatchOrderIrrelevant(t *testing.T) {
	req := require.New(t)
	at := time.Now().UTC()

	a := []domain.Message{
		msg("Alice", "a", at, domain.OriginHistorical),
		msg("Bob", "b", at.Add(time.Second), domain.OriginHistorical),
	}
	b := []domain.Message{
		msg("Clara", "c", at.Add(2*time.Second), domain.OriginLive),
		msg("Alice", "a", at, domain.OriginLive),
	}

	ab := Merge(Merge(nil, a, "x"), b, "x")
	ba := Merge(Merge(nil, b, "x"), a, "x")

	req.Len(ab, 3)
	contents := func(ms []domain.Message) []string {
		var out []string
		for _, m := range ms {
			out = append(out, m.Content)
		}
		return out
	}
	req.Equal(contents(ab), contents(ba))
}
