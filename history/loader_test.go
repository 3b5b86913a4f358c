package history

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"room-sync/domain"
	rserrors "room-sync/errors"
)

// fakeHistoryAPI serves a fixed page and counts hits.
func fakeHistoryAPI(t *testing.T, items []historyItem, nextCursor *int64, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(historyResponse{
			Items:        items,
			NextCursorID: nextCursor,
		}))
	}))
}

func items(n int, from time.Time) []historyItem {
	var out []historyItem
	for i := 0; i < n; i++ {
		out = append(out, historyItem{
			ID:        fmt.Sprintf("hist-%d", i),
			Username:  "alice",
			Nickname:  "Alice",
			Content:   fmt.Sprintf("message %d", i),
			CreatedAt: from.Add(time.Duration(i) * time.Second),
		})
	}
	return out
}

func TestLoader_InitialLoad(t *testing.T) {
	req := require.New(t)
	var hits atomic.Int64
	server := fakeHistoryAPI(t, items(20, time.Now().UTC().Add(-time.Hour)), lo.ToPtr(int64(137)), &hits)
	defer server.Close()

	loader := NewLoader(server.URL, server.Client(), slog.Default())
	page, err := loader.LoadHistory(context.Background(), 7, nil, DefaultPageSize)

	req.NoError(err)
	req.Len(page.Items, 20)
	req.True(page.HasMore)
	req.Equal("137", *page.NextCursor)
	req.Equal(domain.OriginHistorical, page.Items[0].Origin)
}

func TestLoader_LastPageHasNoCursor(t *testing.T) {
	req := require.New(t)
	var hits atomic.Int64
	server := fakeHistoryAPI(t, items(15, time.Now().UTC().Add(-2*time.Hour)), nil, &hits)
	defer server.Close()

	loader := NewLoader(server.URL, server.Client(), slog.Default())
	page, err := loader.LoadHistory(context.Background(), 7, lo.ToPtr("137"), DefaultPageSize)

	req.NoError(err)
	req.Len(page.Items, 15)
	req.False(page.HasMore)
	req.Nil(page.NextCursor)
}

func TestLoader_ZeroCursorMeansNoMore(t *testing.T) {
	req := require.New(t)
	var hits atomic.Int64
	server := fakeHistoryAPI(t, items(3, time.Now().UTC()), lo.ToPtr(int64(0)), &hits)
	defer server.Close()

	loader := NewLoader(server.URL, server.Client(), slog.Default())
	page, err := loader.LoadHistory(context.Background(), 7, nil, DefaultPageSize)

	req.NoError(err)
	req.False(page.HasMore)
	req.Nil(page.NextCursor)
}

func TestLoader_DropsDuplicateCursorRequests(t *testing.T) {
	req := require.New(t)
	var hits atomic.Int64
	server := fakeHistoryAPI(t, items(5, time.Now().UTC()), nil, &hits)
	defer server.Close()

	loader := NewLoader(server.URL, server.Client(), slog.Default())
	cursor := lo.ToPtr("137")

	_, err := loader.LoadHistory(context.Background(), 7, cursor, DefaultPageSize)
	req.NoError(err)

	// Rapid repeated "load more" click on the same cursor.
	_, err = loader.LoadHistory(context.Background(), 7, cursor, DefaultPageSize)
	req.ErrorIs(err, rserrors.ErrDuplicateCursor)
	req.Equal(int64(1), hits.Load())

	// A different cursor goes through.
	_, err = loader.LoadHistory(context.Background(), 7, lo.ToPtr("88"), DefaultPageSize)
	req.NoError(err)
	req.Equal(int64(2), hits.Load())
}

func TestLoader_FailureIsRetryable(t *testing.T) {
	req := require.New(t)
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(historyResponse{Items: items(2, time.Now().UTC())})
	}))
	defer server.Close()

	loader := NewLoader(server.URL, server.Client(), slog.Default())
	cursor := lo.ToPtr("137")

	_, err := loader.LoadHistory(context.Background(), 7, cursor, DefaultPageSize)
	req.Error(err)

	// The memo was cleared on failure: the same user action retries cleanly.
	page, err := loader.LoadHistory(context.Background(), 7, cursor, DefaultPageSize)
	req.NoError(err)
	req.Len(page.Items, 2)
}

func TestLoader_NormalizesJoinMarkers(t *testing.T) {
	req := require.New(t)
	at := time.Now().UTC()
	var hits atomic.Int64
	server := fakeHistoryAPI(t, []historyItem{
		{ID: "hist-1", Username: "bob", Nickname: "Bob", Content: "__JOIN__", CreatedAt: at},
		{ID: "hist-2", Username: "bob", Nickname: "Bob", Content: "::join::", CreatedAt: at.Add(time.Second)},
		{ID: "hist-3", Username: "bob", Nickname: "Bob", Content: "hello", CreatedAt: at.Add(2 * time.Second)},
		{ID: "hist-4", Username: "carol", Content: "::join::", CreatedAt: at.Add(3 * time.Second)},
	}, nil, &hits)
	defer server.Close()

	loader := NewLoader(server.URL, server.Client(), slog.Default())
	page, err := loader.LoadHistory(context.Background(), 7, nil, DefaultPageSize)
	req.NoError(err)

	req.Equal(domain.KindSystemJoin, page.Items[0].Kind)
	req.Equal("Bob entered the room", page.Items[0].Content)
	req.Equal(domain.KindSystemJoin, page.Items[1].Kind)
	req.Equal("Bob entered the room", page.Items[1].Content)
	req.Equal(domain.KindChat, page.Items[2].Kind)
	req.Equal("hello", page.Items[2].Content)

	// No nickname on record: fall back to the username, same as live notices.
	req.Equal(domain.KindSystemJoin, page.Items[3].Kind)
	req.Equal("carol entered the room", page.Items[3].Content)
}

func TestLoader_MarkRead(t *testing.T) {
	req := require.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		_ = json.NewEncoder(w).Encode(domain.ReadReceipt{RoomID: 7, UnreadCount: 0, LastReadMessageID: "hist-99"})
	}))
	defer server.Close()

	loader := NewLoader(server.URL, server.Client(), slog.Default())
	receipt, err := loader.MarkRead(context.Background(), 7)
	req.NoError(err)
	req.Equal(7, receipt.RoomID)
	req.Equal("hist-99", receipt.LastReadMessageID)
}
