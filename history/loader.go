// Package history fetches older messages on demand via cursor pagination,
// plus the best-effort read-marker side channel fired on room open.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/samber/lo"

	"room-sync/domain"
	rserrors "room-sync/errors"
)

// DefaultPageSize is the batch size of one history fetch.
const DefaultPageSize = 20

// historyItem is the wire shape of one fetched message.
// History ids use their own scheme; they never collide with live ids and
// are never used for deduplication.
type historyItem struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Nickname  string    `json:"nickname"`
	AvatarRef string    `json:"avatarRef,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type historyResponse struct {
	Items        []historyItem `json:"items"`
	NextCursorID *int64        `json:"nextCursorId"`
}

// Loader implements contract.IHistoryLoader over the platform's REST API.
//
// A second prepend request for the same cursor while one is pending or
// already served is dropped (last-cursor-requested memo), so rapid repeated
// "load more" clicks cannot duplicate network calls.
type Loader struct {
	mu         sync.Mutex
	baseURL    string
	client     *http.Client
	log        *slog.Logger
	lastCursor map[domain.RoomID]string
}

func NewLoader(baseURL string, client *http.Client, log *slog.Logger) *Loader {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Loader{
		baseURL:    baseURL,
		client:     client,
		log:        log,
		lastCursor: make(map[domain.RoomID]string),
	}
}

// LoadHistory fetches one ascending batch of messages.
// A nil cursor fetches the most recent page (initial load); a present
// cursor fetches the page immediately older than it (prepend load).
// On failure the memo is cleared so the same user action stays retryable.
func (l *Loader) LoadHistory(ctx context.Context, roomID domain.RoomID, cursor *string, size int) (domain.HistoryPage, error) {
	if size <= 0 {
		size = DefaultPageSize
	}

	if cursor != nil {
		l.mu.Lock()
		if last, ok := l.lastCursor[roomID]; ok && last == *cursor {
			l.mu.Unlock()
			return domain.HistoryPage{}, rserrors.ErrDuplicateCursor
		}
		l.lastCursor[roomID] = *cursor
		l.mu.Unlock()
	}

	page, err := l.fetch(ctx, roomID, cursor, size)
	if err != nil {
		if cursor != nil {
			l.mu.Lock()
			delete(l.lastCursor, roomID)
			l.mu.Unlock()
		}
		return domain.HistoryPage{}, err
	}
	return page, nil
}

func (l *Loader) fetch(ctx context.Context, roomID domain.RoomID, cursor *string, size int) (domain.HistoryPage, error) {
	endpoint := fmt.Sprintf("%s/api/rooms/%d/messages", l.baseURL, roomID)
	query := url.Values{"size": []string{strconv.Itoa(size)}}
	if cursor != nil {
		query.Set("cursor", *cursor)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return domain.HistoryPage{}, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return domain.HistoryPage{}, fmt.Errorf("history fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.HistoryPage{}, fmt.Errorf("history fetch failed: status %d", resp.StatusCode)
	}

	var body historyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.HistoryPage{}, fmt.Errorf("history decode failed: %w", err)
	}

	var next *string
	hasMore := body.NextCursorID != nil && *body.NextCursorID != 0
	if hasMore {
		next = lo.ToPtr(strconv.FormatInt(*body.NextCursorID, 10))
	}

	l.log.Debug("History page fetched",
		"room", int(roomID), "items", len(body.Items), "hasMore", hasMore)

	return domain.HistoryPage{
		RoomID:     roomID,
		Items:      lo.Map(body.Items, func(item historyItem, _ int) domain.Message { return toMessage(item) }),
		NextCursor: next,
		HasMore:    hasMore,
	}, nil
}

// toMessage classifies sentinel join markers while mapping to the domain.
func toMessage(item historyItem) domain.Message {
	msg := domain.Message{
		ID:        item.ID,
		Sender:    item.Username,
		Nickname:  item.Nickname,
		AvatarRef: item.AvatarRef,
		Content:   item.Content,
		CreatedAt: item.CreatedAt,
		Kind:      domain.KindChat,
		Origin:    domain.OriginHistorical,
	}
	if domain.IsJoinMarker(item.Content) {
		// Same nickname-or-username fallback as live notices.
		name := item.Nickname
		if name == "" {
			name = item.Username
		}
		msg.Kind = domain.KindSystemJoin
		msg.Content = domain.NormalizeJoinNotice(name)
	}
	return msg
}

// MarkRead fires the read-marker side channel. The caller treats it as
// best-effort: failures are logged, never surfaced.
func (l *Loader) MarkRead(ctx context.Context, roomID domain.RoomID) (domain.ReadReceipt, error) {
	endpoint := fmt.Sprintf("%s/api/rooms/%d/read", l.baseURL, roomID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return domain.ReadReceipt{}, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return domain.ReadReceipt{}, fmt.Errorf("read marker failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.ReadReceipt{}, fmt.Errorf("read marker failed: status %d", resp.StatusCode)
	}

	var receipt domain.ReadReceipt
	if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
		return domain.ReadReceipt{}, fmt.Errorf("read marker decode failed: %w", err)
	}
	return receipt, nil
}

// Forget clears the duplicate-cursor memo for a room, used when the room
// identity changes and its pagination state is reset.
func (l *Loader) Forget(roomID domain.RoomID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.lastCursor, roomID)
}
