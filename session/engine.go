// Package session drives one open room: it feeds the three input streams
// (pending sends, live pushes, history batches) through the timeline merger
// and keeps the viewport stable. The engine is the single serialization
// point; the timeline is mutated only through timeline.Merge.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"room-sync/contract"
	"room-sync/domain"
	"room-sync/domain/event"
	rserrors "room-sync/errors"
	"room-sync/history"
	"room-sync/scroll"
	"room-sync/timeline"
)

// ConnectionFactory builds the live connection for a room. The engine
// registers itself as the sink for inbound push events.
type ConnectionFactory func(roomID domain.RoomID, sink contract.EventSink) contract.IConnection

type Engine struct {
	mu       sync.Mutex
	log      *slog.Logger
	self     string // current session's username
	nickname string
	newConn  ConnectionFactory
	loader   contract.IHistoryLoader
	joined   contract.IJoinedStore
	notifier contract.Notifier
	viewport contract.Viewport
	pageSize int

	conn     contract.IConnection
	anchor   *scroll.Anchor
	session  *domain.RoomSession
	joinMemo domain.JoinNoticeMemo

	now func() time.Time
}

func NewEngine(
	log *slog.Logger,
	self, nickname string,
	newConn ConnectionFactory,
	loader contract.IHistoryLoader,
	joined contract.IJoinedStore,
	notifier contract.Notifier,
	viewport contract.Viewport,
) *Engine {
	return &Engine{
		log:      log,
		self:     self,
		nickname: nickname,
		newConn:  newConn,
		loader:   loader,
		joined:   joined,
		notifier: notifier,
		viewport: viewport,
		pageSize: history.DefaultPageSize,
		now:      time.Now,
	}
}

// Open starts a room view: reset any previous session, fire the best-effort
// read marker, load the most recent page (forcing one scroll to the bottom
// once it renders) and make the single connect attempt. Connection and
// history failures are surfaced as notices, never as fatal errors.
func (e *Engine) Open(ctx context.Context, roomID int) {
	rid := domain.RoomID(roomID)

	e.mu.Lock()
	if e.conn != nil {
		e.conn.Disconnect()
	}
	if e.session != nil {
		e.loader.Forget(e.session.RoomID)
	}
	e.session = domain.NewRoomSession(rid)
	e.anchor = scroll.NewAnchor()
	e.joinMemo = domain.JoinNoticeMemo{}
	e.conn = e.newConn(rid, e)
	conn := e.conn
	e.mu.Unlock()

	// Read marker is a best-effort side channel: log and move on.
	if receipt, err := e.loader.MarkRead(ctx, rid); err != nil {
		e.log.Warn("Read marker failed", "room", roomID, "error", err)
	} else {
		e.log.Debug("Read marker acknowledged",
			"room", roomID, "unread", receipt.UnreadCount, "lastRead", receipt.LastReadMessageID)
	}

	if page, err := e.loader.LoadHistory(ctx, rid, nil, e.pageSize); err != nil {
		e.notifier.Notify("Could not load messages")
		e.log.Warn("Initial history load failed", "room", roomID, "error", err)
	} else {
		e.applyPage(page, false)
	}

	// The user may have opened another room while the fetch was in flight;
	// this connection was already torn down and must not be redialed.
	e.mu.Lock()
	stale := e.session == nil || e.session.RoomID != rid || e.conn != conn
	e.mu.Unlock()
	if stale {
		return
	}

	if err := conn.Connect(ctx); err != nil {
		// Single attempt per room-open: surface and stop, no retry loop.
		e.notifier.Notify("Connection failed")
		e.log.Warn("Connect failed", "room", roomID, "error", err)
		return
	}
	e.joinAfterConnect(rid, conn)
}

// joinAfterConnect sends exactly one join frame for this opening of the
// room. The marker content is requested only on a genuine first-ever join
// from this client.
func (e *Engine) joinAfterConnect(rid domain.RoomID, conn contract.IConnection) {
	e.mu.Lock()
	if e.session == nil || e.session.RoomID != rid || e.conn != conn {
		e.mu.Unlock()
		// The room changed between dial and join: nobody owns this
		// connection anymore, so it must not stay live.
		conn.Disconnect()
		return
	}
	if e.session.JoinedThisOpen {
		e.mu.Unlock()
		return
	}
	e.session.JoinedThisOpen = true
	e.mu.Unlock()

	marker := ""
	joinedBefore, err := e.joined.HasJoinedBefore(rid)
	if err != nil {
		// When the store is unreadable, err on the silent side.
		e.log.Warn("Joined store unreadable", "room", int(rid), "error", err)
		joinedBefore = true
	}
	if !joinedBefore {
		marker = domain.JoinMarkerCurrent
		if err := e.joined.MarkJoined(rid); err != nil {
			e.log.Warn("Could not persist first join", "room", int(rid), "error", err)
		}
	}

	if err := conn.SendJoin(rid, marker); err != nil {
		e.log.Warn("Join frame failed", "room", int(rid), "error", err)
	}
}

// LoadMore prepends the next older page. Duplicate requests for the same
// cursor are dropped by the loader; a failure leaves cursor state untouched
// so the same click retries cleanly.
func (e *Engine) LoadMore(ctx context.Context) error {
	e.mu.Lock()
	if e.session == nil {
		e.mu.Unlock()
		return rserrors.ErrSessionClosed
	}
	if !e.session.HasMore || e.session.NextCursor == nil {
		e.mu.Unlock()
		return nil
	}
	rid := e.session.RoomID
	cursor := e.session.NextCursor
	e.mu.Unlock()

	page, err := e.loader.LoadHistory(ctx, rid, cursor, e.pageSize)
	if errors.Is(err, rserrors.ErrDuplicateCursor) {
		e.log.Debug("Duplicate load-more dropped", "room", int(rid), "cursor", *cursor)
		return nil
	}
	if err != nil {
		e.notifier.Notify("Could not load older messages")
		return err
	}

	e.applyPage(page, true)
	return nil
}

// applyPage merges a history page into the timeline. The page is applied
// only when its originating room still is the active one: a late response
// from a previous room must never leak into the current timeline.
func (e *Engine) applyPage(page domain.HistoryPage, prepend bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil || page.RoomID != e.session.RoomID {
		e.log.Warn("Dropping stale history page", "room", int(page.RoomID))
		return
	}

	if prepend {
		e.anchor.BeforePrepend(e.viewport.Metrics())
	}

	e.session.Messages = timeline.Merge(e.session.Messages, page.Items, e.self)
	e.session.NextCursor = page.NextCursor
	e.session.HasMore = page.HasMore
	e.viewport.Render(e.session.Messages)

	if prepend {
		e.viewport.Apply(e.anchor.AfterPrepend(e.viewport.Metrics()))
	} else {
		// The force-bottom must land after the initial page is in the
		// view, or the container has nothing to scroll past yet. OnOpen
		// fires at most once per room open.
		e.viewport.Apply(e.anchor.OnOpen())
	}
}

// Send appends the message optimistically and hands it to the transport.
// When the connection is down the send fails fast, one courtesy reconnect
// is attempted, and the user resends by hand; nothing is queued.
func (e *Engine) Send(ctx context.Context, content string) error {
	if content == "" {
		return rserrors.ErrEmptyContent
	}

	e.mu.Lock()
	if e.session == nil {
		e.mu.Unlock()
		return rserrors.ErrSessionClosed
	}
	rid := e.session.RoomID
	at := e.now()
	entry := domain.NewPendingEntry(content, at)
	optimistic := domain.Message{
		ID:        "local-" + entry.LocalID.String(),
		Sender:    e.self,
		Nickname:  e.nickname,
		Content:   content,
		CreatedAt: at,
		Kind:      domain.KindChat,
		Origin:    domain.OriginPending,
		IsOwn:     true,
	}
	e.session.Pending = append(e.session.Pending, entry)
	e.session.Messages = timeline.Merge(e.session.Messages, []domain.Message{optimistic}, e.self)
	conn := e.conn
	e.viewport.Render(e.session.Messages)
	e.viewport.Apply(e.anchor.OnAppend())
	e.mu.Unlock()

	err := conn.SendChat(rid, content)
	switch {
	case errors.Is(err, rserrors.ErrNotConnected):
		e.notifier.Notify("Not connected, trying to reconnect")
		go e.courtesyReconnect(ctx, rid)
		return err
	case err != nil:
		e.notifier.Notify("Could not send message")
		return err
	}
	return nil
}

// courtesyReconnect is the single reconnect attempt fired when a send hits
// a dead connection. On success the room is re-joined silently (no marker);
// the failed message itself is never resent automatically.
func (e *Engine) courtesyReconnect(ctx context.Context, rid domain.RoomID) {
	e.mu.Lock()
	conn := e.conn
	active := e.session != nil && e.session.RoomID == rid
	e.mu.Unlock()
	if !active {
		return
	}

	if err := conn.Connect(ctx); err != nil {
		e.log.Warn("Courtesy reconnect failed", "room", int(rid), "error", err)
		return
	}

	e.mu.Lock()
	stale := e.session == nil || e.session.RoomID != rid || e.conn != conn
	e.mu.Unlock()
	if stale {
		conn.Disconnect()
		return
	}

	if err := conn.SendJoin(rid, ""); err != nil {
		e.log.Warn("Silent rejoin failed", "room", int(rid), "error", err)
	}
}

// Consume implements contract.EventSink for inbound push events.
func (e *Engine) Consume(_ context.Context, evt event.RoomEvent) error {
	switch ev := evt.(type) {
	case event.ChatReceived:
		e.onChat(ev)
	case event.JoinReceived:
		e.onJoin(ev)
	default:
		e.log.Debug("Ignoring unhandled room event", "room", int(evt.RoomID()))
	}
	return nil
}

func (e *Engine) onChat(evt event.ChatReceived) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil || evt.RoomID() != e.session.RoomID {
		return
	}

	confirmed := domain.Message{
		ID:        fmt.Sprintf("live-%d", evt.At.UnixNano()),
		Sender:    evt.Username,
		Nickname:  displayName(evt.Username, evt.Nickname),
		Content:   evt.Content,
		CreatedAt: evt.At,
		Kind:      domain.KindChat,
		Origin:    domain.OriginLive,
	}

	if evt.Username == e.self {
		// Self-echo: reconcile against a pending entry when one matches.
		// No match (other device, or window expired) falls through to a
		// normal append; a message is never dropped.
		if entry, ok := reconcilePending(e.session, evt.Content, e.now()); ok {
			dropOptimistic(e.session, entry)
		}
	}

	e.session.Messages = timeline.Merge(e.session.Messages, []domain.Message{confirmed}, e.self)
	e.viewport.Render(e.session.Messages)
	e.viewport.Apply(e.anchor.OnAppend())
}

func (e *Engine) onJoin(evt event.JoinReceived) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil || evt.RoomID() != e.session.RoomID {
		return
	}

	key := domain.JoinNoticeKey(evt.At, evt.Username)
	if !e.joinMemo.ShouldRender(key, e.now()) {
		e.log.Debug("Duplicate join notice discarded", "room", int(evt.RoomID()), "user", evt.Username)
		return
	}

	notice := domain.Message{
		ID:        fmt.Sprintf("live-%d", evt.At.UnixNano()),
		Sender:    evt.Username,
		Nickname:  displayName(evt.Username, evt.Nickname),
		Content:   domain.NormalizeJoinNotice(displayName(evt.Username, evt.Nickname)),
		CreatedAt: evt.At,
		Kind:      domain.KindSystemJoin,
		Origin:    domain.OriginLive,
	}

	e.session.Messages = timeline.Merge(e.session.Messages, []domain.Message{notice}, e.self)
	e.viewport.Render(e.session.Messages)
	e.viewport.Apply(e.anchor.OnAppend())
}

// Observe forwards a scroll event so the near-bottom flag stays current.
func (e *Engine) Observe(m scroll.Metrics) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.anchor != nil {
		e.anchor.Observe(m)
	}
}

// Close tears the view down: idempotent, safe to call multiple times.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.conn != nil {
		e.conn.Disconnect()
		e.conn = nil
	}
	if e.session != nil {
		e.loader.Forget(e.session.RoomID)
		e.session = nil
	}
}

// Snapshot returns a copy of the current timeline.
func (e *Engine) Snapshot() []domain.Message {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == nil {
		return nil
	}
	out := make([]domain.Message, len(e.session.Messages))
	copy(out, e.session.Messages)
	return out
}

// HasMore reports whether older history remains to load.
func (e *Engine) HasMore() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session != nil && e.session.HasMore
}

func displayName(username, nickname string) string {
	if nickname != "" {
		return nickname
	}
	return username
}
