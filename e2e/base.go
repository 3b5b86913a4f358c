package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
)

// BaseSuite spins up an in-process rendition of the platform boundary:
// the history REST endpoints and the room push stream, exactly as the
// engine sees them from outside.
type BaseSuite struct {
	suite.Suite
	Config   Config
	Platform *fakePlatform
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

func (s *BaseSuite) SetupTest() {
	s.Platform = newFakePlatform()
}

func (s *BaseSuite) TearDownTest() {
	s.Platform.Close()
}

// Step prints a colorized header so scenario logs read as a storyboard.
func (s *BaseSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// wire shapes, mirrored from the platform's REST and push contracts

type wireHistoryItem struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Nickname  string    `json:"nickname"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type wireHistoryPage struct {
	Items        []wireHistoryItem `json:"items"`
	NextCursorID *int64            `json:"nextCursorId"`
}

type wireFrame struct {
	Type      string    `json:"type"`
	RoomID    int       `json:"roomId"`
	Username  string    `json:"username"`
	Nickname  string    `json:"nickname"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// fakePlatform is the test double of the club platform: cursor-paginated
// history pages keyed by cursor id, and a push stream that echoes chat
// frames and broadcasts join notices.
type fakePlatform struct {
	server *httptest.Server

	mu      sync.Mutex
	pages   map[string]wireHistoryPage // "" is the initial page
	conns   []*websocket.Conn
	markers []string // join marker contents received, in order
}

func newFakePlatform() *fakePlatform {
	p := &fakePlatform{pages: map[string]wireHistoryPage{}}

	upgrader := websocket.Upgrader{}
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/rooms/", func(w http.ResponseWriter, r *http.Request) {
		p.mu.Lock()
		page, ok := p.pages[r.URL.Query().Get("cursor")]
		p.mu.Unlock()
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(page)
	})

	mux.HandleFunc("POST /api/rooms/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"roomId": 7, "unreadCount": 0, "lastReadMessageId": "hist-19",
		})
	})

	mux.HandleFunc("/ws/rooms/", func(w http.ResponseWriter, r *http.Request) {
		username := r.URL.Query().Get("username")
		nickname := r.URL.Query().Get("nickname")
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		p.mu.Lock()
		p.conns = append(p.conns, conn)
		p.mu.Unlock()

		go p.serveConn(conn, username, nickname)
	})

	p.server = httptest.NewServer(mux)
	return p
}

func (p *fakePlatform) serveConn(conn *websocket.Conn, username, nickname string) {
	for {
		var frame wireFrame
		if err := conn.ReadJSON(&frame); err != nil {
			return
		}
		switch frame.Type {
		case "JOIN":
			p.mu.Lock()
			p.markers = append(p.markers, frame.Content)
			p.mu.Unlock()
			// Silent joins subscribe without a broadcast.
			if frame.Content != "" {
				p.Broadcast(wireFrame{
					Type: "JOIN", RoomID: frame.RoomID,
					Username: username, Nickname: nickname,
					Content: frame.Content, CreatedAt: time.Now().UTC(),
				})
			}
		case "CHAT":
			p.Broadcast(wireFrame{
				Type: "CHAT", RoomID: frame.RoomID,
				Username: username, Nickname: nickname,
				Content: frame.Content, CreatedAt: time.Now().UTC(),
			})
		}
	}
}

// Broadcast pushes a frame to every connected client.
func (p *fakePlatform) Broadcast(frame wireFrame) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, conn := range p.conns {
		_ = conn.WriteJSON(frame)
	}
}

// SetPage registers the page served for a cursor ("" = initial load).
func (p *fakePlatform) SetPage(cursor string, page wireHistoryPage) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pages[cursor] = page
}

// Markers returns the join marker contents received so far.
func (p *fakePlatform) Markers() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.markers))
	copy(out, p.markers)
	return out
}

func (p *fakePlatform) BaseURL() string {
	return p.server.URL
}

func (p *fakePlatform) WebSocketURL() string {
	return "ws" + strings.TrimPrefix(p.server.URL, "http") + "/ws"
}

func (p *fakePlatform) Close() {
	p.mu.Lock()
	for _, conn := range p.conns {
		_ = conn.Close()
	}
	p.conns = nil
	p.mu.Unlock()
	p.server.Close()
}
