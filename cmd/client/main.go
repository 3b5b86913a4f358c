package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"room-sync/contract"
	"room-sync/domain"
	"room-sync/history"
	"room-sync/internal"
	"room-sync/joined"
	"room-sync/session"
	"room-sync/transport"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function manages the OS exit code based on run()'s return.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

// run handles configuration loading, the local store, the sync engine and
// the interactive loop. The pattern keeps defers honored on every exit path.
func run() (int, error) {
	// 1. Load configuration from environment variables.
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Setup context to handle termination signals (Ctrl+C).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Local store for the persisted first-join flags.
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return exitRuntime, fmt.Errorf("local store opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing local store...")
		_ = db.Close()
	}()

	if log.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		log.Info("Debug inspector available",
			"url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint))
		internal.StartDebugServer(db, config.DebugPort, endpoint, nil, internal.ProcessStats)
	}

	// 4. Assemble the sync engine.
	view := newTermView(log)
	loader := history.NewLoader(config.ServerBaseURL, &http.Client{Timeout: 15 * time.Second}, log)
	joinedStore := joined.NewStore(db, log)
	factory := func(roomID domain.RoomID, sink contract.EventSink) contract.IConnection {
		url := fmt.Sprintf("%s/rooms/%d", config.WebSocketURL, roomID)
		return transport.NewConnection(url, sink, log)
	}
	engine := session.NewEngine(log, config.Username, config.Nickname,
		factory, loader, joinedStore, view, view)
	defer engine.Close()

	// 5. Open the room and enter the interactive loop.
	engine.Open(ctx, config.DefaultRoomID)
	log.Info(">>> Room open, type to chat ('/more' loads history, '/quit' exits)",
		"room", config.DefaultRoomID)

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping client...")
			return exitOK, nil
		case line, ok := <-lines:
			if !ok {
				return exitOK, nil
			}
			switch strings.TrimSpace(line) {
			case "":
			case "/quit":
				return exitOK, nil
			case "/more":
				if err := engine.LoadMore(ctx); err != nil {
					log.Warn("Load more failed", "error", err)
				}
			default:
				if err := engine.Send(ctx, line); err != nil {
					log.Warn("Send failed", "error", err)
				}
			}
		}
	}
}
