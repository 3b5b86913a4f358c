// Package joined persists the per-room "first join" flag across sessions.
// The capability is deliberately small so any durable local store could
// replace the BadgerDB implementation behind contract.IJoinedStore.
package joined

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"

	"room-sync/domain"
)

// KeyPrefix namespaces join flags inside the shared Badger instance.
const KeyPrefix = "joined:"

type Store struct {
	db  *badger.DB
	log *slog.Logger
}

func NewStore(db *badger.DB, log *slog.Logger) Store {
	return Store{db: db, log: log}
}

func key(roomID domain.RoomID) []byte {
	return []byte(fmt.Sprintf("%s%d", KeyPrefix, roomID))
}

// HasJoinedBefore reports whether this client ever joined the room,
// across sessions. Only a genuine first join requests the join marker.
func (s Store) HasJoinedBefore(roomID domain.RoomID) (bool, error) {
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(key(roomID))
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// MarkJoined records the first join. The value is the instant of the join,
// kept for the inspector tooling.
func (s Store) MarkJoined(roomID domain.RoomID) error {
	at := strconv.FormatInt(time.Now().UnixNano(), 10)
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(roomID), []byte(at))
	})
	if err != nil {
		return err
	}
	s.log.Debug("First join recorded", "room", int(roomID))
	return nil
}
