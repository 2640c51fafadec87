// Package journal persists played games so a session can be listed and
// resumed later. Games are stored in BadgerDB under uuid ids; each accepted
// move is written as its own key so a crash loses at most the move in flight.
package journal

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Key layout:
//
//	game/<id>              GameRecord
//	move/<id>/<ply:08d>    MoveRecord
const (
	gamePrefix = "game/"
	movePrefix = "move/"
)

// GameRecord describes one journalled game.
type GameRecord struct {
	ID       uuid.UUID `json:"id"`
	Created  time.Time `json:"created"`
	StartFEN string    `json:"start_fen,omitempty"` // empty for the standard start
}

// MoveRecord is one accepted move.
type MoveRecord struct {
	Ply  int    `json:"ply"`
	Move string `json:"move"`
}

// Journal wraps BadgerDB for game storage.
type Journal struct {
	db *badger.DB
}

// Open opens or creates a journal in dir.
func Open(dir string) (*Journal, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open journal %s", dir)
	}
	return &Journal{db: db}, nil
}

// OpenInMemory opens a journal that is discarded on Close.
func OpenInMemory() (*Journal, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open in-memory journal")
	}
	return &Journal{db: db}, nil
}

// Close closes the database.
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// NewGame records a new game from the standard starting position.
func (j *Journal) NewGame() (uuid.UUID, error) {
	return j.NewGameFrom("")
}

// NewGameFrom records a new game starting from fen. An empty fen means the
// standard starting position.
func (j *Journal) NewGameFrom(fen string) (uuid.UUID, error) {
	if fen == engine.InitialFEN {
		fen = ""
	}
	rec := GameRecord{ID: uuid.New(), Created: time.Now().UTC(), StartFEN: fen}

	data, err := json.Marshal(rec)
	if err != nil {
		return uuid.Nil, err
	}
	err = j.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(rec.ID), data)
	})
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "record game")
	}
	return rec.ID, nil
}

// Append records m as ply number ply of game id. Writing a ply twice
// replaces the earlier move.
func (j *Journal) Append(id uuid.UUID, ply int, m chess.Move) error {
	if ply < 1 {
		return fmt.Errorf("journal: ply %d out of range", ply)
	}
	data, err := json.Marshal(MoveRecord{Ply: ply, Move: m.String()})
	if err != nil {
		return err
	}

	return j.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(gameKey(id)); err == badger.ErrKeyNotFound {
			return fmt.Errorf("%s: %w", id, errors.ErrGameNotFound)
		} else if err != nil {
			return err
		}
		return txn.Set(moveKey(id, ply), data)
	})
}

// Game returns the record for id.
func (j *Journal) Game(id uuid.UUID) (GameRecord, error) {
	var rec GameRecord
	err := j.db.View(func(txn *badger.Txn) error {
		var err error
		rec, err = getGame(txn, id)
		return err
	})
	return rec, err
}

// Moves returns the moves of game id in ply order.
func (j *Journal) Moves(id uuid.UUID) ([]chess.Move, error) {
	var moves []chess.Move

	err := j.db.View(func(txn *badger.Txn) error {
		if _, err := getGame(txn, id); err != nil {
			return err
		}

		prefix := []byte(movePrefix + id.String() + "/")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec MoveRecord
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return err
			}
			m, err := chess.ParseMove(rec.Move)
			if err != nil {
				return errors.Wrapf(err, "ply %d", rec.Ply)
			}
			moves = append(moves, m)
		}
		return nil
	})

	return moves, err
}

// Games lists every journalled game, oldest first.
func (j *Journal) Games() ([]GameRecord, error) {
	var games []GameRecord

	err := j.db.View(func(txn *badger.Txn) error {
		prefix := []byte(gamePrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec GameRecord
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return err
			}
			games = append(games, rec)
		}
		return nil
	})

	sort.SliceStable(games, func(a, b int) bool {
		return games[a].Created.Before(games[b].Created)
	})
	return games, err
}

// Resume rebuilds game id by replaying its moves from its starting position.
func (j *Journal) Resume(id uuid.UUID) (*engine.Gamestate, error) {
	rec, err := j.Game(id)
	if err != nil {
		return nil, err
	}
	moves, err := j.Moves(id)
	if err != nil {
		return nil, err
	}

	if rec.StartFEN == "" {
		return engine.Replay(moves)
	}
	g, err := engine.NewGamestateFromFEN(rec.StartFEN)
	if err != nil {
		return nil, err
	}
	return g, g.Apply(moves...)
}

func getGame(txn *badger.Txn, id uuid.UUID) (GameRecord, error) {
	var rec GameRecord

	item, err := txn.Get(gameKey(id))
	if err == badger.ErrKeyNotFound {
		return rec, fmt.Errorf("%s: %w", id, errors.ErrGameNotFound)
	}
	if err != nil {
		return rec, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &rec)
	})
	return rec, err
}

func gameKey(id uuid.UUID) []byte {
	return []byte(gamePrefix + id.String())
}

func moveKey(id uuid.UUID, ply int) []byte {
	return []byte(fmt.Sprintf("%s%s/%08d", movePrefix, id, ply))
}
