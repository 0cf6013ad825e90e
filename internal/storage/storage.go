package storage

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/matesearch-go/internal/chess"
	"github.com/lgbarn/matesearch-go/internal/engine"
	"github.com/lgbarn/matesearch-go/internal/errors"
)

// keyPrefix namespaces result entries and carries the encoding version.
const keyPrefix = "mates/v1/"

// StoredLine is the persisted form of one mate line.
type StoredLine struct {
	Moves []string `json:"moves"`
	FEN   string   `json:"fen"` // Mating position with the mated side to move
}

// Entry is the value stored under a search key.
type Entry struct {
	Lines []StoredLine `json:"lines"`
	Nodes int          `json:"nodes"`
}

// Cache wraps BadgerDB for persistent search results.
type Cache struct {
	db *badger.DB
}

// Open opens or creates a cache in dir.
func Open(dir string) (*Cache, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging
	return open(opts)
}

// OpenInMemory opens a cache that lives only as long as the process.
func OpenInMemory() (*Cache, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Cache, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "opening result cache")
	}
	return &Cache{db: db}, nil
}

// Close closes the database.
func (c *Cache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Key builds the cache key for a search from a starting position. Only the
// piece placement of fen is used.
func Key(fen string, toMove chess.Colour, plies int) string {
	placement, _, _ := strings.Cut(strings.TrimSpace(fen), " ")
	return fmt.Sprintf("%s%s/%c/%d", keyPrefix, placement, toMove.Letter(), plies)
}

// Save stores an entry under key, replacing any previous value.
func (c *Cache) Save(key string, entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// Load returns the entry stored under key. The boolean is false when the
// key is absent.
func (c *Cache) Load(key string) (Entry, bool, error) {
	var (
		entry Entry
		found bool
	)

	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entry)
		})
	})

	return entry, found, err
}

// Delete removes the entry under key.
func (c *Cache) Delete(key string) error {
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// Keys returns every stored search key.
func (c *Cache) Keys() ([]string, error) {
	var keys []string
	err := c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	return keys, err
}

// ToStored converts a search result into its persisted form, in the order
// of Result.Lines.
func ToStored(result *engine.Result) Entry {
	entry := Entry{Nodes: result.Nodes}
	for _, line := range result.Lines() {
		entry.Lines = append(entry.Lines, StoredLine{
			Moves: line.Moves.Labels(),
			FEN:   engine.BoardToFEN(line.Board, line.Mated),
		})
	}
	return entry
}

// FromStored rebuilds a search result from a stored entry. Generation
// statistics are not persisted and are left empty.
func FromStored(entry Entry) (*engine.Result, error) {
	result := &engine.Result{Mates: make(map[string]*engine.MateLine), Nodes: entry.Nodes}
	for _, stored := range entry.Lines {
		moves, err := chess.ParseSequence(strings.Join(stored.Moves, " "))
		if err != nil {
			return nil, errors.Wrap(err, "decoding cached line")
		}
		board, mated, err := engine.NewBoardFromFEN(stored.FEN)
		if err != nil {
			return nil, errors.Wrap(err, "decoding cached line")
		}
		line := &engine.MateLine{Moves: moves, Board: board, Mated: mated}
		result.Mates[line.Key()] = line
	}
	result.Distinct = result.CountDistinct()
	return result, nil
}
