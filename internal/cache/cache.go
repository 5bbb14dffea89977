package cache

import (
	"encoding/binary"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// PerftCache wraps a BadgerDB instance to memoize perft node counts keyed
// by the FEN being searched and the depth searched to. Entries never
// expire: a given (fen, depth) pair always has the same answer.
type PerftCache struct {
	db *badger.DB
}

// Open opens (creating if necessary) a PerftCache at dir. Pass "" to use
// DefaultDir.
func Open(dir string) (*PerftCache, error) {
	if dir == "" {
		var err error
		dir, err = DefaultDir()
		if err != nil {
			return nil, err
		}
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening perft cache: %w", err)
	}

	return &PerftCache{db: db}, nil
}

// Close closes the underlying database.
func (c *PerftCache) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

func perftKey(fen string, depth int) []byte {
	return []byte(fmt.Sprintf("perft|%s|%d", fen, depth))
}

// Get returns the memoized node count for (fen, depth), if present.
func (c *PerftCache) Get(fen string, depth int) (nodes int64, ok bool, err error) {
	err = c.db.View(func(txn *badger.Txn) error {
		item, txErr := txn.Get(perftKey(fen, depth))
		if txErr == badger.ErrKeyNotFound {
			return nil
		}
		if txErr != nil {
			return txErr
		}
		return item.Value(func(val []byte) error {
			if len(val) != 8 {
				return fmt.Errorf("corrupt perft cache entry: %d bytes", len(val))
			}
			nodes = int64(binary.LittleEndian.Uint64(val))
			ok = true
			return nil
		})
	})
	return nodes, ok, err
}

// Put memoizes the node count for (fen, depth).
func (c *PerftCache) Put(fen string, depth int, nodes int64) error {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(nodes))

	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(perftKey(fen, depth), buf)
	})
}

// Stats reports the number of memoized perft entries currently stored.
func (c *PerftCache) Stats() (entries int, err error) {
	err = c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte("perft|")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			entries++
		}
		return nil
	})
	return entries, err
}
