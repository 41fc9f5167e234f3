// Package cache persists per-page comparison results so an unchanged
// document pair is not re-diffed on every run.
package cache

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/docudiff/docudiff/internal/engine"
)

// CompareCache wraps BadgerDB for comparison-result storage. Values are
// lz4-compressed JSON.
type CompareCache struct {
	db *badger.DB
}

// Open opens (or creates) the cache database at the given path.
func Open(dbPath string) (*CompareCache, error) {
	db, err := badger.Open(badger.DefaultOptions(dbPath).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("failed to open cache db: %v", err)
	}
	return &CompareCache{db: db}, nil
}

// Close closes the underlying database.
func (c *CompareCache) Close() error {
	return c.db.Close()
}

func cacheKey(originalID, changedID string, page int) []byte {
	return []byte(fmt.Sprintf("cmp:%s:%s:%d", originalID, changedID, page))
}

// Put stores one page's comparison result under the document pair's
// content ids.
func (c *CompareCache) Put(originalID, changedID string, page int, result engine.CompareResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	val, err := compress(raw)
	if err != nil {
		return err
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(cacheKey(originalID, changedID, page), val)
	})
}

// Get returns the cached result for a page. Any miss, decompression or
// decode failure simply reports not-found; the caller re-runs the
// comparison.
func (c *CompareCache) Get(originalID, changedID string, page int) (engine.CompareResult, bool) {
	var result engine.CompareResult
	found := false
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(cacheKey(originalID, changedID, page))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			raw, err := decompress(val)
			if err != nil {
				return err
			}
			if err := json.Unmarshal(raw, &result); err != nil {
				return err
			}
			found = true
			return nil
		})
	})
	if err != nil || !found {
		return engine.CompareResult{}, false
	}
	return result, true
}
