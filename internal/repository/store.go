// Package repository provides data access over an embedded BadgerDB
// key-value store. Each record series lives under its own key prefix;
// keys embed the creation timestamp so iteration order matches
// insertion order.
package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lifementor/backend/internal/logger"
)

// Key prefixes for the record series
const (
	prefixStudy   = "study/"
	prefixHealth  = "health/"
	prefixExpense = "expense/"
	prefixChat    = "chat/"
)

// Store wraps a BadgerDB instance shared by all repositories
type Store struct {
	db *badger.DB
}

// Options configures the embedded store
type Options struct {
	// Path is the directory for the database files. Ignored when
	// InMemory is set.
	Path string
	// InMemory disables disk persistence. Used by tests.
	InMemory bool
}

// badgerLogger adapts our logger to BadgerDB's Logger interface
type badgerLogger struct {
	log logger.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, args...))
}

// OpenStore opens (or creates) the embedded store
func OpenStore(opts Options) (*Store, error) {
	badgerOpts := badger.DefaultOptions(opts.Path).
		WithInMemory(opts.InMemory).
		WithLogger(&badgerLogger{log: logger.Default()})

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// put stores one JSON-encoded record under a timestamp-ordered key
func (s *Store) put(prefix, id string, createdAt time.Time, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	key := recordKey(prefix, id, createdAt)
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
	if err != nil {
		return fmt.Errorf("failed to store record: %w", err)
	}
	return nil
}

// recordKey builds "<prefix><rfc3339nano>/<id>". The timestamp comes
// first so lexicographic key order equals creation order.
func recordKey(prefix, id string, createdAt time.Time) []byte {
	return []byte(prefix + createdAt.UTC().Format(time.RFC3339Nano) + "/" + id)
}

// scan visits every record under prefix in key order, decoding each
// value into a fresh T
func scan[T any](s *Store, prefix string, visit func(T)) error {
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var record T
				if err := json.Unmarshal(val, &record); err != nil {
					return fmt.Errorf("failed to decode record: %w", err)
				}
				visit(record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// windowCutoff returns the inclusive lower bound for a last-N-days query
func windowCutoff(days int) time.Time {
	return time.Now().AddDate(0, 0, -days)
}

// sameDay reports whether t falls on the current calendar day
func sameDay(t time.Time) bool {
	return t.Format("2006-01-02") == time.Now().Format("2006-01-02")
}
