// Package index stores the dedupe mappings on BadgerDB: the canonical IRI
// chosen for each (type, key) pair and the alias from every duplicate IRI to
// its canonical one.
package index

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
)

// ErrNotFound is returned when an IRI has no alias.
var ErrNotFound = errors.New("index: not found")

const (
	keyPrefix   = "k/"
	aliasPrefix = "a/"
)

// Config configures the store.
type Config struct {
	// Path is the database directory. Empty means in memory.
	Path string
	// SyncWrites flushes every write to disk.
	SyncWrites bool
	// Logger receives BadgerDB's own log output. Nil silences it.
	Logger *slog.Logger
}

// Store is the dedupe index. It is safe for concurrent use.
type Store struct {
	db *badger.DB
}

// badgerLogger adapts slog.Logger to BadgerDB's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Open opens the store described by cfg.
func Open(cfg Config) (*Store, error) {
	var opts badger.Options
	if cfg.Path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("create index directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger.With("component", "badger")})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens an empty in-memory store.
func OpenInMemory() (*Store, error) {
	return Open(Config{})
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Reset removes every entry.
func (s *Store) Reset() error {
	return s.db.DropAll()
}

func canonicalKey(typ, key string) []byte {
	return []byte(keyPrefix + typ + "/" + key)
}

func aliasKey(iri string) []byte {
	return []byte(aliasPrefix + iri)
}

func (s *Store) get(k []byte) (string, error) {
	var out string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(k)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			out = string(val)
			return nil
		})
	})
	return out, err
}

// Claim records iri as canonical for (typ, key) unless another IRI already
// holds it. It returns the canonical IRI and whether iri won the claim.
// Transactions that lose a write conflict are retried.
func (s *Store) Claim(typ, key, iri string) (string, bool, error) {
	for {
		canonical, claimed, err := s.claim(typ, key, iri)
		if errors.Is(err, badger.ErrConflict) {
			continue
		}
		if err != nil {
			return "", false, fmt.Errorf("claim %s key: %w", typ, err)
		}
		return canonical, claimed, nil
	}
}

func (s *Store) claim(typ, key, iri string) (string, bool, error) {
	canonical := iri
	claimed := false
	err := s.db.Update(func(txn *badger.Txn) error {
		k := canonicalKey(typ, key)
		item, err := txn.Get(k)
		switch {
		case err == nil:
			return item.Value(func(val []byte) error {
				canonical = string(val)
				return nil
			})
		case errors.Is(err, badger.ErrKeyNotFound):
			claimed = true
			return txn.Set(k, []byte(iri))
		default:
			return err
		}
	})
	return canonical, claimed, err
}

// PutAlias maps iri to canonical.
func (s *Store) PutAlias(iri, canonical string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(aliasKey(iri), []byte(canonical))
	})
	if err != nil {
		return fmt.Errorf("put alias %s: %w", iri, err)
	}
	return nil
}

// Alias returns the canonical IRI iri was mapped to, or ErrNotFound.
func (s *Store) Alias(iri string) (string, error) {
	return s.get(aliasKey(iri))
}
