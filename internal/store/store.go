// Package store persists cache entries across process restarts. The UI the
// service backs keeps its detection and search caches in browser-local
// storage; server-side the same two namespaces live in a small sqlite file.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

// Fixed namespace keys. Entry layout and TTLs match the in-memory caches
// they back.
const (
	NamespaceCountryDetection = "haulplan_country_detection"
	NamespaceLocationSearch   = "haulplan_location_search"
)

const schema = `
CREATE TABLE IF NOT EXISTS cache_entries (
	namespace TEXT NOT NULL,
	key       TEXT NOT NULL,
	value     TEXT NOT NULL,
	method    TEXT NOT NULL DEFAULT '',
	timestamp INTEGER NOT NULL,
	PRIMARY KEY (namespace, key)
);
`

// Entry is one persisted record: a JSON value, the optional detection method
// that produced it, and the insertion timestamp used for expiry.
type Entry struct {
	Value     json.RawMessage
	Method    string
	Timestamp time.Time
}

// Store is a namespaced key/value store over sqlite. Entries older than the
// TTL passed to Get are treated as absent and deleted on read.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
	now    func() time.Time
}

// Open opens (creating if needed) the sqlite file at path.
func Open(path string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to init store schema: %w", err)
	}
	return &Store{
		db:     db,
		logger: logger.With("component", "store"),
		now:    time.Now,
	}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the entry under (namespace, key), or ok=false when absent or
// older than ttl. Expired entries are deleted as they are read.
func (s *Store) Get(namespace, key string, ttl time.Duration) (*Entry, bool, error) {
	row := s.db.QueryRow(
		`SELECT value, method, timestamp FROM cache_entries WHERE namespace = ? AND key = ?`,
		namespace, key,
	)

	var (
		value  string
		method string
		ts     int64
	)
	if err := row.Scan(&value, &method, &ts); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read store entry: %w", err)
	}

	inserted := time.UnixMilli(ts)
	if ttl > 0 && s.now().Sub(inserted) > ttl {
		if _, err := s.db.Exec(
			`DELETE FROM cache_entries WHERE namespace = ? AND key = ?`, namespace, key,
		); err != nil {
			s.logger.Warn("failed to delete expired entry", "namespace", namespace, "key", key, "error", err)
		}
		return nil, false, nil
	}

	return &Entry{
		Value:     json.RawMessage(value),
		Method:    method,
		Timestamp: inserted,
	}, true, nil
}

// Put upserts an entry under (namespace, key). The last successful write wins.
func (s *Store) Put(namespace, key string, value any, method string) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode store value: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO cache_entries (namespace, key, value, method, timestamp)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(namespace, key) DO UPDATE SET
		   value = excluded.value, method = excluded.method, timestamp = excluded.timestamp`,
		namespace, key, string(raw), method, s.now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to write store entry: %w", err)
	}
	return nil
}

// Clear removes every entry in the namespace.
func (s *Store) Clear(namespace string) error {
	if _, err := s.db.Exec(`DELETE FROM cache_entries WHERE namespace = ?`, namespace); err != nil {
		return fmt.Errorf("failed to clear namespace: %w", err)
	}
	return nil
}
