package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/apex/internal/db"
)

// Envelope is one stored payload with the storage version it was written
// under. Timestamp is in Unix milliseconds.
type Envelope struct {
	Version   string          `json:"version"`
	Timestamp int64           `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// EnvelopeStore persists JSON payloads by key, stamped with the storage
// version the application expects.
type EnvelopeStore struct {
	db      db.DBTX
	version string
	now     func() time.Time
}

func NewEnvelopeStore(conn db.DBTX, version string) *EnvelopeStore {
	return &EnvelopeStore{db: conn, version: version, now: time.Now}
}

// Version is the storage version written by Put and expected by Load.
func (s *EnvelopeStore) Version() string {
	return s.version
}

func (s *EnvelopeStore) Get(ctx context.Context, key string) (Envelope, error) {
	query := `SELECT version, timestamp, data FROM envelopes WHERE key = ?`
	var env Envelope
	var data string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&env.Version, &env.Timestamp, &data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Envelope{}, fmt.Errorf("envelope %q: %w", key, ErrNotFound)
		}
		return Envelope{}, fmt.Errorf("scanning envelope %q: %w", key, err)
	}
	env.Data = json.RawMessage(data)
	return env, nil
}

func (s *EnvelopeStore) Put(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding envelope %q: %w", key, err)
	}
	query := `INSERT OR REPLACE INTO envelopes (key, version, timestamp, data) VALUES (?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, query, key, s.version, s.now().UnixMilli(), string(data)); err != nil {
		return fmt.Errorf("writing envelope %q: %w", key, err)
	}
	return nil
}

func (s *EnvelopeStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM envelopes WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting envelope %q: %w", key, err)
	}
	return nil
}

// LoadOrDefault decodes the payload stored under key. A missing key or a
// payload written under another storage version yields def. Stored data of
// another version is left in place and replaced by the next Put.
func LoadOrDefault[T any](ctx context.Context, s *EnvelopeStore, key string, def T) (T, error) {
	env, err := s.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return def, nil
		}
		return def, err
	}
	if env.Version != s.version {
		return def, nil
	}
	var v T
	if err := json.Unmarshal(env.Data, &v); err != nil {
		return def, fmt.Errorf("decoding envelope %q: %w", key, err)
	}
	return v, nil
}
