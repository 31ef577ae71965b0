package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/pressly/goose/v3"

	"bookstall/internal/client/migrations"
	"bookstall/internal/dbx"
)

// Storage keys within the session table.
const (
	keyToken = "token"
	keyRole  = "role"
	keyUser  = "user"
)

// OpenDatabase opens the local session database and applies the embedded
// goose migrations.
func OpenDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("apply session migrations: %w", err)
	}

	return db, nil
}

// SQLiteStore keeps the session in a key/value table in a local SQLite
// database.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) get(ctx context.Context, q dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

// Load reads the persisted session. Missing keys map to zero values and a
// profile blob that is not valid JSON is dropped, so a corrupt cache can
// never break startup.
func (s *SQLiteStore) Load(ctx context.Context) (Persisted, error) {
	var p Persisted

	token, err := s.get(ctx, s.db, keyToken)
	if err != nil {
		return Persisted{}, err
	}
	role, err := s.get(ctx, s.db, keyRole)
	if err != nil {
		return Persisted{}, err
	}
	user, err := s.get(ctx, s.db, keyUser)
	if err != nil {
		return Persisted{}, err
	}

	p.Token = string(token)
	p.Role = string(role)
	if len(user) > 0 && json.Valid(user) {
		p.User = user
	}
	return p, nil
}

// Save writes token, role and profile in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, p Persisted) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, keyToken, []byte(p.Token)); err != nil {
			return err
		}
		if err := s.set(ctx, tx, keyRole, []byte(p.Role)); err != nil {
			return err
		}
		if p.User == nil {
			p.User = []byte{}
		}
		return s.set(ctx, tx, keyUser, p.User)
	})
}

// SaveRole updates the role key alone.
func (s *SQLiteStore) SaveRole(ctx context.Context, role string) error {
	return s.set(ctx, s.db, keyRole, []byte(role))
}

// Clear removes every session key in one statement, so a concurrent or
// subsequent Load sees either the full session or none of it.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
