// Package sqlite stores the serialized collection as one row of a
// key-value table.
package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/dialoguedeck/internal/logger"
	"github.com/vytor/dialoguedeck/internal/store"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

const table = "kv_store"

type Store struct {
	db  *sql.DB
	key string
}

// New returns a store reading and writing the row identified by key. The
// kv_store table must already exist (see db.Open).
func New(db *sql.DB, key string) *Store {
	return &Store{db: db, key: key}
}

func (s *Store) Load(ctx context.Context) ([]byte, error) {
	log := logger.FromContext(ctx).WithPrefix("sqlite_store")
	log.Debug("loading key=%s", s.key)

	query, args, err := sqlBuilder.
		Select("value").
		From(table).
		Where(squirrel.Eq{"key": s.key}).
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	var value []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no stored value for key=%s", s.key)
		return nil, store.ErrNotFound
	}
	if err != nil {
		log.Error("failed to load key=%s: %v", s.key, err)
		return nil, err
	}
	log.Debug("loaded %d bytes", len(value))
	return value, nil
}

func (s *Store) Save(ctx context.Context, data []byte) error {
	log := logger.FromContext(ctx).WithPrefix("sqlite_store")
	log.Debug("saving key=%s, %d bytes", s.key, len(data))

	query, args, err := sqlBuilder.
		Insert(table).
		Columns("key", "value", "updated_at").
		Values(s.key, data, squirrel.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return err
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to save key=%s: %v", s.key, err)
		return err
	}
	return nil
}
