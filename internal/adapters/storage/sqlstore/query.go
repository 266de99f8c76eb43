package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"creature-reviews/internal/domain/creatures"
	"creature-reviews/internal/ports/storage"
)

type scanner interface {
	Scan(dest ...any) error
}

func queryList[T any](ctx context.Context, db *sql.DB, scan func(scanner) (T, error), query string, args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func queryOne[T any](ctx context.Context, db *sql.DB, scan func(scanner) (T, error), query string, args ...any) (T, error) {
	v, err := scan(db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		var zero T
		return zero, storage.ErrNotFound
	}
	return v, err
}

func exists(ctx context.Context, db *sql.DB, table string, id int64) (bool, error) {
	var ok bool
	err := db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM `+table+` WHERE id = $1)`, id).Scan(&ok)
	return ok, err
}

// toNullDate guarda solo la fecha (creatures.DateOnly); cero = NULL.
func toNullDate(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: creatures.DateOnly(t), Valid: true}
}

func fromNullDate(nt sql.NullTime) time.Time {
	if !nt.Valid {
		return time.Time{}
	}
	// pgx devuelve date en UTC; sqlite puede devolver un offset fijo
	return creatures.DateOnly(nt.Time.UTC())
}
