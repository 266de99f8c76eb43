package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"creature-reviews/internal/ports/storage"

	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var tracer = otel.Tracer("creature-reviews/sqlstore")

// change es una escritura diferida. apply devuelve las filas afectadas.
type change struct {
	name  string
	onFK  error // sentinel si apply viola una FK
	apply func(ctx context.Context, tx *sql.Tx) (int64, error)
}

// Batch acumula cambios y los aplica en una sola transacción al hacer Commit.
// O se aplican todos o ninguno.
type Batch struct {
	db      *sql.DB
	changes []change
}

func newBatch(db *sql.DB) *Batch {
	return &Batch{db: db}
}

func (b *Batch) stage(name string, onFK error, apply func(ctx context.Context, tx *sql.Tx) (int64, error)) {
	b.changes = append(b.changes, change{name: name, onFK: onFK, apply: apply})
}

// exec encola una sentencia con argumentos fijos.
func (b *Batch) exec(name string, onFK error, query string, args ...any) {
	b.stage(name, onFK, func(ctx context.Context, tx *sql.Tx) (int64, error) {
		return execAffected(ctx, tx, query, args...)
	})
}

// insert encola un INSERT ... RETURNING id; el id queda en dst al aplicarse.
func (b *Batch) insert(name string, dst *int64, query string, args ...any) {
	b.stage(name, storage.ErrInvalidReference, func(ctx context.Context, tx *sql.Tx) (int64, error) {
		if err := tx.QueryRowContext(ctx, query, args...).Scan(dst); err != nil {
			return 0, err
		}
		return 1, nil
	})
}

// requireRow aborta el batch con ErrInvalidReference si table no tiene la fila id.
// No suma filas afectadas.
func (b *Batch) requireRow(table, what string, id int64) {
	b.stage("check "+what, nil, func(ctx context.Context, tx *sql.Tx) (int64, error) {
		var ok bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM `+table+` WHERE id = $1)`, id).Scan(&ok); err != nil {
			return 0, err
		}
		if !ok {
			return 0, fmt.Errorf("%s %d: %w", what, id, storage.ErrInvalidReference)
		}
		return 0, nil
	})
}

// Commit abre una transacción, aplica los cambios en orden y suma filas afectadas.
// Cualquier error, o cero filas en total, hace rollback y devuelve error.
func (b *Batch) Commit(ctx context.Context) (err error) {
	ctx, span := tracer.Start(ctx, "sqlstore.Commit",
		trace.WithAttributes(attribute.Int("db.changes", len(b.changes))))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if len(b.changes) == 0 {
		return storage.ErrNoRowsAffected
	}

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var affected int64
	for _, c := range b.changes {
		n, cerr := c.apply(ctx, tx)
		if cerr != nil {
			return fmt.Errorf("%s: %w", c.name, translate(cerr, c.onFK))
		}
		affected += n
	}
	span.SetAttributes(attribute.Int64("db.rows_affected", affected))

	if affected == 0 {
		return storage.ErrNoRowsAffected
	}
	if cerr := tx.Commit(); cerr != nil {
		return fmt.Errorf("commit: %w", translate(cerr, nil))
	}
	return nil
}

func execAffected(ctx context.Context, tx *sql.Tx, query string, args ...any) (int64, error) {
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// translate mapea violaciones de constraint de pgx y sqlite a errores de storage.
// Una violación de FK se reporta como onFK (ErrConflict si es nil).
func translate(err error, onFK error) error {
	if onFK == nil {
		onFK = storage.ErrConflict
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%w: %w", storage.ErrConflict, err)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%w: %w", onFK, err)
		}
		return err
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %w", storage.ErrConflict, err)
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%w: %w", onFK, err)
		case sqlite3.SQLITE_CONSTRAINT_TRIGGER:
			if sqliteForeignKey(liteErr.Error()) {
				return fmt.Errorf("%w: %w", onFK, err)
			}
		}
	}
	return err
}

// sqliteForeignKey reconoce las FK con ON DELETE RESTRICT: sqlite las chequea
// como trigger (1811) y no como SQLITE_CONSTRAINT_FOREIGNKEY (787).
func sqliteForeignKey(msg string) bool {
	return strings.Contains(msg, "FOREIGN KEY constraint failed")
}
