package sqlstore

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testStore struct {
	db         *sql.DB
	categories *CategoriesRepo
	countries  *CountriesRepo
	owners     *OwnersRepo
	creatures  *CreaturesRepo
	reviews    *ReviewsRepo
	reviewers  *ReviewersRepo
}

func newTestStore(t *testing.T, db *sql.DB) *testStore {
	return &testStore{
		db:         db,
		categories: NewCategoriesRepo(db),
		countries:  NewCountriesRepo(db),
		owners:     NewOwnersRepo(db),
		creatures:  NewCreaturesRepo(db),
		reviews:    NewReviewsRepo(db),
		reviewers:  NewReviewersRepo(db),
	}
}

// forEachDriver corre fn sobre sqlite (archivo temporal) y, si TEST_PG_DSN está seteado, sobre Postgres.
func forEachDriver(t *testing.T, fn func(t *testing.T, s *testStore)) {
	t.Run("sqlite", func(t *testing.T) {
		ctx := context.Background()
		db, err := Open(ctx, DriverSQLite, filepath.Join(t.TempDir(), "creatures_test.db"))
		require.NoError(t, err, "open db")
		t.Cleanup(func() { _ = db.Close() })
		require.NoError(t, Migrate(ctx, db, DriverSQLite), "run migrations")

		fn(t, newTestStore(t, db))
	})

	dsn := os.Getenv("TEST_PG_DSN")
	if dsn == "" {
		return
	}
	t.Run("postgres", func(t *testing.T) {
		ctx := context.Background()
		db, err := Open(ctx, DriverPostgres, dsn)
		require.NoError(t, err, "open db")
		t.Cleanup(func() { _ = db.Close() })
		require.NoError(t, Migrate(ctx, db, DriverPostgres), "run migrations")

		_, err = db.ExecContext(ctx, `TRUNCATE creature_owners, creature_categories, reviews, reviewers,
			creatures, owners, countries, categories RESTART IDENTITY CASCADE`)
		require.NoError(t, err, "truncate")

		fn(t, newTestStore(t, db))
	})
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}
