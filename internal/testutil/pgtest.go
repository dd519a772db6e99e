// README: Shared helpers for DB-backed store tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres connects to SMARTPARK_TEST_DSN, applies the migrations and empties the
// tables. The test is skipped when the variable is unset.
func Postgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("SMARTPARK_TEST_DSN")
	if dsn == "" {
		t.Skip("SMARTPARK_TEST_DSN not set; skipping DB-backed store tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(db.Close)

	if err := applyMigrations(ctx, db); err != nil {
		t.Fatalf("apply migration: %v", err)
	}
	if _, err := db.Exec(ctx, "TRUNCATE TABLE bookings, spots, zones"); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
	return db
}

// MustExec runs seed statements, failing the test on error.
func MustExec(t *testing.T, db *pgxpool.Pool, sql string, args ...any) {
	t.Helper()
	if _, err := db.Exec(context.Background(), sql, args...); err != nil {
		t.Fatalf("exec %q: %v", sql, err)
	}
}

func applyMigrations(ctx context.Context, db *pgxpool.Pool) error {
	paths, err := filepath.Glob(filepath.Join(migrationsDir(), "*.sql"))
	if err != nil {
		return err
	}
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, stmt := range statements(string(content)) {
			if _, err := db.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("%s: %w", filepath.Base(path), err)
			}
		}
	}
	return nil
}

// migrationsDir is resolved from this file so tests in any package find it.
func migrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "migrations")
}

// statements splits a migration file into statements ending at a line-final ';'.
// Whole-line "--" comments are dropped.
func statements(sql string) []string {
	var (
		out []string
		cur []string
	)
	for _, line := range strings.Split(sql, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		cur = append(cur, line)
		if strings.HasSuffix(trimmed, ";") {
			stmt := strings.TrimSuffix(strings.TrimSpace(strings.Join(cur, "\n")), ";")
			out = append(out, stmt)
			cur = cur[:0]
		}
	}
	if len(cur) > 0 {
		out = append(out, strings.TrimSpace(strings.Join(cur, "\n")))
	}
	return out
}
