// Package store executes SQL against the configured database file with a
// strictly scoped connection per call. Every operation is a single
// open → execute → close sequence: nothing is pooled, cached, or shared
// between calls, and the handle is released on all exit paths so the file
// is never left locked.
//
// Reads go through Query, which opens the file in read-only access mode and
// materializes every row before returning. Writes go through Exec, which
// opens read-write and runs the statement in autocommit mode (no explicit
// transaction wrapping; the engine commits each statement immediately).
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"

	apperrors "tunestat/cli/internal/errors"
	"tunestat/cli/internal/logging"
)

// access modes understood by the engine's DSN options.
const (
	modeReadOnly  = "read_only"
	modeReadWrite = "read_write"
)

// Store runs queries and commands against one database file.
type Store struct {
	path string
}

// New creates a Store for the given database file path. The file is not
// touched until Query or Exec is called.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the database file path this store operates on.
func (s *Store) Path() string { return s.path }

// Query opens a scoped read-only connection, executes q, materializes all
// rows into a Result, and closes the connection. The Result is built fresh
// per call and owned entirely by the caller. On failure a query_failed
// (or open_failed) error is returned and no partial result.
func (s *Store) Query(ctx context.Context, q string) (*Result, error) {
	db, err := s.open(modeReadOnly)
	if err != nil {
		return nil, err
	}
	defer closeQuietly(db)

	logging.Debug().Str("mode", modeReadOnly).Str("sql", truncate(q, 120)).Msg("executing query")

	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.QueryFailed, "query failed", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.QueryFailed, "reading result columns", err)
	}

	res := &Result{Columns: cols, Rows: [][]any{}}
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, apperrors.Wrap(apperrors.QueryFailed, "scanning row", err)
		}
		res.Rows = append(res.Rows, vals)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.QueryFailed, "iterating rows", err)
	}

	logging.Debug().Int("rows", len(res.Rows)).Int("columns", len(cols)).Msg("query complete")
	return res, nil
}

// Exec opens a scoped read-write connection in autocommit mode, executes c,
// and closes the connection. Returns the number of rows the statement
// affected. On failure a command_failed (or open_failed) error is returned;
// the scoped close still runs, so the file is never left locked.
func (s *Store) Exec(ctx context.Context, c string) (int64, error) {
	db, err := s.open(modeReadWrite)
	if err != nil {
		return 0, err
	}
	defer closeQuietly(db)

	logging.Debug().Str("mode", modeReadWrite).Str("sql", truncate(c, 120)).Msg("executing command")

	res, err := db.ExecContext(ctx, c)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.CommandFailed, "command failed", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		// Engine executed the statement; treat a missing count as zero.
		affected = 0
	}

	logging.Debug().Int64("rows_affected", affected).Msg("command complete")
	return affected, nil
}

// open creates the per-call handle. MaxOpenConns is pinned to 1 so each
// Query/Exec uses exactly one underlying connection, keeping the scoped
// acquire/release discipline observable at the file level.
func (s *Store) open(mode string) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s?access_mode=%s", s.path, mode)
	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.OpenFailed, "cannot open database", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		closeQuietly(db)
		return nil, apperrors.Wrap(apperrors.OpenFailed,
			fmt.Sprintf("cannot open database %s", s.path), err)
	}
	return db, nil
}

func closeQuietly(db *sql.DB) {
	if err := db.Close(); err != nil {
		logging.Warn().Err(err).Msg("closing database handle")
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
