package sqlite

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/showtrack/pkg/logger"
	"github.com/kasuboski/showtrack/pkg/storage"
	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	qrm.Queryable
	qrm.Executable
}

type SQLite struct {
	db *sql.DB
	q  querier
	tx *sql.Tx
}

// New opens the sqlite database at filePath. Use ":memory:" for a throwaway database.
func New(ctx context.Context, filePath string) (storage.Storage, error) {
	db, err := sql.Open("sqlite3", dsn(filePath))
	if err != nil {
		return nil, err
	}

	// every connection to :memory: is its own database
	if isMemory(filePath) {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, classify(err)
	}

	return &SQLite{
		db: db,
		q:  db,
	}, nil
}

func isMemory(filePath string) bool {
	return filePath == ":memory:" || strings.Contains(filePath, "mode=memory")
}

func dsn(filePath string) string {
	params := url.Values{}
	params.Set("_foreign_keys", "1")
	params.Set("_txlock", "immediate")
	params.Set("_busy_timeout", "5000")
	if !isMemory(filePath) {
		params.Set("_journal_mode", "WAL")
	}

	sep := "?"
	if strings.Contains(filePath, "?") {
		sep = "&"
	}

	return filePath + sep + params.Encode()
}

// RunMigrations applies any pending schema migrations
func (s *SQLite) RunMigrations(ctx context.Context) error {
	log := logger.FromCtx(ctx)

	version, dirty, err := migrateUp(s.db)
	if err != nil {
		return err
	}
	if dirty {
		return fmt.Errorf("database schema is dirty at version %d", version)
	}
	log.Debugw("database migrated", "version", version)

	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// RunInTransaction runs fn with a store bound to one transaction. The
// transaction is rolled back if fn returns an error or ctx is cancelled
// before commit.
func (s *SQLite) RunInTransaction(ctx context.Context, fn storage.TxFunc) error {
	return s.withTx(ctx, func(ctx context.Context, tx *SQLite) error {
		return fn(ctx, tx)
	})
}

func (s *SQLite) withTx(ctx context.Context, fn func(ctx context.Context, tx *SQLite) error) error {
	if s.tx != nil {
		return fn(ctx, s)
	}

	log := logger.FromCtx(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Debug("failed to init transaction", zap.Error(err))
		return classify(err)
	}

	err = fn(ctx, &SQLite{db: s.db, q: tx, tx: tx})
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Debug("failed to rollback transaction", zap.Error(rbErr))
		}
		return err
	}

	if err := ctx.Err(); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", classify(err))
	}

	return nil
}

func (s *SQLite) handleInsert(ctx context.Context, stmt sqlite.InsertStatement) (sql.Result, error) {
	return s.handleStatement(ctx, stmt)
}

func (s *SQLite) handleUpdate(ctx context.Context, stmt sqlite.UpdateStatement) (sql.Result, error) {
	return s.handleStatement(ctx, stmt)
}

func (s *SQLite) handleDelete(ctx context.Context, stmt sqlite.DeleteStatement) (sql.Result, error) {
	return s.handleStatement(ctx, stmt)
}

// handleStatement executes stmt in the current transaction, or in a new one
// when the store is not bound to a transaction.
func (s *SQLite) handleStatement(ctx context.Context, stmt sqlite.Statement) (sql.Result, error) {
	log := logger.FromCtx(ctx)

	if s.tx != nil {
		result, err := stmt.ExecContext(ctx, s.tx)
		if err != nil {
			log.Debug("failed to execute statement", zap.String("query", stmt.DebugSql()), zap.Error(err))
			return nil, classify(err)
		}
		return result, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Debug("failed to init transaction", zap.Error(err))
		return nil, classify(err)
	}

	result, err := stmt.ExecContext(ctx, tx)
	if err != nil {
		log.Debug("failed to execute statement", zap.String("query", stmt.DebugSql()), zap.Error(err))
		tx.Rollback()
		return nil, classify(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, classify(err)
	}

	return result, nil
}

// query runs a select into dest and maps missing rows to storage.ErrNotFound
func (s *SQLite) query(ctx context.Context, stmt sqlite.Statement, dest any) error {
	err := stmt.QueryContext(ctx, s.q, dest)
	if err != nil {
		return classify(err)
	}
	return nil
}

// classify maps driver errors onto the storage sentinels. Busy and locked
// databases are reported as storage.ErrUnavailable.
func classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, qrm.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return fmt.Errorf("%w: %w", storage.ErrUnavailable, err)
		case sqlite3.ErrConstraint:
			if sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
				return fmt.Errorf("%w: %w", storage.ErrAlreadyExists, err)
			}
		}
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("%w: %w", storage.ErrUnavailable, err)
	}

	return err
}
