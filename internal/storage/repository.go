// Package storage persists users, transactions, and budgets in SQLite.
//
// Every write is a single-row statement, so SQLite's own statement
// atomicity is all the transaction scoping the ledger needs. Uniqueness of
// usernames and of (user_id, category) budget rows is enforced by the
// schema, not by check-then-write in Go.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"finman/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// CreateUser inserts one user row. A username collision surfaces as
// core.ErrDuplicateUsername with nothing written.
func (r *SQLiteRepository) CreateUser(ctx context.Context, username, passwordHash string) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO users (username, password) VALUES (?, ?)`,
		username, passwordHash)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("create user rows affected: %w", err)
	}
	if n != 1 {
		return core.ErrDuplicateUsername
	}

	slog.InfoContext(ctx, "User registered", "username", username)
	return nil
}

// GetUserByUsername returns (nil, nil) when the username is unknown so the
// caller can keep its failure path uniform.
func (r *SQLiteRepository) GetUserByUsername(ctx context.Context, username string) (*core.User, error) {
	var u core.User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, password FROM users WHERE username = ?`,
		username).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// AppendTransaction persists one immutable ledger row and returns its id.
func (r *SQLiteRepository) AppendTransaction(ctx context.Context, tx core.Transaction) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (user_id, type, category, amount, date) VALUES (?, ?, ?, ?, ?)`,
		tx.UserID, string(tx.Kind), tx.Category, tx.Amount.Float(), string(tx.Date))
	if err != nil {
		return 0, fmt.Errorf("append transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("append transaction id: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved",
		"id", id,
		"user_id", tx.UserID,
		"kind", string(tx.Kind),
		"category", tx.Category,
		"date", string(tx.Date))

	return id, nil
}

// ListTransactionsByPeriod returns the user's rows whose date starts with
// the period prefix, in insertion order.
func (r *SQLiteRepository) ListTransactionsByPeriod(ctx context.Context, userID int64, period string) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, type, category, amount, date
		 FROM transactions
		 WHERE user_id = ? AND date LIKE ? || '%'
		 ORDER BY id`,
		userID, period)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txs []core.Transaction
	for rows.Next() {
		var (
			tx     core.Transaction
			kind   string
			amount float64
			date   string
		)
		if err := rows.Scan(&tx.ID, &tx.UserID, &kind, &tx.Category, &amount, &date); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tx.Kind = core.Kind(kind)
		tx.Amount = core.MoneyFromFloat(amount)
		tx.Date = core.Date(date)
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transactions rows: %w", err)
	}
	return txs, nil
}

// UpsertBudget replaces any prior budget for (user_id, category); at most
// one row per pair survives.
func (r *SQLiteRepository) UpsertBudget(ctx context.Context, b core.Budget) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO budgets (user_id, category, amount) VALUES (?, ?, ?)
		 ON CONFLICT (user_id, category) DO UPDATE SET amount = excluded.amount`,
		b.UserID, b.Category, b.Amount.Float())
	if err != nil {
		return fmt.Errorf("upsert budget: %w", err)
	}

	slog.InfoContext(ctx, "Budget set", "user_id", b.UserID, "category", b.Category)
	return nil
}

// ListBudgets returns a user's budgets in insertion order.
func (r *SQLiteRepository) ListBudgets(ctx context.Context, userID int64) ([]core.Budget, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, category, amount FROM budgets WHERE user_id = ? ORDER BY id`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer rows.Close()

	var budgets []core.Budget
	for rows.Next() {
		var (
			b      core.Budget
			amount float64
		)
		if err := rows.Scan(&b.ID, &b.UserID, &b.Category, &amount); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		b.Amount = core.MoneyFromFloat(amount)
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list budgets rows: %w", err)
	}
	return budgets, nil
}
