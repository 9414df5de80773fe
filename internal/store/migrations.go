package store

import (
	"context"
	"database/sql"
	"fmt"
)

func (s *Store) migrate(ctx context.Context) error {
	tx, err := s.writer.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		)
	`); err != nil {
		return fmt.Errorf("create schema_version: %w", err)
	}

	var version int
	err = tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	if version < 1 {
		if err := migrateV1(ctx, tx); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return tx.Commit()
}

func migrateV1(ctx context.Context, tx *sql.Tx) error {
	stmts := []string{
		// Chart of accounts. Amounts are decimal strings; sqlite never does
		// arithmetic on them, all money math happens in Go.
		`CREATE TABLE IF NOT EXISTS accounts (
			id              TEXT PRIMARY KEY,
			company_id      TEXT NOT NULL,
			name            TEXT NOT NULL,
			account_number  TEXT,
			account_type    TEXT NOT NULL,
			detail_type     TEXT NOT NULL,
			normal_balance  TEXT NOT NULL CHECK (normal_balance IN ('DEBIT','CREDIT')),
			description     TEXT NOT NULL DEFAULT '',
			parent_id       TEXT REFERENCES accounts(id),
			depth           INTEGER NOT NULL DEFAULT 0,
			full_path       TEXT NOT NULL,
			current_balance TEXT NOT NULL DEFAULT '0',
			is_system       INTEGER NOT NULL DEFAULT 0,
			is_active       INTEGER NOT NULL DEFAULT 1,
			display_order   INTEGER NOT NULL DEFAULT 0,
			created_at      TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now')),
			updated_at      TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_accounts_company ON accounts(company_id)`,
		`CREATE INDEX IF NOT EXISTS idx_accounts_parent ON accounts(parent_id)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_accounts_number
			ON accounts(company_id, account_number) WHERE account_number IS NOT NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_accounts_sibling_name
			ON accounts(company_id, COALESCE(parent_id, ''), name)`,

		// Journal entry headers.
		`CREATE TABLE IF NOT EXISTS journal_entries (
			id           TEXT PRIMARY KEY,
			company_id   TEXT NOT NULL,
			entry_number TEXT NOT NULL,
			entry_date   TEXT NOT NULL,
			description  TEXT NOT NULL DEFAULT '',
			status       TEXT NOT NULL CHECK (status IN ('DRAFT','POSTED','VOID')),
			created_at   TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_company_date ON journal_entries(company_id, entry_date)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_entries_number ON journal_entries(company_id, entry_number)`,

		// Journal lines. The rowid doubles as creation order, the tie-break
		// that keeps running-balance sequencing deterministic.
		`CREATE TABLE IF NOT EXISTS journal_lines (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			entry_id    TEXT NOT NULL REFERENCES journal_entries(id),
			account_id  TEXT NOT NULL REFERENCES accounts(id),
			debit       TEXT NOT NULL DEFAULT '0',
			credit      TEXT NOT NULL DEFAULT '0',
			description TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_lines_entry ON journal_lines(entry_id)`,
		`CREATE INDEX IF NOT EXISTS idx_lines_account ON journal_lines(account_id)`,

		// Posted entries are immutable: their lines cannot be added, changed
		// or removed once the header says POSTED.
		`CREATE TRIGGER IF NOT EXISTS trg_immutable_lines_insert
		BEFORE INSERT ON journal_lines
		WHEN (SELECT status FROM journal_entries WHERE id = NEW.entry_id) = 'POSTED'
		BEGIN
			SELECT RAISE(ABORT, 'cannot add lines to a posted entry');
		END`,
		`CREATE TRIGGER IF NOT EXISTS trg_immutable_lines_update
		BEFORE UPDATE ON journal_lines
		WHEN (SELECT status FROM journal_entries WHERE id = OLD.entry_id) = 'POSTED'
		BEGIN
			SELECT RAISE(ABORT, 'cannot modify lines of a posted entry');
		END`,
		`CREATE TRIGGER IF NOT EXISTS trg_immutable_lines_delete
		BEFORE DELETE ON journal_lines
		WHEN (SELECT status FROM journal_entries WHERE id = OLD.entry_id) = 'POSTED'
		BEGIN
			SELECT RAISE(ABORT, 'cannot remove lines from a posted entry');
		END`,
	}

	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("exec migration statement: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_version (version) VALUES (1)`); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	return nil
}
