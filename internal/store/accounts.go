package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/ledger"
	"github.com/shopspring/decimal"
)

const accountColumns = `id, company_id, name, account_number, account_type, detail_type,
	normal_balance, description, parent_id, depth, full_path, current_balance,
	is_system, is_active, display_order, created_at, updated_at`

func (s *Store) CreateAccount(ctx context.Context, acct *ledger.Account) error {
	return s.insertAccounts(ctx, s.writer, acct)
}

// CreateAccounts inserts a batch of accounts in one transaction; either the
// whole batch lands or none of it does.
func (s *Store) CreateAccounts(ctx context.Context, accts []*ledger.Account) error {
	tx, err := s.writer.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.insertAccounts(ctx, tx, accts...); err != nil {
		return err
	}
	return tx.Commit()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) insertAccounts(ctx context.Context, db execer, accts ...*ledger.Account) error {
	for _, acct := range accts {
		var number any
		if acct.AccountNumber != "" {
			number = acct.AccountNumber
		}
		var parent any
		if acct.ParentID != "" {
			parent = acct.ParentID
		}
		_, err := db.ExecContext(ctx,
			`INSERT INTO accounts (id, company_id, name, account_number, account_type, detail_type,
				normal_balance, description, parent_id, depth, full_path, current_balance,
				is_system, is_active, display_order)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			acct.ID, acct.CompanyID, acct.Name, number, string(acct.Type), acct.DetailType,
			string(acct.NormalBalance), acct.Description, parent, acct.Depth, acct.FullPath,
			acct.CurrentBalance.String(), boolToInt(acct.IsSystem), boolToInt(acct.IsActive),
			acct.DisplayOrder,
		)
		if err != nil {
			return fmt.Errorf("insert account %q: %w", acct.Name, err)
		}
	}
	return nil
}

func (s *Store) GetAccount(ctx context.Context, companyID, id string) (*ledger.Account, error) {
	row := s.reader.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE company_id = ? AND id = ?`, companyID, id)
	return scanAccount(row.Scan)
}

func (s *Store) ListAccounts(ctx context.Context, companyID string, filter AccountFilter) ([]ledger.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE company_id = ?`
	args := []any{companyID}

	if filter.Type != "" {
		query += ` AND account_type = ?`
		args = append(args, string(filter.Type))
	}
	if filter.ParentID != nil {
		if *filter.ParentID == "" {
			query += ` AND parent_id IS NULL`
		} else {
			query += ` AND parent_id = ?`
			args = append(args, *filter.ParentID)
		}
	}
	if !filter.IncludeInactive {
		query += ` AND is_active = 1`
	}

	query += ` ORDER BY display_order, COALESCE(account_number, '')`

	rows, err := s.reader.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []ledger.Account
	for rows.Next() {
		acct, err := scanAccount(rows.Scan)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *acct)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Types sort in catalog order, not by their string names.
	sort.SliceStable(accounts, func(i, j int) bool {
		return ledger.TypeSortKey(accounts[i].Type) < ledger.TypeSortKey(accounts[j].Type)
	})
	return accounts, nil
}

// ListActiveAccounts is the account source for the reporting engine.
func (s *Store) ListActiveAccounts(ctx context.Context, companyID string) ([]ledger.Account, error) {
	return s.ListAccounts(ctx, companyID, AccountFilter{})
}

// UpdateAccount rewrites an account's mutable fields and, when paths is
// non-empty, its descendants' full paths in the same transaction. A rename
// cascade must never leave a subtree with mixed old and new paths.
func (s *Store) UpdateAccount(ctx context.Context, acct *ledger.Account, paths map[string]string) error {
	tx, err := s.writer.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var number any
	if acct.AccountNumber != "" {
		number = acct.AccountNumber
	}
	res, err := tx.ExecContext(ctx,
		`UPDATE accounts SET name = ?, account_number = ?, detail_type = ?, description = ?,
			full_path = ?, is_active = ?, updated_at = strftime('%Y-%m-%dT%H:%M:%fZ','now')
		WHERE company_id = ? AND id = ?`,
		acct.Name, number, acct.DetailType, acct.Description,
		acct.FullPath, boolToInt(acct.IsActive), acct.CompanyID, acct.ID,
	)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ledger.ErrAccountNotFound
	}

	for id, path := range paths {
		if _, err := tx.ExecContext(ctx,
			`UPDATE accounts SET full_path = ?, updated_at = strftime('%Y-%m-%dT%H:%M:%fZ','now')
			WHERE company_id = ? AND id = ?`,
			path, acct.CompanyID, id,
		); err != nil {
			return fmt.Errorf("update descendant path: %w", err)
		}
	}

	return tx.Commit()
}

func (s *Store) DeleteAccount(ctx context.Context, companyID, id string) error {
	res, err := s.writer.ExecContext(ctx,
		`DELETE FROM accounts WHERE company_id = ? AND id = ?`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ledger.ErrAccountNotFound
	}
	return nil
}

func (s *Store) ChildCount(ctx context.Context, companyID, id string) (int, error) {
	var n int
	err := s.reader.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM accounts WHERE company_id = ? AND parent_id = ?`, companyID, id).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count children: %w", err)
	}
	return n, nil
}

// SubAccountCounts returns child counts for every account in a company,
// keyed by parent id, for list views.
func (s *Store) SubAccountCounts(ctx context.Context, companyID string) (map[string]int, error) {
	rows, err := s.reader.QueryContext(ctx,
		`SELECT parent_id, COUNT(*) FROM accounts
		WHERE company_id = ? AND parent_id IS NOT NULL GROUP BY parent_id`, companyID)
	if err != nil {
		return nil, fmt.Errorf("sub-account counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var parentID string
		var n int
		if err := rows.Scan(&parentID, &n); err != nil {
			return nil, fmt.Errorf("scan sub-account count: %w", err)
		}
		counts[parentID] = n
	}
	return counts, rows.Err()
}

func (s *Store) MaxDisplayOrder(ctx context.Context, companyID string) (int, error) {
	var max int
	err := s.reader.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(display_order), 0) FROM accounts WHERE company_id = ?`, companyID).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max display order: %w", err)
	}
	return max, nil
}

// AccountNumberExists checks number uniqueness per company, skipping excludeID
// so updates don't collide with themselves. Comparison is case-sensitive.
func (s *Store) AccountNumberExists(ctx context.Context, companyID, number, excludeID string) (bool, error) {
	var n int
	err := s.reader.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM accounts WHERE company_id = ? AND account_number = ? AND id != ?`,
		companyID, number, excludeID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check account number: %w", err)
	}
	return n > 0, nil
}

// SiblingNameExists checks name uniqueness among accounts sharing a parent.
func (s *Store) SiblingNameExists(ctx context.Context, companyID, parentID, name, excludeID string) (bool, error) {
	var n int
	err := s.reader.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM accounts
		WHERE company_id = ? AND COALESCE(parent_id, '') = ? AND name = ? AND id != ?`,
		companyID, parentID, name, excludeID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check sibling name: %w", err)
	}
	return n > 0, nil
}

func (s *Store) HasAccounts(ctx context.Context, companyID string) (bool, error) {
	var n int
	err := s.reader.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM accounts WHERE company_id = ?`, companyID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("count accounts: %w", err)
	}
	return n > 0, nil
}

func scanAccount(scan func(...any) error) (*ledger.Account, error) {
	var acct ledger.Account
	var number, parent sql.NullString
	var balance string
	var isSystem, isActive int
	var createdAt, updatedAt string
	err := scan(&acct.ID, &acct.CompanyID, &acct.Name, &number, &acct.Type, &acct.DetailType,
		&acct.NormalBalance, &acct.Description, &parent, &acct.Depth, &acct.FullPath, &balance,
		&isSystem, &isActive, &acct.DisplayOrder, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ledger.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan account: %w", err)
	}
	acct.AccountNumber = number.String
	acct.ParentID = parent.String
	acct.CurrentBalance, err = decimal.NewFromString(strings.TrimSpace(balance))
	if err != nil {
		return nil, fmt.Errorf("parse balance %q: %w", balance, err)
	}
	acct.IsSystem = isSystem == 1
	acct.IsActive = isActive == 1
	acct.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	acct.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse updated_at %q: %w", updatedAt, err)
	}
	return &acct, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
