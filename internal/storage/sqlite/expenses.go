package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/storage"
)

const expenseColumns = `id, trip_id, title, amount, paid_by, category, date, description, is_settled, created_at, updated_at`

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// CreateExpense persists a new expense with its beneficiaries.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if expense.CreatedAt == 0 {
		expense.CreatedAt = now
	}
	expense.UpdatedAt = expense.CreatedAt

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM trips WHERE id = ?", expense.TripID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("trip %s: %w", expense.TripID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check trip existence: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (`+expenseColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.TripID, expense.Title, expense.Amount, expense.PaidBy,
		expense.Category, expense.Date, nullable(expense.Description), expense.IsSettled,
		expense.CreatedAt, expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	if err := insertBeneficiaries(ctx, tx, expense.ID, expense.PaidFor); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetExpense retrieves an expense by ID.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE id = ?`,
		expenseID,
	)
	expense, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT member_id FROM expense_beneficiaries WHERE expense_id = ? ORDER BY position",
		expenseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get beneficiaries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var member string
		if err := rows.Scan(&member); err != nil {
			return nil, fmt.Errorf("failed to scan beneficiary: %w", err)
		}
		expense.PaidFor = append(expense.PaidFor, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate beneficiaries: %w", err)
	}

	return expense, nil
}

// ListExpenses retrieves a trip's expenses ordered by date, then recording order.
func (s *SQLiteStore) ListExpenses(ctx context.Context, tripID string) ([]*models.Expense, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE trip_id = ? ORDER BY date, created_at, rowid`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	var expenses []*models.Expense
	byID := make(map[string]*models.Expense)
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
		byID[expense.ID] = expense
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	benRows, err := tx.QueryContext(ctx,
		`SELECT b.expense_id, b.member_id FROM expense_beneficiaries b
		 JOIN expenses e ON e.id = b.expense_id
		 WHERE e.trip_id = ? ORDER BY b.expense_id, b.position`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get beneficiaries: %w", err)
	}
	defer benRows.Close()

	for benRows.Next() {
		var expenseID, member string
		if err := benRows.Scan(&expenseID, &member); err != nil {
			return nil, fmt.Errorf("failed to scan beneficiary: %w", err)
		}
		if e, ok := byID[expenseID]; ok {
			e.PaidFor = append(e.PaidFor, member)
		}
	}
	if err := benRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate beneficiaries: %w", err)
	}

	return expenses, nil
}

// UpdateExpense overwrites an expense and its beneficiaries.
func (s *SQLiteStore) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	expense.UpdatedAt = time.Now().Unix()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE expenses SET title = ?, amount = ?, paid_by = ?, category = ?, date = ?,
		 description = ?, is_settled = ?, updated_at = ? WHERE id = ?`,
		expense.Title, expense.Amount, expense.PaidBy, expense.Category, expense.Date,
		nullable(expense.Description), expense.IsSettled, expense.UpdatedAt, expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	if err := requireAffected(res, "expense", expense.ID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM expense_beneficiaries WHERE expense_id = ?", expense.ID); err != nil {
		return fmt.Errorf("failed to clear beneficiaries: %w", err)
	}
	if err := insertBeneficiaries(ctx, tx, expense.ID, expense.PaidFor); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteExpense removes an expense by ID.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return requireAffected(res, "expense", expenseID)
}

// SetExpensesSettled flips the settled flag on expenses of one trip.
func (s *SQLiteStore) SetExpensesSettled(ctx context.Context, tripID string, expenseIDs []string, settled bool) error {
	return setSettled(ctx, s.db, tripID, expenseIDs, settled)
}

func setSettled(ctx context.Context, db execer, tripID string, expenseIDs []string, settled bool) error {
	ids := slices.Compact(slices.Sorted(slices.Values(expenseIDs)))
	if len(ids) == 0 {
		return nil
	}

	in, idArgs := placeholders(ids)
	args := append([]any{settled, time.Now().Unix(), tripID}, idArgs...)
	res, err := db.ExecContext(ctx,
		`UPDATE expenses SET is_settled = ?, updated_at = ? WHERE trip_id = ? AND id IN (`+in+`)`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("failed to update settled flag: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if int(n) != len(ids) {
		return fmt.Errorf("%d of %d expenses in trip %s: %w", len(ids)-int(n), len(ids), tripID, storage.ErrNotFound)
	}
	return nil
}

func insertBeneficiaries(ctx context.Context, tx *sql.Tx, expenseID string, members []string) error {
	for i, member := range members {
		_, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO expense_beneficiaries (expense_id, member_id, position) VALUES (?, ?, ?)",
			expenseID, member, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert beneficiary: %w", err)
		}
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (*models.Expense, error) {
	expense := &models.Expense{}
	var description sql.NullString
	err := row.Scan(&expense.ID, &expense.TripID, &expense.Title, &expense.Amount, &expense.PaidBy,
		&expense.Category, &expense.Date, &description, &expense.IsSettled,
		&expense.CreatedAt, &expense.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if description.Valid {
		expense.Description = description.String
	}
	return expense, nil
}

// nullable stores empty strings as NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
