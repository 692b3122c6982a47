package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mmynk/tripsplit/internal/models"
)

const upsertStatus = `INSERT INTO transaction_statuses
	(trip_id, from_member, to_member, status, payment_method, completed_at, confirmed_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (trip_id, from_member, to_member) DO UPDATE SET
		status = excluded.status,
		payment_method = excluded.payment_method,
		completed_at = excluded.completed_at,
		confirmed_at = excluded.confirmed_at,
		updated_at = excluded.updated_at`

// ListTransactionStatuses retrieves all recorded pair statuses for a trip.
func (s *SQLiteStore) ListTransactionStatuses(ctx context.Context, tripID string) ([]*models.TransactionStatus, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT trip_id, from_member, to_member, status, payment_method, completed_at, confirmed_at, updated_at
		 FROM transaction_statuses WHERE trip_id = ? ORDER BY updated_at, from_member, to_member`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transaction statuses: %w", err)
	}
	defer rows.Close()

	var statuses []*models.TransactionStatus
	for rows.Next() {
		status := &models.TransactionStatus{}
		var method sql.NullString

		if err := rows.Scan(&status.TripID, &status.FromMember, &status.ToMember, &status.Status,
			&method, &status.CompletedAt, &status.ConfirmedAt, &status.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction status: %w", err)
		}

		if method.Valid {
			status.PaymentMethod = method.String
		}

		statuses = append(statuses, status)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transaction statuses: %w", err)
	}

	return statuses, nil
}

// SaveTransactionStatus inserts or replaces the status of a pair.
func (s *SQLiteStore) SaveTransactionStatus(ctx context.Context, status *models.TransactionStatus) error {
	return saveStatus(ctx, s.db, status)
}

// MarkPairSettled settles expenses and records the pair status atomically.
func (s *SQLiteStore) MarkPairSettled(ctx context.Context, status *models.TransactionStatus, expenseIDs []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := setSettled(ctx, tx, status.TripID, expenseIDs, true); err != nil {
		return err
	}
	if err := saveStatus(ctx, tx, status); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteTransactionStatus removes a pair status; a missing row is not an error.
func (s *SQLiteStore) DeleteTransactionStatus(ctx context.Context, tripID, fromMember, toMember string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM transaction_statuses WHERE trip_id = ? AND from_member = ? AND to_member = ?",
		tripID, fromMember, toMember,
	)
	if err != nil {
		return fmt.Errorf("failed to delete transaction status: %w", err)
	}
	return nil
}

func saveStatus(ctx context.Context, db execer, status *models.TransactionStatus) error {
	status.UpdatedAt = time.Now().Unix()
	_, err := db.ExecContext(ctx, upsertStatus,
		status.TripID, status.FromMember, status.ToMember, status.Status,
		nullable(status.PaymentMethod), status.CompletedAt, status.ConfirmedAt, status.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction status: %w", err)
	}
	return nil
}
