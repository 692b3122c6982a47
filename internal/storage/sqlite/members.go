package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/storage"
)

// AddTripMembers appends members to an existing trip's roster.
func (s *SQLiteStore) AddTripMembers(ctx context.Context, tripID string, members []models.Member) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM trips WHERE id = ?", tripID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("trip %s: %w", tripID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check trip existence: %w", err)
	}

	var next int
	err = tx.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(position) + 1, 0) FROM trip_members WHERE trip_id = ?",
		tripID,
	).Scan(&next)
	if err != nil {
		return fmt.Errorf("failed to read roster size: %w", err)
	}

	if err := insertMembers(ctx, tx, tripID, members, next); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// insertMembers upserts roster rows starting at the given position.
// A member already on the roster keeps its position.
func insertMembers(ctx context.Context, tx *sql.Tx, tripID string, members []models.Member, start int) error {
	for i, m := range members {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO trip_members (trip_id, member_id, name, position) VALUES (?, ?, ?, ?)
			 ON CONFLICT (trip_id, member_id) DO UPDATE SET name = excluded.name`,
			tripID, m.ID, m.Name, start+i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert member: %w", err)
		}
	}
	return nil
}

// listMembers returns rosters keyed by trip ID. An empty tripID loads every trip.
func (s *SQLiteStore) listMembers(ctx context.Context, tripID string) (map[string][]models.Member, error) {
	query := "SELECT trip_id, member_id, name FROM trip_members"
	var args []any
	if tripID != "" {
		query += " WHERE trip_id = ?"
		args = append(args, tripID)
	}
	query += " ORDER BY trip_id, position"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]models.Member)
	for rows.Next() {
		var trip string
		var m models.Member
		if err := rows.Scan(&trip, &m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		out[trip] = append(out[trip], m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return out, nil
}

// placeholders returns "?, ?, ..." with n entries and the matching args.
// Used for building IN clauses.
func placeholders(ids []string) (string, []any) {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", "), args
}
