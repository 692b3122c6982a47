// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/tripsplit/internal/models"
)

// ErrNotFound is wrapped by every store error caused by a missing record.
var ErrNotFound = errors.New("not found")

// Store defines the interface for trip, expense and settlement-status storage.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type Store interface {
	// CreateTrip persists a new trip with its roster.
	// The trip.ID and trip.CreatedAt fields will be populated by the store.
	CreateTrip(ctx context.Context, trip *models.Trip) error

	// GetTrip retrieves a trip and its roster by ID.
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)

	// ListTrips retrieves all trips, newest first.
	ListTrips(ctx context.Context) ([]*models.Trip, error)

	// AddTripMembers appends members to the roster. Existing member IDs keep
	// their position and get their display name refreshed.
	AddTripMembers(ctx context.Context, tripID string, members []models.Member) error

	// DeleteTrip removes a trip together with its expenses and statuses.
	DeleteTrip(ctx context.Context, tripID string) error

	// CreateExpense persists a new expense.
	// The expense.ID, CreatedAt and UpdatedAt fields will be populated by the store.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves an expense by ID.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// UpdateExpense replaces every mutable field of an existing expense.
	UpdateExpense(ctx context.Context, expense *models.Expense) error

	// DeleteExpense removes an expense by ID.
	DeleteExpense(ctx context.Context, expenseID string) error

	// ListExpenses returns a consistent snapshot of a trip's expenses ordered
	// by date, then recording order.
	ListExpenses(ctx context.Context, tripID string) ([]*models.Expense, error)

	// SetExpensesSettled flips the settled flag of the given expenses of a trip.
	SetExpensesSettled(ctx context.Context, tripID string, expenseIDs []string, settled bool) error

	// ListTransactionStatuses returns every status recorded for a trip.
	ListTransactionStatuses(ctx context.Context, tripID string) ([]*models.TransactionStatus, error)

	// SaveTransactionStatus inserts or replaces the status of a pair.
	SaveTransactionStatus(ctx context.Context, status *models.TransactionStatus) error

	// MarkPairSettled settles the contributing expenses and records the pair
	// status in a single transaction.
	MarkPairSettled(ctx context.Context, status *models.TransactionStatus, expenseIDs []string) error

	// DeleteTransactionStatus removes the status of a pair. Missing pairs are ignored.
	DeleteTransactionStatus(ctx context.Context, tripID, fromMember, toMember string) error

	// Close releases any resources held by the store.
	Close() error
}
