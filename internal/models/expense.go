package models

import "github.com/mmynk/tripsplit/internal/calculator"

// Expense represents a payment one member fronted for a set of members.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// TripID is the trip this expense belongs to.
	TripID string

	// Title is a short label (e.g., "Ryokan", "Shinkansen").
	Title string

	// Amount is the total paid, in the trip currency's minor unit.
	Amount int64

	// PaidBy is the member who fronted the money.
	PaidBy string

	// PaidFor are the members who benefit. The payer may be included, in
	// which case their own share is netted against what they paid.
	PaidFor []string

	// Category is descriptive only (e.g., "lodging", "transport", "food").
	Category string

	// Date is the day the expense happened, formatted YYYY-MM-DD.
	Date string

	// Description is an optional free-form note.
	Description string

	// IsSettled marks the expense's obligations as resolved outside the system.
	IsSettled bool

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last change.
	UpdatedAt int64
}

// ToCalculator converts the stored expense into the engine's view of it.
func (e *Expense) ToCalculator() calculator.Expense {
	return calculator.Expense{
		ID:      e.ID,
		Amount:  e.Amount,
		PaidBy:  e.PaidBy,
		PaidFor: e.PaidFor,
		Settled: e.IsSettled,
	}
}

// ToCategorized converts the expense for spending summaries.
func (e *Expense) ToCategorized() calculator.CategorizedExpense {
	return calculator.CategorizedExpense{
		Expense:  e.ToCalculator(),
		Category: e.Category,
	}
}
