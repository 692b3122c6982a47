package calculator

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrAmountOutOfRange  = errors.New("amount does not fit in minor units")
	ErrNoBeneficiaries   = errors.New("paid_for must contain at least one member")
	ErrMissingPayer      = errors.New("paid_by is required")
	ErrUnknownMember     = errors.New("member is not part of the roster")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidStatus     = errors.New("unknown transaction status")
)

// ValidationError reports a malformed expense record.
type ValidationError struct {
	ExpenseID string
	Field     string
	Err       error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("expense %q: %s: %v", e.ExpenseID, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// RosterError reports an expense that references a member missing from the roster.
type RosterError struct {
	ExpenseID string
	Member    string
}

func (e *RosterError) Error() string {
	return fmt.Sprintf("expense %q: %v: %q", e.ExpenseID, ErrUnknownMember, e.Member)
}

func (e *RosterError) Unwrap() error { return ErrUnknownMember }

// ValidateExpense checks the invariants a single expense must hold before any
// computation: a payer, a strictly positive amount and at least one beneficiary.
func ValidateExpense(e Expense) error {
	if e.PaidBy == "" {
		return &ValidationError{ExpenseID: e.ID, Field: "paid_by", Err: ErrMissingPayer}
	}
	if e.Amount <= 0 {
		return &ValidationError{ExpenseID: e.ID, Field: "amount", Err: ErrInvalidAmount}
	}
	if len(e.PaidFor) == 0 {
		return &ValidationError{ExpenseID: e.ID, Field: "paid_for", Err: ErrNoBeneficiaries}
	}
	for _, m := range e.PaidFor {
		if m == "" {
			return &ValidationError{ExpenseID: e.ID, Field: "paid_for", Err: ErrNoBeneficiaries}
		}
	}
	return nil
}

// ValidateBatch validates every expense and, when a roster is given, checks
// that every referenced member belongs to it. All problems are returned
// together; a batch with any problem must be rejected as a whole.
func ValidateBatch(expenses []Expense, roster []string) error {
	var known map[string]bool
	if roster != nil {
		known = make(map[string]bool, len(roster))
		for _, m := range roster {
			known[m] = true
		}
	}

	var errs []error
	for _, e := range expenses {
		if err := ValidateExpense(e); err != nil {
			errs = append(errs, err)
			continue
		}
		if known == nil {
			continue
		}
		if !known[e.PaidBy] {
			errs = append(errs, &RosterError{ExpenseID: e.ID, Member: e.PaidBy})
		}
		for _, m := range uniqueMembers(e.PaidFor) {
			if !known[m] {
				errs = append(errs, &RosterError{ExpenseID: e.ID, Member: m})
			}
		}
	}
	return errors.Join(errs...)
}
