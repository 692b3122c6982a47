package calculator

import "github.com/shopspring/decimal"

// Expense is the minimal view of a recorded payment that the engine needs.
// Amount is in the currency's minor unit.
type Expense struct {
	ID      string
	Amount  int64
	PaidBy  string
	PaidFor []string
	Settled bool
}

// RawDebt is a single obligation implied by one expense: From owes To.
type RawDebt struct {
	From      string
	To        string
	Amount    int64
	ExpenseID string
	Settled   bool
}

// Share returns amount / people rounded half up to the minor unit.
// people must be positive.
func Share(amount int64, people int) int64 {
	return decimal.NewFromInt(amount).
		DivRound(decimal.NewFromInt(int64(people)), 0).
		IntPart()
}

// GenerateDebts converts one expense into the raw debts it implies.
// Every beneficiary other than the payer owes the payer one rounded share;
// a payer listed among the beneficiaries never owes themselves.
func GenerateDebts(e Expense) ([]RawDebt, error) {
	if err := ValidateExpense(e); err != nil {
		return nil, err
	}

	beneficiaries := uniqueMembers(e.PaidFor)
	share := Share(e.Amount, len(beneficiaries))

	debts := make([]RawDebt, 0, len(beneficiaries))
	for _, member := range beneficiaries {
		if member == e.PaidBy {
			continue
		}
		debts = append(debts, RawDebt{
			From:      member,
			To:        e.PaidBy,
			Amount:    share,
			ExpenseID: e.ID,
			Settled:   e.Settled,
		})
	}
	return debts, nil
}

// GenerateAllDebts applies GenerateDebts to every expense, preserving order.
func GenerateAllDebts(expenses []Expense) ([]RawDebt, error) {
	var all []RawDebt
	for _, e := range expenses {
		debts, err := GenerateDebts(e)
		if err != nil {
			return nil, err
		}
		all = append(all, debts...)
	}
	return all, nil
}

// uniqueMembers drops repeated IDs while keeping first-seen order.
func uniqueMembers(members []string) []string {
	seen := make(map[string]bool, len(members))
	out := make([]string, 0, len(members))
	for _, m := range members {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}
