package calculator

// Result is everything derived from a trip's expense snapshot.
type Result struct {
	Balances     map[string]int64
	Members      []MemberBalance
	Transactions []Transaction
	Suggested    []Transfer
}

// Settle validates the whole batch and derives balances, consolidated
// transactions and suggested transfers. No partial result is produced when
// any expense is invalid or references a member outside the roster.
func Settle(expenses []Expense, roster []string, annotations map[PairKey]Annotation, opts Options) (*Result, error) {
	if err := ValidateBatch(expenses, roster); err != nil {
		return nil, err
	}

	members, err := MemberBalances(expenses, roster)
	if err != nil {
		return nil, err
	}
	balances := make(map[string]int64, len(members))
	for _, m := range members {
		balances[m.MemberID] = m.NetBalance
	}

	debts, err := GenerateAllDebts(expenses)
	if err != nil {
		return nil, err
	}

	return &Result{
		Balances:     balances,
		Members:      members,
		Transactions: Consolidate(debts, annotations, opts),
		Suggested:    SimplifyDebts(balances),
	}, nil
}

// ContributingExpenses returns the expense IDs behind the given pair in the
// current transaction list, or nil when the pair has no transaction.
func ContributingExpenses(transactions []Transaction, key PairKey) []string {
	for _, t := range transactions {
		if t.Key() == key {
			return t.RelatedPayments
		}
	}
	return nil
}
