package calculator

import (
	"cmp"
	"slices"
)

// MemberBalance represents the balance information for one trip member.
type MemberBalance struct {
	MemberID   string
	NetBalance int64 // Positive = owed money, Negative = owes money
	TotalPaid  int64 // Total amount fronted across all expenses
	TotalOwed  int64 // Total of this member's own shares
}

// Transfer is a suggested payment that moves money from a debtor to a creditor.
type Transfer struct {
	From   string
	To     string
	Amount int64
}

// ComputeBalances returns every member's signed net position across all
// expenses. Roster members start at zero; a nil roster derives the member set
// from the expenses themselves.
//
// Shares are rounded per expense, so the balances only sum to zero within
// RoundingTolerance.
func ComputeBalances(expenses []Expense, roster []string) (map[string]int64, error) {
	members, err := MemberBalances(expenses, roster)
	if err != nil {
		return nil, err
	}
	balances := make(map[string]int64, len(members))
	for _, m := range members {
		balances[m.MemberID] = m.NetBalance
	}
	return balances, nil
}

// MemberBalances computes paid, owed and net totals per member, ordered by
// roster position (members only seen in expenses follow in first-seen order).
//
// Algorithm:
// - For each expense: payer contributed +amount, each beneficiary owes one share
// - The payer's own share is subtracted when they are among the beneficiaries
// - net_balance = total_paid - total_owed
func MemberBalances(expenses []Expense, roster []string) ([]MemberBalance, error) {
	if err := ValidateBatch(expenses, roster); err != nil {
		return nil, err
	}

	var order []string
	balances := make(map[string]*MemberBalance)
	track := func(id string) *MemberBalance {
		if b, ok := balances[id]; ok {
			return b
		}
		b := &MemberBalance{MemberID: id}
		balances[id] = b
		order = append(order, id)
		return b
	}

	for _, m := range roster {
		track(m)
	}

	for _, e := range expenses {
		beneficiaries := uniqueMembers(e.PaidFor)
		share := Share(e.Amount, len(beneficiaries))

		track(e.PaidBy).TotalPaid += e.Amount
		for _, m := range beneficiaries {
			track(m).TotalOwed += share
		}
	}

	out := make([]MemberBalance, 0, len(order))
	for _, id := range order {
		b := balances[id]
		b.NetBalance = b.TotalPaid - b.TotalOwed
		out = append(out, *b)
	}
	return out, nil
}

// RoundingTolerance is the largest absolute amount by which the sum of all
// balances may drift from zero: half a minor unit per expense per member.
func RoundingTolerance(expenses, members int) int64 {
	return (int64(expenses)*int64(members) + 1) / 2
}

// SimplifyDebts suggests the fewest transfers that zero every balance.
// Debtors and creditors are matched greedily, largest first; ties are broken
// by member ID so the suggestion is reproducible.
func SimplifyDebts(balances map[string]int64) []Transfer {
	type position struct {
		member string
		amount int64
	}

	var creditors, debtors []position
	for member, net := range balances {
		switch {
		case net > 0:
			creditors = append(creditors, position{member, net})
		case net < 0:
			debtors = append(debtors, position{member, -net})
		}
	}

	byAmount := func(a, b position) int {
		if c := cmp.Compare(b.amount, a.amount); c != 0 {
			return c
		}
		return cmp.Compare(a.member, b.member)
	}
	slices.SortFunc(creditors, byAmount)
	slices.SortFunc(debtors, byAmount)

	var transfers []Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := min(debtors[i].amount, creditors[j].amount)
		if amount > 0 {
			transfers = append(transfers, Transfer{
				From:   debtors[i].member,
				To:     creditors[j].member,
				Amount: amount,
			})
		}

		debtors[i].amount -= amount
		creditors[j].amount -= amount

		if debtors[i].amount == 0 {
			i++
		}
		if creditors[j].amount == 0 {
			j++
		}
	}
	return transfers
}
