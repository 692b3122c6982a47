package calculator

import "time"

// PairKey identifies a consolidated transaction by direction: From owes To.
type PairKey struct {
	From string
	To   string
}

// Annotation is the status recorded against a pair once a real payment
// happened outside the system.
type Annotation struct {
	Status        Status
	PaymentMethod string
	CompletedAt   time.Time
	ConfirmedAt   time.Time
}

// Transaction is the consolidated, per-pair sum of raw debts.
type Transaction struct {
	From            string
	To              string
	Amount          int64
	Status          Status
	RelatedPayments []string
	PaymentMethod   string
	CompletedAt     time.Time
	ConfirmedAt     time.Time
}

// Key returns the pair key of the transaction.
func (t Transaction) Key() PairKey {
	return PairKey{From: t.From, To: t.To}
}

// Options tunes consolidation.
type Options struct {
	// NetOpposite collapses A->B and B->A into a single transaction for the
	// larger direction. Off by default: each direction stays its own sum.
	NetOpposite bool
}

type pairGroup struct {
	key        PairKey
	amount     int64
	related    []string
	allSettled bool
}

// Consolidate collapses raw debts into one transaction per ordered pair.
//
// Transactions come out in the order their first contributing debt appears.
// A pair is completed only while every contributing expense is settled; a
// single unsettled expense reopens it as pending and drops any recorded
// completion metadata. A recorded confirmation survives as long as the pair
// stays fully settled. Pairs summing to zero are omitted.
func Consolidate(debts []RawDebt, annotations map[PairKey]Annotation, opts Options) []Transaction {
	var order []PairKey
	groups := make(map[PairKey]*pairGroup)

	for _, d := range debts {
		key := PairKey{From: d.From, To: d.To}
		g, ok := groups[key]
		if !ok {
			g = &pairGroup{key: key, allSettled: true}
			groups[key] = g
			order = append(order, key)
		}
		g.amount += d.Amount
		g.related = append(g.related, d.ExpenseID)
		g.allSettled = g.allSettled && d.Settled
	}

	if opts.NetOpposite {
		order = netOpposite(order, groups)
	}

	out := make([]Transaction, 0, len(order))
	for _, key := range order {
		g := groups[key]
		if g.amount == 0 {
			continue
		}
		out = append(out, buildTransaction(g, annotations))
	}
	return out
}

// netOpposite merges each pair with its reverse, keeping the position of
// whichever direction appeared first.
func netOpposite(order []PairKey, groups map[PairKey]*pairGroup) []PairKey {
	merged := make(map[PairKey]bool)
	netted := make([]PairKey, 0, len(order))

	for _, key := range order {
		if merged[key] {
			continue
		}
		reverseKey := PairKey{From: key.To, To: key.From}
		reverse, ok := groups[reverseKey]
		if !ok {
			netted = append(netted, key)
			continue
		}
		merged[reverseKey] = true

		g := groups[key]
		combined := &pairGroup{
			key:        key,
			amount:     g.amount - reverse.amount,
			related:    append(append([]string{}, g.related...), reverse.related...),
			allSettled: g.allSettled && reverse.allSettled,
		}
		if combined.amount < 0 {
			combined.key = reverseKey
			combined.amount = -combined.amount
		}
		delete(groups, key)
		delete(groups, reverseKey)
		groups[combined.key] = combined
		netted = append(netted, combined.key)
	}
	return netted
}

func buildTransaction(g *pairGroup, annotations map[PairKey]Annotation) Transaction {
	t := Transaction{
		From:            g.key.From,
		To:              g.key.To,
		Amount:          g.amount,
		Status:          StatusPending,
		RelatedPayments: append([]string(nil), g.related...),
	}
	if !g.allSettled {
		return t
	}

	t.Status = StatusCompleted
	ann, ok := annotations[g.key]
	if !ok {
		return t
	}
	switch ann.Status {
	case StatusConfirmed:
		t.Status = StatusConfirmed
		t.ConfirmedAt = ann.ConfirmedAt
		t.PaymentMethod = ann.PaymentMethod
		t.CompletedAt = ann.CompletedAt
	case StatusCompleted:
		t.PaymentMethod = ann.PaymentMethod
		t.CompletedAt = ann.CompletedAt
	}
	return t
}
