package calculator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDebts(t *testing.T, expenses ...Expense) []RawDebt {
	t.Helper()
	debts, err := GenerateAllDebts(expenses)
	require.NoError(t, err)
	return debts
}

func TestConsolidate_MergesSamePair(t *testing.T) {
	debts := mustDebts(t,
		Expense{ID: "e1", Amount: 3000, PaidBy: "A", PaidFor: []string{"A", "B"}},
		Expense{ID: "e2", Amount: 1000, PaidBy: "A", PaidFor: []string{"A", "B"}},
	)
	require.Len(t, debts, 2)

	got := Consolidate(debts, nil, Options{})
	assert.Equal(t, []Transaction{{
		From:            "B",
		To:              "A",
		Amount:          2000,
		Status:          StatusPending,
		RelatedPayments: []string{"e1", "e2"},
	}}, got)
}

func TestConsolidate_KeepsOppositeDirectionsApart(t *testing.T) {
	debts := mustDebts(t,
		Expense{ID: "e1", Amount: 6000, PaidBy: "A", PaidFor: []string{"A", "B"}},
		Expense{ID: "e2", Amount: 2000, PaidBy: "B", PaidFor: []string{"A", "B"}},
	)

	got := Consolidate(debts, nil, Options{})
	require.Len(t, got, 2)
	assert.Equal(t, PairKey{From: "B", To: "A"}, got[0].Key())
	assert.Equal(t, int64(3000), got[0].Amount)
	assert.Equal(t, PairKey{From: "A", To: "B"}, got[1].Key())
	assert.Equal(t, int64(1000), got[1].Amount)
}

func TestConsolidate_NetOpposite(t *testing.T) {
	tests := []struct {
		name     string
		expenses []Expense
		want     []Transaction
	}{
		{
			name: "first direction larger",
			expenses: []Expense{
				{ID: "e1", Amount: 6000, PaidBy: "A", PaidFor: []string{"A", "B"}},
				{ID: "e2", Amount: 2000, PaidBy: "B", PaidFor: []string{"A", "B"}},
			},
			want: []Transaction{{
				From: "B", To: "A", Amount: 2000, Status: StatusPending,
				RelatedPayments: []string{"e1", "e2"},
			}},
		},
		{
			name: "reverse direction larger",
			expenses: []Expense{
				{ID: "e1", Amount: 1000, PaidBy: "A", PaidFor: []string{"A", "B"}},
				{ID: "e2", Amount: 3000, PaidBy: "B", PaidFor: []string{"A", "B"}},
			},
			want: []Transaction{{
				From: "A", To: "B", Amount: 1000, Status: StatusPending,
				RelatedPayments: []string{"e1", "e2"},
			}},
		},
		{
			name: "equal directions cancel out",
			expenses: []Expense{
				{ID: "e1", Amount: 2000, PaidBy: "A", PaidFor: []string{"A", "B"}},
				{ID: "e2", Amount: 2000, PaidBy: "B", PaidFor: []string{"A", "B"}},
			},
			want: []Transaction{},
		},
		{
			name: "unrelated pairs untouched",
			expenses: []Expense{
				{ID: "e1", Amount: 3000, PaidBy: "A", PaidFor: []string{"B", "C"}},
			},
			want: []Transaction{
				{From: "B", To: "A", Amount: 1500, Status: StatusPending, RelatedPayments: []string{"e1"}},
				{From: "C", To: "A", Amount: 1500, Status: StatusPending, RelatedPayments: []string{"e1"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Consolidate(mustDebts(t, tt.expenses...), nil, Options{NetOpposite: true})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConsolidate_StatusMerge(t *testing.T) {
	completedAt := time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)
	confirmedAt := completedAt.Add(time.Hour)
	key := PairKey{From: "B", To: "A"}

	tests := []struct {
		name        string
		settled     [2]bool
		annotations map[PairKey]Annotation
		wantStatus  Status
		wantMethod  string
		wantDone    time.Time
		wantConfirm time.Time
	}{
		{
			name:       "one settled one open is pending",
			settled:    [2]bool{true, false},
			wantStatus: StatusPending,
		},
		{
			name:       "all settled is completed",
			settled:    [2]bool{true, true},
			wantStatus: StatusCompleted,
		},
		{
			name:    "completed annotation metadata carried",
			settled: [2]bool{true, true},
			annotations: map[PairKey]Annotation{
				key: {Status: StatusCompleted, PaymentMethod: "cash", CompletedAt: completedAt},
			},
			wantStatus: StatusCompleted,
			wantMethod: "cash",
			wantDone:   completedAt,
		},
		{
			name:    "confirmation survives while settled",
			settled: [2]bool{true, true},
			annotations: map[PairKey]Annotation{
				key: {Status: StatusConfirmed, PaymentMethod: "bank", CompletedAt: completedAt, ConfirmedAt: confirmedAt},
			},
			wantStatus:  StatusConfirmed,
			wantMethod:  "bank",
			wantDone:    completedAt,
			wantConfirm: confirmedAt,
		},
		{
			name:    "unsettled expense reopens and drops metadata",
			settled: [2]bool{true, false},
			annotations: map[PairKey]Annotation{
				key: {Status: StatusConfirmed, PaymentMethod: "bank", CompletedAt: completedAt, ConfirmedAt: confirmedAt},
			},
			wantStatus: StatusPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			debts := mustDebts(t,
				Expense{ID: "e1", Amount: 3000, PaidBy: "A", PaidFor: []string{"A", "B"}, Settled: tt.settled[0]},
				Expense{ID: "e2", Amount: 1000, PaidBy: "A", PaidFor: []string{"A", "B"}, Settled: tt.settled[1]},
			)

			got := Consolidate(debts, tt.annotations, Options{})
			require.Len(t, got, 1)
			assert.Equal(t, tt.wantStatus, got[0].Status)
			assert.Equal(t, tt.wantMethod, got[0].PaymentMethod)
			assert.Equal(t, tt.wantDone, got[0].CompletedAt)
			assert.Equal(t, tt.wantConfirm, got[0].ConfirmedAt)
		})
	}
}

func TestConsolidate_Idempotent(t *testing.T) {
	debts := mustDebts(t,
		Expense{ID: "e1", Amount: 12000, PaidBy: "A", PaidFor: []string{"A", "B", "C"}},
		Expense{ID: "e2", Amount: 3000, PaidBy: "B", PaidFor: []string{"A", "C"}, Settled: true},
		Expense{ID: "e3", Amount: 500, PaidBy: "A", PaidFor: []string{"C"}},
	)

	first := Consolidate(debts, nil, Options{})
	second := Consolidate(debts, nil, Options{})
	assert.Equal(t, first, second)
}

func TestConsolidate_DeletedExpenseLeavesNoResidue(t *testing.T) {
	only := Expense{ID: "e1", Amount: 2000, PaidBy: "A", PaidFor: []string{"A", "B"}}
	other := Expense{ID: "e2", Amount: 900, PaidBy: "C", PaidFor: []string{"A", "C"}}

	before := Consolidate(mustDebts(t, only, other), nil, Options{})
	require.Len(t, before, 2)

	after := Consolidate(mustDebts(t, other), nil, Options{})
	require.Len(t, after, 1)
	assert.Equal(t, PairKey{From: "A", To: "C"}, after[0].Key())
	assert.Nil(t, ContributingExpenses(after, PairKey{From: "B", To: "A"}))
}

func TestConsolidate_OrderFollowsFirstContribution(t *testing.T) {
	debts := mustDebts(t,
		Expense{ID: "e1", Amount: 1000, PaidBy: "C", PaidFor: []string{"B"}},
		Expense{ID: "e2", Amount: 1000, PaidBy: "A", PaidFor: []string{"B"}},
		Expense{ID: "e3", Amount: 1000, PaidBy: "C", PaidFor: []string{"B"}},
	)

	got := Consolidate(debts, nil, Options{})
	require.Len(t, got, 2)
	assert.Equal(t, PairKey{From: "B", To: "C"}, got[0].Key())
	assert.Equal(t, []string{"e1", "e3"}, got[0].RelatedPayments)
	assert.Equal(t, PairKey{From: "B", To: "A"}, got[1].Key())
}

func TestTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		wantErr  bool
	}{
		{StatusPending, StatusCompleted, false},
		{StatusPending, StatusConfirmed, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCompleted, StatusCompleted, false},
		{StatusConfirmed, StatusConfirmed, false},
		{StatusCompleted, StatusPending, true},
		{StatusConfirmed, StatusPending, true},
		{StatusConfirmed, StatusCompleted, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			err := Transition(tt.from, tt.to)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTransition)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, s)

	_, err = ParseStatus("refunded")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
