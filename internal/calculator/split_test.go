package calculator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShare(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		people int
		want   int64
	}{
		{name: "even split", amount: 12000, people: 3, want: 4000},
		{name: "rounds down below half", amount: 1000, people: 3, want: 333},
		{name: "rounds half up", amount: 1001, people: 2, want: 501},
		{name: "rounds up above half", amount: 1000, people: 6, want: 167},
		{name: "tiny amount half up", amount: 5, people: 2, want: 3},
		{name: "single person", amount: 999, people: 1, want: 999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Share(tt.amount, tt.people))
		})
	}
}

func TestGenerateDebts(t *testing.T) {
	tests := []struct {
		name      string
		expense   Expense
		want      []RawDebt
		wantErr   error
		wantField string
	}{
		{
			name:    "payer included among three",
			expense: Expense{ID: "e1", Amount: 12000, PaidBy: "A", PaidFor: []string{"A", "B", "C"}},
			want: []RawDebt{
				{From: "B", To: "A", Amount: 4000, ExpenseID: "e1"},
				{From: "C", To: "A", Amount: 4000, ExpenseID: "e1"},
			},
		},
		{
			name:    "payer not a beneficiary",
			expense: Expense{ID: "e2", Amount: 3000, PaidBy: "A", PaidFor: []string{"B", "C"}},
			want: []RawDebt{
				{From: "B", To: "A", Amount: 1500, ExpenseID: "e2"},
				{From: "C", To: "A", Amount: 1500, ExpenseID: "e2"},
			},
		},
		{
			name:    "self funded expense yields nothing",
			expense: Expense{ID: "e3", Amount: 800, PaidBy: "A", PaidFor: []string{"A"}},
			want:    []RawDebt{},
		},
		{
			name:    "settled flag travels with the debt",
			expense: Expense{ID: "e4", Amount: 1000, PaidBy: "B", PaidFor: []string{"A", "B"}, Settled: true},
			want: []RawDebt{
				{From: "A", To: "B", Amount: 500, ExpenseID: "e4", Settled: true},
			},
		},
		{
			name:    "duplicate beneficiaries count once",
			expense: Expense{ID: "e5", Amount: 1000, PaidBy: "A", PaidFor: []string{"A", "B", "B"}},
			want: []RawDebt{
				{From: "B", To: "A", Amount: 500, ExpenseID: "e5"},
			},
		},
		{
			name:    "rounding applied per debt",
			expense: Expense{ID: "e6", Amount: 1000, PaidBy: "A", PaidFor: []string{"A", "B", "C"}},
			want: []RawDebt{
				{From: "B", To: "A", Amount: 333, ExpenseID: "e6"},
				{From: "C", To: "A", Amount: 333, ExpenseID: "e6"},
			},
		},
		{
			name:      "zero amount is rejected",
			expense:   Expense{ID: "bad1", Amount: 0, PaidBy: "A", PaidFor: []string{"B"}},
			wantErr:   ErrInvalidAmount,
			wantField: "amount",
		},
		{
			name:      "negative amount is rejected",
			expense:   Expense{ID: "bad2", Amount: -10, PaidBy: "A", PaidFor: []string{"B"}},
			wantErr:   ErrInvalidAmount,
			wantField: "amount",
		},
		{
			name:      "empty paid_for is rejected",
			expense:   Expense{ID: "bad3", Amount: 100, PaidBy: "A"},
			wantErr:   ErrNoBeneficiaries,
			wantField: "paid_for",
		},
		{
			name:      "missing payer is rejected",
			expense:   Expense{ID: "bad4", Amount: 100, PaidFor: []string{"A"}},
			wantErr:   ErrMissingPayer,
			wantField: "paid_by",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateDebts(tt.expense)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				var verr *ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, tt.expense.ID, verr.ExpenseID)
				assert.Equal(t, tt.wantField, verr.Field)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateAllDebts_StopsOnInvalidExpense(t *testing.T) {
	_, err := GenerateAllDebts([]Expense{
		{ID: "ok", Amount: 100, PaidBy: "A", PaidFor: []string{"B"}},
		{ID: "bad", Amount: 0, PaidBy: "A", PaidFor: []string{"B"}},
	})
	require.ErrorIs(t, err, ErrInvalidAmount)
}
