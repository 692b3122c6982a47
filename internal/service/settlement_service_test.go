package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/tripsplit/pkg/api"
)

func getSettlement(t *testing.T, c testClients, tripID string) *api.Settlement {
	t.Helper()
	resp, err := c.settlements.GetSettlement(context.Background(), connect.NewRequest(&api.GetSettlementRequest{TripId: tripID}))
	if err != nil {
		t.Fatalf("GetSettlement failed: %v", err)
	}
	return resp.Msg.Settlement
}

func completeTransaction(t *testing.T, c testClients, tripID, from, to, method string) *api.Transaction {
	t.Helper()
	resp, err := c.settlements.CompleteTransaction(context.Background(), connect.NewRequest(&api.CompleteTransactionRequest{
		TripId:        tripID,
		From:          from,
		To:            to,
		PaymentMethod: method,
	}))
	if err != nil {
		t.Fatalf("CompleteTransaction failed: %v", err)
	}
	return resp.Msg.Transaction
}

func TestGetSettlement(t *testing.T) {
	c := setupTestServer(t)
	trip := createTestTrip(t, c, "", "A", "B", "C")
	addTestExpense(t, c, trip.Id, 1000, "A", "A", "B", "C")

	s := getSettlement(t, c, trip.Id)

	if s.TripId != trip.Id || s.Currency != "JPY" {
		t.Errorf("unexpected header: %s %s", s.TripId, s.Currency)
	}
	if len(s.Balances) != 3 {
		t.Fatalf("expected 3 balances, got %d", len(s.Balances))
	}
	var sum int64
	for _, b := range s.Balances {
		sum += b.NetBalance
	}
	if sum < -s.RoundingTolerance || sum > s.RoundingTolerance {
		t.Errorf("balances sum %d outside tolerance %d", sum, s.RoundingTolerance)
	}
	if len(s.Suggested) != 2 {
		t.Errorf("expected 2 suggested transfers, got %d", len(s.Suggested))
	}
}

func TestGetSettlement_Idempotent(t *testing.T) {
	c := setupTestServer(t)
	trip := createTestTrip(t, c, "", "A", "B", "C")
	addTestExpense(t, c, trip.Id, 3000, "A", "B", "C")
	addTestExpense(t, c, trip.Id, 1200, "B", "A", "C")

	first := getSettlement(t, c, trip.Id)
	second := getSettlement(t, c, trip.Id)

	if len(first.Transactions) != len(second.Transactions) {
		t.Fatalf("transaction count changed: %d vs %d", len(first.Transactions), len(second.Transactions))
	}
	for i := range first.Transactions {
		a, b := first.Transactions[i], second.Transactions[i]
		if a.From != b.From || a.To != b.To || a.Amount != b.Amount || a.Status != b.Status {
			t.Errorf("transaction %d differs: %+v vs %+v", i, a, b)
		}
	}
}

func TestCompleteTransaction(t *testing.T) {
	c := setupTestServer(t)
	trip := createTestTrip(t, c, "", "A", "B")
	e1 := addTestExpense(t, c, trip.Id, 3000, "A", "A", "B")
	e2 := addTestExpense(t, c, trip.Id, 1000, "A", "A", "B")

	txn := completeTransaction(t, c, trip.Id, "B", "A", "cash")

	if txn.Status != "completed" {
		t.Errorf("status: expected 'completed', got '%s'", txn.Status)
	}
	if txn.PaymentMethod != "cash" {
		t.Errorf("payment method: expected 'cash', got '%s'", txn.PaymentMethod)
	}
	if txn.CompletedAt != fixedNow.Unix() {
		t.Errorf("completed at: expected %d, got %d", fixedNow.Unix(), txn.CompletedAt)
	}
	if txn.Amount != 2000 {
		t.Errorf("amount: expected 2000, got %d", txn.Amount)
	}

	for _, id := range []string{e1.Msg.Expense.Id, e2.Msg.Expense.Id} {
		resp, err := c.expenses.GetExpense(context.Background(), connect.NewRequest(&api.GetExpenseRequest{ExpenseId: id}))
		if err != nil {
			t.Fatalf("GetExpense failed: %v", err)
		}
		if !resp.Msg.Expense.IsSettled {
			t.Errorf("expense %s: expected settled", id)
		}
	}

	// Completing again is a no-op.
	again := completeTransaction(t, c, trip.Id, "B", "A", "")
	if again.Status != "completed" || again.PaymentMethod != "cash" {
		t.Errorf("expected unchanged completed transaction, got %+v", again)
	}
}

func TestCompleteTransaction_NewExpenseReopensPair(t *testing.T) {
	c := setupTestServer(t)
	trip := createTestTrip(t, c, "", "A", "B")
	addTestExpense(t, c, trip.Id, 3000, "A", "A", "B")
	completeTransaction(t, c, trip.Id, "B", "A", "bank")

	resp := addTestExpense(t, c, trip.Id, 1000, "A", "A", "B")

	txn := findTransaction(resp.Msg.Settlement, "B", "A")
	if txn == nil {
		t.Fatal("missing B->A")
	}
	if txn.Status != "pending" {
		t.Errorf("status: expected 'pending', got '%s'", txn.Status)
	}
	if txn.PaymentMethod != "" || txn.CompletedAt != 0 {
		t.Errorf("expected completion metadata dropped, got %+v", txn)
	}
	if txn.Amount != 2000 {
		t.Errorf("amount: expected 2000, got %d", txn.Amount)
	}

	// Settling the new expense later does not resurrect the old annotation.
	exp := resp.Msg.Expense
	settled, err := c.expenses.SetExpenseSettled(context.Background(), connect.NewRequest(&api.SetExpenseSettledRequest{
		ExpenseId: exp.Id,
		Settled:   true,
	}))
	if err != nil {
		t.Fatalf("SetExpenseSettled failed: %v", err)
	}
	txn = findTransaction(settled.Msg.Settlement, "B", "A")
	if txn.Status != "completed" || txn.PaymentMethod != "" {
		t.Errorf("expected completed without stale metadata, got %+v", txn)
	}
}

// Completing a pair settles whole expenses, so other pairs fed only by
// those expenses complete too, without payment metadata of their own.
func TestCompleteTransaction_SettlesSharedExpense(t *testing.T) {
	c := setupTestServer(t)
	trip := createTestTrip(t, c, "", "A", "B", "C")
	shared := addTestExpense(t, c, trip.Id, 3000, "A", "A", "B", "C").Msg.Expense

	completeTransaction(t, c, trip.Id, "B", "A", "cash")

	settlement := getSettlement(t, c, trip.Id)
	paid := findTransaction(settlement, "B", "A")
	if paid.Status != "completed" || paid.PaymentMethod != "cash" || paid.CompletedAt != fixedNow.Unix() {
		t.Errorf("B->A: expected completed by cash at %d, got %+v", fixedNow.Unix(), paid)
	}
	sibling := findTransaction(settlement, "C", "A")
	if sibling == nil {
		t.Fatal("expected C->A transaction")
	}
	if sibling.Status != "completed" {
		t.Errorf("C->A status: expected 'completed', got '%s'", sibling.Status)
	}
	if sibling.PaymentMethod != "" || sibling.CompletedAt != 0 {
		t.Errorf("C->A: expected no payment metadata, got %+v", sibling)
	}

	got, err := c.expenses.GetExpense(context.Background(), connect.NewRequest(&api.GetExpenseRequest{ExpenseId: shared.Id}))
	if err != nil {
		t.Fatalf("GetExpense failed: %v", err)
	}
	if !got.Msg.Expense.IsSettled {
		t.Error("expected shared expense to be settled")
	}

	// A later expense for C alone reopens only C->A.
	addTestExpense(t, c, trip.Id, 600, "A", "C")
	settlement = getSettlement(t, c, trip.Id)
	if txn := findTransaction(settlement, "C", "A"); txn.Status != "pending" || txn.Amount != 1600 {
		t.Errorf("C->A: expected pending 1600, got %+v", txn)
	}
	if txn := findTransaction(settlement, "B", "A"); txn.Status != "completed" {
		t.Errorf("B->A: expected to stay completed, got %+v", txn)
	}
}

func TestCompleteTransaction_Errors(t *testing.T) {
	c := setupTestServer(t)
	trip := createTestTrip(t, c, "", "A", "B")
	addTestExpense(t, c, trip.Id, 3000, "A", "B")

	t.Run("no such pair", func(t *testing.T) {
		_, err := c.settlements.CompleteTransaction(context.Background(), connect.NewRequest(&api.CompleteTransactionRequest{
			TripId: trip.Id, From: "A", To: "B",
		}))
		expectCode(t, err, connect.CodeNotFound)
	})

	t.Run("member not on roster", func(t *testing.T) {
		_, err := c.settlements.CompleteTransaction(context.Background(), connect.NewRequest(&api.CompleteTransactionRequest{
			TripId: trip.Id, From: "Z", To: "A",
		}))
		expectCode(t, err, connect.CodeFailedPrecondition)
	})

	t.Run("no such trip", func(t *testing.T) {
		_, err := c.settlements.CompleteTransaction(context.Background(), connect.NewRequest(&api.CompleteTransactionRequest{
			TripId: "missing", From: "B", To: "A",
		}))
		expectCode(t, err, connect.CodeNotFound)
	})

	t.Run("already confirmed", func(t *testing.T) {
		_, err := c.settlements.ConfirmTransaction(context.Background(), asMember(connect.NewRequest(&api.ConfirmTransactionRequest{
			TripId: trip.Id, From: "B", To: "A",
		}), "A"))
		if err != nil {
			t.Fatalf("ConfirmTransaction failed: %v", err)
		}
		_, err = c.settlements.CompleteTransaction(context.Background(), connect.NewRequest(&api.CompleteTransactionRequest{
			TripId: trip.Id, From: "B", To: "A",
		}))
		expectCode(t, err, connect.CodeFailedPrecondition)
	})
}

func TestConfirmTransaction(t *testing.T) {
	c := setupTestServer(t)
	trip := createTestTrip(t, c, "", "A", "B")
	addTestExpense(t, c, trip.Id, 3000, "A", "B")
	completeTransaction(t, c, trip.Id, "B", "A", "cash")

	req := func() *connect.Request[api.ConfirmTransactionRequest] {
		return connect.NewRequest(&api.ConfirmTransactionRequest{TripId: trip.Id, From: "B", To: "A"})
	}

	t.Run("anonymous caller", func(t *testing.T) {
		_, err := c.settlements.ConfirmTransaction(context.Background(), req())
		expectCode(t, err, connect.CodeUnauthenticated)
	})

	t.Run("debtor cannot confirm", func(t *testing.T) {
		_, err := c.settlements.ConfirmTransaction(context.Background(), asMember(req(), "B"))
		expectCode(t, err, connect.CodePermissionDenied)
	})

	t.Run("receiver confirms", func(t *testing.T) {
		resp, err := c.settlements.ConfirmTransaction(context.Background(), asMember(req(), "A"))
		if err != nil {
			t.Fatalf("ConfirmTransaction failed: %v", err)
		}
		txn := resp.Msg.Transaction
		if txn.Status != "confirmed" {
			t.Errorf("status: expected 'confirmed', got '%s'", txn.Status)
		}
		if txn.PaymentMethod != "cash" {
			t.Errorf("payment method: expected 'cash' carried over, got '%s'", txn.PaymentMethod)
		}
		if txn.ConfirmedAt != fixedNow.Unix() {
			t.Errorf("confirmed at: expected %d, got %d", fixedNow.Unix(), txn.ConfirmedAt)
		}
	})

	t.Run("confirmation survives recomputation", func(t *testing.T) {
		txn := findTransaction(getSettlement(t, c, trip.Id), "B", "A")
		if txn == nil || txn.Status != "confirmed" {
			t.Errorf("expected confirmed after reload, got %+v", txn)
		}
	})
}

func TestConfirmTransaction_FromPending(t *testing.T) {
	c := setupTestServer(t)
	trip := createTestTrip(t, c, "", "A", "B")
	created := addTestExpense(t, c, trip.Id, 3000, "A", "B")

	resp, err := c.settlements.ConfirmTransaction(context.Background(), asMember(connect.NewRequest(&api.ConfirmTransactionRequest{
		TripId: trip.Id, From: "B", To: "A",
	}), "A"))
	if err != nil {
		t.Fatalf("ConfirmTransaction failed: %v", err)
	}
	if resp.Msg.Transaction.Status != "confirmed" {
		t.Errorf("status: expected 'confirmed', got '%s'", resp.Msg.Transaction.Status)
	}

	exp, err := c.expenses.GetExpense(context.Background(), connect.NewRequest(&api.GetExpenseRequest{ExpenseId: created.Msg.Expense.Id}))
	if err != nil {
		t.Fatalf("GetExpense failed: %v", err)
	}
	if !exp.Msg.Expense.IsSettled {
		t.Error("expected contributing expense to be settled")
	}
}

func TestSetExpenseSettled_ReopensConfirmedPair(t *testing.T) {
	c := setupTestServer(t)
	trip := createTestTrip(t, c, "", "A", "B")
	created := addTestExpense(t, c, trip.Id, 3000, "A", "B")
	completeTransaction(t, c, trip.Id, "B", "A", "cash")

	resp, err := c.expenses.SetExpenseSettled(context.Background(), connect.NewRequest(&api.SetExpenseSettledRequest{
		ExpenseId: created.Msg.Expense.Id,
		Settled:   false,
	}))
	if err != nil {
		t.Fatalf("SetExpenseSettled failed: %v", err)
	}
	if resp.Msg.Expense.IsSettled {
		t.Error("expected expense to be unsettled")
	}
	txn := findTransaction(resp.Msg.Settlement, "B", "A")
	if txn == nil || txn.Status != "pending" {
		t.Errorf("expected pending after reopening, got %+v", txn)
	}
}

func TestDeleteExpense_DropsSettledPair(t *testing.T) {
	c := setupTestServer(t)
	trip := createTestTrip(t, c, "", "A", "B")
	created := addTestExpense(t, c, trip.Id, 3000, "A", "B")
	completeTransaction(t, c, trip.Id, "B", "A", "cash")

	resp, err := c.expenses.DeleteExpense(context.Background(), connect.NewRequest(&api.DeleteExpenseRequest{
		ExpenseId: created.Msg.Expense.Id,
	}))
	if err != nil {
		t.Fatalf("DeleteExpense failed: %v", err)
	}
	if len(resp.Msg.Settlement.Transactions) != 0 {
		t.Errorf("expected no transactions, got %d", len(resp.Msg.Settlement.Transactions))
	}

	// A fresh expense for the same pair starts from pending, not the old status.
	again := addTestExpense(t, c, trip.Id, 500, "A", "B")
	txn := findTransaction(again.Msg.Settlement, "B", "A")
	if txn == nil || txn.Status != "pending" || txn.PaymentMethod != "" {
		t.Errorf("expected clean pending transaction, got %+v", txn)
	}
}
