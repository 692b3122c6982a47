package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/tripsplit/internal/calculator"
	"github.com/mmynk/tripsplit/internal/middleware"
	"github.com/mmynk/tripsplit/internal/storage"
	"github.com/mmynk/tripsplit/internal/storage/sqlite"
	"github.com/mmynk/tripsplit/pkg/api"
	"github.com/mmynk/tripsplit/pkg/api/apiconnect"
)

const testMemberHeader = "X-Test-Member"

// fixedNow is the clock used by every test server.
var fixedNow = time.Date(2024, 10, 5, 9, 0, 0, 0, time.UTC)

// testAuthInterceptor returns a Connect interceptor that takes the caller's
// member ID from a test header.
func testAuthInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if member := req.Header().Get(testMemberHeader); member != "" {
				ctx = middleware.WithMemberID(ctx, member)
			}
			return next(ctx, req)
		}
	}
}

type testClients struct {
	trips       apiconnect.TripServiceClient
	expenses    apiconnect.ExpenseServiceClient
	settlements apiconnect.SettlementServiceClient
}

// setupTestServer creates a test server backed by a temp SQLite database.
func setupTestServer(t *testing.T, opts ...Option) testClients {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return setupTestServerWithStore(t, store, opts...)
}

func setupTestServerWithStore(t *testing.T, store storage.Store, opts ...Option) testClients {
	t.Helper()

	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	interceptors := connect.WithInterceptors(testAuthInterceptor())

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewTripServiceHandler(NewTripService(store), interceptors))
	mux.Handle(apiconnect.NewExpenseServiceHandler(NewExpenseService(store, opts...), interceptors))
	mux.Handle(apiconnect.NewSettlementServiceHandler(NewSettlementService(store, opts...), interceptors))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return testClients{
		trips:       apiconnect.NewTripServiceClient(http.DefaultClient, server.URL),
		expenses:    apiconnect.NewExpenseServiceClient(http.DefaultClient, server.URL),
		settlements: apiconnect.NewSettlementServiceClient(http.DefaultClient, server.URL),
	}
}

func createTestTrip(t *testing.T, c testClients, currency string, members ...string) *api.Trip {
	t.Helper()

	req := &api.CreateTripRequest{Name: "Kyoto", Currency: currency}
	for _, m := range members {
		req.Members = append(req.Members, &api.Member{Id: m})
	}
	resp, err := c.trips.CreateTrip(context.Background(), connect.NewRequest(req))
	if err != nil {
		t.Fatalf("CreateTrip failed: %v", err)
	}
	return resp.Msg.Trip
}

func addTestExpense(t *testing.T, c testClients, tripID string, amount int64, paidBy string, paidFor ...string) *connect.Response[api.CreateExpenseResponse] {
	t.Helper()

	resp, err := c.expenses.CreateExpense(context.Background(), connect.NewRequest(&api.CreateExpenseRequest{
		TripId: tripID,
		Expense: &api.ExpenseInput{
			Amount:  amount,
			PaidBy:  paidBy,
			PaidFor: paidFor,
		},
	}))
	if err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}
	return resp
}

func findTransaction(s *api.Settlement, from, to string) *api.Transaction {
	for _, txn := range s.Transactions {
		if txn.From == from && txn.To == to {
			return txn
		}
	}
	return nil
}

func findBalance(s *api.Settlement, member string) *api.MemberBalance {
	for _, b := range s.Balances {
		if b.MemberId == member {
			return b
		}
	}
	return nil
}

func asMember[T any](req *connect.Request[T], member string) *connect.Request[T] {
	req.Header().Set(testMemberHeader, member)
	return req
}

func expectCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Errorf("expected %v, got %v (%v)", want, got, err)
	}
}

func settlementOptions(net bool) Option {
	return WithSettlementOptions(calculator.Options{NetOpposite: net})
}
