package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tripsplit/internal/calculator"
	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/storage"
	"github.com/mmynk/tripsplit/pkg/api"
	"github.com/mmynk/tripsplit/pkg/api/apiconnect"
)

// ExpenseService implements the Connect ExpenseService.
// Every mutation validates against the trip roster before it is stored and
// responds with the recomputed settlement.
type ExpenseService struct {
	apiconnect.UnimplementedExpenseServiceHandler
	store  storage.Store
	engine *engine
}

// NewExpenseService creates a new ExpenseService with the given storage backend.
func NewExpenseService(store storage.Store, opts ...Option) *ExpenseService {
	return &ExpenseService{store: store, engine: newEngine(store, opts)}
}

// validate runs the engine's record and roster checks on a single expense.
func (s *ExpenseService) validate(expense *models.Expense, trip *models.Trip) error {
	if err := calculator.ValidateBatch([]calculator.Expense{expense.ToCalculator()}, trip.MemberIDs()); err != nil {
		for _, ve := range validationErrors(err) {
			s.engine.metrics.ValidationFailures.WithLabelValues(ve.Field).Inc()
		}
		return err
	}
	return nil
}

// CreateExpense records a new expense.
func (s *ExpenseService) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	slog.Info("CreateExpense request received", "trip_id", req.Msg.TripId)

	trip, err := s.store.GetTrip(ctx, req.Msg.TripId)
	if err != nil {
		return nil, toConnectError("CreateExpense", err)
	}

	expense := &models.Expense{TripID: trip.ID}
	if err := applyInput(expense, req.Msg.Expense, trip.Currency, s.engine.now()); err != nil {
		return nil, toConnectError("CreateExpense", err)
	}
	if err := s.validate(expense, trip); err != nil {
		return nil, toConnectError("CreateExpense", err)
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, toConnectError("CreateExpense", err)
	}

	slog.Info("Expense created",
		"expense_id", expense.ID,
		"trip_id", trip.ID,
		"amount", expense.Amount,
		"paid_by", expense.PaidBy,
	)

	state, err := s.engine.recompute(ctx, trip.ID)
	if err != nil {
		return nil, toConnectError("CreateExpense", err)
	}

	return connect.NewResponse(&api.CreateExpenseResponse{
		Expense:    toAPIExpense(expense),
		Settlement: toAPISettlement(state),
	}), nil
}

// GetExpense retrieves an expense by ID.
func (s *ExpenseService) GetExpense(ctx context.Context, req *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error) {
	slog.Info("GetExpense request received", "expense_id", req.Msg.ExpenseId)

	expense, err := s.store.GetExpense(ctx, req.Msg.ExpenseId)
	if err != nil {
		return nil, toConnectError("GetExpense", err)
	}

	return connect.NewResponse(&api.GetExpenseResponse{Expense: toAPIExpense(expense)}), nil
}

// ListExpenses retrieves a trip's expenses ordered by date.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	slog.Info("ListExpenses request received", "trip_id", req.Msg.TripId)

	if _, err := s.store.GetTrip(ctx, req.Msg.TripId); err != nil {
		return nil, toConnectError("ListExpenses", err)
	}

	expenses, err := s.store.ListExpenses(ctx, req.Msg.TripId)
	if err != nil {
		return nil, toConnectError("ListExpenses", err)
	}

	out := make([]*api.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = toAPIExpense(e)
	}

	slog.Info("ListExpenses successful", "trip_id", req.Msg.TripId, "count", len(out))

	return connect.NewResponse(&api.ListExpensesResponse{Expenses: out}), nil
}

// UpdateExpense replaces the editable fields of an expense. The settled flag
// is kept; use SetExpenseSettled to change it.
func (s *ExpenseService) UpdateExpense(ctx context.Context, req *connect.Request[api.UpdateExpenseRequest]) (*connect.Response[api.UpdateExpenseResponse], error) {
	slog.Info("UpdateExpense request received", "expense_id", req.Msg.ExpenseId)

	expense, err := s.store.GetExpense(ctx, req.Msg.ExpenseId)
	if err != nil {
		return nil, toConnectError("UpdateExpense", err)
	}
	trip, err := s.store.GetTrip(ctx, expense.TripID)
	if err != nil {
		return nil, toConnectError("UpdateExpense", err)
	}

	if err := applyInput(expense, req.Msg.Expense, trip.Currency, s.engine.now()); err != nil {
		return nil, toConnectError("UpdateExpense", err)
	}
	if err := s.validate(expense, trip); err != nil {
		return nil, toConnectError("UpdateExpense", err)
	}

	if err := s.store.UpdateExpense(ctx, expense); err != nil {
		return nil, toConnectError("UpdateExpense", err)
	}

	slog.Info("Expense updated", "expense_id", expense.ID, "trip_id", trip.ID)

	state, err := s.engine.recompute(ctx, trip.ID)
	if err != nil {
		return nil, toConnectError("UpdateExpense", err)
	}

	return connect.NewResponse(&api.UpdateExpenseResponse{
		Expense:    toAPIExpense(expense),
		Settlement: toAPISettlement(state),
	}), nil
}

// DeleteExpense removes an expense. Its raw debts disappear from the
// recomputed settlement and pairs left empty are dropped.
func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	slog.Info("DeleteExpense request received", "expense_id", req.Msg.ExpenseId)

	expense, err := s.store.GetExpense(ctx, req.Msg.ExpenseId)
	if err != nil {
		return nil, toConnectError("DeleteExpense", err)
	}

	if err := s.store.DeleteExpense(ctx, expense.ID); err != nil {
		return nil, toConnectError("DeleteExpense", err)
	}

	slog.Info("Expense deleted", "expense_id", expense.ID, "trip_id", expense.TripID)

	state, err := s.engine.recompute(ctx, expense.TripID)
	if err != nil {
		return nil, toConnectError("DeleteExpense", err)
	}

	return connect.NewResponse(&api.DeleteExpenseResponse{Settlement: toAPISettlement(state)}), nil
}

// SetExpenseSettled marks an expense settled or reopens it. Reopening moves
// every pair it contributes to back to pending.
func (s *ExpenseService) SetExpenseSettled(ctx context.Context, req *connect.Request[api.SetExpenseSettledRequest]) (*connect.Response[api.SetExpenseSettledResponse], error) {
	slog.Info("SetExpenseSettled request received",
		"expense_id", req.Msg.ExpenseId,
		"settled", req.Msg.Settled,
	)

	expense, err := s.store.GetExpense(ctx, req.Msg.ExpenseId)
	if err != nil {
		return nil, toConnectError("SetExpenseSettled", err)
	}

	if err := s.store.SetExpensesSettled(ctx, expense.TripID, []string{expense.ID}, req.Msg.Settled); err != nil {
		return nil, toConnectError("SetExpenseSettled", err)
	}
	expense.IsSettled = req.Msg.Settled

	state, err := s.engine.recompute(ctx, expense.TripID)
	if err != nil {
		return nil, toConnectError("SetExpenseSettled", err)
	}

	return connect.NewResponse(&api.SetExpenseSettledResponse{
		Expense:    toAPIExpense(expense),
		Settlement: toAPISettlement(state),
	}), nil
}

// PreviewDebts returns the raw debts an expense would create without saving it.
func (s *ExpenseService) PreviewDebts(ctx context.Context, req *connect.Request[api.PreviewDebtsRequest]) (*connect.Response[api.PreviewDebtsResponse], error) {
	slog.Debug("PreviewDebts request received", "trip_id", req.Msg.TripId)

	trip := &models.Trip{Currency: defaultCurrency}
	if req.Msg.TripId != "" {
		var err error
		trip, err = s.store.GetTrip(ctx, req.Msg.TripId)
		if err != nil {
			return nil, toConnectError("PreviewDebts", err)
		}
	}

	expense := &models.Expense{TripID: trip.ID}
	if err := applyInput(expense, req.Msg.Expense, trip.Currency, s.engine.now()); err != nil {
		return nil, toConnectError("PreviewDebts", err)
	}

	var roster []string
	if req.Msg.TripId != "" {
		roster = trip.MemberIDs()
	}
	if err := calculator.ValidateBatch([]calculator.Expense{expense.ToCalculator()}, roster); err != nil {
		return nil, toConnectError("PreviewDebts", err)
	}

	debts, err := calculator.GenerateDebts(expense.ToCalculator())
	if err != nil {
		return nil, toConnectError("PreviewDebts", err)
	}

	out := make([]*api.Debt, len(debts))
	for i, d := range debts {
		out[i] = toAPIDebt(d)
	}

	return connect.NewResponse(&api.PreviewDebtsResponse{Debts: out}), nil
}
