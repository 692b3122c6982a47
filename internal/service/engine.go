package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/tripsplit/internal/calculator"
	"github.com/mmynk/tripsplit/internal/metrics"
	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/storage"
)

// Option configures the services.
type Option func(*engine)

// WithMetrics records settlement and transition metrics on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *engine) { e.metrics = m }
}

// WithSettlementOptions tunes consolidation (e.g., netting opposite pairs).
func WithSettlementOptions(opts calculator.Options) Option {
	return func(e *engine) { e.opts = opts }
}

// WithClock overrides the time source used for timestamps and default dates.
func WithClock(now func() time.Time) Option {
	return func(e *engine) { e.now = now }
}

// engine recomputes a trip's settlement from a storage snapshot.
// It holds no state of its own between calls.
type engine struct {
	store   storage.Store
	metrics *metrics.Metrics
	opts    calculator.Options
	now     func() time.Time
}

func newEngine(store storage.Store, opts []Option) *engine {
	e := &engine{
		store:   store,
		metrics: metrics.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// tripState is one consistent view of a trip and everything derived from it.
type tripState struct {
	trip     *models.Trip
	expenses []*models.Expense
	statuses []*models.TransactionStatus
	result   *calculator.Result
}

// transaction returns the consolidated transaction for a pair.
func (s *tripState) transaction(key calculator.PairKey) (calculator.Transaction, bool) {
	for _, t := range s.result.Transactions {
		if t.Key() == key {
			return t, true
		}
	}
	return calculator.Transaction{}, false
}

// load reads the trip snapshot and runs the settlement engine over it.
func (e *engine) load(ctx context.Context, tripID string) (*tripState, error) {
	trip, err := e.store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	expenses, err := e.store.ListExpenses(ctx, tripID)
	if err != nil {
		return nil, err
	}
	statuses, err := e.store.ListTransactionStatuses(ctx, tripID)
	if err != nil {
		return nil, err
	}

	input := make([]calculator.Expense, len(expenses))
	for i, exp := range expenses {
		input[i] = exp.ToCalculator()
	}

	result, err := calculator.Settle(input, trip.MemberIDs(), models.Annotations(statuses), e.opts)
	if err != nil {
		e.metrics.ObserveSettlement(0, err)
		return nil, fmt.Errorf("trip %s: %w", tripID, err)
	}
	e.metrics.ObserveSettlement(len(result.Transactions), nil)

	slog.Debug("Settlement computed",
		"trip_id", tripID,
		"expenses", len(expenses),
		"transactions", len(result.Transactions),
	)

	return &tripState{trip: trip, expenses: expenses, statuses: statuses, result: result}, nil
}

// recompute loads the trip and deletes recorded statuses whose pair no
// longer exists or has reopened as pending.
func (e *engine) recompute(ctx context.Context, tripID string) (*tripState, error) {
	state, err := e.load(ctx, tripID)
	if err != nil {
		return nil, err
	}

	kept := state.statuses[:0:0]
	for _, status := range state.statuses {
		t, ok := state.transaction(status.Key())
		if ok && t.Status != calculator.StatusPending {
			kept = append(kept, status)
			continue
		}
		if err := e.store.DeleteTransactionStatus(ctx, tripID, status.FromMember, status.ToMember); err != nil {
			return nil, err
		}
		slog.Info("Pruned stale transaction status",
			"trip_id", tripID,
			"from", status.FromMember,
			"to", status.ToMember,
			"status", status.Status,
		)
	}
	state.statuses = kept

	return state, nil
}
