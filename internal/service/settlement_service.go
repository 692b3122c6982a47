package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tripsplit/internal/calculator"
	"github.com/mmynk/tripsplit/internal/middleware"
	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/storage"
	"github.com/mmynk/tripsplit/pkg/api"
	"github.com/mmynk/tripsplit/pkg/api/apiconnect"
)

// SettlementService implements the Connect SettlementService.
type SettlementService struct {
	apiconnect.UnimplementedSettlementServiceHandler
	store  storage.Store
	engine *engine
}

// NewSettlementService creates a new SettlementService with the given storage backend.
func NewSettlementService(store storage.Store, opts ...Option) *SettlementService {
	return &SettlementService{store: store, engine: newEngine(store, opts)}
}

// GetSettlement returns balances, consolidated transactions, suggested
// transfers and a spending summary for a trip.
func (s *SettlementService) GetSettlement(ctx context.Context, req *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.GetSettlementResponse], error) {
	slog.Info("GetSettlement request received", "trip_id", req.Msg.TripId)

	state, err := s.engine.load(ctx, req.Msg.TripId)
	if err != nil {
		return nil, toConnectError("GetSettlement", err)
	}

	return connect.NewResponse(&api.GetSettlementResponse{Settlement: toAPISettlement(state)}), nil
}

// CompleteTransaction records that the debtor paid a pair outside the
// system. Every contributing expense is marked settled.
func (s *SettlementService) CompleteTransaction(ctx context.Context, req *connect.Request[api.CompleteTransactionRequest]) (*connect.Response[api.CompleteTransactionResponse], error) {
	slog.Info("CompleteTransaction request received",
		"trip_id", req.Msg.TripId,
		"from", req.Msg.From,
		"to", req.Msg.To,
		"payment_method", req.Msg.PaymentMethod,
	)

	key := calculator.PairKey{From: req.Msg.From, To: req.Msg.To}
	txn, state, err := s.advance(ctx, req.Msg.TripId, key, calculator.StatusCompleted, req.Msg.PaymentMethod)
	if err != nil {
		return nil, toConnectError("CompleteTransaction", err)
	}

	return connect.NewResponse(&api.CompleteTransactionResponse{
		Transaction: toAPITransaction(txn, state.trip.Currency),
		Settlement:  toAPISettlement(state),
	}), nil
}

// ConfirmTransaction records that the receiving member got the money.
// Only the receiving member may confirm.
func (s *SettlementService) ConfirmTransaction(ctx context.Context, req *connect.Request[api.ConfirmTransactionRequest]) (*connect.Response[api.ConfirmTransactionResponse], error) {
	caller := middleware.GetMemberID(ctx)
	slog.Info("ConfirmTransaction request received",
		"trip_id", req.Msg.TripId,
		"from", req.Msg.From,
		"to", req.Msg.To,
		"member_id", caller,
	)

	if caller == "" {
		return nil, toConnectError("ConfirmTransaction", errNoIdentity)
	}
	if caller != req.Msg.To {
		return nil, toConnectError("ConfirmTransaction", fmt.Errorf("%w: %s is not %s", errNotRecipient, caller, req.Msg.To))
	}

	key := calculator.PairKey{From: req.Msg.From, To: req.Msg.To}
	txn, state, err := s.advance(ctx, req.Msg.TripId, key, calculator.StatusConfirmed, "")
	if err != nil {
		return nil, toConnectError("ConfirmTransaction", err)
	}

	return connect.NewResponse(&api.ConfirmTransactionResponse{
		Transaction: toAPITransaction(txn, state.trip.Currency),
		Settlement:  toAPISettlement(state),
	}), nil
}

// advance moves a pair to the target status. Moving to the current status is
// a no-op; moving away from pending settles the contributing expenses.
func (s *SettlementService) advance(ctx context.Context, tripID string, key calculator.PairKey, to calculator.Status, paymentMethod string) (calculator.Transaction, *tripState, error) {
	state, err := s.engine.recompute(ctx, tripID)
	if err != nil {
		return calculator.Transaction{}, nil, err
	}

	for _, member := range []string{key.From, key.To} {
		if !state.trip.HasMember(member) {
			return calculator.Transaction{}, nil, fmt.Errorf("%w: %q", calculator.ErrUnknownMember, member)
		}
	}

	current, ok := state.transaction(key)
	if !ok {
		return calculator.Transaction{}, nil, fmt.Errorf("%w: %s -> %s", errNoTransaction, key.From, key.To)
	}
	if err := calculator.Transition(current.Status, to); err != nil {
		return calculator.Transaction{}, nil, err
	}
	if current.Status == to {
		slog.Info("Transaction already in requested status",
			"trip_id", tripID, "from", key.From, "to", key.To, "status", to)
		return current, state, nil
	}

	now := s.engine.now().Unix()
	status := &models.TransactionStatus{
		TripID:        tripID,
		FromMember:    key.From,
		ToMember:      key.To,
		Status:        string(to),
		PaymentMethod: current.PaymentMethod,
		CompletedAt:   unixOrZero(current.CompletedAt),
	}
	if paymentMethod != "" {
		status.PaymentMethod = paymentMethod
	}
	if status.CompletedAt == 0 {
		status.CompletedAt = now
	}
	if to == calculator.StatusConfirmed {
		status.ConfirmedAt = now
	}

	if err := s.store.MarkPairSettled(ctx, status, current.RelatedPayments); err != nil {
		return calculator.Transaction{}, nil, err
	}
	s.engine.metrics.StatusTransitions.WithLabelValues(string(current.Status), string(to)).Inc()

	slog.Info("Transaction status changed",
		"trip_id", tripID,
		"from", key.From,
		"to", key.To,
		"old_status", current.Status,
		"new_status", to,
		"expenses_settled", len(current.RelatedPayments),
	)

	state, err = s.engine.recompute(ctx, tripID)
	if err != nil {
		return calculator.Transaction{}, nil, err
	}
	updated, _ := state.transaction(key)
	return updated, state, nil
}
