package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/storage"
	"github.com/mmynk/tripsplit/pkg/api"
	"github.com/mmynk/tripsplit/pkg/api/apiconnect"
)

// TripService implements the Connect TripService
type TripService struct {
	apiconnect.UnimplementedTripServiceHandler
	store storage.Store
}

// NewTripService creates a new TripService with the given storage backend.
func NewTripService(store storage.Store) *TripService {
	return &TripService{store: store}
}

// CreateTrip creates a new trip with its initial roster.
func (s *TripService) CreateTrip(ctx context.Context, req *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error) {
	slog.Info("CreateTrip request received",
		"name", req.Msg.Name,
		"members_count", len(req.Msg.Members),
	)

	members, err := toModelMembers(req.Msg.Members)
	if err != nil {
		return nil, toConnectError("CreateTrip", err)
	}

	currency, err := normalizeCurrency(req.Msg.Currency)
	if err != nil {
		return nil, toConnectError("CreateTrip", err)
	}

	trip := &models.Trip{
		Name:     req.Msg.Name,
		Currency: currency,
		Members:  members,
	}

	// Save to storage (generates ID and CreatedAt)
	if err := s.store.CreateTrip(ctx, trip); err != nil {
		return nil, toConnectError("CreateTrip", err)
	}

	slog.Info("Trip created", "trip_id", trip.ID)

	return connect.NewResponse(&api.CreateTripResponse{Trip: toAPITrip(trip)}), nil
}

// GetTrip retrieves a trip by ID.
func (s *TripService) GetTrip(ctx context.Context, req *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error) {
	slog.Info("GetTrip request received", "trip_id", req.Msg.TripId)

	trip, err := s.store.GetTrip(ctx, req.Msg.TripId)
	if err != nil {
		return nil, toConnectError("GetTrip", err)
	}

	return connect.NewResponse(&api.GetTripResponse{Trip: toAPITrip(trip)}), nil
}

// ListTrips retrieves all trips.
func (s *TripService) ListTrips(ctx context.Context, req *connect.Request[api.ListTripsRequest]) (*connect.Response[api.ListTripsResponse], error) {
	slog.Info("ListTrips request received")

	trips, err := s.store.ListTrips(ctx)
	if err != nil {
		return nil, toConnectError("ListTrips", err)
	}

	out := make([]*api.Trip, len(trips))
	for i, trip := range trips {
		out[i] = toAPITrip(trip)
	}

	slog.Info("ListTrips successful", "count", len(trips))

	return connect.NewResponse(&api.ListTripsResponse{Trips: out}), nil
}

// AddMembers appends members to a trip's roster. Members are never removed,
// so existing expenses always stay consistent with the roster.
func (s *TripService) AddMembers(ctx context.Context, req *connect.Request[api.AddMembersRequest]) (*connect.Response[api.AddMembersResponse], error) {
	slog.Info("AddMembers request received",
		"trip_id", req.Msg.TripId,
		"members_count", len(req.Msg.Members),
	)

	members, err := toModelMembers(req.Msg.Members)
	if err != nil {
		return nil, toConnectError("AddMembers", err)
	}
	if len(members) == 0 {
		return nil, toConnectError("AddMembers", fmt.Errorf("%w: at least one member is required", errInvalidRequest))
	}

	if err := s.store.AddTripMembers(ctx, req.Msg.TripId, members); err != nil {
		return nil, toConnectError("AddMembers", err)
	}

	trip, err := s.store.GetTrip(ctx, req.Msg.TripId)
	if err != nil {
		return nil, toConnectError("AddMembers", err)
	}

	slog.Info("Members added", "trip_id", trip.ID, "roster_size", len(trip.Members))

	return connect.NewResponse(&api.AddMembersResponse{Trip: toAPITrip(trip)}), nil
}

// DeleteTrip removes a trip with all of its expenses and statuses.
func (s *TripService) DeleteTrip(ctx context.Context, req *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error) {
	slog.Info("DeleteTrip request received", "trip_id", req.Msg.TripId)

	if err := s.store.DeleteTrip(ctx, req.Msg.TripId); err != nil {
		return nil, toConnectError("DeleteTrip", err)
	}

	slog.Info("Trip deleted", "trip_id", req.Msg.TripId)

	return connect.NewResponse(&api.DeleteTripResponse{Success: true}), nil
}
