package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/tripsplit/pkg/api"
)

func TestCreateTrip(t *testing.T) {
	c := setupTestServer(t)

	resp, err := c.trips.CreateTrip(context.Background(), connect.NewRequest(&api.CreateTripRequest{
		Name: "Hokkaido",
		Members: []*api.Member{
			{Id: "alice", Name: "Alice"},
			{Id: "bob", Name: "Bob"},
			{Id: "carol", Name: "Carol"},
		},
	}))
	if err != nil {
		t.Fatalf("CreateTrip failed: %v", err)
	}

	trip := resp.Msg.Trip
	if trip == nil {
		t.Fatal("expected trip in response")
	}
	if trip.Id == "" {
		t.Error("expected non-empty trip ID")
	}
	if trip.Name != "Hokkaido" {
		t.Errorf("name: expected 'Hokkaido', got '%s'", trip.Name)
	}
	if trip.Currency != "JPY" {
		t.Errorf("currency: expected default 'JPY', got '%s'", trip.Currency)
	}
	if len(trip.Members) != 3 {
		t.Errorf("members: expected 3, got %d", len(trip.Members))
	}
}

func TestCreateTrip_InvalidMembers(t *testing.T) {
	c := setupTestServer(t)

	tests := []struct {
		name    string
		members []*api.Member
	}{
		{"empty id", []*api.Member{{Id: ""}}},
		{"duplicate", []*api.Member{{Id: "alice"}, {Id: "alice"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.trips.CreateTrip(context.Background(), connect.NewRequest(&api.CreateTripRequest{Members: tt.members}))
			expectCode(t, err, connect.CodeInvalidArgument)
		})
	}
}

func TestCreateTrip_InvalidCurrency(t *testing.T) {
	c := setupTestServer(t)

	for _, code := range []string{"yen", "XYZ", "EURO", "12"} {
		t.Run(code, func(t *testing.T) {
			_, err := c.trips.CreateTrip(context.Background(), connect.NewRequest(&api.CreateTripRequest{
				Currency: code,
				Members:  []*api.Member{{Id: "alice"}},
			}))
			expectCode(t, err, connect.CodeInvalidArgument)
		})
	}
}

func TestCreateTrip_NormalizesCurrency(t *testing.T) {
	c := setupTestServer(t)

	resp, err := c.trips.CreateTrip(context.Background(), connect.NewRequest(&api.CreateTripRequest{
		Currency: " chf ",
		Members:  []*api.Member{{Id: "alice"}},
	}))
	if err != nil {
		t.Fatalf("CreateTrip failed: %v", err)
	}
	if resp.Msg.Trip.Currency != "CHF" {
		t.Errorf("currency: expected 'CHF', got '%s'", resp.Msg.Trip.Currency)
	}
}

func TestGetTrip_NotFound(t *testing.T) {
	c := setupTestServer(t)

	_, err := c.trips.GetTrip(context.Background(), connect.NewRequest(&api.GetTripRequest{TripId: "nonexistent-id"}))
	expectCode(t, err, connect.CodeNotFound)
}

func TestListTrips(t *testing.T) {
	c := setupTestServer(t)
	createTestTrip(t, c, "", "alice", "bob")
	createTestTrip(t, c, "EUR", "carol")

	resp, err := c.trips.ListTrips(context.Background(), connect.NewRequest(&api.ListTripsRequest{}))
	if err != nil {
		t.Fatalf("ListTrips failed: %v", err)
	}
	if len(resp.Msg.Trips) != 2 {
		t.Errorf("expected 2 trips, got %d", len(resp.Msg.Trips))
	}
}

func TestAddMembers(t *testing.T) {
	c := setupTestServer(t)
	trip := createTestTrip(t, c, "", "alice", "bob")

	resp, err := c.trips.AddMembers(context.Background(), connect.NewRequest(&api.AddMembersRequest{
		TripId:  trip.Id,
		Members: []*api.Member{{Id: "carol", Name: "Carol"}},
	}))
	if err != nil {
		t.Fatalf("AddMembers failed: %v", err)
	}

	members := resp.Msg.Trip.Members
	if len(members) != 3 {
		t.Fatalf("expected 3 members, got %d", len(members))
	}
	if members[2].Id != "carol" || members[2].Name != "Carol" {
		t.Errorf("expected carol appended, got %+v", members[2])
	}

	// The new member can take part in expenses right away.
	addTestExpense(t, c, trip.Id, 900, "carol", "alice", "bob", "carol")
}

func TestAddMembers_Errors(t *testing.T) {
	c := setupTestServer(t)
	trip := createTestTrip(t, c, "", "alice")

	_, err := c.trips.AddMembers(context.Background(), connect.NewRequest(&api.AddMembersRequest{TripId: trip.Id}))
	expectCode(t, err, connect.CodeInvalidArgument)

	_, err = c.trips.AddMembers(context.Background(), connect.NewRequest(&api.AddMembersRequest{
		TripId:  "missing",
		Members: []*api.Member{{Id: "bob"}},
	}))
	expectCode(t, err, connect.CodeNotFound)
}

func TestDeleteTrip(t *testing.T) {
	c := setupTestServer(t)
	trip := createTestTrip(t, c, "", "alice", "bob")
	addTestExpense(t, c, trip.Id, 1000, "alice", "bob")

	resp, err := c.trips.DeleteTrip(context.Background(), connect.NewRequest(&api.DeleteTripRequest{TripId: trip.Id}))
	if err != nil {
		t.Fatalf("DeleteTrip failed: %v", err)
	}
	if !resp.Msg.Success {
		t.Error("expected success")
	}

	_, err = c.settlements.GetSettlement(context.Background(), connect.NewRequest(&api.GetSettlementRequest{TripId: trip.Id}))
	expectCode(t, err, connect.CodeNotFound)

	_, err = c.trips.DeleteTrip(context.Background(), connect.NewRequest(&api.DeleteTripRequest{TripId: trip.Id}))
	expectCode(t, err, connect.CodeNotFound)
}
