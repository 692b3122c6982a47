// Package api defines the request and response messages of the tripsplit.v1
// Connect services. Messages are plain structs encoded as JSON with
// lowerCamelCase field names; amounts are integers in the trip currency's
// minor unit.
package api

// Member is one participant of a trip.
type Member struct {
	Id   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Trip is a group travel plan and its roster.
type Trip struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Currency  string    `json:"currency"`
	Members   []*Member `json:"members"`
	CreatedAt int64     `json:"createdAt"`
}

type CreateTripRequest struct {
	Name     string    `json:"name,omitempty"`
	Currency string    `json:"currency,omitempty"`
	Members  []*Member `json:"members"`
}

type CreateTripResponse struct {
	Trip *Trip `json:"trip"`
}

type GetTripRequest struct {
	TripId string `json:"tripId"`
}

type GetTripResponse struct {
	Trip *Trip `json:"trip"`
}

type ListTripsRequest struct{}

type ListTripsResponse struct {
	Trips []*Trip `json:"trips"`
}

type AddMembersRequest struct {
	TripId  string    `json:"tripId"`
	Members []*Member `json:"members"`
}

type AddMembersResponse struct {
	Trip *Trip `json:"trip"`
}

type DeleteTripRequest struct {
	TripId string `json:"tripId"`
}

type DeleteTripResponse struct {
	Success bool `json:"success"`
}
