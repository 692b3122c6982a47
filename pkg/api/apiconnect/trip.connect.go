package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tripsplit/pkg/api"
)

// TripServiceName is the fully-qualified name of the TripService service.
const TripServiceName = "tripsplit.v1.TripService"

// These constants are the fully-qualified names of the RPCs defined in this
// service. They're exposed at runtime as Spec.Procedure and as the final two
// segments of the HTTP route.
const (
	TripServiceCreateTripProcedure = "/tripsplit.v1.TripService/CreateTrip"
	TripServiceGetTripProcedure    = "/tripsplit.v1.TripService/GetTrip"
	TripServiceListTripsProcedure  = "/tripsplit.v1.TripService/ListTrips"
	TripServiceAddMembersProcedure = "/tripsplit.v1.TripService/AddMembers"
	TripServiceDeleteTripProcedure = "/tripsplit.v1.TripService/DeleteTrip"
)

// TripServiceClient is a client for the tripsplit.v1.TripService service.
type TripServiceClient interface {
	CreateTrip(context.Context, *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error)
	GetTrip(context.Context, *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error)
	ListTrips(context.Context, *connect.Request[api.ListTripsRequest]) (*connect.Response[api.ListTripsResponse], error)
	AddMembers(context.Context, *connect.Request[api.AddMembersRequest]) (*connect.Response[api.AddMembersResponse], error)
	DeleteTrip(context.Context, *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error)
}

// NewTripServiceClient constructs a client for the tripsplit.v1.TripService service.
// Requests are JSON-encoded; baseURL should include the scheme and host
// (e.g., http://localhost:8080).
func NewTripServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TripServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{name: codecNameJSON})}, opts...)
	return &tripServiceClient{
		createTrip: connect.NewClient[api.CreateTripRequest, api.CreateTripResponse](
			httpClient,
			baseURL+TripServiceCreateTripProcedure,
			opts...,
		),
		getTrip: connect.NewClient[api.GetTripRequest, api.GetTripResponse](
			httpClient,
			baseURL+TripServiceGetTripProcedure,
			opts...,
		),
		listTrips: connect.NewClient[api.ListTripsRequest, api.ListTripsResponse](
			httpClient,
			baseURL+TripServiceListTripsProcedure,
			opts...,
		),
		addMembers: connect.NewClient[api.AddMembersRequest, api.AddMembersResponse](
			httpClient,
			baseURL+TripServiceAddMembersProcedure,
			opts...,
		),
		deleteTrip: connect.NewClient[api.DeleteTripRequest, api.DeleteTripResponse](
			httpClient,
			baseURL+TripServiceDeleteTripProcedure,
			opts...,
		),
	}
}

// tripServiceClient implements TripServiceClient.
type tripServiceClient struct {
	createTrip *connect.Client[api.CreateTripRequest, api.CreateTripResponse]
	getTrip    *connect.Client[api.GetTripRequest, api.GetTripResponse]
	listTrips  *connect.Client[api.ListTripsRequest, api.ListTripsResponse]
	addMembers *connect.Client[api.AddMembersRequest, api.AddMembersResponse]
	deleteTrip *connect.Client[api.DeleteTripRequest, api.DeleteTripResponse]
}

// CreateTrip calls tripsplit.v1.TripService.CreateTrip.
func (c *tripServiceClient) CreateTrip(ctx context.Context, req *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error) {
	return c.createTrip.CallUnary(ctx, req)
}

// GetTrip calls tripsplit.v1.TripService.GetTrip.
func (c *tripServiceClient) GetTrip(ctx context.Context, req *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error) {
	return c.getTrip.CallUnary(ctx, req)
}

// ListTrips calls tripsplit.v1.TripService.ListTrips.
func (c *tripServiceClient) ListTrips(ctx context.Context, req *connect.Request[api.ListTripsRequest]) (*connect.Response[api.ListTripsResponse], error) {
	return c.listTrips.CallUnary(ctx, req)
}

// AddMembers calls tripsplit.v1.TripService.AddMembers.
func (c *tripServiceClient) AddMembers(ctx context.Context, req *connect.Request[api.AddMembersRequest]) (*connect.Response[api.AddMembersResponse], error) {
	return c.addMembers.CallUnary(ctx, req)
}

// DeleteTrip calls tripsplit.v1.TripService.DeleteTrip.
func (c *tripServiceClient) DeleteTrip(ctx context.Context, req *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error) {
	return c.deleteTrip.CallUnary(ctx, req)
}

// TripServiceHandler is an implementation of the tripsplit.v1.TripService service.
// It manages trips and their rosters.
type TripServiceHandler interface {
	CreateTrip(context.Context, *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error)
	GetTrip(context.Context, *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error)
	ListTrips(context.Context, *connect.Request[api.ListTripsRequest]) (*connect.Response[api.ListTripsResponse], error)
	AddMembers(context.Context, *connect.Request[api.AddMembersRequest]) (*connect.Response[api.AddMembersResponse], error)
	DeleteTrip(context.Context, *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error)
}

// NewTripServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewTripServiceHandler(svc TripServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	tripServiceCreateTripHandler := connect.NewUnaryHandler(
		TripServiceCreateTripProcedure,
		svc.CreateTrip,
		opts...,
	)
	tripServiceGetTripHandler := connect.NewUnaryHandler(
		TripServiceGetTripProcedure,
		svc.GetTrip,
		opts...,
	)
	tripServiceListTripsHandler := connect.NewUnaryHandler(
		TripServiceListTripsProcedure,
		svc.ListTrips,
		opts...,
	)
	tripServiceAddMembersHandler := connect.NewUnaryHandler(
		TripServiceAddMembersProcedure,
		svc.AddMembers,
		opts...,
	)
	tripServiceDeleteTripHandler := connect.NewUnaryHandler(
		TripServiceDeleteTripProcedure,
		svc.DeleteTrip,
		opts...,
	)
	return "/tripsplit.v1.TripService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case TripServiceCreateTripProcedure:
			tripServiceCreateTripHandler.ServeHTTP(w, r)
		case TripServiceGetTripProcedure:
			tripServiceGetTripHandler.ServeHTTP(w, r)
		case TripServiceListTripsProcedure:
			tripServiceListTripsHandler.ServeHTTP(w, r)
		case TripServiceAddMembersProcedure:
			tripServiceAddMembersHandler.ServeHTTP(w, r)
		case TripServiceDeleteTripProcedure:
			tripServiceDeleteTripHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedTripServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedTripServiceHandler struct{}

func (UnimplementedTripServiceHandler) CreateTrip(context.Context, *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.TripService.CreateTrip is not implemented"))
}

func (UnimplementedTripServiceHandler) GetTrip(context.Context, *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.TripService.GetTrip is not implemented"))
}

func (UnimplementedTripServiceHandler) ListTrips(context.Context, *connect.Request[api.ListTripsRequest]) (*connect.Response[api.ListTripsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.TripService.ListTrips is not implemented"))
}

func (UnimplementedTripServiceHandler) AddMembers(context.Context, *connect.Request[api.AddMembersRequest]) (*connect.Response[api.AddMembersResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.TripService.AddMembers is not implemented"))
}

func (UnimplementedTripServiceHandler) DeleteTrip(context.Context, *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.TripService.DeleteTrip is not implemented"))
}
