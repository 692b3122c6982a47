package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tripsplit/pkg/api"
)

// SettlementServiceName is the fully-qualified name of the SettlementService service.
const SettlementServiceName = "tripsplit.v1.SettlementService"

// These constants are the fully-qualified names of the RPCs defined in this
// service. They're exposed at runtime as Spec.Procedure and as the final two
// segments of the HTTP route.
const (
	SettlementServiceGetSettlementProcedure       = "/tripsplit.v1.SettlementService/GetSettlement"
	SettlementServiceCompleteTransactionProcedure = "/tripsplit.v1.SettlementService/CompleteTransaction"
	SettlementServiceConfirmTransactionProcedure  = "/tripsplit.v1.SettlementService/ConfirmTransaction"
)

// SettlementServiceClient is a client for the tripsplit.v1.SettlementService service.
type SettlementServiceClient interface {
	GetSettlement(context.Context, *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.GetSettlementResponse], error)
	CompleteTransaction(context.Context, *connect.Request[api.CompleteTransactionRequest]) (*connect.Response[api.CompleteTransactionResponse], error)
	ConfirmTransaction(context.Context, *connect.Request[api.ConfirmTransactionRequest]) (*connect.Response[api.ConfirmTransactionResponse], error)
}

// NewSettlementServiceClient constructs a client for the tripsplit.v1.SettlementService service.
// Requests are JSON-encoded; baseURL should include the scheme and host
// (e.g., http://localhost:8080).
func NewSettlementServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SettlementServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{name: codecNameJSON})}, opts...)
	return &settlementServiceClient{
		getSettlement: connect.NewClient[api.GetSettlementRequest, api.GetSettlementResponse](
			httpClient,
			baseURL+SettlementServiceGetSettlementProcedure,
			opts...,
		),
		completeTransaction: connect.NewClient[api.CompleteTransactionRequest, api.CompleteTransactionResponse](
			httpClient,
			baseURL+SettlementServiceCompleteTransactionProcedure,
			opts...,
		),
		confirmTransaction: connect.NewClient[api.ConfirmTransactionRequest, api.ConfirmTransactionResponse](
			httpClient,
			baseURL+SettlementServiceConfirmTransactionProcedure,
			opts...,
		),
	}
}

// settlementServiceClient implements SettlementServiceClient.
type settlementServiceClient struct {
	getSettlement       *connect.Client[api.GetSettlementRequest, api.GetSettlementResponse]
	completeTransaction *connect.Client[api.CompleteTransactionRequest, api.CompleteTransactionResponse]
	confirmTransaction  *connect.Client[api.ConfirmTransactionRequest, api.ConfirmTransactionResponse]
}

// GetSettlement calls tripsplit.v1.SettlementService.GetSettlement.
func (c *settlementServiceClient) GetSettlement(ctx context.Context, req *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.GetSettlementResponse], error) {
	return c.getSettlement.CallUnary(ctx, req)
}

// CompleteTransaction calls tripsplit.v1.SettlementService.CompleteTransaction.
func (c *settlementServiceClient) CompleteTransaction(ctx context.Context, req *connect.Request[api.CompleteTransactionRequest]) (*connect.Response[api.CompleteTransactionResponse], error) {
	return c.completeTransaction.CallUnary(ctx, req)
}

// ConfirmTransaction calls tripsplit.v1.SettlementService.ConfirmTransaction.
func (c *settlementServiceClient) ConfirmTransaction(ctx context.Context, req *connect.Request[api.ConfirmTransactionRequest]) (*connect.Response[api.ConfirmTransactionResponse], error) {
	return c.confirmTransaction.CallUnary(ctx, req)
}

// SettlementServiceHandler is an implementation of the tripsplit.v1.SettlementService service.
// It serves consolidated settlements and their status lifecycle.
type SettlementServiceHandler interface {
	GetSettlement(context.Context, *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.GetSettlementResponse], error)
	CompleteTransaction(context.Context, *connect.Request[api.CompleteTransactionRequest]) (*connect.Response[api.CompleteTransactionResponse], error)
	ConfirmTransaction(context.Context, *connect.Request[api.ConfirmTransactionRequest]) (*connect.Response[api.ConfirmTransactionResponse], error)
}

// NewSettlementServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewSettlementServiceHandler(svc SettlementServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	settlementServiceGetSettlementHandler := connect.NewUnaryHandler(
		SettlementServiceGetSettlementProcedure,
		svc.GetSettlement,
		opts...,
	)
	settlementServiceCompleteTransactionHandler := connect.NewUnaryHandler(
		SettlementServiceCompleteTransactionProcedure,
		svc.CompleteTransaction,
		opts...,
	)
	settlementServiceConfirmTransactionHandler := connect.NewUnaryHandler(
		SettlementServiceConfirmTransactionProcedure,
		svc.ConfirmTransaction,
		opts...,
	)
	return "/tripsplit.v1.SettlementService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case SettlementServiceGetSettlementProcedure:
			settlementServiceGetSettlementHandler.ServeHTTP(w, r)
		case SettlementServiceCompleteTransactionProcedure:
			settlementServiceCompleteTransactionHandler.ServeHTTP(w, r)
		case SettlementServiceConfirmTransactionProcedure:
			settlementServiceConfirmTransactionHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedSettlementServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedSettlementServiceHandler struct{}

func (UnimplementedSettlementServiceHandler) GetSettlement(context.Context, *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.GetSettlementResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.SettlementService.GetSettlement is not implemented"))
}

func (UnimplementedSettlementServiceHandler) CompleteTransaction(context.Context, *connect.Request[api.CompleteTransactionRequest]) (*connect.Response[api.CompleteTransactionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.SettlementService.CompleteTransaction is not implemented"))
}

func (UnimplementedSettlementServiceHandler) ConfirmTransaction(context.Context, *connect.Request[api.ConfirmTransactionRequest]) (*connect.Response[api.ConfirmTransactionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.SettlementService.ConfirmTransaction is not implemented"))
}
