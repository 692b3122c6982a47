package service

import (
	"errors"
	"log/slog"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/mmynk/tripsplit/internal/calculator"
	"github.com/mmynk/tripsplit/internal/storage"
)

var (
	errInvalidRequest = errors.New("invalid request")
	errNotRecipient   = errors.New("only the receiving member can confirm a transaction")
	errNoIdentity     = errors.New("member identity required")
	errNoTransaction  = errors.New("no transaction between these members")
)

// toConnectError maps domain errors onto Connect codes. Client errors are
// logged at WARN, everything else at ERROR.
func toConnectError(op string, err error) *connect.Error {
	code := codeOf(err)
	if code == connect.CodeInternal {
		slog.Error(op+" failed", "error", err)
	} else {
		slog.Warn(op+" rejected", "code", code, "error", err)
	}

	connectErr := connect.NewError(code, err)
	for _, ve := range validationErrors(err) {
		detail, derr := validationDetail(ve)
		if derr != nil {
			slog.Error("Failed to build error detail", "error", derr)
			continue
		}
		connectErr.AddDetail(detail)
	}
	return connectErr
}

func codeOf(err error) connect.Code {
	var ve *calculator.ValidationError
	switch {
	case errors.As(err, &ve),
		errors.Is(err, errInvalidRequest),
		errors.Is(err, calculator.ErrInvalidStatus):
		return connect.CodeInvalidArgument
	case errors.Is(err, calculator.ErrUnknownMember),
		errors.Is(err, calculator.ErrInvalidTransition):
		return connect.CodeFailedPrecondition
	case errors.Is(err, storage.ErrNotFound),
		errors.Is(err, errNoTransaction):
		return connect.CodeNotFound
	case errors.Is(err, errNotRecipient):
		return connect.CodePermissionDenied
	case errors.Is(err, errNoIdentity):
		return connect.CodeUnauthenticated
	default:
		return connect.CodeInternal
	}
}

// validationErrors collects every ValidationError in an error tree,
// including those joined by errors.Join.
func validationErrors(err error) []*calculator.ValidationError {
	var out []*calculator.ValidationError
	var walk func(error)
	walk = func(err error) {
		if err == nil {
			return
		}
		if ve, ok := err.(*calculator.ValidationError); ok {
			out = append(out, ve)
			return
		}
		switch u := err.(type) {
		case interface{ Unwrap() []error }:
			for _, e := range u.Unwrap() {
				walk(e)
			}
		case interface{ Unwrap() error }:
			walk(u.Unwrap())
		}
	}
	walk(err)
	return out
}

func validationDetail(ve *calculator.ValidationError) (*connect.ErrorDetail, error) {
	st, err := structpb.NewStruct(map[string]any{
		"expense_id": ve.ExpenseID,
		"field":      ve.Field,
		"reason":     ve.Err.Error(),
	})
	if err != nil {
		return nil, err
	}
	return connect.NewErrorDetail(st)
}
