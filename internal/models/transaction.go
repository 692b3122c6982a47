package models

import (
	"log/slog"
	"time"

	"github.com/mmynk/tripsplit/internal/calculator"
)

// TransactionStatus is the settlement status recorded for one from/to pair.
// The transaction amount itself is always re-derived from expenses.
type TransactionStatus struct {
	// TripID is the trip this pair belongs to.
	TripID string

	// FromMember is the member who owes.
	FromMember string

	// ToMember is the member who is owed.
	ToMember string

	// Status is "completed" or "confirmed"; pending pairs are not stored.
	Status string

	// PaymentMethod is how the money changed hands (e.g., "cash", "bank").
	PaymentMethod string

	// CompletedAt is the Unix timestamp when the pair was marked completed.
	CompletedAt int64

	// ConfirmedAt is the Unix timestamp when the receiver acknowledged receipt.
	ConfirmedAt int64

	// UpdatedAt is the Unix timestamp of the last change.
	UpdatedAt int64
}

// Key returns the calculator pair key for this status.
func (s *TransactionStatus) Key() calculator.PairKey {
	return calculator.PairKey{From: s.FromMember, To: s.ToMember}
}

// ToAnnotation converts the stored status into the engine's annotation.
func (s *TransactionStatus) ToAnnotation() (calculator.Annotation, error) {
	status, err := calculator.ParseStatus(s.Status)
	if err != nil {
		return calculator.Annotation{}, err
	}
	return calculator.Annotation{
		Status:        status,
		PaymentMethod: s.PaymentMethod,
		CompletedAt:   unixOrZero(s.CompletedAt),
		ConfirmedAt:   unixOrZero(s.ConfirmedAt),
	}, nil
}

// Annotations indexes stored statuses by pair. Rows with an unknown status
// are skipped, leaving their pair to the merged expense state.
func Annotations(statuses []*TransactionStatus) map[calculator.PairKey]calculator.Annotation {
	out := make(map[calculator.PairKey]calculator.Annotation, len(statuses))
	for _, s := range statuses {
		annotation, err := s.ToAnnotation()
		if err != nil {
			slog.Warn("Ignoring stored transaction status",
				"trip_id", s.TripID,
				"from", s.FromMember,
				"to", s.ToMember,
				"error", err,
			)
			continue
		}
		out[s.Key()] = annotation
	}
	return out
}

func unixOrZero(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
