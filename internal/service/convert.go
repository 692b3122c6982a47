package service

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/currency"

	"github.com/mmynk/tripsplit/internal/calculator"
	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/pkg/api"
)

const (
	defaultCurrency = "JPY"
	dateLayout      = "2006-01-02"
)

// normalizeCurrency maps a requested currency onto its ISO-4217 code.
// Empty selects the default.
func normalizeCurrency(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return defaultCurrency, nil
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("%w: currency %q is not an ISO-4217 code", errInvalidRequest, code)
	}
	return unit.String(), nil
}

func toAPITrip(trip *models.Trip) *api.Trip {
	members := make([]*api.Member, len(trip.Members))
	for i, m := range trip.Members {
		members[i] = &api.Member{Id: m.ID, Name: m.Name}
	}
	return &api.Trip{
		Id:        trip.ID,
		Name:      trip.Name,
		Currency:  trip.Currency,
		Members:   members,
		CreatedAt: trip.CreatedAt,
	}
}

func toModelMembers(in []*api.Member) ([]models.Member, error) {
	members := make([]models.Member, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, m := range in {
		if m == nil || m.Id == "" {
			return nil, fmt.Errorf("%w: member id is required", errInvalidRequest)
		}
		if seen[m.Id] {
			return nil, fmt.Errorf("%w: duplicate member %q", errInvalidRequest, m.Id)
		}
		seen[m.Id] = true
		members = append(members, models.Member{ID: m.Id, Name: m.Name})
	}
	return members, nil
}

func toAPIExpense(e *models.Expense) *api.Expense {
	return &api.Expense{
		Id:          e.ID,
		TripId:      e.TripID,
		Title:       e.Title,
		Amount:      e.Amount,
		PaidBy:      e.PaidBy,
		PaidFor:     e.PaidFor,
		Category:    e.Category,
		Date:        e.Date,
		Description: e.Description,
		IsSettled:   e.IsSettled,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// applyInput copies the editable fields onto an expense. The amount is taken
// from AmountText in the trip currency when Amount is zero.
func applyInput(dst *models.Expense, in *api.ExpenseInput, currency string, today time.Time) error {
	if in == nil {
		return fmt.Errorf("%w: expense is required", errInvalidRequest)
	}

	amount := in.Amount
	if amount == 0 && in.AmountText != "" {
		parsed, err := calculator.ParseAmount(in.AmountText, currency)
		if err != nil {
			return fmt.Errorf("%w: %v", errInvalidRequest, err)
		}
		amount = parsed
	}

	date := in.Date
	if date == "" {
		date = today.Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", errInvalidRequest)
	}

	dst.Title = in.Title
	dst.Amount = amount
	dst.PaidBy = in.PaidBy
	dst.PaidFor = append([]string(nil), in.PaidFor...)
	dst.Category = in.Category
	dst.Date = date
	dst.Description = in.Description
	if dst.Title == "" {
		dst.Title = defaultTitle(dst)
	}
	return nil
}

func defaultTitle(e *models.Expense) string {
	if e.Category != "" {
		return e.Category
	}
	return "Expense"
}

func toAPIDebt(d calculator.RawDebt) *api.Debt {
	return &api.Debt{
		From:      d.From,
		To:        d.To,
		Amount:    d.Amount,
		ExpenseId: d.ExpenseID,
		Settled:   d.Settled,
	}
}

func toAPITransaction(t calculator.Transaction, currency string) *api.Transaction {
	return &api.Transaction{
		From:            t.From,
		To:              t.To,
		Amount:          t.Amount,
		Display:         calculator.FormatAmount(t.Amount, currency),
		Status:          string(t.Status),
		RelatedPayments: t.RelatedPayments,
		PaymentMethod:   t.PaymentMethod,
		CompletedAt:     unixOrZero(t.CompletedAt),
		ConfirmedAt:     unixOrZero(t.ConfirmedAt),
	}
}

func toAPISettlement(state *tripState) *api.Settlement {
	trip := state.trip
	names := make(map[string]string, len(trip.Members))
	for _, m := range trip.Members {
		names[m.ID] = m.DisplayName()
	}

	balances := make([]*api.MemberBalance, len(state.result.Members))
	for i, m := range state.result.Members {
		balances[i] = &api.MemberBalance{
			MemberId:   m.MemberID,
			Name:       names[m.MemberID],
			NetBalance: m.NetBalance,
			TotalPaid:  m.TotalPaid,
			TotalOwed:  m.TotalOwed,
			Display:    calculator.FormatAmount(m.NetBalance, trip.Currency),
		}
	}

	transactions := make([]*api.Transaction, len(state.result.Transactions))
	for i, t := range state.result.Transactions {
		transactions[i] = toAPITransaction(t, trip.Currency)
	}

	suggested := make([]*api.Transfer, len(state.result.Suggested))
	for i, t := range state.result.Suggested {
		suggested[i] = &api.Transfer{From: t.From, To: t.To, Amount: t.Amount}
	}

	categorized := make([]calculator.CategorizedExpense, len(state.expenses))
	for i, e := range state.expenses {
		categorized[i] = e.ToCategorized()
	}
	summary := calculator.Summarize(categorized, len(trip.Members))
	categories := make([]*api.CategoryTotal, len(summary.Categories))
	for i, c := range summary.Categories {
		categories[i] = &api.CategoryTotal{Category: c.Category, Total: c.Total, Count: int32(c.Count)}
	}

	return &api.Settlement{
		TripId:       trip.ID,
		Currency:     trip.Currency,
		Balances:     balances,
		Transactions: transactions,
		Suggested:    suggested,
		Summary: &api.Summary{
			TotalSpent:       summary.TotalSpent,
			PerPersonAverage: summary.PerPersonAverage,
			SettledTotal:     summary.SettledTotal,
			OutstandingTotal: summary.OutstandingTotal,
			ExpenseCount:     int32(summary.ExpenseCount),
			Categories:       categories,
		},
		RoundingTolerance: calculator.RoundingTolerance(len(state.expenses), len(trip.Members)),
	}
}

func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}
