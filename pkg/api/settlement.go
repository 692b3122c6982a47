package api

// MemberBalance is a member's net position across a trip.
// Positive means the member is owed money.
type MemberBalance struct {
	MemberId   string `json:"memberId"`
	Name       string `json:"name,omitempty"`
	NetBalance int64  `json:"netBalance"`
	TotalPaid  int64  `json:"totalPaid"`
	TotalOwed  int64  `json:"totalOwed"`
	Display    string `json:"display"`
}

// Transaction is the consolidated debt of one ordered member pair.
type Transaction struct {
	From            string   `json:"from"`
	To              string   `json:"to"`
	Amount          int64    `json:"amount"`
	Display         string   `json:"display"`
	Status          string   `json:"status"`
	RelatedPayments []string `json:"relatedPayments"`
	PaymentMethod   string   `json:"paymentMethod,omitempty"`
	CompletedAt     int64    `json:"completedAt,omitempty"`
	ConfirmedAt     int64    `json:"confirmedAt,omitempty"`
}

// Transfer is one payment of a minimal repayment plan.
type Transfer struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

type CategoryTotal struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
	Count    int32  `json:"count"`
}

// Summary aggregates a trip's spending.
type Summary struct {
	TotalSpent       int64            `json:"totalSpent"`
	PerPersonAverage int64            `json:"perPersonAverage"`
	SettledTotal     int64            `json:"settledTotal"`
	OutstandingTotal int64            `json:"outstandingTotal"`
	ExpenseCount     int32            `json:"expenseCount"`
	Categories       []*CategoryTotal `json:"categories"`
}

// Settlement is the full recomputed settlement state of a trip.
type Settlement struct {
	TripId            string           `json:"tripId"`
	Currency          string           `json:"currency"`
	Balances          []*MemberBalance `json:"balances"`
	Transactions      []*Transaction   `json:"transactions"`
	Suggested         []*Transfer      `json:"suggested"`
	Summary           *Summary         `json:"summary"`
	RoundingTolerance int64            `json:"roundingTolerance"`
}

type GetSettlementRequest struct {
	TripId string `json:"tripId"`
}

type GetSettlementResponse struct {
	Settlement *Settlement `json:"settlement"`
}

type CompleteTransactionRequest struct {
	TripId        string `json:"tripId"`
	From          string `json:"from"`
	To            string `json:"to"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
}

type CompleteTransactionResponse struct {
	Transaction *Transaction `json:"transaction"`
	Settlement  *Settlement  `json:"settlement"`
}

type ConfirmTransactionRequest struct {
	TripId string `json:"tripId"`
	From   string `json:"from"`
	To     string `json:"to"`
}

type ConfirmTransactionResponse struct {
	Transaction *Transaction `json:"transaction"`
	Settlement  *Settlement  `json:"settlement"`
}
