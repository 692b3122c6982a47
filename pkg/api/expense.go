package api

// Expense is one recorded payment.
type Expense struct {
	Id          string   `json:"id"`
	TripId      string   `json:"tripId"`
	Title       string   `json:"title"`
	Amount      int64    `json:"amount"`
	PaidBy      string   `json:"paidBy"`
	PaidFor     []string `json:"paidFor"`
	Category    string   `json:"category,omitempty"`
	Date        string   `json:"date,omitempty"`
	Description string   `json:"description,omitempty"`
	IsSettled   bool     `json:"isSettled"`
	CreatedAt   int64    `json:"createdAt"`
	UpdatedAt   int64    `json:"updatedAt"`
}

// ExpenseInput carries the user-editable fields of an expense.
// When Amount is zero, AmountText (major units, e.g. "12.50") is parsed instead.
type ExpenseInput struct {
	Title       string   `json:"title,omitempty"`
	Amount      int64    `json:"amount,omitempty"`
	AmountText  string   `json:"amountText,omitempty"`
	PaidBy      string   `json:"paidBy"`
	PaidFor     []string `json:"paidFor"`
	Category    string   `json:"category,omitempty"`
	Date        string   `json:"date,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Debt is a single obligation implied by one expense.
type Debt struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Amount    int64  `json:"amount"`
	ExpenseId string `json:"expenseId,omitempty"`
	Settled   bool   `json:"settled"`
}

type CreateExpenseRequest struct {
	TripId  string        `json:"tripId"`
	Expense *ExpenseInput `json:"expense"`
}

type CreateExpenseResponse struct {
	Expense    *Expense    `json:"expense"`
	Settlement *Settlement `json:"settlement"`
}

type GetExpenseRequest struct {
	ExpenseId string `json:"expenseId"`
}

type GetExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type ListExpensesRequest struct {
	TripId string `json:"tripId"`
}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

type UpdateExpenseRequest struct {
	ExpenseId string        `json:"expenseId"`
	Expense   *ExpenseInput `json:"expense"`
}

type UpdateExpenseResponse struct {
	Expense    *Expense    `json:"expense"`
	Settlement *Settlement `json:"settlement"`
}

type DeleteExpenseRequest struct {
	ExpenseId string `json:"expenseId"`
}

type DeleteExpenseResponse struct {
	Settlement *Settlement `json:"settlement"`
}

type SetExpenseSettledRequest struct {
	ExpenseId string `json:"expenseId"`
	Settled   bool   `json:"settled"`
}

type SetExpenseSettledResponse struct {
	Expense    *Expense    `json:"expense"`
	Settlement *Settlement `json:"settlement"`
}

// PreviewDebtsRequest asks for the debts an expense would create without
// saving it. TripId is optional; when set, members are checked against the roster.
type PreviewDebtsRequest struct {
	TripId  string        `json:"tripId,omitempty"`
	Expense *ExpenseInput `json:"expense"`
}

type PreviewDebtsResponse struct {
	Debts []*Debt `json:"debts"`
}
