// Package models defines the core domain models for Tripsplit.
//
// # Models
//
//   - Trip: a group travel plan with a member roster and a currency
//   - Member: one participant of a trip
//   - Expense: a payment one member fronted for some set of members
//   - TransactionStatus: the settlement status recorded against a
//     from/to member pair once money changed hands outside the system
//
// Balances and consolidated transactions are never stored: they are derived
// from a trip's expenses by the calculator package on every read. Only the
// status annotation of a pair is persisted.
//
// # Design Principles
//
// 1. **Expenses are the source of truth**: everything else is re-derivable
// 2. **Minor units**: amounts are int64 in the currency's smallest unit
// 3. **Avoid circular references**: use ID strings instead of pointers for relationships
package models
