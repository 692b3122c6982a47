package models

// Trip represents a group travel plan whose members share expenses.
type Trip struct {
	// ID is the unique identifier for the trip (UUID format).
	ID string

	// Name is the display name of the trip (e.g., "Kyoto Autumn").
	Name string

	// Currency is the ISO-4217 code all expense amounts are recorded in.
	Currency string

	// Members is the trip roster. Expenses may only reference these members.
	Members []Member

	// CreatedAt is the Unix timestamp when the trip was created.
	CreatedAt int64
}

// MemberIDs returns the roster as a list of member IDs, in roster order.
func (t *Trip) MemberIDs() []string {
	ids := make([]string, len(t.Members))
	for i, m := range t.Members {
		ids[i] = m.ID
	}
	return ids
}

// HasMember reports whether the member ID is on the roster.
func (t *Trip) HasMember(id string) bool {
	for _, m := range t.Members {
		if m.ID == id {
			return true
		}
	}
	return false
}
