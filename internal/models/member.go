package models

// Member is one participant of a trip.
//
// Member IDs are supplied by the surrounding application (its user or invite
// identifiers); Tripsplit only uses the display name for output.
type Member struct {
	// ID is the identifier used in expenses and transactions.
	ID string

	// Name is the display name shown next to balances.
	Name string
}

// DisplayName returns the name, falling back to the ID when none was given.
func (m Member) DisplayName() string {
	if m.Name != "" {
		return m.Name
	}
	return m.ID
}
