package models

import "time"

// FallbackHouseholdLabel is displayed when no household is selected, either
// because the user belongs to none or because the household list could not be
// fetched.
const FallbackHouseholdLabel = "Foyer"

// Household is a tenant of the chores application. The client only needs the
// identifier and display name; everything else about a household lives behind
// the API.
type Household struct {
	// ID is the household identifier issued by the API (a UUID string).
	ID string `json:"id"`

	// Name is the display name of the household.
	Name string `json:"name"`

	// CreatedAt is the household creation timestamp.
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// HouseholdContext is the resolved household selection for a session: the
// full membership list plus the pointer designating the active one.
//
// Current is derived, not persisted: the first household of the ordered list
// returned by the API. An explicit per-user stored preference is a planned
// extension of this type, not a change to be made silently.
type HouseholdContext struct {
	// Households is the ordered list the user belongs to.
	Households []Household

	// Current is the active household, nil when the list is empty or could
	// not be fetched.
	Current *Household
}

// Label returns the display name of the current household, or
// [FallbackHouseholdLabel] when none is selected.
func (c HouseholdContext) Label() string {
	if c.Current == nil {
		return FallbackHouseholdLabel
	}
	return c.Current.Name
}
