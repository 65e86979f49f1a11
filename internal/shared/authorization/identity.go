// Package authorization carries the request-scoped caller identity and the
// access decisions made from it. Identity is built once at the API boundary
// and passed explicitly into every call that needs it; nothing in the
// codebase reads caller state from globals.
package authorization

// Identity describes an authenticated caller. For clients, CastleIDs is the
// explicit set of external castle identifiers the customer may see; for
// administrators the set is ignored.
type Identity struct {
	CustomerID uint
	Code       string
	Role       Role
	CastleIDs  []string
}

// CanAccessCastle reports whether this identity may see the given external
// castle identifier. Administrators see everything; clients see exactly
// their authorized set. Pure, no I/O.
func (i Identity) CanAccessCastle(castleID string) bool {
	if i.Role.IsAdmin() {
		return true
	}
	for _, id := range i.CastleIDs {
		if id == castleID {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the identity has unrestricted scope.
func (i Identity) IsAdmin() bool {
	return i.Role.IsAdmin()
}
