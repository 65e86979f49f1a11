// Package castle models the externally-owned castle configuration
// directories that bot entitlements point at. Entries are read-only from
// this system's perspective: nothing here ever writes into a castle
// directory.
package castle

import "fmt"

const (
	DefaultLevel  = 1
	DefaultPower  = 0
	DefaultTroops = 0
)

// Entry is the decorated view of one castle directory. The IGGID is the
// directory name; the remaining fields come from the directory's
// settings.json, falling back field-by-field to synthesized defaults.
type Entry struct {
	IGGID  string `json:"iggId"`
	Name   string `json:"name"`
	Level  int    `json:"level"`
	Power  int64  `json:"power"`
	Troops int64  `json:"troops"`
}

// NewDefaultEntry synthesizes the fallback entry for a castle whose
// metadata document is missing or unreadable.
func NewDefaultEntry(iggID string) Entry {
	return Entry{
		IGGID:  iggID,
		Name:   fmt.Sprintf("Castle_%s", iggID),
		Level:  DefaultLevel,
		Power:  DefaultPower,
		Troops: DefaultTroops,
	}
}
