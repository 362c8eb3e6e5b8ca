package models

import "time"

// Scope values accepted by a FilterSelection.
const (
	ScopeLevel    = "Individual Level"
	ScopeBoss     = "Boss"
	ScopeFullGame = "Full Game"
)

// NoteAll and PlayerAll are the permissive sentinel options rendered first
// in the note and player selectors.
const (
	NoteAll   = "All"
	PlayerAll = "All Players"
)

// FilterSelection is the current set of user-chosen constraints. It is only
// ever mutated by user interaction; deriving the matching run subset never
// changes it.
type FilterSelection struct {
	Scope        string    `json:"scope"`
	LevelName    string    `json:"level,omitempty"`
	CategoryName string    `json:"category"`
	Characters   []string  `json:"characters,omitempty"` // nil means all characters
	Note         string    `json:"note"`
	Player       string    `json:"player"`
	ShowObsolete bool      `json:"show_obsolete"`
	DateFrom     time.Time `json:"date_from,omitempty"`
	DateTo       time.Time `json:"date_to,omitempty"`
}

// Scopes returns the available scope options in display order.
func Scopes() []string {
	return []string{ScopeLevel, ScopeBoss, ScopeFullGame}
}

// ValidScope reports whether s is one of the known scope values.
func ValidScope(s string) bool {
	return s == ScopeLevel || s == ScopeBoss || s == ScopeFullGame
}
