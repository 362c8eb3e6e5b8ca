package models

import "time"

// Run is one verified speedrun after processing. Fields are read-only once
// the dataset snapshot is built.
type Run struct {
	ID            string    `json:"id"`
	Weblink       string    `json:"weblink"`
	PlayerID      string    `json:"player_id"`
	PlayerName    string    `json:"player_name"`
	CategoryName  string    `json:"category_name"`
	LevelName     string    `json:"level_name,omitempty"` // empty for full-game runs
	CharacterName string    `json:"character_name"`
	NoteName      string    `json:"note_name"`
	Date          time.Time `json:"date"`
	Submitted     time.Time `json:"submitted"`
	PrimaryTime   float64   `json:"primary_t"` // seconds
	Place         int       `json:"place"`     // 0 when unranked
	Obsolete      bool      `json:"obsolete"`
}

// FullGame reports whether the run is a full-game run (no individual level).
func (r Run) FullGame() bool {
	return r.LevelName == ""
}
