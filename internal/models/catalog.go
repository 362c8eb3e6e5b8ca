package models

// Fixed orderings and variable mappings for Shadow the Hedgehog Reloaded on
// speedrun.com. The selectors keep these orders instead of sorting
// alphabetically, so the lists mirror the in-game stage select.

// GameID is the speedrun.com game ID for Shadow the Hedgehog Reloaded.
const GameID = "o1y3y346"

// Custom variable IDs on the game's runs.
const (
	NoteVariableKey      = "68kwme38"
	CharacterVariableKey = "38dgox08"
)

// CharacterNames maps character variable value IDs to display names.
var CharacterNames = map[string]string{
	"lr36ddwl": "Shadow",
	"1dkonngl": "Gun Android",
	"10v9yypl": "Cannon Android",
}

// NoteNames maps note variable value IDs to display names.
var NoteNames = map[string]string{
	"qvvz0dwq": "No SG",
	"le2v08zl": "SG",
}

// LevelOrder is the stage-select order of the 23 levels.
var LevelOrder = []string{
	"Westopolis", "Digital Circuit", "Glyphic Canyon", "Lethal Highway", "Cryptic Castle",
	"Prison Island", "Circus Park", "Central City", "The Doom", "Sky Troops",
	"Mad Matrix", "Death Ruins", "The ARK", "Air Fleet", "Iron Jungle",
	"Space Gadget", "Lost Impact", "GUN Fortress", "Black Comet", "Lava Shelter",
	"Cosmic Fall", "Final Haunt", "The Last Way",
}

// BossOrder lists the boss fights in encounter order.
var BossOrder = []string{
	"Black Bull (Lethal Highway)", "Egg Breaker (Cryptic Castle)", "Heavy Dog", "Egg Breaker (Mad Matrix)",
	"Black Bull (Death Ruins)", "Blue Falcon", "Egg Breaker (Iron Jungle)", "Diablon (GUN Fortress)",
	"Black Doom (GUN Fortress)", "Diablon (Black Comet)", "Egg Dealer (Black Comet)", "Egg Dealer (Lava Shelter)",
	"Egg Dealer (Cosmic Fall)", "Black Doom (Cosmic Fall)", "Diablon (Final Haunt)", "Black Doom (Final Haunt)",
	"Devil Doom",
}

// CategoryOrder lists run categories in display order.
var CategoryOrder = []string{
	"Dark", "Normal", "Hero", "Expert", "Planted Memories (147)", "Despair's Quickening (243)", "Wandering's End (186)",
	"Punishment, Thy Name is Ruin (001)", "A New Empire's Beginning (164)", "A Missive from 50 Years Ago (326)",
	"Excess of Intellect (041)", "Coffin of Memories (323)", "The Summit of Power (217)", "To Love Oneself (064)",
	"Expert Mode",
}

// CharacterOrder lists the playable characters in display order.
var CharacterOrder = []string{"Shadow", "Gun Android", "Cannon Android"}

// ChartViews lists the chart views offered alongside the table view.
var ChartViews = []string{
	"PB Progression",
	"Player Time Improvements",
	"Current WR Counts",
	"Community Overview",
}
