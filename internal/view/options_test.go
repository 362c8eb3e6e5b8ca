package view

import (
	"testing"

	"speedrun-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func optionRuns() []models.Run {
	return []models.Run{
		{ID: "r1", PlayerName: "alice", CategoryName: "Dark", LevelName: "Lethal Highway", CharacterName: "Shadow", NoteName: "SG", PrimaryTime: 100},
		{ID: "r2", PlayerName: "bob", CategoryName: "Dark", LevelName: "Westopolis", CharacterName: "Gun Android", NoteName: "No SG", PrimaryTime: 110},
		{ID: "r3", PlayerName: "carol", CategoryName: "Hero", LevelName: "Black Bull (Lethal Highway)", CharacterName: "Shadow", NoteName: "SG", PrimaryTime: 120},
		{ID: "r4", PlayerName: "dave", CategoryName: "Normal", CharacterName: "Cannon Android", NoteName: "SG", PrimaryTime: 5000},
	}
}

func TestLevelOptionsKeepStageOrder(t *testing.T) {
	// Westopolis precedes Lethal Highway in the stage order even though the
	// Lethal Highway run comes first in the data.
	levels := LevelOptions(optionRuns(), models.ScopeLevel)
	assert.Equal(t, []string{"Westopolis", "Lethal Highway"}, levels)
}

func TestLevelOptionsBossScope(t *testing.T) {
	levels := LevelOptions(optionRuns(), models.ScopeBoss)
	assert.Equal(t, []string{"Black Bull (Lethal Highway)"}, levels)
}

func TestLevelOptionsFullGameScopeIsEmpty(t *testing.T) {
	assert.Empty(t, LevelOptions(optionRuns(), models.ScopeFullGame))
}

func TestCategoryOptionsScopedToLevel(t *testing.T) {
	cats := CategoryOptions(optionRuns(), models.ScopeLevel, "Lethal Highway")
	assert.Equal(t, []string{"Dark"}, cats)
}

func TestCategoryOptionsFullGame(t *testing.T) {
	cats := CategoryOptions(optionRuns(), models.ScopeFullGame, "")
	assert.Equal(t, []string{"Normal"}, cats)
}

func TestNoteOptionsStartWithAll(t *testing.T) {
	notes := NoteOptions(optionRuns())
	require.NotEmpty(t, notes)
	assert.Equal(t, models.NoteAll, notes[0])
	assert.Equal(t, []string{"All", "No SG", "SG"}, notes)
}

func TestPlayerOptionsStartWithAllPlayers(t *testing.T) {
	players := PlayerOptions(optionRuns(), models.ScopeLevel, "Lethal Highway", "Dark")
	assert.Equal(t, []string{models.PlayerAll, "alice"}, players)

	// No matching runs still yields the permissive default entry.
	players = PlayerOptions(optionRuns(), models.ScopeLevel, "Lethal Highway", "Hero")
	assert.Equal(t, []string{models.PlayerAll}, players)
}

func TestBuildOptionsOnEmptyDataset(t *testing.T) {
	opts := BuildOptions(nil, models.ScopeLevel, "", "")
	assert.Equal(t, models.Scopes(), opts.Scopes)
	assert.Empty(t, opts.Levels)
	assert.Empty(t, opts.Categories)
	assert.Equal(t, []string{models.NoteAll}, opts.Notes)
	assert.Equal(t, "Table", opts.Views[0])
}
