package view

import (
	"testing"
	"time"

	"speedrun-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func progressionRuns() []models.Run {
	at := func(d int) time.Time { return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC) }
	return []models.Run{
		{ID: "a1", PlayerName: "alice", CharacterName: "Shadow", NoteName: "SG", PrimaryTime: 100, Date: at(1), Submitted: at(1)},
		{ID: "a2", PlayerName: "alice", CharacterName: "Shadow", NoteName: "SG", PrimaryTime: 90, Date: at(3), Submitted: at(3)},
		{ID: "a3", PlayerName: "alice", CharacterName: "Shadow", NoteName: "SG", PrimaryTime: 95, Date: at(5), Submitted: at(5)},
		{ID: "b1", PlayerName: "bob", CharacterName: "Shadow", NoteName: "SG", PrimaryTime: 120, Date: at(2), Submitted: at(2)},
		{ID: "b2", PlayerName: "bob", CharacterName: "Shadow", NoteName: "SG", PrimaryTime: 85, Date: at(6), Submitted: at(6)},
	}
}

func TestBuildPBProgressionIsRunningMinimum(t *testing.T) {
	out := BuildPBProgression(progressionRuns(), models.PlayerAll)
	require.Len(t, out.Series, 2)
	assert.Equal(t, "Player", out.TraceLabel)

	var alice Series
	for _, s := range out.Series {
		if s.Trace == "alice" {
			alice = s
		}
	}
	require.Len(t, alice.Points, 3)
	// The third run (95s) does not beat the 90s PB.
	assert.Equal(t, []float64{100, 90, 90}, []float64{alice.Points[0].Seconds, alice.Points[1].Seconds, alice.Points[2].Seconds})
	assert.Equal(t, "1:30.00", alice.Points[2].Formatted)
}

func TestBuildPBProgressionSinglePlayerSplitsByCharacterNote(t *testing.T) {
	out := BuildPBProgression(progressionRuns(), "alice")
	require.Len(t, out.Series, 1)
	assert.Equal(t, "Character - Note", out.TraceLabel)
	assert.Equal(t, "Shadow - SG", out.Series[0].Trace)
	require.Len(t, out.Series[0].Points, 3)
}

func TestBuildPBProgressionEmptyInput(t *testing.T) {
	out := BuildPBProgression(nil, models.PlayerAll)
	assert.Empty(t, out.Series)
}

func TestBuildTimeImprovements(t *testing.T) {
	out := BuildTimeImprovements(progressionRuns())
	require.Len(t, out.Players, 2)

	// Ordered by total improvement ascending: alice improved 10s, bob 35s.
	assert.Equal(t, "alice", out.Players[0].Player)
	assert.InDelta(t, 10, out.Players[0].Total, 1e-9)
	assert.Equal(t, "bob", out.Players[1].Player)
	assert.InDelta(t, 35, out.Players[1].Total, 1e-9)

	// Per-run deltas clamp at zero: alice's 90 -> 95 run is no improvement.
	alice := out.Players[0]
	require.Len(t, alice.Runs, 3)
	assert.InDelta(t, 0, alice.Runs[0].Delta, 1e-9)
	assert.InDelta(t, 10, alice.Runs[1].Delta, 1e-9)
	assert.InDelta(t, 0, alice.Runs[2].Delta, 1e-9)
}

func TestBuildTimeImprovementsEmptyWhenNobodyHasHistory(t *testing.T) {
	runs := []models.Run{
		{ID: "x", PlayerName: "solo", PrimaryTime: 50},
		{ID: "y", PlayerName: "other", PrimaryTime: 60},
	}
	out := BuildTimeImprovements(runs)
	assert.Empty(t, out.Players)
}

func TestBuildTimeImprovementsIncludesSingleRunPlayers(t *testing.T) {
	runs := append(progressionRuns(), models.Run{
		ID: "c1", PlayerName: "carol", CharacterName: "Shadow", NoteName: "SG",
		PrimaryTime: 200,
		Date:        time.Date(2024, time.January, 7, 0, 0, 0, 0, time.UTC),
		Submitted:   time.Date(2024, time.January, 7, 0, 0, 0, 0, time.UTC),
	})
	out := BuildTimeImprovements(runs)
	require.Len(t, out.Players, 3)

	// carol has one run, so zero improvement and the lowest total.
	carol := out.Players[0]
	assert.Equal(t, "carol", carol.Player)
	assert.Zero(t, carol.Total)
	require.Len(t, carol.Runs, 1)
	assert.Zero(t, carol.Runs[0].Delta)
	assert.Equal(t, "3:20.00", carol.Runs[0].Time)
}

func TestBuildWRCounts(t *testing.T) {
	runs := []models.Run{
		{ID: "a", PlayerName: "alice", Place: 1},
		{ID: "b", PlayerName: "alice", Place: 1},
		{ID: "c", PlayerName: "bob", Place: 1},
		{ID: "d", PlayerName: "bob", Place: 2},
		{ID: "e", PlayerName: "carol", Place: 1, Obsolete: true},
	}
	out := BuildWRCounts(runs)
	require.Len(t, out.Counts, 2)
	assert.Equal(t, WRCount{Player: "alice", Count: 2}, out.Counts[0])
	assert.Equal(t, WRCount{Player: "bob", Count: 1}, out.Counts[1])
	assert.Equal(t, 3, out.Total)
}

func TestBuildCommunityOverview(t *testing.T) {
	at := func(m time.Month, d int) time.Time { return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC) }
	runs := []models.Run{
		{ID: "a", CategoryName: "Dark", LevelName: "Westopolis", CharacterName: "Shadow", Date: at(time.January, 5)},
		{ID: "b", CategoryName: "Dark", LevelName: "Westopolis", CharacterName: "Shadow", Date: at(time.January, 20)},
		{ID: "c", CategoryName: "Hero", LevelName: "The ARK", CharacterName: "Gun Android", Date: at(time.March, 2)},
		{ID: "d", CategoryName: "Dark", Date: at(time.March, 9)},
	}
	out := BuildCommunityOverview(runs)

	require.Len(t, out.Months, 2)
	assert.Equal(t, MonthCount{Month: "Jan 2024", Count: 2}, out.Months[0])
	assert.Equal(t, MonthCount{Month: "Mar 2024", Count: 2}, out.Months[1])

	require.Len(t, out.Characters, 2)
	assert.Equal(t, "Shadow", out.Characters[0].Character)
	assert.Equal(t, []int{2, 0}, out.Characters[0].Counts)

	// Full-game run d has no level and stays out of the board chart.
	require.Len(t, out.TopBoards, 2)
	assert.Equal(t, BoardCount{Label: "Westopolis (Dark)", Count: 2}, out.TopBoards[0])

	require.Len(t, out.Categories, 2)
	assert.Equal(t, CategoryCount{Category: "Dark", Count: 3}, out.Categories[0])
	assert.Equal(t, 4, out.TotalRuns)
}
