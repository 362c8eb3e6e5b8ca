package view

import (
	"sort"

	"speedrun-dashboard/internal/models"
)

// Options are the selector contents for the current scope/level/category.
// Lists keep their configured ordering and only contain values present in
// the dataset, so selectors never offer a choice with zero runs.
type Options struct {
	Scopes     []string `json:"scopes"`
	Levels     []string `json:"levels"`
	Categories []string `json:"categories"`
	Characters []string `json:"characters"`
	Notes      []string `json:"notes"`
	Players    []string `json:"players"`
	Views      []string `json:"views"`
}

// BuildOptions derives the selector options from the dataset for the given
// scope, level and category.
func BuildOptions(runs []models.Run, scope, levelName, categoryName string) Options {
	return Options{
		Scopes:     models.Scopes(),
		Levels:     LevelOptions(runs, scope),
		Categories: CategoryOptions(runs, scope, levelName),
		Characters: CharacterOptions(runs),
		Notes:      NoteOptions(runs),
		Players:    PlayerOptions(runs, scope, levelName, categoryName),
		Views:      append([]string{"Table"}, models.ChartViews...),
	}
}

// LevelOptions returns the ordered level or boss names present in the data.
// Full Game scope has no level selector.
func LevelOptions(runs []models.Run, scope string) []string {
	var order []string
	switch scope {
	case models.ScopeLevel:
		order = models.LevelOrder
	case models.ScopeBoss:
		order = models.BossOrder
	default:
		return []string{}
	}

	present := make(map[string]bool)
	for _, r := range runs {
		if r.LevelName != "" {
			present[r.LevelName] = true
		}
	}
	return keepOrdered(order, present)
}

// CategoryOptions returns the ordered categories available for the scope.
// With a level selected only that level's categories appear; Full Game uses
// the categories of runs without a level.
func CategoryOptions(runs []models.Run, scope, levelName string) []string {
	present := make(map[string]bool)
	levelScoped := (scope == models.ScopeLevel || scope == models.ScopeBoss) && levelName != ""

	for _, r := range runs {
		if levelScoped {
			if r.LevelName == levelName {
				present[r.CategoryName] = true
			}
		} else if r.FullGame() {
			present[r.CategoryName] = true
		}
	}
	return keepOrdered(models.CategoryOrder, present)
}

// CharacterOptions returns the characters present in the data in display order.
func CharacterOptions(runs []models.Run) []string {
	present := make(map[string]bool)
	for _, r := range runs {
		if r.CharacterName != "" {
			present[r.CharacterName] = true
		}
	}
	return keepOrdered(models.CharacterOrder, present)
}

// NoteOptions returns "All" followed by the notes present, alphabetically.
func NoteOptions(runs []models.Run) []string {
	present := make(map[string]bool)
	for _, r := range runs {
		if r.NoteName != "" {
			present[r.NoteName] = true
		}
	}

	notes := make([]string, 0, len(present))
	for n := range present {
		notes = append(notes, n)
	}
	sort.Strings(notes)
	return append([]string{models.NoteAll}, notes...)
}

// PlayerOptions returns "All Players" followed by the players that have runs
// for the given scope, level and category.
func PlayerOptions(runs []models.Run, scope, levelName, categoryName string) []string {
	levelScoped := scope == models.ScopeLevel || scope == models.ScopeBoss

	seen := make(map[string]bool)
	players := []string{models.PlayerAll}
	for _, r := range runs {
		if r.CategoryName != categoryName || r.PlayerName == "" {
			continue
		}
		if levelScoped && r.LevelName != levelName {
			continue
		}
		if !seen[r.PlayerName] {
			seen[r.PlayerName] = true
			players = append(players, r.PlayerName)
		}
	}
	return players
}

func keepOrdered(order []string, present map[string]bool) []string {
	kept := make([]string, 0, len(present))
	for _, name := range order {
		if present[name] {
			kept = append(kept, name)
		}
	}
	return kept
}
