// Package view derives the filtered view from the dataset snapshot: the
// table subset, the filter options and the chart aggregates. Everything here
// is a pure function of (runs, selection); nothing carries state between
// renders.
package view

import (
	"sort"

	"speedrun-dashboard/internal/models"
)

// Sanitize clamps an invalid selection to the widest permissive default
// instead of failing the render: unknown scopes drop the scope constraint,
// unknown notes become "All" and a reversed date range is swapped.
func Sanitize(sel models.FilterSelection) models.FilterSelection {
	if sel.Scope != "" && !models.ValidScope(sel.Scope) {
		sel.Scope = ""
		sel.LevelName = ""
	}
	if sel.Scope == models.ScopeFullGame {
		sel.LevelName = ""
	}

	if sel.Note == "" {
		sel.Note = models.NoteAll
	} else if sel.Note != models.NoteAll && !knownNote(sel.Note) {
		sel.Note = models.NoteAll
	}

	if sel.Player == "" {
		sel.Player = models.PlayerAll
	}

	if !sel.DateFrom.IsZero() && !sel.DateTo.IsZero() && sel.DateFrom.After(sel.DateTo) {
		sel.DateFrom, sel.DateTo = sel.DateTo, sel.DateFrom
	}
	return sel
}

func knownNote(note string) bool {
	for _, n := range models.NoteNames {
		if n == note {
			return true
		}
	}
	return false
}

// Apply returns the runs matching the selection in stable display order
// (time ascending, then date). The result is always a fresh slice; an empty
// intersection yields an empty slice, never an error.
func Apply(runs []models.Run, sel models.FilterSelection) []models.Run {
	sel = Sanitize(sel)

	matched := make([]models.Run, 0, len(runs))
	for _, r := range runs {
		if matches(r, sel) {
			matched = append(matched, r)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].PrimaryTime != matched[j].PrimaryTime {
			return matched[i].PrimaryTime < matched[j].PrimaryTime
		}
		return matched[i].Date.Before(matched[j].Date)
	})
	return matched
}

func matches(r models.Run, sel models.FilterSelection) bool {
	if !sel.ShowObsolete && r.Obsolete {
		return false
	}

	switch sel.Scope {
	case models.ScopeLevel, models.ScopeBoss:
		if sel.LevelName != "" && r.LevelName != sel.LevelName {
			return false
		}
		if r.FullGame() {
			return false
		}
	case models.ScopeFullGame:
		if !r.FullGame() {
			return false
		}
	}

	if sel.CategoryName != "" && r.CategoryName != sel.CategoryName {
		return false
	}

	if sel.Characters != nil && !contains(sel.Characters, r.CharacterName) {
		return false
	}

	if sel.Note != models.NoteAll && r.NoteName != sel.Note {
		return false
	}

	if !sel.DateFrom.IsZero() && r.Date.Before(sel.DateFrom) {
		return false
	}
	if !sel.DateTo.IsZero() && r.Date.After(sel.DateTo) {
		return false
	}
	return true
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
