// Package pipeline turns raw API runs into the processed dataset the
// dashboard serves: IDs resolved to display names, obsolete runs flagged and
// leaderboard places assigned.
package pipeline

import (
	"fmt"
	"log"
	"sort"
	"time"

	"speedrun-dashboard/internal/models"
	"speedrun-dashboard/internal/srcom"
)

// MetaSource provides the lookups needed to resolve IDs into names. The
// srcom.Client satisfies it; tests substitute a fake.
type MetaSource interface {
	Categories(gameID string) ([]srcom.NamedResource, error)
	Levels(gameID string) ([]srcom.NamedResource, error)
	UserByID(userID string) (srcom.User, error)
}

// Process normalizes raw runs into models.Run values. Only verified runs are
// kept, duplicates (by run ID) collapse to one. playerNames is the existing
// name cache; the returned map contains any names resolved during this call
// so the caller can persist them.
func Process(src MetaSource, raw []srcom.Run, playerNames map[string]string) ([]models.Run, map[string]string, error) {
	categories, err := src.Categories(models.GameID)
	if err != nil {
		return nil, nil, fmt.Errorf("pipeline: failed to load categories: %w", err)
	}
	levels, err := src.Levels(models.GameID)
	if err != nil {
		return nil, nil, fmt.Errorf("pipeline: failed to load levels: %w", err)
	}

	categoryNames := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}
	levelNames := make(map[string]string, len(levels))
	for _, l := range levels {
		levelNames[l.ID] = l.Name
	}

	// Dedupe by run ID, verified only.
	seen := make(map[string]bool, len(raw))
	verified := raw[:0:0]
	for _, r := range raw {
		if !r.Verified() || seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		verified = append(verified, r)
	}

	newNames := resolvePlayerNames(src, verified, playerNames)

	runs := make([]models.Run, 0, len(verified))
	for _, r := range verified {
		run := models.Run{
			ID:           r.ID,
			Weblink:      r.Weblink,
			CategoryName: categoryNames[r.Category],
			LevelName:    levelNames[r.Level],
			PrimaryTime:  r.Times.PrimaryT,
		}

		if len(r.Players) > 0 {
			run.PlayerID = r.Players[0].ID
		}
		if name, ok := playerNames[run.PlayerID]; ok {
			run.PlayerName = name
		} else if name, ok := newNames[run.PlayerID]; ok {
			run.PlayerName = name
		}

		run.CharacterName = models.CharacterNames[r.Values[models.CharacterVariableKey]]
		run.NoteName = models.NoteNames[r.Values[models.NoteVariableKey]]

		run.Date, _ = time.Parse("2006-01-02", r.Date)
		run.Submitted, _ = time.Parse(time.RFC3339, r.Submitted)

		runs = append(runs, run)
	}

	Rank(runs)
	return runs, newNames, nil
}

// resolvePlayerNames looks up display names for player IDs missing from the
// cache. A failed lookup falls back to the raw ID so processing never stalls
// on one player.
func resolvePlayerNames(src MetaSource, raw []srcom.Run, cached map[string]string) map[string]string {
	resolved := make(map[string]string)
	for _, r := range raw {
		if len(r.Players) == 0 {
			continue
		}
		id := r.Players[0].ID
		if id == "" {
			continue
		}
		if _, ok := cached[id]; ok {
			continue
		}
		if _, ok := resolved[id]; ok {
			continue
		}

		user, err := src.UserByID(id)
		if err != nil {
			log.Printf("pipeline: failed to fetch user %s, using ID as fallback: %v", id, err)
			resolved[id] = id
			continue
		}
		name := user.DisplayName()
		if name == "" {
			name = id
		}
		resolved[id] = name
	}
	return resolved
}

// Rank flags obsolete runs and assigns leaderboard places in place.
//
// A run is obsolete unless it is the player's best time for its board and
// note. Places use competition ranking (ties share the lowest place) over
// the non-obsolete runs of each board. Level runs and full-game runs form
// separate boards: (level, category, character) and (category, character).
func Rank(runs []models.Run) {
	type boardKey struct {
		level     string
		category  string
		character string
	}
	type bestKey struct {
		board  boardKey
		player string
		note   string
	}

	board := func(r models.Run) boardKey {
		return boardKey{level: r.LevelName, category: r.CategoryName, character: r.CharacterName}
	}

	// Player's best time per board and note.
	best := make(map[bestKey]float64)
	for _, r := range runs {
		k := bestKey{board: board(r), player: r.PlayerID, note: r.NoteName}
		if t, ok := best[k]; !ok || r.PrimaryTime < t {
			best[k] = r.PrimaryTime
		}
	}

	current := make(map[boardKey][]int)
	for i := range runs {
		k := bestKey{board: board(runs[i]), player: runs[i].PlayerID, note: runs[i].NoteName}
		runs[i].Obsolete = runs[i].PrimaryTime != best[k]
		runs[i].Place = 0
		if !runs[i].Obsolete {
			current[k.board] = append(current[k.board], i)
		}
	}

	for _, indices := range current {
		sort.SliceStable(indices, func(a, b int) bool {
			return runs[indices[a]].PrimaryTime < runs[indices[b]].PrimaryTime
		})
		for pos, idx := range indices {
			if pos > 0 && runs[idx].PrimaryTime == runs[indices[pos-1]].PrimaryTime {
				runs[idx].Place = runs[indices[pos-1]].Place
				continue
			}
			runs[idx].Place = pos + 1
		}
	}
}
