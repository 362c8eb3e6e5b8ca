package view

import (
	"sort"
	"time"

	"speedrun-dashboard/internal/models"
)

// SeriesPoint is one point of a time series chart.
type SeriesPoint struct {
	Date      time.Time `json:"date"`
	Seconds   float64   `json:"seconds"`
	Formatted string    `json:"formatted"`
}

// Series is one chart trace.
type Series struct {
	Trace  string        `json:"trace"`
	Points []SeriesPoint `json:"points"`
}

// PBProgression is the personal-best progression chart payload.
type PBProgression struct {
	TraceLabel string    `json:"trace_label"`
	Series     []Series  `json:"series"`
	Ticks      AxisTicks `json:"ticks"`
}

// BuildPBProgression computes the running personal best per trace over the
// filtered subset. With a single player selected the traces split by
// character and note; otherwise each player is one trace.
func BuildPBProgression(filtered []models.Run, player string) PBProgression {
	singlePlayer := player != "" && player != models.PlayerAll

	runs := make([]models.Run, 0, len(filtered))
	for _, r := range filtered {
		if singlePlayer && r.PlayerName != player {
			continue
		}
		runs = append(runs, r)
	}
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Submitted.Before(runs[j].Submitted)
	})

	traceLabel := "Player"
	traceOf := func(r models.Run) string { return r.PlayerName }
	if singlePlayer {
		traceLabel = "Character - Note"
		traceOf = func(r models.Run) string { return r.CharacterName + " - " + r.NoteName }
	}

	var order []string
	byTrace := make(map[string][]SeriesPoint)
	best := make(map[string]float64)
	var allPB []float64

	for _, r := range runs {
		trace := traceOf(r)
		if _, ok := best[trace]; !ok {
			order = append(order, trace)
			best[trace] = r.PrimaryTime
		} else if r.PrimaryTime < best[trace] {
			best[trace] = r.PrimaryTime
		}

		pb := best[trace]
		byTrace[trace] = append(byTrace[trace], SeriesPoint{
			Date:      r.Date,
			Seconds:   pb,
			Formatted: FormatSeconds(pb),
		})
		allPB = append(allPB, pb)
	}

	out := PBProgression{TraceLabel: traceLabel, Series: make([]Series, 0, len(order))}
	for _, trace := range order {
		out.Series = append(out.Series, Series{Trace: trace, Points: byTrace[trace]})
	}
	out.Ticks = TimeAxisTicks(allPB, 7)
	return out
}

// ImprovementRun is a single run inside a player's improvement history.
type ImprovementRun struct {
	Delta          float64 `json:"delta"`
	DeltaFormatted string  `json:"delta_formatted"`
	Time           string  `json:"time"`
	PreviousTime   string  `json:"previous_time"`
	Date           string  `json:"date"`
}

// PlayerImprovement summarizes how much a player improved over their runs.
type PlayerImprovement struct {
	Player         string           `json:"player"`
	Total          float64          `json:"total"`
	TotalFormatted string           `json:"total_formatted"`
	Runs           []ImprovementRun `json:"runs"`
}

// TimeImprovements is the improvements chart payload. Players holds entries
// ordered by total improvement ascending, matching the bar display.
type TimeImprovements struct {
	Players []PlayerImprovement `json:"players"`
	Ticks   AxisTicks           `json:"ticks"`
}

// BuildTimeImprovements computes total and per-run improvements per player
// over the filtered subset. Single-run players show up with a zero total;
// only when nobody in the subset has more than one run does the payload go
// empty and the chart show its empty state.
func BuildTimeImprovements(filtered []models.Run) TimeImprovements {
	byPlayer := make(map[string][]models.Run)
	var order []string
	for _, r := range filtered {
		if _, ok := byPlayer[r.PlayerName]; !ok {
			order = append(order, r.PlayerName)
		}
		byPlayer[r.PlayerName] = append(byPlayer[r.PlayerName], r)
	}

	anyHistory := false
	for _, runs := range byPlayer {
		if len(runs) >= 2 {
			anyHistory = true
			break
		}
	}

	var out TimeImprovements
	if !anyHistory {
		out.Ticks = TimeAxisTicks(nil, 7)
		return out
	}

	var totals []float64
	for _, player := range order {
		runs := byPlayer[player]
		sort.SliceStable(runs, func(i, j int) bool {
			return runs[i].Submitted.Before(runs[j].Submitted)
		})

		worst, best := runs[0].PrimaryTime, runs[0].PrimaryTime
		for _, r := range runs[1:] {
			if r.PrimaryTime > worst {
				worst = r.PrimaryTime
			}
			if r.PrimaryTime < best {
				best = r.PrimaryTime
			}
		}

		entry := PlayerImprovement{
			Player:         player,
			Total:          worst - best,
			TotalFormatted: FormatSeconds(worst - best),
		}

		prev := -1.0
		for _, r := range runs {
			delta := 0.0
			prevFmt := ""
			if prev >= 0 {
				delta = prev - r.PrimaryTime
				if delta < 0 {
					delta = 0
				}
				prevFmt = FormatSeconds(prev)
			}
			entry.Runs = append(entry.Runs, ImprovementRun{
				Delta:          delta,
				DeltaFormatted: FormatSeconds(delta),
				Time:           FormatSeconds(r.PrimaryTime),
				PreviousTime:   prevFmt,
				Date:           r.Date.Format("02/01/2006"),
			})
			prev = r.PrimaryTime
		}

		out.Players = append(out.Players, entry)
		totals = append(totals, entry.Total)
	}

	sort.SliceStable(out.Players, func(i, j int) bool {
		return out.Players[i].Total < out.Players[j].Total
	})
	out.Ticks = TimeAxisTicks(totals, 7)
	return out
}

// WRCount is one slice of the world-record donut.
type WRCount struct {
	Player string `json:"player"`
	Count  int    `json:"count"`
}

// WRCounts is the current world-record counts payload.
type WRCounts struct {
	Counts []WRCount `json:"counts"`
	Total  int       `json:"total"`
}

// BuildWRCounts counts first places per player across the whole dataset.
func BuildWRCounts(runs []models.Run) WRCounts {
	byPlayer := make(map[string]int)
	var order []string
	for _, r := range runs {
		if r.Obsolete || r.Place != 1 {
			continue
		}
		if _, ok := byPlayer[r.PlayerName]; !ok {
			order = append(order, r.PlayerName)
		}
		byPlayer[r.PlayerName]++
	}

	out := WRCounts{Counts: make([]WRCount, 0, len(order))}
	for _, player := range order {
		out.Counts = append(out.Counts, WRCount{Player: player, Count: byPlayer[player]})
		out.Total += byPlayer[player]
	}
	sort.SliceStable(out.Counts, func(i, j int) bool {
		return out.Counts[i].Count > out.Counts[j].Count
	})
	return out
}

// MonthCount is the run count for one calendar month.
type MonthCount struct {
	Month string `json:"month"` // "Jan 2006"
	Count int    `json:"count"`
}

// CharacterSeries is one character's runs-per-month trace, aligned with the
// overall month axis.
type CharacterSeries struct {
	Character string `json:"character"`
	Counts    []int  `json:"counts"`
}

// BoardCount is the run count for one level/category pair.
type BoardCount struct {
	Label string `json:"label"` // "Level (Category)"
	Count int    `json:"count"`
}

// CategoryCount is the run count for one category.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CommunityOverview bundles the community-wide summary charts.
type CommunityOverview struct {
	Months     []MonthCount      `json:"months"`
	Characters []CharacterSeries `json:"characters"`
	TopBoards  []BoardCount      `json:"top_boards"`
	Categories []CategoryCount   `json:"categories"`
	TotalRuns  int               `json:"total_runs"`
}

// BuildCommunityOverview aggregates the whole dataset into the community
// charts: runs per month (overall and per character), the 15 most-played
// level/category pairs and runs per category.
func BuildCommunityOverview(runs []models.Run) CommunityOverview {
	out := CommunityOverview{TotalRuns: len(runs)}

	type monthKey struct {
		year  int
		month time.Month
	}
	monthTotals := make(map[monthKey]int)
	charMonth := make(map[string]map[monthKey]int)
	charTotals := make(map[string]int)
	var monthKeys []monthKey

	for _, r := range runs {
		if r.Date.IsZero() {
			continue
		}
		mk := monthKey{year: r.Date.Year(), month: r.Date.Month()}
		if _, ok := monthTotals[mk]; !ok {
			monthKeys = append(monthKeys, mk)
		}
		monthTotals[mk]++

		if r.CharacterName != "" {
			if charMonth[r.CharacterName] == nil {
				charMonth[r.CharacterName] = make(map[monthKey]int)
			}
			charMonth[r.CharacterName][mk]++
			charTotals[r.CharacterName]++
		}
	}

	sort.Slice(monthKeys, func(i, j int) bool {
		if monthKeys[i].year != monthKeys[j].year {
			return monthKeys[i].year < monthKeys[j].year
		}
		return monthKeys[i].month < monthKeys[j].month
	})
	for _, mk := range monthKeys {
		label := time.Date(mk.year, mk.month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
		out.Months = append(out.Months, MonthCount{Month: label, Count: monthTotals[mk]})
	}

	// Characters ordered by total run count, busiest first.
	var chars []string
	for c := range charMonth {
		chars = append(chars, c)
	}
	sort.Slice(chars, func(i, j int) bool {
		if charTotals[chars[i]] != charTotals[chars[j]] {
			return charTotals[chars[i]] > charTotals[chars[j]]
		}
		return chars[i] < chars[j]
	})
	for _, c := range chars {
		series := CharacterSeries{Character: c, Counts: make([]int, len(monthKeys))}
		for i, mk := range monthKeys {
			series.Counts[i] = charMonth[c][mk]
		}
		out.Characters = append(out.Characters, series)
	}

	// Most-played level/category pairs; full-game runs have no level and
	// stay out of this chart.
	type boardKey struct{ level, category string }
	boards := make(map[boardKey]int)
	for _, r := range runs {
		if r.FullGame() {
			continue
		}
		boards[boardKey{level: r.LevelName, category: r.CategoryName}]++
	}
	var boardKeys []boardKey
	for k := range boards {
		boardKeys = append(boardKeys, k)
	}
	sort.Slice(boardKeys, func(i, j int) bool {
		if boards[boardKeys[i]] != boards[boardKeys[j]] {
			return boards[boardKeys[i]] > boards[boardKeys[j]]
		}
		if boardKeys[i].level != boardKeys[j].level {
			return boardKeys[i].level < boardKeys[j].level
		}
		return boardKeys[i].category < boardKeys[j].category
	})
	if len(boardKeys) > 15 {
		boardKeys = boardKeys[:15]
	}
	for _, k := range boardKeys {
		out.TopBoards = append(out.TopBoards, BoardCount{
			Label: k.level + " (" + k.category + ")",
			Count: boards[k],
		})
	}

	categories := make(map[string]int)
	var catKeys []string
	for _, r := range runs {
		if _, ok := categories[r.CategoryName]; !ok {
			catKeys = append(catKeys, r.CategoryName)
		}
		categories[r.CategoryName]++
	}
	sort.Slice(catKeys, func(i, j int) bool {
		if categories[catKeys[i]] != categories[catKeys[j]] {
			return categories[catKeys[i]] > categories[catKeys[j]]
		}
		return catKeys[i] < catKeys[j]
	})
	for _, c := range catKeys {
		out.Categories = append(out.Categories, CategoryCount{Category: c, Count: categories[c]})
	}
	return out
}
