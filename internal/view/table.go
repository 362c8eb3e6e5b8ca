package view

import (
	"strconv"

	"speedrun-dashboard/internal/models"
)

// TableRow is one display-ready leaderboard row. Place renders as the rank
// number or "Obsolete"; times and dates are preformatted for the table.
type TableRow struct {
	Place   string `json:"place"`
	Player  string `json:"player"`
	Time    string `json:"time"`
	Note    string `json:"note"`
	Date    string `json:"date"`
	Weblink string `json:"weblink"`
}

// BuildTable converts an already filtered, ordered run subset into table
// rows. An empty subset yields an empty (non-nil) row list so the client
// renders the empty state instead of an error.
func BuildTable(runs []models.Run) []TableRow {
	rows := make([]TableRow, 0, len(runs))
	for _, r := range runs {
		place := "Obsolete"
		if !r.Obsolete {
			place = "-"
			if r.Place > 0 {
				place = strconv.Itoa(r.Place)
			}
		}

		date := ""
		if !r.Date.IsZero() {
			date = r.Date.Format("02/01/2006")
		}

		rows = append(rows, TableRow{
			Place:   place,
			Player:  r.PlayerName,
			Time:    FormatSeconds(r.PrimaryTime),
			Note:    r.NoteName,
			Date:    date,
			Weblink: r.Weblink,
		})
	}
	return rows
}
