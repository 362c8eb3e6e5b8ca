package storage

import (
	"database/sql"
	"time"

	"speedrun-dashboard/internal/models"
)

// sqlite stores times as text, so run dates round-trip through RFC 3339.
const timeLayout = time.RFC3339

// ReplaceRuns swaps the cached run set for a freshly processed one in a
// single transaction.
func ReplaceRuns(runs []models.Run) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM runs"); err != nil {
		tx.Rollback()
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO runs(
		id, weblink, player_id, player_name, category_name, level_name,
		character_name, note_name, date, submitted, primary_t, place, obsolete)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, r := range runs {
		obsolete := 0
		if r.Obsolete {
			obsolete = 1
		}
		_, err := stmt.Exec(
			r.ID, r.Weblink, r.PlayerID, r.PlayerName, r.CategoryName, r.LevelName,
			r.CharacterName, r.NoteName,
			r.Date.Format(timeLayout), r.Submitted.Format(timeLayout),
			r.PrimaryTime, r.Place, obsolete,
		)
		if err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// LoadRuns returns every cached run, newest submissions last.
func LoadRuns() ([]models.Run, error) {
	query := `
		SELECT id, weblink, player_id, player_name, category_name, level_name,
		       character_name, note_name, date, submitted, primary_t, place, obsolete
		FROM runs
		ORDER BY submitted ASC
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []models.Run
	for rows.Next() {
		var r models.Run
		var dateStr, submittedStr string
		var obsolete int

		if err := rows.Scan(
			&r.ID, &r.Weblink, &r.PlayerID, &r.PlayerName, &r.CategoryName, &r.LevelName,
			&r.CharacterName, &r.NoteName, &dateStr, &submittedStr,
			&r.PrimaryTime, &r.Place, &obsolete,
		); err != nil {
			return nil, err
		}

		r.Date, _ = time.Parse(timeLayout, dateStr)
		r.Submitted, _ = time.Parse(timeLayout, submittedStr)
		r.Obsolete = obsolete != 0

		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// CountRuns returns how many runs are cached.
func CountRuns() (int, error) {
	var n int
	row := db.QueryRow("SELECT COUNT(*) FROM runs")
	if err := row.Scan(&n); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	return n, nil
}
