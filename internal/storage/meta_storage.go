package storage

import (
	"database/sql"
	"strconv"
	"time"
)

const lastRefreshKey = "last_refresh"

// LastRefresh returns when the dataset was last refreshed, or the zero time
// when no refresh has happened yet.
func LastRefresh() (time.Time, error) {
	var value string
	row := db.QueryRow("SELECT value FROM meta WHERE key = ?", lastRefreshKey)
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return time.Time{}, nil
		}
		return time.Time{}, err
	}

	secs, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}, nil // unreadable value counts as never refreshed
	}
	return time.Unix(secs, 0), nil
}

// SetLastRefresh persists the refresh timestamp.
func SetLastRefresh(t time.Time) error {
	stmt, err := db.Prepare("INSERT INTO meta(key, value) VALUES(?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.Exec(lastRefreshKey, strconv.FormatInt(t.Unix(), 10))
	return err
}
