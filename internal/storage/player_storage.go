package storage

// Player display names are cached across refreshes so known players do not
// trigger another user lookup per refresh.

// LoadPlayerNames returns the cached player ID -> display name map.
func LoadPlayerNames() (map[string]string, error) {
	rows, err := db.Query("SELECT id, name FROM players")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make(map[string]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, rows.Err()
}

// SavePlayerNames upserts the given player names into the cache.
func SavePlayerNames(names map[string]string) error {
	stmt, err := db.Prepare("INSERT INTO players(id, name) VALUES(?, ?) ON CONFLICT(id) DO UPDATE SET name = excluded.name")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for id, name := range names {
		if _, err := stmt.Exec(id, name); err != nil {
			return err
		}
	}
	return nil
}
