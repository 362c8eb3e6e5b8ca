package storage

import (
	"database/sql"
	"log"

	_ "modernc.org/sqlite"
)

var db *sql.DB

// InitDB opens the sqlite database at path and creates the schema. The
// database is a local cache: processed runs, the player name cache and the
// last-refresh timestamp. Losing it only costs a refetch.
func InitDB(path string) {
	var err error

	db, err = sql.Open("sqlite", path)
	if err != nil {
		log.Fatal("InitDB(): Failed to open database: ", err)
	}
	if err = db.Ping(); err != nil {
		log.Fatal("storage.InitDB(): Failed to connect to database: ", err)
	}

	createRunsTable := `
	CREATE TABLE IF NOT EXISTS runs (
			"id" TEXT PRIMARY KEY,
			"weblink" TEXT NOT NULL,
			"player_id" TEXT,
			"player_name" TEXT,
			"category_name" TEXT,
			"level_name" TEXT,
			"character_name" TEXT,
			"note_name" TEXT,
			"date" TEXT,
			"submitted" TEXT,
			"primary_t" REAL NOT NULL,
			"place" INTEGER NOT NULL DEFAULT 0,
			"obsolete" INTEGER NOT NULL DEFAULT 0
	);`
	createPlayersTable := `
	CREATE TABLE IF NOT EXISTS players (
			"id" TEXT PRIMARY KEY,
			"name" TEXT NOT NULL
	);`
	createMetaTable := `
	CREATE TABLE IF NOT EXISTS meta (
			"key" TEXT PRIMARY KEY,
			"value" TEXT NOT NULL
	);`

	if _, err := db.Exec(createRunsTable); err != nil {
		log.Fatalf("InitDB(): Failed to create runs table: %v", err)
	}
	if _, err := db.Exec(createPlayersTable); err != nil {
		log.Fatalf("InitDB(): Failed to create players table: %v", err)
	}
	if _, err := db.Exec(createMetaTable); err != nil {
		log.Fatalf("InitDB(): Failed to create meta table: %v", err)
	}
	log.Println("InitDB(): Init and create tables successfully!")
}

// CloseDB closes the database handle. Used by tests.
func CloseDB() {
	if db != nil {
		db.Close()
		db = nil
	}
}
