package main

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite telemetry store. Only gameplay events live here;
// world state is never persisted.
type DB struct {
	conn *sql.DB
}

// LeaderboardRow is one aggregated leaderboard entry
type LeaderboardRow struct {
	Name string `json:"name"`
	Eats int    `json:"eats"`
}

// OpenDB opens (or creates) the SQLite database
func OpenDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS events (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			type        TEXT NOT NULL,
			player_id   TEXT NOT NULL DEFAULT '',
			player_name TEXT NOT NULL DEFAULT '',
			data        TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMP NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_events_type ON events(type);
	`)
	return err
}

// InsertEvents writes a batch of events in one transaction
func (db *DB) InsertEvents(batch []AnalyticsEvent) error {
	if len(batch) == 0 {
		return nil
	}
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(
		"INSERT INTO events (type, player_id, player_name, data, created_at) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()
	for _, ev := range batch {
		ts := ev.Timestamp
		if ts.IsZero() {
			ts = time.Now()
		}
		if _, err := stmt.Exec(ev.Type, ev.PlayerID, ev.PlayerName, ev.Data, ts); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// TopEaters returns the players with the most eliminations
func (db *DB) TopEaters(limit int) ([]LeaderboardRow, error) {
	rows, err := db.conn.Query(`
		SELECT COALESCE(NULLIF(player_name, ''), 'Guest') AS name, COUNT(*) AS eats
		FROM events
		WHERE type = ?
		GROUP BY name
		ORDER BY eats DESC
		LIMIT ?`, EvtPlayerKill, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LeaderboardRow
	for rows.Next() {
		var r LeaderboardRow
		if err := rows.Scan(&r.Name, &r.Eats); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close closes the underlying connection
func (db *DB) Close() error {
	return db.conn.Close()
}
