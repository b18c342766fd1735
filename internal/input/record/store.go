package record

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // CGO-free SQLite
)

// Store is a SQLite-backed archive of named recordings. It operates on
// frozen event snapshots and never runs on the per-frame hot path.
type Store struct {
	db *sql.DB
}

// RecordingInfo describes an archived recording.
type RecordingInfo struct {
	ID        string
	Name      string
	CreatedAt time.Time
	Events    int
}

// OpenStore opens (creating if necessary) a recording archive at the
// given path.
func OpenStore(path string) (*Store, error) {
	// WAL + busy timeout to avoid "database is locked"
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening recording store: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS recordings(
	  id          TEXT    PRIMARY KEY,
	  name        TEXT    NOT NULL,
	  created_at  INTEGER NOT NULL,
	  event_count INTEGER NOT NULL,
	  events_json TEXT    NOT NULL CHECK (json_valid(events_json))
	);
	CREATE INDEX IF NOT EXISTS idx_recordings_name    ON recordings(name);
	CREATE INDEX IF NOT EXISTS idx_recordings_created ON recordings(created_at);
	`)
	if err != nil {
		return fmt.Errorf("creating recording tables: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save archives an event stream under a name and returns the new
// recording's id.
func (s *Store) Save(name string, events []Event) (string, error) {
	if name == "" {
		return "", fmt.Errorf("recording name cannot be empty")
	}

	data, err := Marshal(events)
	if err != nil {
		return "", fmt.Errorf("marshaling recording %q: %w", name, err)
	}

	id := uuid.NewString()
	_, err = s.db.Exec(
		`INSERT INTO recordings(id, name, created_at, event_count, events_json) VALUES(?,?,?,?,json(?))`,
		id, name, time.Now().Unix(), len(events), string(data),
	)
	if err != nil {
		return "", fmt.Errorf("inserting recording %q: %w", name, err)
	}
	return id, nil
}

// Load retrieves an archived recording's event stream by id.
func (s *Store) Load(id string) ([]Event, error) {
	var data string
	err := s.db.QueryRow(`SELECT events_json FROM recordings WHERE id = ?`, id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("recording %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("loading recording %s: %w", id, err)
	}
	return Unmarshal([]byte(data))
}

// List returns the archived recordings, newest first.
func (s *Store) List() ([]RecordingInfo, error) {
	rows, err := s.db.Query(
		`SELECT id, name, created_at, event_count FROM recordings ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("listing recordings: %w", err)
	}
	defer rows.Close()

	var out []RecordingInfo
	for rows.Next() {
		var info RecordingInfo
		var created int64
		if err := rows.Scan(&info.ID, &info.Name, &created, &info.Events); err != nil {
			return nil, fmt.Errorf("scanning recording row: %w", err)
		}
		info.CreatedAt = time.Unix(created, 0)
		out = append(out, info)
	}
	return out, rows.Err()
}

// Delete removes an archived recording by id.
func (s *Store) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM recordings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting recording %s: %w", id, err)
	}
	return nil
}
