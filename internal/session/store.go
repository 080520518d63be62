// Package session persists small pieces of UI session state (last save
// path, recently used files) in sqlite. It implements core.SessionStore.
package session

import (
	"database/sql"
	"time"

	"github.com/appframe/appframe/internal/database"
)

const lastPathKey = "last_path"

// Store is a sqlite-backed session store. The recent-files list is trimmed
// to limit entries on every touch.
type Store struct {
	db    *sql.DB
	limit int
}

func NewStore(db *sql.DB, recentLimit int) *Store {
	if recentLimit < 1 {
		recentLimit = 10
	}
	return &Store{db: db, limit: recentLimit}
}

// TouchRecent moves path to the top of the recent-files list, inserting it
// if needed, and trims the list to the configured limit. Touch and trim run
// in one transaction so a crash cannot leave an overlong list.
func (s *Store) TouchRecent(path string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	return database.WithTx(s.db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
		INSERT INTO recent_files(path, last_used) VALUES (?, ?)
		ON CONFLICT(path) DO UPDATE SET last_used=excluded.last_used;
		`, path, now)
		if err != nil {
			return err
		}
		_, err = tx.Exec(`
		DELETE FROM recent_files WHERE path NOT IN (
			SELECT path FROM recent_files ORDER BY last_used DESC LIMIT ?
		);
		`, s.limit)
		return err
	})
}

// Recent returns up to limit paths, most recently used first. A limit of 0
// or less falls back to the store's configured limit.
func (s *Store) Recent(limit int) ([]string, error) {
	if limit < 1 || limit > s.limit {
		limit = s.limit
	}
	rows, err := s.db.Query(`SELECT path FROM recent_files ORDER BY last_used DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		out = append(out, path)
	}
	return out, rows.Err()
}

// SetLastPath records the path of the last successful open or save.
func (s *Store) SetLastPath(path string) error {
	_, err := s.db.Exec(`
	INSERT INTO session(key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=CURRENT_TIMESTAMP;
	`, lastPathKey, path)
	return err
}

// LastPath returns the recorded path, or "" when none has been set.
func (s *Store) LastPath() (string, error) {
	var path string
	err := s.db.QueryRow(`SELECT value FROM session WHERE key = ?`, lastPathKey).Scan(&path)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return path, nil
}
