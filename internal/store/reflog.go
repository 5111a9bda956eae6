package store

import (
	"fmt"
	"time"

	"github.com/kilupskalvis/mini/internal/models"
)

const reflogSchema = `
	-- Ref updates (append-only)
	CREATE TABLE IF NOT EXISTS ref_updates (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		ref TEXT NOT NULL,
		old_value TEXT NOT NULL DEFAULT '',
		new_value TEXT NOT NULL DEFAULT '',
		action TEXT NOT NULL,
		message TEXT NOT NULL DEFAULT '',
		timestamp TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_ref_updates_ref ON ref_updates(ref);
	`

func (s *Store) initReflog() error {
	_, err := s.openDB()
	return err
}

// RecordRefUpdate appends a row to the reflog and sets its ID.
func (s *Store) RecordRefUpdate(u *models.RefUpdate) error {
	db, err := s.openDB()
	if err != nil {
		return err
	}
	if u.Timestamp.IsZero() {
		u.Timestamp = time.Now()
	}

	res, err := db.Exec(`
		INSERT INTO ref_updates (ref, old_value, new_value, action, message, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)`,
		u.Ref, u.OldValue, u.NewValue, string(u.Action), u.Message, u.Timestamp.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record ref update: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = id
	return nil
}

// GetReflog returns ref updates newest first. A limit of 0 returns all rows.
func (s *Store) GetReflog(limit int) ([]*models.RefUpdate, error) {
	db, err := s.openDB()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, ref, old_value, new_value, action, message, timestamp
		FROM ref_updates
		ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reflog: %w", err)
	}
	defer rows.Close()

	var updates []*models.RefUpdate
	for rows.Next() {
		var u models.RefUpdate
		var action, timestamp string
		if err := rows.Scan(&u.ID, &u.Ref, &u.OldValue, &u.NewValue, &action, &u.Message, &timestamp); err != nil {
			return nil, err
		}
		u.Action = models.RefAction(action)
		u.Timestamp = parseTimestamp(timestamp)
		updates = append(updates, &u)
	}

	return updates, rows.Err()
}
