package store

import (
	"fmt"
	"time"
)

// Note is a timestamped free-text annotation attached to one contact.
// Notes are never edited; they only disappear when their contact does.
type Note struct {
	ID        int64
	ContactID int64
	Body      string
	CreatedAt int64
}

// AddNote attaches a note to a contact. Returns ErrNotFound when the
// contact does not exist.
func (db *DB) AddNote(contactID int64, body string) (*Note, error) {
	var exists int
	err := db.QueryRow(`SELECT COUNT(*) FROM contacts WHERE id = ?`, contactID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("check contact: %w", err)
	}
	if exists == 0 {
		return nil, ErrNotFound
	}

	now := time.Now().UnixMilli()
	result, err := db.Exec(`
		INSERT INTO notes (contact_id, body, created_at) VALUES (?, ?, ?)
	`, contactID, body, now)
	if err != nil {
		return nil, fmt.Errorf("add note: %w", err)
	}

	id, _ := result.LastInsertId()
	return &Note{ID: id, ContactID: contactID, Body: body, CreatedAt: now}, nil
}

// ListNotes returns a contact's notes, newest first. The id tiebreak
// keeps ordering stable for notes created in the same millisecond.
func (db *DB) ListNotes(contactID int64) ([]Note, error) {
	rows, err := db.Query(`
		SELECT id, contact_id, body, created_at FROM notes
		WHERE contact_id = ? ORDER BY created_at DESC, id DESC
	`, contactID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var notes []Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.ContactID, &n.Body, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
