package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the storage format for contact dates.
const DateLayout = "2006-01-02"

// Contact represents a tracked dating connection.
type Contact struct {
	ID           int64
	Name         string
	Platform     *string
	Phone        *string
	FirstContact string  // YYYY-MM-DD
	LastContact  *string // YYYY-MM-DD, nil when never contacted
	Status       string  // active, dating, ghosted, ended
	CreatedAt    int64
	UpdatedAt    int64
}

// NewContact holds creation inputs. Zero values mean "unset":
// FirstContact defaults to today, Status to "active".
type NewContact struct {
	Name         string
	Platform     string
	Phone        string
	FirstContact string
	Status       string
}

// ContactUpdate holds a partial update. Nil fields are left untouched.
type ContactUpdate struct {
	Name        *string
	Platform    *string
	Phone       *string
	Status      *string
	LastContact *string
}

const contactColumns = `id, name, platform, phone, first_contact_date, last_contact_date, status, created_at, updated_at`

// CreateContact inserts a new contact. The first contact date defaults
// to today; the last contact date starts equal to the first contact
// date (meeting someone counts as contact).
func (db *DB) CreateContact(nc NewContact) (*Contact, error) {
	now := time.Now()

	first := nc.FirstContact
	if first == "" {
		first = now.Format(DateLayout)
	}
	status := nc.Status
	if status == "" {
		status = "active"
	}

	ts := now.UnixMilli()
	result, err := db.Exec(`
		INSERT INTO contacts (name, platform, phone, first_contact_date, last_contact_date, status, created_at, updated_at)
		VALUES (?, NULLIF(?, ''), NULLIF(?, ''), ?, ?, ?, ?, ?)
	`, nc.Name, nc.Platform, nc.Phone, first, first, status, ts, ts)
	if err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}

	id, _ := result.LastInsertId()
	c := &Contact{
		ID:           id,
		Name:         nc.Name,
		FirstContact: first,
		LastContact:  &first,
		Status:       status,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	if nc.Platform != "" {
		c.Platform = &nc.Platform
	}
	if nc.Phone != "" {
		c.Phone = &nc.Phone
	}
	return c, nil
}

// GetContact returns a contact by id, or nil if not found.
func (db *DB) GetContact(id int64) (*Contact, error) {
	row := db.QueryRow(`SELECT `+contactColumns+` FROM contacts WHERE id = ?`, id)
	c, err := scanContact(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return c, nil
}

// ListContacts returns contacts ordered by last contact date descending,
// never-contacted last. Empty filters match everything; the platform
// filter is case-insensitive.
func (db *DB) ListContacts(status, platform string) ([]Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE 1=1`
	var params []any

	if status != "" {
		query += ` AND status = ?`
		params = append(params, status)
	}
	if platform != "" {
		query += ` AND platform = ? COLLATE NOCASE`
		params = append(params, platform)
	}
	query += ` ORDER BY last_contact_date DESC NULLS LAST, id`

	return db.queryContacts(query, params...)
}

// UpdateContact applies the non-nil fields of upd and refreshes
// updated_at. Returns ErrNoFields when upd is empty and ErrNotFound
// when the contact does not exist.
func (db *DB) UpdateContact(id int64, upd ContactUpdate) error {
	var sets []string
	var params []any

	add := func(column string, v *string) {
		if v != nil {
			sets = append(sets, column+" = ?")
			params = append(params, *v)
		}
	}
	add("name", upd.Name)
	add("platform", upd.Platform)
	add("phone", upd.Phone)
	add("status", upd.Status)
	add("last_contact_date", upd.LastContact)

	if len(sets) == 0 {
		return ErrNoFields
	}

	sets = append(sets, "updated_at = ?")
	params = append(params, time.Now().UnixMilli(), id)

	result, err := db.Exec(
		`UPDATE contacts SET `+strings.Join(sets, ", ")+` WHERE id = ?`, params...)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkContacted sets the last contact date (YYYY-MM-DD) for a contact.
func (db *DB) MarkContacted(id int64, date string) error {
	return db.UpdateContact(id, ContactUpdate{LastContact: &date})
}

// DeleteContact removes a contact and all of its notes as one
// transaction. The schema cascade is a backstop; the notes delete is
// explicit so the unit of work is visible.
func (db *DB) DeleteContact(id int64) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM notes WHERE contact_id = ?`, id); err != nil {
		return fmt.Errorf("delete notes: %w", err)
	}
	result, err := tx.Exec(`DELETE FROM contacts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}

// SearchContacts returns contacts whose name or any note body contains
// term as a substring, case-insensitive (ASCII), without duplicates,
// ordered by last contact date descending. LIKE metacharacters in the
// term are matched literally.
func (db *DB) SearchContacts(term string) ([]Contact, error) {
	pattern := "%" + escapeLike(term) + "%"
	return db.queryContacts(`
		SELECT DISTINCT c.id, c.name, c.platform, c.phone, c.first_contact_date,
			c.last_contact_date, c.status, c.created_at, c.updated_at
		FROM contacts c
		LEFT JOIN notes n ON n.contact_id = c.id
		WHERE c.name LIKE ? ESCAPE '\' OR n.body LIKE ? ESCAPE '\'
		ORDER BY c.last_contact_date DESC NULLS LAST, c.id
	`, pattern, pattern)
}

// FindStaleContacts returns active contacts whose last contact date is
// before threshold (YYYY-MM-DD) or absent, most stale first:
// never-contacted sort ahead of everything else.
func (db *DB) FindStaleContacts(threshold string) ([]Contact, error) {
	return db.queryContacts(`
		SELECT `+contactColumns+` FROM contacts
		WHERE status = 'active' AND (last_contact_date < ? OR last_contact_date IS NULL)
		ORDER BY last_contact_date ASC NULLS FIRST, id
	`, threshold)
}

// StatusCount is one row of the per-status contact tally.
type StatusCount struct {
	Status string
	Count  int
}

// CountByStatus tallies contacts per status, largest group first.
func (db *DB) CountByStatus() ([]StatusCount, error) {
	rows, err := db.Query(`
		SELECT status, COUNT(*) FROM contacts
		GROUP BY status ORDER BY COUNT(*) DESC, status
	`)
	if err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}
	defer rows.Close()

	var counts []StatusCount
	for rows.Next() {
		var sc StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		counts = append(counts, sc)
	}
	return counts, rows.Err()
}

func (db *DB) queryContacts(query string, params ...any) ([]Contact, error) {
	rows, err := db.Query(query, params...)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}
	defer rows.Close()

	var contacts []Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, *c)
	}
	return contacts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (*Contact, error) {
	var c Contact
	var platform, phone, last sql.NullString
	err := row.Scan(&c.ID, &c.Name, &platform, &phone,
		&c.FirstContact, &last, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if platform.Valid {
		c.Platform = &platform.String
	}
	if phone.Valid {
		c.Phone = &phone.String
	}
	if last.Valid {
		c.LastContact = &last.String
	}
	return &c, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
