package shell

import (
	"errors"
	"fmt"

	"github.com/lazypower/sparks/internal/datefmt"
	"github.com/lazypower/sparks/internal/store"
)

func (s *Shell) notFound(id int64) {
	fmt.Fprintf(s.out, "\nContact with ID %d not found.\n", id)
}

func (s *Shell) cmdList(status, platform string) error {
	contacts, err := s.db.ListContacts(status, platform)
	if err != nil {
		return err
	}
	if len(contacts) == 0 {
		fmt.Fprintln(s.out, "\nNo contacts found.")
		return nil
	}

	s.renderTable(contacts)
	fmt.Fprintf(s.out, "Total: %d contact(s)\n", len(contacts))
	return nil
}

// cmdAdd gathers fields interactively. Blank optional input means
// unset; a blank date means today.
func (s *Shell) cmdAdd() error {
	fmt.Fprintln(s.out, "\n--- Add New Contact ---")

	name, ok := s.prompt("Name: ")
	if !ok {
		return nil
	}
	if name == "" {
		fmt.Fprintln(s.out, "Name is required.")
		return nil
	}

	platform, ok := s.prompt("Platform (Tinder/Bumble/Hinge/etc.): ")
	if !ok {
		return nil
	}
	phone, ok := s.prompt("Phone number (optional): ")
	if !ok {
		return nil
	}
	first, ok := s.promptDate("First contact date (YYYY-MM-DD, or press Enter for today): ")
	if !ok {
		return nil
	}
	status, ok := s.prompt("Status (active/dating/ghosted/ended) [active]: ")
	if !ok {
		return nil
	}

	c, err := s.db.CreateContact(store.NewContact{
		Name:         name,
		Platform:     platform,
		Phone:        phone,
		FirstContact: first,
		Status:       status,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "\n✓ Added contact: %s (ID: %d)\n", c.Name, c.ID)

	initial, ok := s.prompt("Add an initial note? (Enter note or press Enter to skip): ")
	if ok && initial != "" {
		if _, err := s.db.AddNote(c.ID, initial); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "\n✓ Note added to %s.\n", c.Name)
	}
	return nil
}

func (s *Shell) cmdView(id int64) error {
	c, err := s.db.GetContact(id)
	if err != nil {
		return err
	}
	if c == nil {
		s.notFound(id)
		return nil
	}
	notes, err := s.db.ListNotes(id)
	if err != nil {
		return err
	}

	s.renderContact(c, notes)
	return nil
}

// cmdUpdate prompts per field, showing the current value. Blank input
// keeps the current value.
func (s *Shell) cmdUpdate(id int64) error {
	c, err := s.db.GetContact(id)
	if err != nil {
		return err
	}
	if c == nil {
		s.notFound(id)
		return nil
	}

	fmt.Fprintf(s.out, "\n--- Update Contact: %s ---\n", c.Name)
	fmt.Fprintln(s.out, "(Press Enter to keep current value)")

	var upd store.ContactUpdate
	read := func(label string, current string, dst **string) bool {
		v, ok := s.prompt(fmt.Sprintf("%s [%s]: ", label, current))
		if !ok {
			return false
		}
		if v != "" {
			*dst = &v
		}
		return true
	}

	if !read("Name", c.Name, &upd.Name) ||
		!read("Platform", orNone(c.Platform), &upd.Platform) ||
		!read("Phone", orNone(c.Phone), &upd.Phone) ||
		!read("Status", c.Status, &upd.Status) {
		return nil
	}

	err = s.db.UpdateContact(id, upd)
	switch {
	case errors.Is(err, store.ErrNoFields):
		fmt.Fprintln(s.out, "\nNo changes made.")
		return nil
	case errors.Is(err, store.ErrNotFound):
		s.notFound(id)
		return nil
	case err != nil:
		return err
	}
	fmt.Fprintf(s.out, "\n✓ Contact %d updated successfully.\n", id)
	return nil
}

// cmdDelete asks for explicit confirmation; anything but "yes" leaves
// the store untouched.
func (s *Shell) cmdDelete(id int64) error {
	c, err := s.db.GetContact(id)
	if err != nil {
		return err
	}
	if c == nil {
		s.notFound(id)
		return nil
	}

	if !s.confirm(fmt.Sprintf("Are you sure you want to delete contact %d? (yes/no): ", id)) {
		fmt.Fprintln(s.out, "Deletion cancelled.")
		return nil
	}

	if err := s.db.DeleteContact(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.notFound(id)
			return nil
		}
		return err
	}
	fmt.Fprintf(s.out, "\n✓ Deleted contact: %s\n", c.Name)
	return nil
}

func (s *Shell) cmdNote(id int64, text string) error {
	c, err := s.db.GetContact(id)
	if err != nil {
		return err
	}
	if c == nil {
		s.notFound(id)
		return nil
	}

	if _, err := s.db.AddNote(id, text); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.notFound(id)
			return nil
		}
		return err
	}
	fmt.Fprintf(s.out, "\n✓ Note added to %s.\n", c.Name)
	return nil
}

func (s *Shell) cmdContacted(id int64, date string) error {
	if date == "" {
		date = s.now().Format(datefmt.DateLayout)
	} else if !validDate(date) {
		fmt.Fprintln(s.out, "Invalid date. Please use YYYY-MM-DD.")
		return nil
	}

	if err := s.db.MarkContacted(id, date); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.notFound(id)
			return nil
		}
		return err
	}
	fmt.Fprintf(s.out, "\n✓ Contact %d updated successfully.\n", id)
	fmt.Fprintf(s.out, "  Last contact date set to: %s\n", date)
	return nil
}

func (s *Shell) cmdSearch(term string) error {
	contacts, err := s.db.SearchContacts(term)
	if err != nil {
		return err
	}
	if len(contacts) == 0 {
		fmt.Fprintf(s.out, "\nNo contacts found matching '%s'.\n", term)
		return nil
	}

	fmt.Fprintf(s.out, "\nSearch results for '%s':", term)
	s.renderTable(contacts)
	return nil
}

func (s *Shell) cmdReminders() error {
	threshold := s.now().AddDate(0, 0, -s.staleDays).Format(datefmt.DateLayout)
	contacts, err := s.db.FindStaleContacts(threshold)
	if err != nil {
		return err
	}
	if len(contacts) == 0 {
		fmt.Fprintln(s.out, "\n✓ All active contacts have been contacted recently!")
		return nil
	}

	s.renderReminders(contacts)
	return nil
}

func (s *Shell) cmdStats() error {
	counts, err := s.db.CountByStatus()
	if err != nil {
		return err
	}
	if len(counts) == 0 {
		fmt.Fprintln(s.out, "\nNo contacts yet.")
		return nil
	}

	total := 0
	fmt.Fprintln(s.out, "\nContacts by status:")
	for _, sc := range counts {
		fmt.Fprintf(s.out, "  %-10s %d\n", sc.Status, sc.Count)
		total += sc.Count
	}
	fmt.Fprintf(s.out, "  Total: %d\n", total)
	return nil
}
