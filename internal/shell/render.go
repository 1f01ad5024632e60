package shell

import (
	"fmt"
	"strings"
	"time"

	"github.com/lazypower/sparks/internal/datefmt"
	"github.com/lazypower/sparks/internal/store"
)

const timestampLayout = "2006-01-02 15:04:05"

// renderTable prints the shared list/search table.
func (s *Shell) renderTable(contacts []store.Contact) {
	now := s.now()
	line := strings.Repeat("=", 80)

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, line)
	fmt.Fprintf(s.out, "%-4s %-20s %-12s %-15s %-15s %-10s\n",
		"ID", "Name", "Platform", "Talking For", "Last Contact", "Status")
	fmt.Fprintln(s.out, line)

	for _, c := range contacts {
		fmt.Fprintf(s.out, "%-4d %-20s %-12s %-15s %-15s %-10s\n",
			c.ID, c.Name, orDash(c.Platform),
			s.durationPhrase(c, now), s.lastContactPhrase(c, now), c.Status)
	}
	fmt.Fprintln(s.out, line)
}

// renderContact prints the detail panel and the contact's notes.
func (s *Shell) renderContact(c *store.Contact, notes []store.Note) {
	now := s.now()
	line := strings.Repeat("=", 60)
	thin := strings.Repeat("-", 60)

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, line)
	fmt.Fprintf(s.out, "  CONTACT DETAILS - ID: %d\n", c.ID)
	fmt.Fprintln(s.out, line)
	fmt.Fprintf(s.out, "  Name:              %s\n", c.Name)
	fmt.Fprintf(s.out, "  Platform:          %s\n", orNotSpecified(c.Platform))
	fmt.Fprintf(s.out, "  Phone:             %s\n", orNotSpecified(c.Phone))
	fmt.Fprintf(s.out, "  Status:            %s\n", c.Status)
	fmt.Fprintln(s.out, thin)
	fmt.Fprintf(s.out, "  First Contact:     %s\n", c.FirstContact)
	fmt.Fprintf(s.out, "  Talking For:       %s\n", s.durationPhrase(*c, now))
	fmt.Fprintf(s.out, "  Last Contact:      %s\n", s.lastContactPhrase(*c, now))
	fmt.Fprintln(s.out, line)

	if len(notes) == 0 {
		fmt.Fprintln(s.out, "\n  No notes yet. Use 'note' command to add notes.")
	} else {
		fmt.Fprintln(s.out, "\n  NOTES:")
		fmt.Fprintln(s.out, thin)
		for _, n := range notes {
			fmt.Fprintf(s.out, "  [%s]\n", time.UnixMilli(n.CreatedAt).Format(timestampLayout))
			fmt.Fprintf(s.out, "  %s\n\n", n.Body)
		}
	}
	fmt.Fprintln(s.out, line)
}

func (s *Shell) renderReminders(contacts []store.Contact) {
	now := s.now()
	line := strings.Repeat("=", 60)

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, line)
	fmt.Fprintln(s.out, "  REMINDERS - Contacts to reach out to:")
	fmt.Fprintln(s.out, line)

	for _, c := range contacts {
		platform := "Unknown platform"
		if c.Platform != nil {
			platform = *c.Platform
		}
		fmt.Fprintf(s.out, "  • %s (%s) - Last contact: %s\n",
			c.Name, platform, s.lastContactPhrase(c, now))
	}
	fmt.Fprintln(s.out, line)
}

// durationPhrase renders how long a contact has been on the books.
// A stored date that fails to parse is shown raw rather than dropped.
func (s *Shell) durationPhrase(c store.Contact, now time.Time) string {
	t, err := time.Parse(datefmt.DateLayout, c.FirstContact)
	if err != nil {
		return c.FirstContact
	}
	return datefmt.Duration(t, now)
}

func (s *Shell) lastContactPhrase(c store.Contact, now time.Time) string {
	if c.LastContact == nil {
		return datefmt.LastContact(nil, now)
	}
	t, err := time.Parse(datefmt.DateLayout, *c.LastContact)
	if err != nil {
		return *c.LastContact
	}
	return datefmt.LastContact(&t, now)
}

func orDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

func orNone(v *string) string {
	if v == nil || *v == "" {
		return "None"
	}
	return *v
}

func orNotSpecified(v *string) string {
	if v == nil || *v == "" {
		return "Not specified"
	}
	return *v
}
