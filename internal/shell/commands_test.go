package shell

import (
	"strings"
	"testing"
	"time"

	"github.com/lazypower/sparks/internal/datefmt"
	"github.com/lazypower/sparks/internal/store"
)

func TestAddThenViewEndToEnd(t *testing.T) {
	db := openTestDB(t)

	// add: name, platform, phone, first date, status, initial note —
	// everything optional left blank
	input := "add\nAlex\n\n\n\n\n\nview 1\nquit\n"
	out := runSession(t, db, input)

	if !strings.Contains(out, "✓ Added contact: Alex (ID: 1)") {
		t.Fatalf("add confirmation missing:\n%s", out)
	}
	for _, want := range []string{
		"CONTACT DETAILS - ID: 1",
		"Not specified", // platform and phone
		"Status:            active",
		"Talking For:       Today",
		"Last Contact:      Today",
		"No notes yet.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("view output missing %q:\n%s", want, out)
		}
	}
}

func TestAddWithInitialNote(t *testing.T) {
	db := openTestDB(t)

	input := "add\nSam\nHinge\n\n\ndating\nGreat first date\nview 1\nquit\n"
	out := runSession(t, db, input)

	if !strings.Contains(out, "✓ Note added to Sam.") {
		t.Errorf("initial note confirmation missing:\n%s", out)
	}
	if !strings.Contains(out, "NOTES:") || !strings.Contains(out, "Great first date") {
		t.Errorf("view should list the initial note under NOTES:\n%s", out)
	}
	if !strings.Contains(out, "Platform:          Hinge") {
		t.Errorf("platform not stored:\n%s", out)
	}
}

func TestAddRequiresName(t *testing.T) {
	db := openTestDB(t)

	out := runSession(t, db, "add\n\nquit\n")
	if !strings.Contains(out, "Name is required.") {
		t.Errorf("missing name-required report:\n%s", out)
	}
	if c, _ := db.GetContact(1); c != nil {
		t.Error("contact created despite missing name")
	}
}

func TestAddRejectsBadDate(t *testing.T) {
	db := openTestDB(t)

	out := runSession(t, db, "add\nAlex\n\n\nnot-a-date\nquit\n")
	if !strings.Contains(out, "Invalid date. Please use YYYY-MM-DD.") {
		t.Errorf("missing invalid-date report:\n%s", out)
	}
	if c, _ := db.GetContact(1); c != nil {
		t.Error("contact created despite invalid date")
	}
}

func TestViewNotFound(t *testing.T) {
	out := runSession(t, openTestDB(t), "view 99\nquit\n")
	if !strings.Contains(out, "Contact with ID 99 not found.") {
		t.Errorf("missing not-found report:\n%s", out)
	}
}

func TestUpdateInteractive(t *testing.T) {
	db := openTestDB(t)
	db.CreateContact(store.NewContact{Name: "Alex", Platform: "Tinder"})

	// Change status only; blanks keep current values
	out := runSession(t, db, "update 1\n\n\n\nghosted\nquit\n")
	if !strings.Contains(out, "✓ Contact 1 updated successfully.") {
		t.Fatalf("update confirmation missing:\n%s", out)
	}

	c, _ := db.GetContact(1)
	if c.Status != "ghosted" {
		t.Errorf("Status = %q, want ghosted", c.Status)
	}
	if c.Name != "Alex" || c.Platform == nil || *c.Platform != "Tinder" {
		t.Errorf("blank prompts must keep current values: %+v", c)
	}
}

func TestUpdateNoChanges(t *testing.T) {
	db := openTestDB(t)
	db.CreateContact(store.NewContact{Name: "Alex"})

	out := runSession(t, db, "update 1\n\n\n\n\nquit\n")
	if !strings.Contains(out, "No changes made.") {
		t.Errorf("missing no-changes report:\n%s", out)
	}
}

func TestUpdateShowsCurrentValues(t *testing.T) {
	db := openTestDB(t)
	db.CreateContact(store.NewContact{Name: "Alex", Platform: "Tinder"})

	out := runSession(t, db, "update 1\n\n\n\n\nquit\n")
	if !strings.Contains(out, "Name [Alex]: ") {
		t.Errorf("prompt should show current name:\n%s", out)
	}
	if !strings.Contains(out, "Phone [None]: ") {
		t.Errorf("unset fields should show None:\n%s", out)
	}
}

func TestDeleteConfirmed(t *testing.T) {
	db := openTestDB(t)
	c, _ := db.CreateContact(store.NewContact{Name: "Alex"})
	db.AddNote(c.ID, "soon gone")

	out := runSession(t, db, "delete 1\nyes\nquit\n")
	if !strings.Contains(out, "✓ Deleted contact: Alex") {
		t.Fatalf("delete confirmation missing:\n%s", out)
	}
	if got, _ := db.GetContact(1); got != nil {
		t.Error("contact survived a confirmed delete")
	}
}

func TestDeleteDeclined(t *testing.T) {
	db := openTestDB(t)
	db.CreateContact(store.NewContact{Name: "Alex"})

	out := runSession(t, db, "delete 1\nno\nquit\n")
	if !strings.Contains(out, "Deletion cancelled.") {
		t.Errorf("missing cancellation report:\n%s", out)
	}
	if got, _ := db.GetContact(1); got == nil {
		t.Error("declined delete removed the contact")
	}
}

func TestContactedDefaultsToToday(t *testing.T) {
	db := openTestDB(t)
	db.CreateContact(store.NewContact{Name: "Alex", FirstContact: "2026-01-01"})

	out := runSession(t, db, "contacted 1\nquit\n")

	today := time.Now().Format(datefmt.DateLayout)
	if !strings.Contains(out, "Last contact date set to: "+today) {
		t.Errorf("missing date confirmation:\n%s", out)
	}
	c, _ := db.GetContact(1)
	if c.LastContact == nil || *c.LastContact != today {
		t.Errorf("LastContact = %v, want %q", c.LastContact, today)
	}
}

func TestContactedExplicitDate(t *testing.T) {
	db := openTestDB(t)
	db.CreateContact(store.NewContact{Name: "Alex"})

	runSession(t, db, "contacted 1 2026-08-15\nquit\n")

	c, _ := db.GetContact(1)
	if c.LastContact == nil || *c.LastContact != "2026-08-15" {
		t.Errorf("LastContact = %v, want 2026-08-15", c.LastContact)
	}
}

func TestContactedRejectsBadDate(t *testing.T) {
	db := openTestDB(t)
	db.CreateContact(store.NewContact{Name: "Alex", FirstContact: "2026-01-01"})

	out := runSession(t, db, "contacted 1 someday\nquit\n")
	if !strings.Contains(out, "Invalid date. Please use YYYY-MM-DD.") {
		t.Errorf("missing invalid-date report:\n%s", out)
	}
	c, _ := db.GetContact(1)
	if c.LastContact == nil || *c.LastContact != "2026-01-01" {
		t.Errorf("bad date must not change the stored value, got %v", c.LastContact)
	}
}

func TestListWithFilter(t *testing.T) {
	db := openTestDB(t)
	db.CreateContact(store.NewContact{Name: "Alex", Status: "active"})
	db.CreateContact(store.NewContact{Name: "Sam", Status: "dating"})

	out := runSession(t, db, "list dating\nquit\n")
	if !strings.Contains(out, "Sam") {
		t.Errorf("filtered list missing Sam:\n%s", out)
	}
	if strings.Contains(out, "Alex") {
		t.Errorf("filtered list leaked Alex:\n%s", out)
	}
	if !strings.Contains(out, "Total: 1 contact(s)") {
		t.Errorf("missing total line:\n%s", out)
	}
}

func TestListEmpty(t *testing.T) {
	out := runSession(t, openTestDB(t), "list\nquit\n")
	if !strings.Contains(out, "No contacts found.") {
		t.Errorf("missing empty report:\n%s", out)
	}
}

func TestSearchCommand(t *testing.T) {
	db := openTestDB(t)
	c, _ := db.CreateContact(store.NewContact{Name: "Sam"})
	db.AddNote(c.ID, "we got pizza downtown")
	db.CreateContact(store.NewContact{Name: "Quinn"})

	out := runSession(t, db, "search pizza\nquit\n")
	if !strings.Contains(out, "Search results for 'pizza':") {
		t.Errorf("missing search header:\n%s", out)
	}
	if !strings.Contains(out, "Sam") || strings.Contains(out, "Quinn") {
		t.Errorf("wrong search results:\n%s", out)
	}

	out = runSession(t, db, "search nobody\nquit\n")
	if !strings.Contains(out, "No contacts found matching 'nobody'.") {
		t.Errorf("missing no-match report:\n%s", out)
	}
}

func TestRemindersCommand(t *testing.T) {
	db := openTestDB(t)

	stale, _ := db.CreateContact(store.NewContact{Name: "Stale", Platform: "Bumble"})
	old := time.Now().AddDate(0, 0, -10).Format(datefmt.DateLayout)
	db.MarkContacted(stale.ID, old)

	db.CreateContact(store.NewContact{Name: "Fresh"}) // contacted today

	out := runSession(t, db, "reminders\nquit\n")
	if !strings.Contains(out, "REMINDERS - Contacts to reach out to:") {
		t.Fatalf("missing reminders header:\n%s", out)
	}
	if !strings.Contains(out, "Stale (Bumble)") {
		t.Errorf("stale contact missing:\n%s", out)
	}
	if strings.Contains(out, "Fresh") {
		t.Errorf("fresh contact should not appear:\n%s", out)
	}
}

func TestRemindersAllFresh(t *testing.T) {
	db := openTestDB(t)
	db.CreateContact(store.NewContact{Name: "Fresh"})

	out := runSession(t, db, "reminders\nquit\n")
	if !strings.Contains(out, "All active contacts have been contacted recently!") {
		t.Errorf("missing all-fresh report:\n%s", out)
	}
}

func TestStatsCommand(t *testing.T) {
	db := openTestDB(t)
	db.CreateContact(store.NewContact{Name: "A"})
	db.CreateContact(store.NewContact{Name: "B"})
	db.CreateContact(store.NewContact{Name: "C", Status: "ended"})

	out := runSession(t, db, "stats\nquit\n")
	for _, want := range []string{"Contacts by status:", "active", "ended", "Total: 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q:\n%s", want, out)
		}
	}
}

func TestStatsEmpty(t *testing.T) {
	out := runSession(t, openTestDB(t), "stats\nquit\n")
	if !strings.Contains(out, "No contacts yet.") {
		t.Errorf("missing empty report:\n%s", out)
	}
}
