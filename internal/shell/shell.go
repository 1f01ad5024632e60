// Package shell implements the interactive command loop: one line in,
// one command out, until quit. Operations talk to the store through
// the Shell's reader/writer/clock so tests can drive whole sessions
// with scripted input.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/lazypower/sparks/internal/config"
	"github.com/lazypower/sparks/internal/store"
)

// Shell is the interactive REPL over a contact store.
type Shell struct {
	// Banner controls the welcome header; the CLI enables it only on
	// real terminals so piped input stays scriptable.
	Banner bool

	db        *store.DB
	in        *bufio.Scanner
	out       io.Writer
	now       func() time.Time
	staleDays int
}

// New returns a Shell reading commands from in and printing to out.
func New(db *store.DB, cfg config.Config, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		db:        db,
		in:        bufio.NewScanner(in),
		out:       out,
		now:       time.Now,
		staleDays: cfg.Reminders.StaleDays,
	}
}

// Run reads and executes commands until quit or EOF. Operation errors
// are reported and the loop continues; Run itself only returns once
// the session is over.
func (s *Shell) Run() error {
	if s.Banner {
		s.printBanner()
	}

	for {
		line, ok := s.prompt("\n> ")
		if !ok {
			s.Farewell()
			return nil
		}
		quit, err := s.dispatch(line)
		if err != nil {
			slog.Error("command failed", "line", line, "err", err)
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
		if quit {
			s.Farewell()
			return nil
		}
	}
}

// dispatch parses one input line and routes it. The returned error is
// an unexpected operation failure; validation and not-found outcomes
// are printed by the operations themselves.
func (s *Shell) dispatch(line string) (quit bool, err error) {
	parts := splitArgs(line)
	if len(parts) == 0 {
		return false, nil
	}

	arg := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}

	// Only the command word is case-folded; arguments keep their case
	// so note text and stored platforms survive intact.
	cmd := strings.ToLower(parts[0])

	switch cmd {
	case "quit", "exit", "q":
		return true, nil
	case "help":
		s.printHelp()
	case "list":
		return false, s.cmdList(arg(1), arg(2))
	case "add":
		return false, s.cmdAdd()
	case "view":
		id, ok := s.parseID(arg(1), "Usage: view <id>")
		if !ok {
			return false, nil
		}
		return false, s.cmdView(id)
	case "update":
		id, ok := s.parseID(arg(1), "Usage: update <id>")
		if !ok {
			return false, nil
		}
		return false, s.cmdUpdate(id)
	case "delete":
		id, ok := s.parseID(arg(1), "Usage: delete <id>")
		if !ok {
			return false, nil
		}
		return false, s.cmdDelete(id)
	case "note":
		if arg(2) == "" {
			fmt.Fprintln(s.out, "Usage: note <id> <note text>")
			return false, nil
		}
		id, ok := s.parseID(arg(1), "Usage: note <id> <note text>")
		if !ok {
			return false, nil
		}
		return false, s.cmdNote(id, arg(2))
	case "contacted":
		id, ok := s.parseID(arg(1), "Usage: contacted <id> [date]")
		if !ok {
			return false, nil
		}
		return false, s.cmdContacted(id, arg(2))
	case "search":
		if arg(1) == "" {
			fmt.Fprintln(s.out, "Usage: search <term>")
			return false, nil
		}
		return false, s.cmdSearch(arg(1))
	case "reminders":
		return false, s.cmdReminders()
	case "stats":
		return false, s.cmdStats()
	default:
		fmt.Fprintf(s.out, "Unknown command: %s. Type 'help' for available commands.\n", cmd)
	}
	return false, nil
}

// parseID reports usage for a missing argument and a friendly message
// for a non-numeric one. The loop never crashes on bad ids.
func (s *Shell) parseID(a, usage string) (int64, bool) {
	if a == "" {
		fmt.Fprintln(s.out, usage)
		return 0, false
	}
	id, err := strconv.ParseInt(a, 10, 64)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid ID. Please provide a number.")
		return 0, false
	}
	return id, true
}

// splitArgs tokenizes an input line into at most three parts: command,
// first argument, and the untouched rest of the line. The third part
// keeps embedded whitespace so note text arrives as typed.
func splitArgs(line string) []string {
	parts := make([]string, 0, 3)
	rest := strings.TrimSpace(line)
	for len(parts) < 2 && rest != "" {
		i := strings.IndexFunc(rest, unicode.IsSpace)
		if i < 0 {
			parts = append(parts, rest)
			rest = ""
			break
		}
		parts = append(parts, rest[:i])
		rest = strings.TrimSpace(rest[i:])
	}
	if rest != "" {
		parts = append(parts, rest)
	}
	return parts
}

// Farewell prints the exit message. The CLI also calls this from its
// interrupt handler so Ctrl-C says goodbye too.
func (s *Shell) Farewell() {
	fmt.Fprintln(s.out, "\nGoodbye!")
}

func (s *Shell) printBanner() {
	line := strings.Repeat("=", 60)
	fmt.Fprintln(s.out, line)
	fmt.Fprintln(s.out, "       SPARKS")
	fmt.Fprintln(s.out, "       Track your dating connections")
	fmt.Fprintln(s.out, line)
	fmt.Fprintln(s.out, "  Type 'help' for available commands or 'quit' to exit")
	fmt.Fprintln(s.out, line)
}

func (s *Shell) printHelp() {
	line := strings.Repeat("=", 78)
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, line)
	fmt.Fprintln(s.out, "  SPARKS - COMMANDS")
	fmt.Fprintln(s.out, line)
	fmt.Fprintln(s.out, "  list [status] [platform]   List contacts (optional filters)")
	fmt.Fprintln(s.out, "  add                        Add a new contact (interactive)")
	fmt.Fprintln(s.out, "  view <id>                  Show contact details and notes")
	fmt.Fprintln(s.out, "  update <id>                Update contact fields (interactive)")
	fmt.Fprintln(s.out, "  delete <id>                Delete a contact and its notes")
	fmt.Fprintln(s.out, "  note <id> <text>           Attach a note to a contact")
	fmt.Fprintln(s.out, "  contacted <id> [date]      Mark as contacted (default: today)")
	fmt.Fprintln(s.out, "  search <term>              Search contacts by name or notes")
	fmt.Fprintln(s.out, "  reminders                  Active contacts going stale")
	fmt.Fprintln(s.out, "  stats                      Contact counts by status")
	fmt.Fprintln(s.out, "  help                       Show this message")
	fmt.Fprintln(s.out, "  quit                       Exit")
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "  Statuses: active, dating, ghosted, ended")
	fmt.Fprintln(s.out, "  Platforms: Tinder, Bumble, Hinge, OkCupid, etc.")
	fmt.Fprintln(s.out, line)
}
