package shell

import (
	"fmt"
	"strings"
	"time"

	"github.com/lazypower/sparks/internal/datefmt"
)

// prompt writes a label and reads one trimmed line. ok is false once
// input is exhausted, which ends the session.
func (s *Shell) prompt(label string) (value string, ok bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// promptDate reads an optional YYYY-MM-DD value. Blank input is
// returned as-is; anything else must parse.
func (s *Shell) promptDate(label string) (value string, ok bool) {
	v, ok := s.prompt(label)
	if !ok || v == "" {
		return v, ok
	}
	if !validDate(v) {
		fmt.Fprintln(s.out, "Invalid date. Please use YYYY-MM-DD.")
		return "", false
	}
	return v, true
}

// confirm reads a yes/no answer; only a literal "yes" counts.
func (s *Shell) confirm(label string) bool {
	v, ok := s.prompt(label)
	return ok && strings.EqualFold(v, "yes")
}

func validDate(v string) bool {
	_, err := time.Parse(datefmt.DateLayout, v)
	return err == nil
}
