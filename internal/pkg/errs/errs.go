// Package errs is a thin seam over cockroachdb/errors so call sites never
// import it directly. Wrap annotates, Mark attaches a sentinel for
// errors.Is branching without changing the message chain.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark associates markErr with err so errors.Is(err, markErr) holds. A nil
// err degrades to the mark itself.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// StackLines renders the error with its stack trace and returns at most
// maxLines lines, for structured log fields.
func StackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
