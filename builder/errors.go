// Package: regmap/builder
//
// errors.go: sentinel errors and the SyntaxError carrier.
//
// Error policy:
//   • Every grammar failure matches ErrMalformedGrammar via errors.Is, and
//     additionally matches exactly one specific sentinel below.
//   • Failures are returned as *SyntaxError so callers can report the byte
//     offset of the offending rune.
//   • Build never returns a partial grid together with an error.
//   • Option constructors panic on meaningless arguments; Build never panics.

package builder

import (
	"errors"
	"fmt"
)

// ErrMalformedGrammar is matched by every error caused by bad direction input.
var ErrMalformedGrammar = errors.New("builder: malformed direction grammar")

// ErrUnbalancedGroup indicates ')' with no open group.
var ErrUnbalancedGroup = errors.New("builder: close-group without matching open-group")

// ErrUnclosedGroup indicates input ended while groups were still open.
var ErrUnclosedGroup = errors.New("builder: open-group never closed")

// ErrAlternativeOutsideGroup indicates '|' with no open group to resume from.
var ErrAlternativeOutsideGroup = errors.New("builder: alternative separator outside a group")

// ErrUnexpectedRune indicates a rune outside the direction alphabet.
var ErrUnexpectedRune = errors.New("builder: unexpected rune")

// ErrNestingTooDeep indicates groups nested deeper than WithMaxNesting allows.
var ErrNestingTooDeep = errors.New("builder: groups nested too deeply")

// ErrMissingAnchor indicates WithStrictAnchors was set and '^' or '$' is missing.
var ErrMissingAnchor = errors.New("builder: missing '^' or '$' anchor")

// SyntaxError reports where in the input a grammar error was detected.
type SyntaxError struct {
	Offset int   // byte offset into the input
	Rune   rune  // rune at Offset, or 0 at end of input
	Err    error // one of the specific sentinels above
}

// Error implements error.
func (e *SyntaxError) Error() string {
	if e.Rune == 0 {
		return fmt.Sprintf("%v at offset %d: %v", ErrMalformedGrammar, e.Offset, e.Err)
	}
	return fmt.Sprintf("%v at offset %d (%q): %v", ErrMalformedGrammar, e.Offset, e.Rune, e.Err)
}

// Unwrap exposes both ErrMalformedGrammar and the specific sentinel to errors.Is.
func (e *SyntaxError) Unwrap() []error {
	return []error{ErrMalformedGrammar, e.Err}
}

// syntaxErrorf builds a *SyntaxError for the rune r found at offset.
func syntaxErrorf(offset int, r rune, err error) error {
	return &SyntaxError{Offset: offset, Rune: r, Err: err}
}
