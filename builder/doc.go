// Package builder turns a direction string into a finished facility grid.
//
// The grammar is a tiny regular language over the alphabet N, S, E, W, '(',
// '|' and ')', conventionally anchored by '^' and '$':
//
//	^ENWWW(NEEE|SSE(EE|N))$
//
// Parsing and construction happen in one pass over the token stream; no syntax
// tree is materialized. A single cursor walks the plane while a branch stack
// remembers the fork point of every open group:
//
//	N/S/E/W  mark the door one step away and the room two steps away, advance
//	(        push the cursor
//	|        reset the cursor to the top of the stack (no pop)
//	)        pop the stack into the cursor
//
// Once the input is exhausted the branch stack must be empty; Build then fills
// the walls (core.Grid.FillWalls) and returns the frozen grid.
//
// Options:
//
//   - WithMaxNesting(n):  reject groups nested deeper than n.
//   - WithStrictAnchors(): require '^' first and '$' last.
//   - WithOnStep(fn):      observe every door/room pair as it is laid down.
//
// Errors:
//
//	All grammar failures are *SyntaxError values matching ErrMalformedGrammar and
//	one of ErrUnbalancedGroup, ErrUnclosedGroup, ErrAlternativeOutsideGroup,
//	ErrUnexpectedRune, ErrNestingTooDeep or ErrMissingAnchor.
//
// Complexity: O(len(input)) for parsing plus O(W·H) for the wall fill.
package builder
