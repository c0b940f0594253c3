package builder

import (
	"strings"

	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/regmap/core"
)

// fork is one entry of the branch stack: the cursor when a group opened and
// the offset of its '(' for error reporting.
type fork struct {
	at     core.Coordinate
	offset int
}

// constructor holds the mutable state of a single Build run.
type constructor struct {
	cfg      builderConfig
	grid     *core.Grid
	cursor   core.Coordinate
	branches *stack.Stack[fork]
}

// Build parses input and constructs the facility it describes, then fills the
// walls and returns the frozen grid.
//
// The cursor starts at the origin. A move marks the door one step away and the
// room two steps away and advances the cursor; '(' pushes the cursor; '|'
// resets the cursor to the innermost fork without popping; ')' pops the fork
// and resumes from it. Anchors and whitespace are ignored.
//
// Empty input yields the origin-only facility. On any grammar error Build
// returns (nil, *SyntaxError) and no grid.
// Complexity: O(len(input) + W·H).
func Build(input string, opts ...BuilderOption) (*core.Grid, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.strictAnchors {
		if err := checkAnchors(input); err != nil {
			return nil, err
		}
	}

	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}

	c := &constructor{
		cfg:      cfg,
		grid:     core.NewGrid(),
		cursor:   core.Origin,
		branches: stack.New[fork](),
	}
	for _, tok := range tokens {
		if err = c.apply(input, tok); err != nil {
			return nil, err
		}
	}
	if c.branches.Size() > 0 {
		open := c.branches.Peek()
		return nil, syntaxErrorf(open.offset, '(', ErrUnclosedGroup)
	}

	c.grid.FillWalls()

	return c.grid, nil
}

// apply dispatches one token.
func (c *constructor) apply(input string, tok Token) error {
	switch tok.Kind {
	case TokenMove:
		return c.move(tok.Dir)
	case TokenOpen:
		if c.cfg.maxNesting > 0 && c.branches.Size() >= c.cfg.maxNesting {
			return syntaxErrorf(tok.Offset, '(', ErrNestingTooDeep)
		}
		c.branches.Push(fork{at: c.cursor, offset: tok.Offset})
	case TokenClose:
		if c.branches.Size() == 0 {
			return syntaxErrorf(tok.Offset, ')', ErrUnbalancedGroup)
		}
		c.cursor = c.branches.Pop().at
	case TokenAlt:
		if c.branches.Size() == 0 {
			return syntaxErrorf(tok.Offset, '|', ErrAlternativeOutsideGroup)
		}
		c.cursor = c.branches.Peek().at
	default:
		return syntaxErrorf(tok.Offset, rune(input[tok.Offset]), ErrUnexpectedRune)
	}
	return nil
}

// move marks the door and room in direction d and advances the cursor.
func (c *constructor) move(d Direction) error {
	step := d.Offset()
	door := c.cursor.Add(step)
	room := c.cursor.Add(step.Scale(2))
	if err := c.grid.SetDoor(door); err != nil {
		return err
	}
	if err := c.grid.SetRoom(room); err != nil {
		return err
	}
	c.cursor = room
	c.cfg.onStep(door, room)

	return nil
}

// checkAnchors enforces WithStrictAnchors.
func checkAnchors(input string) error {
	trimmed := strings.TrimSpace(input)
	if !strings.HasPrefix(trimmed, string(anchorStart)) {
		return syntaxErrorf(strings.Index(input, trimmed), 0, ErrMissingAnchor)
	}
	if len(trimmed) < 2 || !strings.HasSuffix(trimmed, string(anchorEnd)) {
		return syntaxErrorf(strings.Index(input, trimmed)+len(trimmed), 0, ErrMissingAnchor)
	}
	return nil
}
