package builder

import (
	"fmt"

	"github.com/katalvlaran/regmap/core"
)

// TokenKind classifies one token of the direction grammar.
type TokenKind uint8

const (
	// TokenMove is one of N, S, E, W.
	TokenMove TokenKind = iota + 1
	// TokenOpen is '(' and marks a fork point.
	TokenOpen
	// TokenClose is ')' and returns to the fork point.
	TokenClose
	// TokenAlt is '|' and starts the next alternative from the fork point.
	TokenAlt
)

// String returns a short name for k.
func (k TokenKind) String() string {
	switch k {
	case TokenMove:
		return "move"
	case TokenOpen:
		return "open"
	case TokenClose:
		return "close"
	case TokenAlt:
		return "alt"
	}
	return fmt.Sprintf("TokenKind(%d)", uint8(k))
}

// Direction is one of the four compass letters.
type Direction byte

const (
	DirNorth Direction = 'N'
	DirSouth Direction = 'S'
	DirEast  Direction = 'E'
	DirWest  Direction = 'W'
)

// Offset returns the unit step of d; y grows southward.
func (d Direction) Offset() core.Coordinate {
	switch d {
	case DirNorth:
		return core.North
	case DirSouth:
		return core.South
	case DirEast:
		return core.East
	case DirWest:
		return core.West
	}
	return core.Coordinate{}
}

// Token is one lexical unit together with its byte offset in the input.
type Token struct {
	Kind   TokenKind
	Dir    Direction // set only for TokenMove
	Offset int
}

// Runes that carry no token: anchors and whitespace.
const (
	anchorStart = '^'
	anchorEnd   = '$'
)

// Tokenize converts input into the linear token stream consumed by Build.
// Anchors and whitespace are skipped; any other rune outside the alphabet
// yields a *SyntaxError matching ErrUnexpectedRune.
// Complexity: O(len(input)).
func Tokenize(input string) ([]Token, error) {
	tokens := make([]Token, 0, len(input))
	for i, r := range input {
		switch r {
		case 'N', 'S', 'E', 'W':
			tokens = append(tokens, Token{Kind: TokenMove, Dir: Direction(r), Offset: i})
		case '(':
			tokens = append(tokens, Token{Kind: TokenOpen, Offset: i})
		case ')':
			tokens = append(tokens, Token{Kind: TokenClose, Offset: i})
		case '|':
			tokens = append(tokens, Token{Kind: TokenAlt, Offset: i})
		case anchorStart, anchorEnd, ' ', '\t', '\r', '\n':
		default:
			return nil, syntaxErrorf(i, r, ErrUnexpectedRune)
		}
	}
	return tokens, nil
}
