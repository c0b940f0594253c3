package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regmap/builder"
	"github.com/katalvlaran/regmap/core"
)

func TestTokenize_Stream(t *testing.T) {
	tokens, err := builder.Tokenize("^N(E|)$\n")
	require.NoError(t, err)

	want := []builder.Token{
		{Kind: builder.TokenMove, Dir: builder.DirNorth, Offset: 1},
		{Kind: builder.TokenOpen, Offset: 2},
		{Kind: builder.TokenMove, Dir: builder.DirEast, Offset: 3},
		{Kind: builder.TokenAlt, Offset: 4},
		{Kind: builder.TokenClose, Offset: 5},
	}
	assert.Equal(t, want, tokens)
}

func TestTokenize_SkipsAnchorsAndWhitespace(t *testing.T) {
	tokens, err := builder.Tokenize(" ^ \t$\r\n")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestTokenize_UnexpectedRune(t *testing.T) {
	_, err := builder.Tokenize("^NEx$")
	require.ErrorIs(t, err, builder.ErrUnexpectedRune)
	require.ErrorIs(t, err, builder.ErrMalformedGrammar)

	var se *builder.SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 3, se.Offset)
	assert.Equal(t, 'x', se.Rune)
	assert.Contains(t, se.Error(), "offset 3")
}

func TestDirection_Offset(t *testing.T) {
	cases := map[builder.Direction]core.Coordinate{
		builder.DirNorth: {X: 0, Y: -1},
		builder.DirSouth: {X: 0, Y: 1},
		builder.DirEast:  {X: 1, Y: 0},
		builder.DirWest:  {X: -1, Y: 0},
		'?':              {},
	}
	for d, want := range cases {
		assert.Equal(t, want, d.Offset(), "direction %c", d)
	}
}

func TestTokenKind_String(t *testing.T) {
	assert.Equal(t, "move", builder.TokenMove.String())
	assert.Equal(t, "open", builder.TokenOpen.String())
	assert.Equal(t, "close", builder.TokenClose.String())
	assert.Equal(t, "alt", builder.TokenAlt.String())
	assert.Equal(t, "TokenKind(0)", builder.TokenKind(0).String())
}
