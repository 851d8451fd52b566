package netrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectTokens(t *testing.T, src string) []Token {
	t.Helper()
	lex := NewLexer([]byte(src))
	var tokens []Token
	for {
		tok, err := lex.Next()
		require.NoError(t, err)
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			break
		}
	}
	return tokens
}

func TestLexerKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
	}{
		{"machine", TokenMachine},
		{"default", TokenDefault},
		{"login", TokenLogin},
		{"user", TokenLogin},
		{"password", TokenPassword},
		{"account", TokenAccount},
		{"macdef", TokenMacdef},
	}
	for _, tt := range tests {
		tokens := collectTokens(t, tt.input)
		require.Len(t, tokens, 2, "input: %s", tt.input)
		assert.Equal(t, tt.kind, tokens[0].Kind, "input: %s", tt.input)
	}
}

func TestLexerKeywordsAreCaseSensitive(t *testing.T) {
	tokens := collectTokens(t, "Machine LOGIN")
	require.Len(t, tokens, 3)
	assert.Equal(t, TokenValue, tokens[0].Kind)
	assert.Equal(t, TokenValue, tokens[1].Kind)
}

func TestLexerBareValues(t *testing.T) {
	tokens := collectTokens(t, "example.com s3cr3t!")
	require.Len(t, tokens, 3)
	assert.Equal(t, TokenValue, tokens[0].Kind)
	assert.Equal(t, "example.com", tokens[0].Literal)
	assert.Equal(t, "s3cr3t!", tokens[1].Literal)
}

func TestLexerWhitespaceRuns(t *testing.T) {
	tokens := collectTokens(t, "a \t\r\n\n  b")
	require.Len(t, tokens, 3)
	assert.Equal(t, "a", tokens[0].Literal)
	assert.Equal(t, "b", tokens[1].Literal)
}

func TestLexerComments(t *testing.T) {
	tokens := collectTokens(t, "alpha # trailing machine login\nbeta")
	require.Len(t, tokens, 3)
	assert.Equal(t, "alpha", tokens[0].Literal)
	assert.Equal(t, "beta", tokens[1].Literal)
}

func TestLexerCommentTerminatesWord(t *testing.T) {
	tokens := collectTokens(t, "abc#def\nxyz")
	require.Len(t, tokens, 3)
	assert.Equal(t, "abc", tokens[0].Literal)
	assert.Equal(t, "xyz", tokens[1].Literal)
}

func TestLexerQuotedValues(t *testing.T) {
	tests := []struct {
		input   string
		literal string
	}{
		{`"hello"`, "hello"},
		{`""`, ""},
		{`"has space"`, "has space"},
		{`"has#hash"`, "has#hash"},
		{`"tab	inside"`, "tab\tinside"},
		{`"esc\"quote"`, `esc"quote`},
		{`"back\\slash"`, `back\slash`},
	}
	for _, tt := range tests {
		tokens := collectTokens(t, tt.input)
		require.Len(t, tokens, 2, "input: %s", tt.input)
		assert.Equal(t, TokenValue, tokens[0].Kind, "input: %s", tt.input)
		assert.Equal(t, tt.literal, tokens[0].Literal, "input: %s", tt.input)
	}
}

func TestLexerQuotedKeywordIsValue(t *testing.T) {
	tokens := collectTokens(t, `"machine"`)
	require.Len(t, tokens, 2)
	assert.Equal(t, TokenValue, tokens[0].Kind)
	assert.Equal(t, "machine", tokens[0].Literal)
}

func TestLexerEscapedKeywordIsValue(t *testing.T) {
	tokens := collectTokens(t, `\machine`)
	require.Len(t, tokens, 2)
	assert.Equal(t, TokenValue, tokens[0].Kind)
	assert.Equal(t, "machine", tokens[0].Literal)
}

func TestLexerBareWordEscapes(t *testing.T) {
	tokens := collectTokens(t, `pa\ ss \"word`)
	require.Len(t, tokens, 3)
	assert.Equal(t, "pa ss", tokens[0].Literal)
	assert.Equal(t, `"word`, tokens[1].Literal)
}

func TestLexerUnterminatedQuote(t *testing.T) {
	lex := NewLexer([]byte(`login "never closed`))
	_, err := lex.Next()
	require.NoError(t, err)
	_, err = lex.Next()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnterminatedQuote)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Pos.Line)
	assert.Equal(t, 7, perr.Pos.Column)
}

func TestLexerUnterminatedQuoteAtEscape(t *testing.T) {
	lex := NewLexer([]byte(`"ends with backslash\`))
	_, err := lex.Next()
	assert.ErrorIs(t, err, ErrUnterminatedQuote)
}

func TestLexerInvalidEscape(t *testing.T) {
	lex := NewLexer([]byte(`"bad\nescape"`))
	_, err := lex.Next()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEscape)
}

func TestLexerTrailingBackslash(t *testing.T) {
	lex := NewLexer([]byte(`word\`))
	_, err := lex.Next()
	assert.ErrorIs(t, err, ErrInvalidEscape)
}

func TestLexerPositions(t *testing.T) {
	tokens := collectTokens(t, "machine example.com\n  login alice")
	require.Len(t, tokens, 5)

	assert.Equal(t, Position{Line: 1, Column: 1, Offset: 0}, tokens[0].Pos)
	assert.Equal(t, Position{Line: 1, Column: 9, Offset: 8}, tokens[1].Pos)
	assert.Equal(t, Position{Line: 2, Column: 3, Offset: 22}, tokens[2].Pos)
	assert.Equal(t, Position{Line: 2, Column: 9, Offset: 28}, tokens[3].Pos)
}

func TestLexerPeekDoesNotConsume(t *testing.T) {
	lex := NewLexer([]byte("machine h"))
	p1, err := lex.Peek()
	require.NoError(t, err)
	p2, err := lex.Peek()
	require.NoError(t, err)
	assert.Equal(t, p1, p2)

	tok, err := lex.Next()
	require.NoError(t, err)
	assert.Equal(t, p1, tok)
}

func TestLexerReadLine(t *testing.T) {
	lex := NewLexer([]byte("first line\r\nsecond\nlast"))
	line, ok := lex.ReadLine()
	require.True(t, ok)
	assert.Equal(t, "first line", line)

	line, ok = lex.ReadLine()
	require.True(t, ok)
	assert.Equal(t, "second", line)

	line, ok = lex.ReadLine()
	require.True(t, ok)
	assert.Equal(t, "last", line)

	_, ok = lex.ReadLine()
	assert.False(t, ok)
}

func TestLexerEmptyInput(t *testing.T) {
	tokens := collectTokens(t, "")
	require.Len(t, tokens, 1)
	assert.Equal(t, TokenEOF, tokens[0].Kind)

	tokens = collectTokens(t, "   \n\t # only a comment\n")
	require.Len(t, tokens, 1)
	assert.Equal(t, TokenEOF, tokens[0].Kind)
}
