package netrc

import (
	"fmt"
	"strings"
)

// Lexer tokenizes netrc source text into a stream of tokens.
type Lexer struct {
	src    []byte
	pos    int // current byte offset
	line   int // current line (1-based)
	col    int // current column (1-based)
	peeked *Token
}

// NewLexer creates a new Lexer for the given source bytes.
func NewLexer(src []byte) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (Token, error) {
	if l.peeked != nil {
		return *l.peeked, nil
	}
	tok, err := l.scan()
	if err != nil {
		return Token{}, err
	}
	l.peeked = &tok
	return tok, nil
}

// Next returns the next token and advances the lexer.
func (l *Lexer) Next() (Token, error) {
	if l.peeked != nil {
		tok := *l.peeked
		l.peeked = nil
		return tok, nil
	}
	return l.scan()
}

// ReadLine consumes the remainder of the current line, not including the
// newline, and returns it. The second return value is false when the lexer
// was already at end of input. Used for macdef bodies, which are collected
// verbatim rather than tokenized.
func (l *Lexer) ReadLine() (string, bool) {
	l.peeked = nil
	if l.atEnd() {
		return "", false
	}
	start := l.pos
	for !l.atEnd() && l.peek() != '\n' {
		l.advance()
	}
	line := string(l.src[start:l.pos])
	if !l.atEnd() {
		l.advance() // consume the newline
	}
	return strings.TrimSuffix(line, "\r"), true
}

func (l *Lexer) currentPos() Position {
	return Position{Line: l.line, Column: l.col, Offset: l.pos}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) advance() byte {
	ch := l.src[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

// skipWhitespaceAndComments consumes whitespace runs and # comments.
// A # outside quotes discards everything up to the end of the line.
func (l *Lexer) skipWhitespaceAndComments() {
	for !l.atEnd() {
		ch := l.peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			l.advance()
		case ch == '#':
			for !l.atEnd() && l.peek() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *Lexer) scan() (Token, error) {
	l.skipWhitespaceAndComments()

	if l.atEnd() {
		return Token{Kind: TokenEOF, Pos: l.currentPos()}, nil
	}

	if l.peek() == '"' {
		return l.scanQuoted()
	}
	return l.scanWord()
}

// scanQuoted reads a double-quoted word. \" and \\ are the only recognized
// escape sequences.
func (l *Lexer) scanQuoted() (Token, error) {
	pos := l.currentPos()
	l.advance() // consume opening "

	var sb strings.Builder
	for {
		if l.atEnd() {
			return Token{}, &ParseError{
				Err:     ErrUnterminatedQuote,
				Message: "missing closing '\"'",
				Pos:     pos,
			}
		}
		ch := l.advance()
		if ch == '"' {
			return Token{Kind: TokenValue, Literal: sb.String(), Pos: pos}, nil
		}
		if ch == '\\' {
			if l.atEnd() {
				return Token{}, &ParseError{
					Err:     ErrUnterminatedQuote,
					Message: "missing closing '\"'",
					Pos:     pos,
				}
			}
			escPos := l.currentPos()
			esc := l.advance()
			switch esc {
			case '"', '\\':
				sb.WriteByte(esc)
			default:
				return Token{}, &ParseError{
					Err:     ErrInvalidEscape,
					Message: fmt.Sprintf("unknown escape '\\%c' in quoted value", esc),
					Pos:     escPos,
				}
			}
			continue
		}
		sb.WriteByte(ch)
	}
}

// scanWord reads a bare word up to the next whitespace or comment. A
// backslash escapes the following byte literally, so whitespace and quotes
// can appear in unquoted values.
func (l *Lexer) scanWord() (Token, error) {
	pos := l.currentPos()

	var sb strings.Builder
	escaped := false
	for !l.atEnd() {
		ch := l.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '#' {
			break
		}
		l.advance()
		if ch == '\\' {
			if l.atEnd() {
				return Token{}, &ParseError{
					Err:     ErrInvalidEscape,
					Message: "trailing backslash",
					Pos:     pos,
				}
			}
			sb.WriteByte(l.advance())
			escaped = true
			continue
		}
		sb.WriteByte(ch)
	}

	literal := sb.String()
	// An escaped word is always a plain value, even if it spells a keyword.
	if kind, ok := keywords[literal]; ok && !escaped {
		return Token{Kind: kind, Literal: literal, Pos: pos}, nil
	}
	return Token{Kind: TokenValue, Literal: literal, Pos: pos}, nil
}
