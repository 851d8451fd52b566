package netrc

import (
	"fmt"
	"strings"
)

// Parse parses netrc source text and returns the credential store. The
// first malformed construct aborts the parse. A later machine block for a
// hostname seen earlier merges into the existing entry, and a repeated
// field within a block overwrites the prior value (last-write-wins).
func Parse(src []byte) (*Netrc, error) {
	return parse(src, false)
}

// ParseStrict is Parse with an additional check: a second default block is
// rejected with ErrDuplicateDefault instead of re-opening the default scope.
func ParseStrict(src []byte) (*Netrc, error) {
	return parse(src, true)
}

func parse(src []byte, strict bool) (*Netrc, error) {
	p := &parser{
		lex:    NewLexer(src),
		nrc:    New(),
		strict: strict,
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.nrc, nil
}

type parser struct {
	lex        *Lexer
	nrc        *Netrc
	strict     bool
	sawDefault bool
}

// run drives the top-level state machine: each iteration consumes one
// machine, default, or macdef block.
func (p *parser) run() error {
	for {
		tok, err := p.lex.Next()
		if err != nil {
			return err
		}
		switch tok.Kind {
		case TokenEOF:
			return nil

		case TokenMachine:
			host, err := p.value(tok)
			if err != nil {
				return err
			}
			if err := p.parseEntry(p.nrc.ensure(host)); err != nil {
				return err
			}

		case TokenDefault:
			if p.sawDefault && p.strict {
				return &ParseError{
					Err:     ErrDuplicateDefault,
					Message: "default block defined twice",
					Pos:     tok.Pos,
				}
			}
			p.sawDefault = true
			if p.nrc.def == nil {
				p.nrc.def = &Entry{}
			}
			if err := p.parseEntry(p.nrc.def); err != nil {
				return err
			}

		case TokenMacdef:
			name, err := p.value(tok)
			if err != nil {
				return err
			}
			p.nrc.Macros[name] = p.macroBody()

		default:
			return &ParseError{
				Err:     ErrMalformedEntry,
				Message: fmt.Sprintf("unexpected %s %q at top level", tok.Kind, tok.Literal),
				Pos:     tok.Pos,
			}
		}
	}
}

// parseEntry fills e from field tokens until the next block header or EOF.
// The header token is left in the stream for the top-level loop.
func (p *parser) parseEntry(e *Entry) error {
	for {
		tok, err := p.lex.Peek()
		if err != nil {
			return err
		}
		switch tok.Kind {
		case TokenEOF, TokenMachine, TokenDefault, TokenMacdef:
			return nil

		case TokenLogin, TokenPassword, TokenAccount:
			if _, err := p.lex.Next(); err != nil {
				return err
			}
			v, err := p.value(tok)
			if err != nil {
				return err
			}
			switch tok.Kind {
			case TokenLogin:
				e.Login = v
			case TokenPassword:
				e.Password = v
			case TokenAccount:
				e.Account = v
			}

		default:
			return &ParseError{
				Err:     ErrMalformedEntry,
				Message: fmt.Sprintf("value %q without a preceding keyword", tok.Literal),
				Pos:     tok.Pos,
			}
		}
	}
}

// value consumes the value token following the keyword kw. Any non-EOF
// token serves: the grammar is positional, so a value may spell a keyword.
func (p *parser) value(kw Token) (string, error) {
	tok, err := p.lex.Next()
	if err != nil {
		return "", err
	}
	if tok.Kind == TokenEOF {
		return "", &ParseError{
			Err:     ErrMalformedEntry,
			Message: fmt.Sprintf("missing value after %q", kw.Literal),
			Pos:     tok.Pos,
		}
	}
	return tok.Literal, nil
}

// macroBody collects the lines of a macdef body: the remainder of the name
// line is discarded, then lines accumulate verbatim until a blank line or
// end of input. The content is not otherwise interpreted.
func (p *parser) macroBody() []string {
	p.lex.ReadLine() // rest of the "macdef <name>" line
	var lines []string
	for {
		line, ok := p.lex.ReadLine()
		if !ok || strings.TrimSpace(line) == "" {
			return lines
		}
		lines = append(lines, line)
	}
}
