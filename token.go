package netrc

// Position tracks a source location for error messages.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset into source
}

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	TokenEOF   TokenKind = iota
	TokenValue           // bare or quoted word that is not a keyword

	// Keywords (bare word text checked against the keyword map;
	// quoted words are always TokenValue)
	TokenMachine  // machine
	TokenDefault  // default
	TokenLogin    // login (also the legacy alias "user")
	TokenPassword // password
	TokenAccount  // account
	TokenMacdef   // macdef
)

var tokenNames = map[TokenKind]string{
	TokenEOF:      "EOF",
	TokenValue:    "value",
	TokenMachine:  "'machine'",
	TokenDefault:  "'default'",
	TokenLogin:    "'login'",
	TokenPassword: "'password'",
	TokenAccount:  "'account'",
	TokenMacdef:   "'macdef'",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Kind    TokenKind
	Literal string // text content (decoded for quoted words, raw for others)
	Pos     Position
}

// keywords maps keyword strings to their token kinds. "user" is a legacy
// alias for "login" accepted on input but never emitted on output.
var keywords = map[string]TokenKind{
	"machine":  TokenMachine,
	"default":  TokenDefault,
	"login":    TokenLogin,
	"user":     TokenLogin,
	"password": TokenPassword,
	"account":  TokenAccount,
	"macdef":   TokenMacdef,
}
