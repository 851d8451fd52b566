// Package netrc parses and renders the .netrc credential file format used
// by ftp, curl, and many HTTP tools to store per-host login/password/account
// triples.
//
// The package is structured in three layers:
//
//   - Lexer: splits raw bytes into whitespace-delimited tokens, honoring
//     double-quoted values, backslash escapes, and # comments.
//   - Parser: a small state machine over the token stream that builds the
//     store from machine, default, and macdef blocks.
//   - Netrc: the ordered store with exact-then-default lookup, in-place
//     mutation, and round-trip serialization.
//
// Usage:
//
//	nrc, err := netrc.Load("") // NETRC env var, then ~/.netrc
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if e := nrc.Find("api.example.com"); e != nil {
//	    fmt.Println(e.Login, e.Password)
//	}
//
// Lookup falls back to the default block when no machine block matches the
// host. Entries keep their first-seen order, so a parsed file re-renders in
// the same block order. The one lossy case is macdef: macro bodies are kept
// on the store for inspection but are not re-emitted by String.
//
// The httpauth subpackage attaches matching credentials to outgoing HTTP
// requests as Basic Auth headers.
package netrc
