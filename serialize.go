package netrc

import (
	"io"
	"strings"
)

// String renders the store as netrc text: one block per machine entry in
// first-seen order, the default block last, field lines tab-indented in the
// fixed order login, account, password. Values that contain whitespace, a
// comment character, a quote, or a backslash are quoted and escaped so that
// re-parsing the output yields an equal store.
//
// macdef bodies are not rendered; a store that was parsed from text
// containing macros loses them on round-trip.
func (n *Netrc) String() string {
	var sb strings.Builder
	for _, host := range n.order {
		writeBlock(&sb, "machine "+quoteToken(host), n.hosts[host])
	}
	if n.def != nil {
		writeBlock(&sb, "default", n.def)
	}
	return sb.String()
}

// WriteTo writes the rendered store to w, implementing io.WriterTo.
func (n *Netrc) WriteTo(w io.Writer) (int64, error) {
	m, err := io.WriteString(w, n.String())
	return int64(m), err
}

func writeBlock(sb *strings.Builder, header string, e *Entry) {
	sb.WriteString(header)
	sb.WriteByte('\n')
	writeField(sb, "login", e.Login)
	writeField(sb, "account", e.Account)
	writeField(sb, "password", e.Password)
}

func writeField(sb *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	sb.WriteByte('\t')
	sb.WriteString(name)
	sb.WriteByte(' ')
	sb.WriteString(quoteToken(value))
	sb.WriteByte('\n')
}

// quoteToken returns s as a single netrc token: unchanged when it lexes
// cleanly as a bare word, otherwise double-quoted with \" and \\ escaping.
func quoteToken(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\r\n#\"\\") {
		return s
	}
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"', '\\':
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
	return sb.String()
}
