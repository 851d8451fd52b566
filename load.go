package netrc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

// ParseFile reads and parses the netrc file at path. A missing or
// unreadable file is an I/O error (*fs.PathError); malformed content is a
// *ParseError wrapped with the filename. The two are distinguishable with
// errors.Is/errors.As so callers can tell "no netrc configured" from
// "netrc present but malformed".
func ParseFile(path string) (*Netrc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	nrc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return nrc, nil
}

// Load parses the netrc file at path. An empty path resolves via
// DefaultPath, and in that case a missing file yields an empty store rather
// than an error: absence of credentials is a normal condition. An explicit
// path that does not exist is still an error.
func Load(path string) (*Netrc, error) {
	if path != "" {
		return ParseFile(path)
	}
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	nrc, err := ParseFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(), nil
	}
	return nrc, err
}

// DefaultPath returns the conventional netrc location: the NETRC
// environment variable if set, otherwise .netrc (_netrc on Windows) in the
// user's home directory. Returns ErrNoHomeDir when the fallback is needed
// but no home directory can be resolved.
func DefaultPath() (string, error) {
	if env := os.Getenv("NETRC"); env != "" {
		return env, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoHomeDir, err)
	}
	base := ".netrc"
	if runtime.GOOS == "windows" {
		base = "_netrc"
	}
	return filepath.Join(home, base), nil
}

// Save writes the rendered store to path with 0600 permissions. This is the
// only mutation that touches the filesystem; Set and Remove act on the
// in-memory store alone.
func (n *Netrc) Save(path string) error {
	return os.WriteFile(path, []byte(n.String()), 0o600)
}
