package netrc

// Entry holds the credential fields of one machine block. An empty string
// means the field was not set; the serializer emits only non-empty fields.
type Entry struct {
	Login    string
	Account  string
	Password string
}

// IsZero reports whether no field of the entry is set.
func (e Entry) IsZero() bool { return e == Entry{} }

// Netrc is an ordered credential store: machine entries keyed by hostname
// plus an optional default fallback. The zero value is not usable; construct
// with New or one of the parse functions.
//
// The store is a plain in-memory value with no internal locking. Share it
// read-only across goroutines, or guard mutation with your own lock.
type Netrc struct {
	hosts map[string]*Entry
	order []string // hostnames in first-seen order
	def   *Entry

	// Macros holds macdef bodies by macro name, one line per element.
	// They are retained for inspection only: String does not re-emit them.
	Macros map[string][]string
}

// New returns an empty store.
func New() *Netrc {
	return &Netrc{
		hosts:  make(map[string]*Entry),
		Macros: make(map[string][]string),
	}
}

// Find returns the entry for host, falling back to the default entry when
// no exact match exists. Returns nil when neither is present. This fallback
// order is the lookup contract consumers such as httpauth depend on.
//
// The returned entry is owned by the store; use Set to modify it.
func (n *Netrc) Find(host string) *Entry {
	if e, ok := n.hosts[host]; ok {
		return e
	}
	return n.def
}

// Machine returns the exact entry for host with no default fallback, or nil.
func (n *Netrc) Machine(host string) *Entry {
	return n.hosts[host]
}

// Default returns the default fallback entry, or nil if none was defined.
func (n *Netrc) Default() *Entry { return n.def }

// SetDefault installs e as the default fallback entry.
func (n *Netrc) SetDefault(e Entry) { n.def = &e }

// ClearDefault removes the default fallback entry.
func (n *Netrc) ClearDefault() { n.def = nil }

// Set inserts or overwrites the entry for host. A host already in the store
// keeps its original position; a new host is appended.
func (n *Netrc) Set(host string, e Entry) {
	if _, ok := n.hosts[host]; !ok {
		n.order = append(n.order, host)
	}
	n.hosts[host] = &e
}

// Remove deletes the entry for host. Returns false if the host was absent.
func (n *Netrc) Remove(host string) bool {
	if _, ok := n.hosts[host]; !ok {
		return false
	}
	delete(n.hosts, host)
	for i, h := range n.order {
		if h == host {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}
	return true
}

// Hosts returns the hostnames in first-seen order.
func (n *Netrc) Hosts() []string {
	out := make([]string, len(n.order))
	copy(out, n.order)
	return out
}

// Len returns the number of machine entries, not counting the default.
func (n *Netrc) Len() int { return len(n.hosts) }

// ensure returns the entry for host, creating and appending it if missing.
func (n *Netrc) ensure(host string) *Entry {
	if e, ok := n.hosts[host]; ok {
		return e
	}
	e := &Entry{}
	n.hosts[host] = e
	n.order = append(n.order, host)
	return e
}
