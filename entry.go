package protover

import (
	"fmt"
	"sort"
	"strings"
)

// Entry is one complete "I support these things" statement: a mapping from
// protocol names to canonical version sets. Entries are immutable once
// built and safe for concurrent use.
//
// Entry is the unvalidated flavor: it carries protocol names outside the
// compiled-in enumeration verbatim, which makes it the only flavor safe to
// build from untrusted network text. Use Validate to obtain a
// ValidatedEntry restricted to known protocols.
type Entry struct {
	supported map[string]VersionSet
}

func newEntry(supported map[string]VersionSet) *Entry {
	return &Entry{supported: supported}
}

// Len returns the number of protocols named by the entry.
func (e *Entry) Len() int {
	return len(e.supported)
}

// Names returns the entry's protocol names in canonical (lexicographic)
// order.
func (e *Entry) Names() []string {
	names := make([]string, 0, len(e.supported))
	for name := range e.supported {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// VersionSet returns the version set advertised for the named protocol.
func (e *Entry) VersionSet(name string) (VersionSet, bool) {
	s, ok := e.supported[name]
	return s, ok
}

// Supports reports whether the entry advertises the named protocol at
// exactly version v.
func (e *Entry) Supports(name string, v Version) bool {
	return e.supported[name].Contains(v)
}

// SupportsOrLater reports whether the entry's newest advertised version of
// the named protocol is at least v. A gap above v still counts: the
// question is "at least this new", not "contiguous coverage from v".
func (e *Entry) SupportsOrLater(name string, v Version) bool {
	max, ok := e.supported[name].Max()
	return ok && max >= v
}

// String renders the entry in canonical wire form: protocol names in
// lexicographic order, ranges ascending and maximally coalesced. Protocols
// with empty version sets are omitted; canonical form represents "supports
// nothing" by absence. Equal entries always serialize to identical bytes.
func (e *Entry) String() string {
	var b strings.Builder
	first := true
	for _, name := range e.Names() {
		set := e.supported[name]
		if set.IsEmpty() {
			continue
		}
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(set.String())
	}
	return b.String()
}

// MarshalText renders the entry in canonical wire form.
func (e *Entry) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText parses a protocol list, replacing the entry's contents.
func (e *Entry) UnmarshalText(text []byte) error {
	parsed, err := ParseEntry(string(text))
	if err != nil {
		return err
	}
	e.supported = parsed.supported
	return nil
}

// Validate asserts that every protocol the entry names is part of the
// compiled-in enumeration and returns the validated flavor. The first
// unknown name is reported as ErrUnknownProtocol.
func (e *Entry) Validate() (*ValidatedEntry, error) {
	supported := make(map[Protocol]VersionSet, len(e.supported))
	for _, name := range e.Names() {
		p, ok := ProtocolByName(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownProtocol, name)
		}
		supported[p] = e.supported[name]
	}
	return &ValidatedEntry{supported: supported}, nil
}

// ValidatedEntry is the flavor of Entry restricted to the compiled-in
// protocol enumeration, required wherever the caller reasons with the
// closed set (e.g. protocol-specific dispatch).
type ValidatedEntry struct {
	supported map[Protocol]VersionSet
}

// Len returns the number of protocols named by the entry.
func (e *ValidatedEntry) Len() int {
	return len(e.supported)
}

// VersionSet returns the version set advertised for the protocol.
func (e *ValidatedEntry) VersionSet(p Protocol) (VersionSet, bool) {
	s, ok := e.supported[p]
	return s, ok
}

// Supports reports whether the entry advertises protocol p at exactly
// version v.
func (e *ValidatedEntry) Supports(p Protocol, v Version) bool {
	return e.supported[p].Contains(v)
}

// SupportsOrLater reports whether the entry's newest advertised version of
// protocol p is at least v.
func (e *ValidatedEntry) SupportsOrLater(p Protocol, v Version) bool {
	max, ok := e.supported[p].Max()
	return ok && max >= v
}

// Entry widens the validated entry back to the unvalidated flavor.
func (e *ValidatedEntry) Entry() *Entry {
	supported := make(map[string]VersionSet, len(e.supported))
	for p, set := range e.supported {
		supported[p.String()] = set
	}
	return newEntry(supported)
}

// String renders the entry in canonical wire form.
func (e *ValidatedEntry) String() string {
	return e.Entry().String()
}
