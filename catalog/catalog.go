// Package catalog holds the static dictionary of MyQL symbols offered for
// completion and hover. A catalog is loaded once at startup and never
// changes afterwards, so it can be shared between request handlers without
// locking.
package catalog

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Entry is one completable and hoverable symbol.
type Entry struct {
	Label            string
	Kind             protocol.CompletionItemKind
	InsertText       string
	InsertTextFormat protocol.InsertTextFormat
	Documentation    string
}

// Catalog is an immutable ordered list of entries. The order is the order
// of the source resource.
type Catalog struct {
	entries []Entry
}

// New creates a catalog from in-memory entries. Zero fields count as
// missing and get the defaults Load applies to missing fields, so an empty
// InsertText becomes the label. Load keeps an explicit empty insertText.
func New(entries ...Entry) *Catalog {
	defaulted := make([]Entry, len(entries))
	for index, entry := range entries {
		if entry.Kind == 0 {
			entry.Kind = protocol.CompletionItemKindText
		}
		if entry.InsertText == "" {
			entry.InsertText = entry.Label
		}
		if entry.InsertTextFormat == 0 {
			entry.InsertTextFormat = protocol.InsertTextFormatPlainText
		}
		defaulted[index] = entry
	}
	return &Catalog{entries: defaulted}
}

// Len returns the number of entries.
func (self *Catalog) Len() int {
	return len(self.entries)
}

// Entries returns a copy of all entries in catalog order.
func (self *Catalog) Entries() []Entry {
	entries := make([]Entry, len(self.entries))
	copy(entries, self.entries)
	return entries
}

// MatchPrefix returns, in catalog order, every entry whose label starts
// with prefix, ignoring case. The empty prefix matches everything.
func (self *Catalog) MatchPrefix(prefix string) []Entry {
	prefix = strings.ToLower(prefix)
	matches := make([]Entry, 0, len(self.entries))
	for _, entry := range self.entries {
		if strings.HasPrefix(strings.ToLower(entry.Label), prefix) {
			matches = append(matches, entry)
		}
	}
	return matches
}

// Lookup returns the first entry whose label equals label exactly.
func (self *Catalog) Lookup(label string) (Entry, bool) {
	for _, entry := range self.entries {
		if entry.Label == label {
			return entry, true
		}
	}
	return Entry{}, false
}
