package implementation

import (
	"github.com/cockroachdb/errors"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// ErrPositionOutOfRange is returned by Hover when the requested line does
// not exist. Completion tolerates such lines instead.
var ErrPositionOutOfRange = errors.New("position out of range")

// Hover returns the documentation of the catalog entry whose label equals
// the word at position. The comparison is case-sensitive and the first
// matching entry wins.
func (self *Server) Hover(uri protocol.DocumentUri, position protocol.Position) (string, bool, error) {
	lines, err := self.source.Lines(uri)
	if err != nil {
		return "", false, err
	}

	if int(position.Line) >= len(lines) {
		return "", false, errors.Wrapf(ErrPositionOutOfRange, "line %d of %d in %s", position.Line, len(lines), uri)
	}

	word := wordAt(lines[position.Line], int(position.Character))
	if word == "" {
		return "", false, nil
	}

	if entry, ok := self.symbols.Lookup(word); ok {
		return entry.Documentation, true, nil
	}
	return "", false, nil
}
