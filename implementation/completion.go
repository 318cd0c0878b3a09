package implementation

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tminor/lspmyql/catalog"
)

// Complete returns the token before the cursor and, in catalog order, the
// entries whose labels start with it regardless of case. A line past the
// end of the document completes with the empty prefix.
func (self *Server) Complete(uri protocol.DocumentUri, position protocol.Position) (string, []catalog.Entry, error) {
	lines, err := self.source.Lines(uri)
	if err != nil {
		return "", nil, err
	}

	prefix := completionPrefix(lines, position)
	return prefix, self.symbols.MatchPrefix(prefix), nil
}

// completionPrefix returns the last whitespace-delimited field of the line
// up to the cursor. Punctuation is kept verbatim.
func completionPrefix(lines []string, position protocol.Position) string {
	if int(position.Line) >= len(lines) {
		return ""
	}

	fields := strings.Fields(runePrefix(lines[position.Line], int(position.Character)))
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// runePrefix returns the first count runes of s, or all of s if it is
// shorter.
func runePrefix(s string, count int) string {
	for index := range s {
		if count == 0 {
			return s[:index]
		}
		count--
	}
	return s
}
