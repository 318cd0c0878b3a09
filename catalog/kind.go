package catalog

import (
	"strings"

	"github.com/cockroachdb/errors"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Indexed by protocol value; index 0 is unused.
var kindNames = []string{
	"",
	"text",
	"method",
	"function",
	"constructor",
	"field",
	"variable",
	"class",
	"interface",
	"module",
	"property",
	"unit",
	"value",
	"enum",
	"keyword",
	"snippet",
	"color",
	"file",
	"reference",
	"folder",
	"enummember",
	"constant",
	"struct",
	"event",
	"operator",
	"typeparameter",
}

var formatNames = []string{
	"",
	"plaintext",
	"snippet",
}

// parseKind accepts a protocol number (1-25) or a kind name such as
// "Function" or "typeParameter".
func parseKind(value interface{}) (protocol.CompletionItemKind, error) {
	index, err := parseEnum(value, kindNames)
	if err != nil {
		return 0, errors.Wrap(err, "field \"kind\"")
	}
	return protocol.CompletionItemKind(index), nil
}

// parseInsertTextFormat accepts 1, 2, "PlainText" or "Snippet".
func parseInsertTextFormat(value interface{}) (protocol.InsertTextFormat, error) {
	index, err := parseEnum(value, formatNames)
	if err != nil {
		return 0, errors.Wrap(err, "field \"insertTextFormat\"")
	}
	return protocol.InsertTextFormat(index), nil
}

func parseEnum(value interface{}, names []string) (int, error) {
	if name, ok := value.(string); ok {
		name = strings.ToLower(name)
		for index := 1; index < len(names); index++ {
			if names[index] == name {
				return index, nil
			}
		}
		return 0, errors.Newf("unknown name %q", name)
	}

	number, ok := integer(value)
	if !ok {
		return 0, errors.Newf("unsupported value %v", value)
	}
	if (number < 1) || (number >= int64(len(names))) {
		return 0, errors.Newf("value %d out of range 1-%d", number, len(names)-1)
	}
	return int(number), nil
}
