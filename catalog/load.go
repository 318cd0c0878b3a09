package catalog

import (
	"encoding/json"
	"io"
	"math"
	"path"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/go-jsonnet"
	"github.com/op/go-logging"
	"github.com/pelletier/go-toml/v2"
	protocol "github.com/tliron/glsp/protocol_3_16"
	urlpkg "github.com/tliron/kutil/url"
	"gopkg.in/yaml.v3"
)

var log = logging.MustGetLogger("lspmyql.catalog")

// ErrInvalidCatalog marks every failure to load a catalog resource. The
// server must not start when a load fails.
var ErrInvalidCatalog = errors.New("invalid symbol catalog")

// record is the on-disk shape of an entry. Optional fields are pointers or
// interfaces so that missing fields can be told apart from zero values.
type record struct {
	Label            *string     `json:"label" yaml:"label" toml:"label"`
	Kind             interface{} `json:"kind" yaml:"kind" toml:"kind"`
	InsertText       *string     `json:"insertText" yaml:"insertText" toml:"insertText"`
	InsertTextFormat interface{} `json:"insertTextFormat" yaml:"insertTextFormat" toml:"insertTextFormat"`
	Documentation    *string     `json:"documentation" yaml:"documentation" toml:"documentation"`
}

// tomlDocument wraps records because a TOML document must be a table. A
// nil Symbols means the key is missing.
type tomlDocument struct {
	Symbols *[]record `toml:"symbols"`
}

// Load reads the catalog resource at location, which may be a filesystem
// path or a URL. The format follows the extension: .yaml/.yml, .toml,
// .jsonnet/.libsonnet, anything else is read as JSON. Any error fails the
// whole load and matches ErrInvalidCatalog.
func Load(location string) (*Catalog, error) {
	content, err := read(location)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "read catalog %q", location), ErrInvalidCatalog)
	}

	records, err := decode(location, content)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "parse catalog %q", location), ErrInvalidCatalog)
	}

	entries := make([]Entry, 0, len(records))
	for index, record := range records {
		entry, err := record.entry()
		if err != nil {
			err = errors.WithHintf(err, "check record %d of %s", index, location)
			return nil, errors.Mark(errors.Wrapf(err, "catalog record %d", index), ErrInvalidCatalog)
		}
		entries = append(entries, entry)
	}

	log.Debugf("loaded %d symbols from %s", len(entries), location)
	return &Catalog{entries: entries}, nil
}

func read(location string) ([]byte, error) {
	urlContext := urlpkg.NewContext()
	defer urlContext.Release()

	url, err := urlpkg.NewValidURL(location, nil, urlContext)
	if err != nil {
		return nil, err
	}

	reader, err := url.Open()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	return io.ReadAll(reader)
}

func decode(location string, content []byte) ([]record, error) {
	var records []record

	switch strings.ToLower(path.Ext(location)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &records); err != nil {
			return nil, err
		}

	case ".toml":
		var document tomlDocument
		if err := toml.Unmarshal(content, &document); err != nil {
			return nil, err
		}
		if document.Symbols == nil {
			return nil, errors.New("missing \"symbols\" array")
		}
		records = append([]record{}, (*document.Symbols)...)

	case ".jsonnet", ".libsonnet":
		vm := jsonnet.MakeVM()
		evaluated, err := vm.EvaluateSnippet(location, string(content))
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(evaluated), &records); err != nil {
			return nil, err
		}

	default:
		if err := json.Unmarshal(content, &records); err != nil {
			return nil, err
		}
	}

	// null, an empty YAML document and the like decode to nil; only an
	// explicit empty list is an empty catalog.
	if records == nil {
		return nil, errors.New("root is not a list of symbol records")
	}

	return records, nil
}

func (self record) entry() (Entry, error) {
	if self.Label == nil {
		return Entry{}, errors.New("missing required field \"label\"")
	}

	entry := Entry{
		Label:            *self.Label,
		Kind:             protocol.CompletionItemKindText,
		InsertText:       *self.Label,
		InsertTextFormat: protocol.InsertTextFormatPlainText,
	}

	if self.Kind != nil {
		kind, err := parseKind(self.Kind)
		if err != nil {
			return Entry{}, err
		}
		entry.Kind = kind
	}

	if self.InsertText != nil {
		entry.InsertText = *self.InsertText
	}

	if self.InsertTextFormat != nil {
		format, err := parseInsertTextFormat(self.InsertTextFormat)
		if err != nil {
			return Entry{}, err
		}
		entry.InsertTextFormat = format
	}

	if self.Documentation != nil {
		entry.Documentation = *self.Documentation
	}

	return entry, nil
}

// integer accepts the numeric types produced by the JSON, YAML and TOML
// decoders. Fractional numbers are rejected.
func integer(value interface{}) (int64, bool) {
	switch number := value.(type) {
	case int:
		return int64(number), true
	case int64:
		return number, true
	case uint64:
		if number > math.MaxInt64 {
			return 0, false
		}
		return int64(number), true
	case float64:
		if (number != math.Trunc(number)) || (number > math.MaxInt32) || (number < math.MinInt32) {
			return 0, false
		}
		return int64(number), true
	default:
		return 0, false
	}
}
