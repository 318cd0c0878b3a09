package implementation

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", []string{""}},
		{"single", "foo", []string{"foo"}},
		{"lf", "a\nb", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\nc", []string{"a", "b", "c"}},
		{"cr", "a\rb", []string{"a", "b"}},
		{"trailing", "a\n", []string{"a", ""}},
		{"blank middle", "a\n\nb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitLines(tt.content))
		})
	}
}

func TestDocumentStoreLifecycle(t *testing.T) {
	store := newDocumentStore()
	uri := protocol.DocumentUri("file:///query.myql")

	_, err := store.Lines(uri)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDocumentNotFound))
	assert.Contains(t, err.Error(), string(uri))

	store.set(uri, "SELECT\nfrom")
	lines, err := store.Lines(uri)
	require.NoError(t, err)
	assert.Equal(t, []string{"SELECT", "from"}, lines)

	store.set(uri, "from")
	lines, err = store.Lines(uri)
	require.NoError(t, err)
	assert.Equal(t, []string{"from"}, lines)

	store.delete(uri)
	_, err = store.Lines(uri)
	assert.True(t, errors.Is(err, ErrDocumentNotFound))
}
