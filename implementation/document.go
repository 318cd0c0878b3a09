package implementation

import (
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// ErrDocumentNotFound is returned for URIs that were never opened or were
// already closed.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentSource gives read access to the current text of open documents.
type DocumentSource interface {
	// Lines returns the document's current text split into lines.
	Lines(uri protocol.DocumentUri) ([]string, error)
}

// documentStore holds the full text of opened documents.
type documentStore struct {
	documents map[protocol.DocumentUri]string
	lock      sync.RWMutex
}

func newDocumentStore() *documentStore {
	return &documentStore{
		documents: make(map[protocol.DocumentUri]string),
	}
}

func (self *documentStore) set(uri protocol.DocumentUri, content string) {
	self.lock.Lock()
	defer self.lock.Unlock()
	self.documents[uri] = content
}

func (self *documentStore) get(uri protocol.DocumentUri) (string, bool) {
	self.lock.RLock()
	defer self.lock.RUnlock()
	content, ok := self.documents[uri]
	return content, ok
}

func (self *documentStore) delete(uri protocol.DocumentUri) {
	self.lock.Lock()
	defer self.lock.Unlock()
	delete(self.documents, uri)
}

// Lines implements DocumentSource.
func (self *documentStore) Lines(uri protocol.DocumentUri) ([]string, error) {
	content, ok := self.get(uri)
	if !ok {
		return nil, errors.Wrapf(ErrDocumentNotFound, "%s", uri)
	}
	return splitLines(content), nil
}

// splitLines splits on "\r\n", "\n" and "\r". The result always has at
// least one element, and a trailing line break yields a trailing empty line.
func splitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	return strings.Split(content, "\n")
}
