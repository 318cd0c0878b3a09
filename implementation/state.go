package implementation

import (
	"fmt"

	"github.com/op/go-logging"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tminor/lspmyql/catalog"
)

// Name is reported to clients as the server name.
const Name = "lspmyql"

var log = logging.MustGetLogger("lspmyql.implementation")

// Server answers completion and hover requests from a symbol catalog and
// the documents the client has opened.
type Server struct {
	// Handler is the glsp handler table; pass its address to
	// server.NewServer.
	Handler protocol.Handler

	version   string
	symbols   *catalog.Catalog
	documents *documentStore
	source    DocumentSource
}

func NewServer(symbols *catalog.Catalog, version string) *Server {
	documents := newDocumentStore()
	self := &Server{
		version:   version,
		symbols:   symbols,
		documents: documents,
		source:    documents,
	}

	self.Handler = protocol.Handler{
		Initialize:             self.Initialize,
		Initialized:            self.Initialized,
		Shutdown:               self.Shutdown,
		TextDocumentDidOpen:    self.TextDocumentDidOpen,
		TextDocumentDidChange:  self.TextDocumentDidChange,
		TextDocumentDidSave:    self.TextDocumentDidSave,
		TextDocumentDidClose:   self.TextDocumentDidClose,
		TextDocumentCompletion: self.TextDocumentCompletion,
		TextDocumentHover:      self.TextDocumentHover,
	}

	return self
}

// logMessage writes to the server log and mirrors the message to the
// client's log window.
func logMessage(context *glsp.Context, format string, args ...interface{}) {
	log.Debugf(format, args...)
	if (context != nil) && (context.Notify != nil) {
		context.Notify(protocol.ServerWindowLogMessage, &protocol.LogMessageParams{
			Type:    protocol.MessageTypeLog,
			Message: fmt.Sprintf(format, args...),
		})
	}
}
