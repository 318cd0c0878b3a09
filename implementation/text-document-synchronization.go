package implementation

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// TextDocumentDidOpen implements protocol.TextDocumentDidOpenFunc
func (self *Server) TextDocumentDidOpen(context *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	self.documents.set(params.TextDocument.URI, params.TextDocument.Text)
	log.Debugf("opened %s (%d bytes)", params.TextDocument.URI, len(params.TextDocument.Text))
	return nil
}

// TextDocumentDidChange implements protocol.TextDocumentDidChangeFunc
func (self *Server) TextDocumentDidChange(context *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	for _, change := range params.ContentChanges {
		switch change_ := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			self.documents.set(params.TextDocument.URI, change_.Text)
		case protocol.TextDocumentContentChangeEvent:
			// Only full sync is advertised.
			log.Warningf("ignoring ranged change to %s", params.TextDocument.URI)
		}
	}
	log.Debugf("changed %s", params.TextDocument.URI)
	return nil
}

// TextDocumentDidSave implements protocol.TextDocumentDidSaveFunc
func (self *Server) TextDocumentDidSave(context *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	return nil
}

// TextDocumentDidClose implements protocol.TextDocumentDidCloseFunc
func (self *Server) TextDocumentDidClose(context *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	self.documents.delete(params.TextDocument.URI)
	log.Debugf("closed %s", params.TextDocument.URI)
	return nil
}
