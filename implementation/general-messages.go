package implementation

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Initialize implements protocol.InitializeFunc
func (self *Server) Initialize(context *glsp.Context, params *protocol.InitializeParams) (interface{}, error) {
	if params.ClientInfo != nil {
		log.Infof("initializing for client %s", params.ClientInfo.Name)
	} else {
		log.Info("initializing")
	}

	capabilities := self.Handler.CreateServerCapabilities()
	// Every open and change must carry the whole document.
	capabilities.TextDocumentSync = protocol.TextDocumentSyncKindFull
	capabilities.CompletionProvider = &protocol.CompletionOptions{}
	capabilities.HoverProvider = true

	return &protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    Name,
			Version: &self.version,
		},
	}, nil
}

// Initialized implements protocol.InitializedFunc
func (self *Server) Initialized(context *glsp.Context, params *protocol.InitializedParams) error {
	log.Infof("initialized with %d symbols", self.symbols.Len())
	return nil
}

// Shutdown implements protocol.ShutdownFunc
func (self *Server) Shutdown(context *glsp.Context) error {
	log.Info("shutting down")
	return nil
}
