package implementation

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tminor/lspmyql/catalog"
)

// TextDocumentCompletion implements protocol.TextDocumentCompletionFunc
func (self *Server) TextDocumentCompletion(context *glsp.Context, params *protocol.CompletionParams) (interface{}, error) {
	position := params.TextDocumentPositionParams.Position
	logMessage(context, "completion at %d:%d", position.Line, position.Character)

	prefix, entries, err := self.Complete(params.TextDocument.URI, position)
	if err != nil {
		log.Errorf("%s", err.Error())
		return nil, err
	}

	logMessage(context, "prefix %q, found %d matches", prefix, len(entries))

	items := make([]protocol.CompletionItem, len(entries))
	for index, entry := range entries {
		items[index] = completionItem(entry)
	}
	return items, nil
}

// TextDocumentHover implements protocol.TextDocumentHoverFunc
func (self *Server) TextDocumentHover(context *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	documentation, ok, err := self.Hover(params.TextDocument.URI, params.TextDocumentPositionParams.Position)
	if err != nil {
		log.Errorf("%s", err.Error())
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: documentation,
		},
	}, nil
}

func completionItem(entry catalog.Entry) protocol.CompletionItem {
	kind := entry.Kind
	insertText := entry.InsertText
	insertTextFormat := entry.InsertTextFormat

	item := protocol.CompletionItem{
		Label:            entry.Label,
		Kind:             &kind,
		InsertText:       &insertText,
		InsertTextFormat: &insertTextFormat,
	}

	if entry.Documentation != "" {
		documentation := entry.Documentation
		item.Detail = &documentation
		item.Documentation = documentation
	}

	return item
}
