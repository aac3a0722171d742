package lsp

import (
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Documents holds the text of every document the client has open.
type Documents struct {
	mu   sync.RWMutex
	docs map[protocol.DocumentUri]*Document
}

type Document struct {
	URI     protocol.DocumentUri
	Version protocol.Integer
	Content string
}

func NewDocuments() *Documents {
	return &Documents{docs: make(map[protocol.DocumentUri]*Document)}
}

func (d *Documents) Open(uri protocol.DocumentUri, version protocol.Integer, content string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.docs[uri] = &Document{URI: uri, Version: version, Content: content}
}

// Change applies content changes in order. Changes for unknown
// documents are ignored.
func (d *Documents) Change(uri protocol.DocumentUri, version protocol.Integer, changes []any) {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc, ok := d.docs[uri]
	if !ok {
		return
	}
	content := doc.Content
	for _, change := range changes {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			content = c.Text
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				content = c.Text
				continue
			}
			start, end := c.Range.IndexesIn(content)
			if start > end {
				start, end = end, start
			}
			content = content[:start] + c.Text + content[end:]
		}
	}
	d.docs[uri] = &Document{URI: uri, Version: version, Content: content}
}

func (d *Documents) Close(uri protocol.DocumentUri) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.docs, uri)
}

func (d *Documents) Get(uri protocol.DocumentUri) *Document {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.docs[uri]
}

// TextBefore returns the content up to pos. Positions beyond the end of
// the content select all of it.
func (doc *Document) TextBefore(pos protocol.Position) string {
	index := pos.IndexIn(doc.Content)
	// IndexIn reports 0 for positions past the end; only the very start
	// of a document legitimately maps there.
	if index == 0 && (pos.Line > 0 || pos.Character > 0) {
		index = len(doc.Content)
	}
	return doc.Content[:index]
}
