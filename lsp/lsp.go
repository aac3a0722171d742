package lsp

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/yuckls/workspace"
	"github.com/dhamidi/yuckls/yuck"
	"github.com/dhamidi/yuckls/yuck/builtin"
)

const lsName = "yuckls"

var log = commonlog.GetLogger("yuckls.lsp")

type Options struct {
	Version   string
	Workspace workspace.Options
	// Watch reloads the workspace when yuck files change on disk.
	Watch bool
}

type Server struct {
	opts      Options
	catalog   *yuck.Catalog
	workspace *workspace.Workspace
	watcher   *workspace.Watcher
	documents *Documents
	rootDir   string
	handler   protocol.Handler
	server    *server.Server
}

func NewServer(opts Options) *Server {
	ls := &Server{
		opts:      opts,
		catalog:   builtin.Catalog(),
		workspace: workspace.New(opts.Workspace),
		documents: NewDocuments(),
		rootDir:   getRootDir(),
	}

	ls.handler = protocol.Handler{
		Initialize:                     ls.initialize,
		Initialized:                    ls.initialized,
		Shutdown:                       ls.shutdown,
		SetTrace:                       ls.setTrace,
		TextDocumentDidOpen:            ls.textDocumentDidOpen,
		TextDocumentDidChange:          ls.textDocumentDidChange,
		TextDocumentDidClose:           ls.textDocumentDidClose,
		TextDocumentDidSave:            ls.textDocumentDidSave,
		TextDocumentCompletion:         ls.textDocumentCompletion,
		WorkspaceDidChangeWatchedFiles: ls.workspaceDidChangeWatchedFiles,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) RunTCP(address string) error {
	return ls.server.RunTCP(address)
}

// Workspace returns the workspace backing completions.
func (ls *Server) Workspace() *workspace.Workspace {
	return ls.workspace
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			ls.rootDir = path
		}
	} else if params.RootPath != nil && *params.RootPath != "" {
		ls.rootDir = *params.RootPath
	}

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindIncremental),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(false),
		},
	}

	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{"(", ":"},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.opts.Version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	ls.reload()
	if ls.opts.Watch {
		ls.watcher = workspace.NewWatcher(ls.workspace, ls.rootDir, nil)
		if err := ls.watcher.Start(); err != nil {
			log.Infof("not watching: %s", err)
			ls.watcher = nil
		}
	}
	return nil
}

func (ls *Server) reload() {
	if err := ls.workspace.Load(context.Background(), ls.rootDir); err != nil {
		log.Warningf("load workspace: %s", err)
	}
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	if ls.watcher != nil {
		ls.watcher.Stop()
		ls.watcher = nil
	}
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := params.TextDocument
	ls.documents.Open(doc.URI, doc.Version, doc.Text)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	ls.documents.Change(params.TextDocument.URI, params.TextDocument.Version, params.ContentChanges)
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.documents.Close(params.TextDocument.URI)
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	// The watcher picks up saves on its own.
	if ls.watcher == nil && isYuckURI(params.TextDocument.URI) {
		ls.reload()
	}
	return nil
}

func (ls *Server) workspaceDidChangeWatchedFiles(ctx *glsp.Context, params *protocol.DidChangeWatchedFilesParams) error {
	for _, change := range params.Changes {
		if isYuckURI(change.URI) {
			ls.reload()
			return nil
		}
	}
	return nil
}

func (ls *Server) textDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	doc := ls.documents.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}

	text := doc.TextBefore(params.Position)
	cctx := yuck.ContextAt(text, yuck.Chain(ls.catalog, ls.workspace))
	log.Debugf("completion context at %d:%d is %s", params.Position.Line, params.Position.Character, cctx.Kind)

	completions := Completions(cctx, ls.catalog, ls.workspace.Types())
	if len(completions) == 0 {
		return nil, nil
	}

	var items []protocol.CompletionItem
	for _, c := range completions {
		kind := toProtocolKind(c.Kind)
		detail := c.Detail
		insertText := c.InsertText

		items = append(items, protocol.CompletionItem{
			Label:      c.Label,
			Kind:       &kind,
			Detail:     &detail,
			InsertText: &insertText,
		})
	}

	return items, nil
}

func toProtocolKind(kind CompletionKind) protocol.CompletionItemKind {
	switch kind {
	case CompletionKindKeyword:
		return protocol.CompletionItemKindKeyword
	case CompletionKindWidget:
		return protocol.CompletionItemKindClass
	case CompletionKindProperty:
		return protocol.CompletionItemKindProperty
	default:
		return protocol.CompletionItemKindText
	}
}

func isYuckURI(uri protocol.DocumentUri) bool {
	return strings.HasSuffix(uri, ".yuck")
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}

func getRootDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}
