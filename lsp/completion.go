package lsp

import (
	"github.com/dhamidi/yuckls/yuck"
)

type CompletionKind int

const (
	CompletionKindKeyword CompletionKind = iota
	CompletionKindWidget
	CompletionKindProperty
)

type CompletionItem struct {
	Label      string
	Kind       CompletionKind
	Detail     string
	InsertText string
}

// Completions turns a completion context into suggestions. Builtins come
// before user-defined widgets, and a user widget with the same name as a
// builtin is not offered twice.
func Completions(ctx yuck.CompletionContext, builtins *yuck.Catalog, user []yuck.Type) []CompletionItem {
	var items []CompletionItem

	switch ctx.Kind {
	case yuck.ContextTopLevel:
		for _, t := range builtins.Types() {
			if !t.TopLevel {
				continue
			}
			items = append(items, CompletionItem{
				Label:      t.Name,
				Kind:       CompletionKindKeyword,
				Detail:     t.Doc,
				InsertText: t.Name,
			})
		}

	case yuck.ContextWidget:
		seen := make(map[string]bool)
		for _, t := range builtins.Types() {
			if t.TopLevel || t.Form {
				continue
			}
			seen[t.Name] = true
			items = append(items, widgetItem(t))
		}
		for _, t := range user {
			if seen[t.Name] {
				continue
			}
			seen[t.Name] = true
			items = append(items, widgetItem(t))
		}

	case yuck.ContextProperty:
		for _, p := range ctx.Parent.Properties {
			items = append(items, CompletionItem{
				Label:      p,
				Kind:       CompletionKindProperty,
				Detail:     ctx.Parent.Name,
				InsertText: p,
			})
		}
	}

	return items
}

func widgetItem(t yuck.Type) CompletionItem {
	return CompletionItem{
		Label:      t.Name,
		Kind:       CompletionKindWidget,
		Detail:     t.Doc,
		InsertText: t.Name,
	}
}
