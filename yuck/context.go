package yuck

import (
	"strings"
	"unicode/utf8"
)

// ContextKind tags the class of completions valid at the cursor.
type ContextKind int

const (
	ContextNone ContextKind = iota
	ContextTopLevel
	ContextWidget
	ContextProperty
)

func (k ContextKind) String() string {
	switch k {
	case ContextTopLevel:
		return "top-level"
	case ContextWidget:
		return "widget"
	case ContextProperty:
		return "property"
	default:
		return "none"
	}
}

// CompletionContext is the result of classifying a cursor position.
// Parent is only set for ContextProperty.
type CompletionContext struct {
	Kind   ContextKind
	Parent Type
}

const (
	openTrigger     = '('
	propertyTrigger = ':'
)

// ContextAt classifies the end of text, the text before the cursor.
func ContextAt(text string, types Lookup) CompletionContext {
	return Classify(text, Sanitize(text), types)
}

// Classify decides which completions apply at the end of raw, using its
// sanitized form for structure. It never fails: anything it cannot make
// sense of yields ContextNone.
func Classify(raw, sanitized string, types Lookup) CompletionContext {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return CompletionContext{}
	}
	trigger, _ := utf8.DecodeLastRuneInString(raw)

	switch trigger {
	case openTrigger:
		if Depth(sanitized) == 0 {
			return CompletionContext{Kind: ContextTopLevel}
		}
		parent, ok := lookupParent(sanitized, types)
		if !ok || !parent.EmbedsChildren {
			return CompletionContext{}
		}
		return CompletionContext{Kind: ContextWidget}
	case propertyTrigger:
		parent, ok := lookupParent(sanitized, types)
		if !ok {
			return CompletionContext{}
		}
		return CompletionContext{Kind: ContextProperty, Parent: parent}
	}
	return CompletionContext{}
}

func lookupParent(sanitized string, types Lookup) (Type, bool) {
	name, ok := ParentNode(sanitized)
	if !ok || types == nil {
		return Type{}, false
	}
	return types.Lookup(name)
}
