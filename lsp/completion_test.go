package lsp

import (
	"testing"

	"github.com/dhamidi/yuckls/yuck"
	"github.com/dhamidi/yuckls/yuck/builtin"
)

var testBuiltins = yuck.NewCatalog(
	yuck.Type{Name: "defwindow", EmbedsChildren: true, TopLevel: true, Properties: []string{"monitor"}},
	yuck.Type{Name: "defvar", TopLevel: true},
	yuck.Type{Name: "box", EmbedsChildren: true, Properties: []string{"spacing"}},
	yuck.Type{Name: "label", Properties: []string{"text"}},
	yuck.Type{Name: "geometry", Form: true, Properties: []string{"x"}},
)

func labels(items []CompletionItem) []string {
	var result []string
	for _, item := range items {
		result = append(result, item.Label)
	}
	return result
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCompletions(t *testing.T) {
	user := []yuck.Type{
		{Name: "card", EmbedsChildren: true},
		{Name: "box"},
		{Name: "card"},
	}

	tests := []struct {
		name       string
		ctx        yuck.CompletionContext
		wantLabels []string
		wantKind   CompletionKind
	}{
		{
			name:       "top level",
			ctx:        yuck.CompletionContext{Kind: yuck.ContextTopLevel},
			wantLabels: []string{"defwindow", "defvar"},
			wantKind:   CompletionKindKeyword,
		},
		{
			name:       "widget",
			ctx:        yuck.CompletionContext{Kind: yuck.ContextWidget},
			wantLabels: []string{"box", "label", "card"},
			wantKind:   CompletionKindWidget,
		},
		{
			name: "property",
			ctx: yuck.CompletionContext{
				Kind:   yuck.ContextProperty,
				Parent: yuck.Type{Name: "defwindow", Properties: []string{"monitor", "geometry"}},
			},
			wantLabels: []string{"monitor", "geometry"},
			wantKind:   CompletionKindProperty,
		},
		{
			name: "none",
			ctx:  yuck.CompletionContext{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := Completions(tt.ctx, testBuiltins, user)
			if got := labels(items); !equalStrings(got, tt.wantLabels) {
				t.Errorf("labels = %v, want %v", got, tt.wantLabels)
			}
			for _, item := range items {
				if item.Kind != tt.wantKind {
					t.Errorf("%s: Kind = %d, want %d", item.Label, item.Kind, tt.wantKind)
				}
			}
		})
	}
}

func TestCompletionsTopLevelBuiltins(t *testing.T) {
	items := Completions(yuck.CompletionContext{Kind: yuck.ContextTopLevel}, builtin.Catalog(), nil)
	want := []string{"defwindow", "defwidget", "defvar", "defpoll", "deflisten", "include"}
	if got := labels(items); !equalStrings(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
}

func TestCompletionsWidgetsSkipForms(t *testing.T) {
	items := Completions(yuck.CompletionContext{Kind: yuck.ContextWidget}, builtin.Catalog(), nil)
	for _, label := range labels(items) {
		if label == "geometry" || label == "struts" || label == "defwindow" {
			t.Errorf("widget completions include %q", label)
		}
	}
}
