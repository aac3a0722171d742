package yuck

import "testing"

var testCatalog = NewCatalog(
	Type{Name: "defwindow", EmbedsChildren: true, TopLevel: true, Properties: []string{"monitor", "geometry"}},
	Type{Name: "defwidget", EmbedsChildren: true, TopLevel: true},
	Type{Name: "geometry", TopLevel: true, Properties: []string{"x", "y"}},
	Type{Name: "box", EmbedsChildren: true, Properties: []string{"spacing", "orientation"}},
	Type{Name: "label", Properties: []string{"text"}},
	Type{Name: "circular-progress", EmbedsChildren: true, Properties: []string{"value"}},
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantKind   ContextKind
		wantParent string
	}{
		{name: "empty buffer", raw: "", wantKind: ContextNone},
		{name: "single open paren", raw: "(", wantKind: ContextTopLevel},
		{name: "after closed form", raw: "(defvar x 1)\n(", wantKind: ContextTopLevel},
		{name: "property of top-level", raw: "(defwindow :", wantKind: ContextProperty, wantParent: "defwindow"},
		{name: "widget after closed sibling", raw: `(box (label :text "abc") (`, wantKind: ContextWidget},
		{name: "unknown parent", raw: "(foo (", wantKind: ContextNone},
		{name: "unknown property parent", raw: "(foo :", wantKind: ContextNone},
		{name: "parent without children", raw: "(label (", wantKind: ContextNone},
		{name: "no trigger", raw: "(box", wantKind: ContextNone},
		{name: "nested property", raw: "(defwindow bar\n  :geometry (geometry :", wantKind: ContextProperty, wantParent: "geometry"},
		{name: "property after closed child", raw: "(box (label :text \"a\")\n  :", wantKind: ContextProperty, wantParent: "box"},
		{name: "paren in string is ignored", raw: `(label :text "(box" :`, wantKind: ContextProperty, wantParent: "label"},
		{name: "paren in comment is ignored", raw: "(box ; (label\n  :", wantKind: ContextProperty, wantParent: "box"},
		{name: "string hides top level", raw: `(defvar x ")")` + "\n(", wantKind: ContextTopLevel},
		{name: "hyphenated name", raw: "(circular-progress :", wantKind: ContextProperty, wantParent: "circular-progress"},
		{name: "property with no open list", raw: ":", wantKind: ContextNone},
		{name: "trailing whitespace after trigger", raw: "(box (  ", wantKind: ContextWidget},
		{name: "closed list with anonymous child", raw: "(box ()) :", wantKind: ContextNone},
		{name: "closed child with anonymous list", raw: "(box (label ()) :", wantKind: ContextProperty, wantParent: "box"},
		{name: "multi-line nesting", raw: "(defwindow bar\n  (box\n    (label :text \"hi\")\n    (", wantKind: ContextWidget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContextAt(tt.raw, testCatalog)
			if got.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if got.Parent.Name != tt.wantParent {
				t.Errorf("Parent = %q, want %q", got.Parent.Name, tt.wantParent)
			}
		})
	}
}

func TestClassifyPropertyCarriesDescriptor(t *testing.T) {
	got := ContextAt("(defwindow :", testCatalog)
	if len(got.Parent.Properties) != 2 || got.Parent.Properties[0] != "monitor" {
		t.Errorf("Properties = %v, want [monitor geometry]", got.Parent.Properties)
	}
}

func TestClassifyNilLookup(t *testing.T) {
	if got := ContextAt("(box (", nil); got.Kind != ContextNone {
		t.Errorf("Kind = %v, want %v", got.Kind, ContextNone)
	}
	if got := ContextAt("(", nil); got.Kind != ContextTopLevel {
		t.Errorf("Kind = %v, want %v", got.Kind, ContextTopLevel)
	}
}

func TestClassifyChainedLookup(t *testing.T) {
	user := NewCatalog(
		Type{Name: "my-bar", EmbedsChildren: true, Properties: []string{"monitor"}},
		Type{Name: "label", Properties: []string{"shadowed"}},
	)
	types := Chain(testCatalog, user)

	if got := ContextAt("(my-bar (", types); got.Kind != ContextWidget {
		t.Errorf("Kind = %v, want %v", got.Kind, ContextWidget)
	}
	got := ContextAt("(label :", types)
	if got.Kind != ContextProperty {
		t.Fatalf("Kind = %v, want %v", got.Kind, ContextProperty)
	}
	if got.Parent.Properties[0] != "text" {
		t.Errorf("Properties = %v, want builtin label properties", got.Parent.Properties)
	}
}

func TestCatalogFirstRegistrationWins(t *testing.T) {
	c := NewCatalog(
		Type{Name: "box", EmbedsChildren: true},
		Type{Name: "box", EmbedsChildren: false},
	)
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
	box, ok := c.Lookup("box")
	if !ok || !box.EmbedsChildren {
		t.Errorf("Lookup(box) = %+v, %v; want first registration", box, ok)
	}
	if _, ok := c.Lookup("Box"); ok {
		t.Errorf("Lookup(Box) succeeded, want case-sensitive miss")
	}
}
