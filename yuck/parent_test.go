package yuck

import "testing"

func TestParentNode(t *testing.T) {
	tests := []struct {
		name      string
		sanitized string
		want      string
		wantOK    bool
	}{
		{name: "empty", sanitized: "", wantOK: false},
		{name: "single open", sanitized: "(box ", want: "box", wantOK: true},
		{name: "closed sibling discarded", sanitized: "(box (label :text ) ", want: "box", wantOK: true},
		{name: "deeply closed", sanitized: "(a (b (c (d)) (e)) ", want: "a", wantOK: true},
		{name: "innermost open", sanitized: "(a (b (c ", want: "c", wantOK: true},
		{name: "everything closed", sanitized: "(a (b)) ", wantOK: false},
		{name: "anonymous open list", sanitized: "(box ( ", want: "box", wantOK: true},
		{name: "anonymous only", sanitized: "( ", wantOK: false},
		{name: "space before name", sanitized: "( box ", wantOK: false},
		{name: "stray close", sanitized: ") (box ", want: "box", wantOK: true},
		{name: "name ends at colon", sanitized: "(box:x ", want: "box", wantOK: true},
		{name: "closed list holding an anonymous list", sanitized: "(box ()) ", wantOK: false},
		{name: "anonymous list inside closed child", sanitized: "(box (foo ()) ", want: "box", wantOK: true},
		{name: "multi-line", sanitized: "(defwindow bar\n  (box\n    (label)\n    ", want: "box", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParentNode(tt.sanitized)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParentNode(%q) = %q, %v; want %q, %v", tt.sanitized, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDepthMatchesNesting(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{raw: "(", want: 0},
		{raw: "(box (", want: 1},
		{raw: "(box (label) (", want: 1},
		{raw: `(box (label :text "((((") (`, want: 1},
		{raw: "(box ; ((((\n  (label (", want: 2},
		{raw: "(a (b (c) (d (e)))\n(", want: 0},
		{raw: "(defpoll t `echo )))` :interval '1s')\n(box (", want: 1},
	}

	for _, tt := range tests {
		got := Depth(Sanitize(tt.raw))
		if got != tt.want {
			t.Errorf("Depth(Sanitize(%q)) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}
