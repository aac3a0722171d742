package yuck

import "strings"

// Declarations are the user-defined names found in one file.
type Declarations struct {
	Types     []Type
	Variables []Variable
	Includes  []string
}

// Extract reads the top-level forms of a yuck file and collects widget
// definitions, variables and include paths. It is tolerant of malformed
// input: unbalanced or truncated forms are read as far as possible and
// anything that does not look like a declaration is ignored.
func Extract(src string) Declarations {
	var decls Declarations
	for _, form := range readForms(tokenize(src)) {
		if !form.list || form.bracket {
			continue
		}
		switch form.head() {
		case "defwidget":
			if t, ok := widgetType(form); ok {
				decls.Types = append(decls.Types, t)
			}
		case "defvar", "defpoll", "deflisten":
			if v, ok := variable(form); ok {
				decls.Variables = append(decls.Variables, v)
			}
		case "include":
			if path := form.arg(1); path != nil && path.str && path.atom != "" {
				decls.Includes = append(decls.Includes, path.atom)
			}
		}
	}
	return decls
}

func widgetType(form *node) (Type, bool) {
	name := form.arg(1)
	if name == nil || name.list || name.str || name.atom == "" {
		return Type{}, false
	}
	t := Type{Name: name.atom, Doc: "user-defined widget"}
	body := form.children[2:]
	if params := form.arg(2); params != nil && params.bracket {
		for _, p := range params.children {
			if p.list || p.atom == "" {
				continue
			}
			t.Properties = append(t.Properties, strings.TrimPrefix(p.atom, "?"))
		}
		body = form.children[3:]
	}
	for _, child := range body {
		if child.contains("children") {
			t.EmbedsChildren = true
			break
		}
	}
	return t, true
}

func variable(form *node) (Variable, bool) {
	name := form.arg(1)
	if name == nil || name.list || name.str || name.atom == "" {
		return Variable{}, false
	}
	v := Variable{Name: name.atom, Kind: form.head()}
	if form.head() == "defvar" {
		if value := form.arg(2); value != nil && !value.list {
			v.Value = value.atom
		}
		return v, true
	}
	// defpoll and deflisten take keyword options before the script.
	if last := form.children[len(form.children)-1]; last.str && len(form.children) > 2 {
		v.Value = last.atom
	}
	return v, true
}

type node struct {
	list     bool
	bracket  bool
	str      bool
	atom     string
	children []*node
}

func (n *node) head() string {
	if !n.list || len(n.children) == 0 {
		return ""
	}
	first := n.children[0]
	if first.list || first.str {
		return ""
	}
	return first.atom
}

func (n *node) arg(i int) *node {
	if i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// contains reports whether n or any descendant is a list headed by name.
func (n *node) contains(name string) bool {
	if !n.list {
		return false
	}
	if !n.bracket && n.head() == name {
		return true
	}
	for _, child := range n.children {
		if child.contains(name) {
			return true
		}
	}
	return false
}

func readForms(tokens []token) []*node {
	var (
		root  = &node{list: true}
		stack = []*node{root}
	)
	for _, tok := range tokens {
		top := stack[len(stack)-1]
		switch tok.kind {
		case tokenOpen, tokenOpenBracket:
			n := &node{list: true, bracket: tok.kind == tokenOpenBracket}
			top.children = append(top.children, n)
			stack = append(stack, n)
		case tokenClose, tokenCloseBracket:
			if len(stack) > 1 && top.bracket == (tok.kind == tokenCloseBracket) {
				stack = stack[:len(stack)-1]
			}
		case tokenString:
			top.children = append(top.children, &node{str: true, atom: tok.text})
		case tokenSymbol:
			top.children = append(top.children, &node{atom: tok.text})
		}
	}
	return root.children
}
