package yuck

// Type describes a declaration that may appear as the head of a list,
// either a builtin from the catalog or a widget defined with defwidget.
// Form marks nested configuration lists such as geometry, which are
// neither top-level declarations nor widgets.
type Type struct {
	Name           string
	EmbedsChildren bool
	Properties     []string
	TopLevel       bool
	Form           bool
	Doc            string
}

// Variable is a user-defined variable (defvar, defpoll or deflisten).
type Variable struct {
	Name  string
	Kind  string
	Value string
}
