package yuck

import "github.com/tliron/commonlog"

var catalogLog = commonlog.GetLogger("yuckls.catalog")

// Lookup resolves a declaration name to its type. Names are matched exactly.
type Lookup interface {
	Lookup(name string) (Type, bool)
}

// Catalog is an ordered, name-keyed collection of types.
// When a name is registered more than once the first registration wins.
type Catalog struct {
	order []string
	types map[string]Type
}

func NewCatalog(types ...Type) *Catalog {
	c := &Catalog{types: make(map[string]Type)}
	for _, t := range types {
		c.Add(t)
	}
	return c
}

// Add registers t and reports whether it was accepted. A duplicate name is
// rejected and logged.
func (c *Catalog) Add(t Type) bool {
	if _, exists := c.types[t.Name]; exists {
		catalogLog.Warningf("type %q is already registered, ignoring duplicate", t.Name)
		return false
	}
	c.types[t.Name] = t
	c.order = append(c.order, t.Name)
	return true
}

func (c *Catalog) Lookup(name string) (Type, bool) {
	if c == nil {
		return Type{}, false
	}
	t, ok := c.types[name]
	return t, ok
}

// Types returns all types in registration order.
func (c *Catalog) Types() []Type {
	if c == nil {
		return nil
	}
	result := make([]Type, 0, len(c.order))
	for _, name := range c.order {
		result = append(result, c.types[name])
	}
	return result
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

type chain []Lookup

// Chain combines lookups; the first one that knows a name wins.
func Chain(lookups ...Lookup) Lookup {
	return chain(lookups)
}

func (ch chain) Lookup(name string) (Type, bool) {
	for _, l := range ch {
		if l == nil {
			continue
		}
		if t, ok := l.Lookup(name); ok {
			return t, true
		}
	}
	return Type{}, false
}
