// Package builtin provides the catalog of declarations and widgets that
// eww understands without any user configuration.
package builtin

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/yuckls/yuck"
)

//go:embed catalog.yaml
var catalogYAML []byte

type document struct {
	Common       []string `yaml:"common"`
	Declarations []entry  `yaml:"declarations"`
	Forms        []entry  `yaml:"forms"`
	Widgets      []entry  `yaml:"widgets"`
}

type entry struct {
	Name       string   `yaml:"name"`
	Doc        string   `yaml:"doc"`
	Embeds     bool     `yaml:"embeds"`
	Properties []string `yaml:"properties"`
}

var (
	catalogOnce sync.Once
	catalog     *yuck.Catalog
)

// Catalog returns the builtin catalog. Declarations come first and are
// the only top-level types; forms follow, then widgets, which
// additionally get the common properties.
func Catalog() *yuck.Catalog {
	catalogOnce.Do(func() {
		c, err := Parse(catalogYAML)
		if err != nil {
			panic(fmt.Sprintf("builtin: %v", err))
		}
		catalog = c
	})
	return catalog
}

// Parse builds a catalog from a YAML document in the same shape as the
// embedded one.
func Parse(data []byte) (*yuck.Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := yuck.NewCatalog()
	for _, e := range doc.Declarations {
		if e.Name == "" {
			return nil, fmt.Errorf("declaration without a name")
		}
		c.Add(yuck.Type{
			Name:           e.Name,
			EmbedsChildren: e.Embeds,
			Properties:     e.Properties,
			TopLevel:       true,
			Doc:            e.Doc,
		})
	}
	for _, e := range doc.Forms {
		if e.Name == "" {
			return nil, fmt.Errorf("form without a name")
		}
		c.Add(yuck.Type{
			Name:           e.Name,
			EmbedsChildren: e.Embeds,
			Properties:     e.Properties,
			Form:           true,
			Doc:            e.Doc,
		})
	}
	for _, e := range doc.Widgets {
		if e.Name == "" {
			return nil, fmt.Errorf("widget without a name")
		}
		props := make([]string, 0, len(e.Properties)+len(doc.Common))
		props = append(props, e.Properties...)
		props = append(props, doc.Common...)
		c.Add(yuck.Type{
			Name:           e.Name,
			EmbedsChildren: e.Embeds,
			Properties:     props,
			Doc:            e.Doc,
		})
	}
	return c, nil
}
