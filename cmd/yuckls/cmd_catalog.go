package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/yuckls/yuck/builtin"
)

func newCatalogCmd() *cobra.Command {
	var showProperties bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the builtin declarations and widgets",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, t := range builtin.Catalog().Types() {
				kind := "widget"
				if t.TopLevel {
					kind = "toplevel"
				}
				fmt.Fprintf(out, "%-8s %-18s %s\n", kind, t.Name, t.Doc)
				if showProperties && len(t.Properties) > 0 {
					fmt.Fprintf(out, "         %s\n", strings.Join(t.Properties, " "))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showProperties, "properties", "p", false, "also list properties")

	return cmd
}
