package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/yuckls/lsp"
	"github.com/dhamidi/yuckls/workspace"
	"github.com/dhamidi/yuckls/yuck"
	"github.com/dhamidi/yuckls/yuck/builtin"
)

func newContextCmd() *cobra.Command {
	var (
		line int
		col  int
	)

	cmd := &cobra.Command{
		Use:   "context <file>",
		Short: "Show the completion context at a position in a yuck file",
		Long:  "Show the completion context at a position in a yuck file. Use - to read from stdin. Without --line the end of the file is used.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContext(cmd.OutOrStdout(), args[0], line, col)
		},
	}

	cmd.Flags().IntVarP(&line, "line", "l", 0, "1-based line of the cursor")
	cmd.Flags().IntVarP(&col, "col", "c", 0, "1-based column of the cursor")

	return cmd
}

func runContext(out io.Writer, path string, line, col int) error {
	var (
		content []byte
		err     error
		dir     string
	)
	if path == "-" {
		content, err = io.ReadAll(os.Stdin)
		dir = "."
	} else {
		content, err = os.ReadFile(path)
		dir = filepath.Dir(path)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	text := string(content)
	if line > 0 {
		doc := &lsp.Document{Content: text}
		text = doc.TextBefore(protocol.Position{
			Line:      protocol.UInteger(line - 1),
			Character: protocol.UInteger(max(col-1, 0)),
		})
	}

	ws := workspace.New(workspace.Options{})
	if err := ws.Load(context.Background(), dir); err != nil {
		return err
	}

	catalog := builtin.Catalog()
	cctx := yuck.ContextAt(text, yuck.Chain(catalog, ws))

	fmt.Fprintf(out, "context: %s\n", cctx.Kind)
	if cctx.Kind == yuck.ContextProperty {
		fmt.Fprintf(out, "parent:  %s\n", cctx.Parent.Name)
	}
	for _, item := range lsp.Completions(cctx, catalog, ws.Types()) {
		fmt.Fprintf(out, "  %s\n", item.Label)
	}
	return nil
}
