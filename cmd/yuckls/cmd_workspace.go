package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/yuckls/workspace"
)

func newWorkspaceCmd() *cobra.Command {
	var opts workspace.Options

	cmd := &cobra.Command{
		Use:   "workspace [dir]",
		Short: "Load a workspace and list its includes, widgets and variables",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runWorkspace(cmd.OutOrStdout(), dir, opts)
		},
	}

	cmd.Flags().StringVar(&opts.RootMarker, "root-marker", workspace.DefaultRootMarker, "file name marking the workspace root")
	cmd.Flags().IntVar(&opts.MaxFiles, "max-files", 0, "maximum number of files to load (0 for no limit)")

	return cmd
}

func runWorkspace(out io.Writer, dir string, opts workspace.Options) error {
	ws := workspace.New(opts)
	if err := ws.Load(context.Background(), dir); err != nil {
		return err
	}
	if ws.Root() == "" {
		return fmt.Errorf("no %s found above %s", opts.RootMarker, dir)
	}

	fmt.Fprintf(out, "root: %s\n", ws.Root())

	includes := ws.Includes()
	paths := make([]string, 0, len(includes))
	for path := range includes {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	loaded := make(map[string]bool)
	for _, f := range ws.Files() {
		loaded[f] = true
	}

	fmt.Fprintf(out, "\nfiles (%d):\n", len(paths))
	for _, path := range paths {
		status := "loaded"
		if !loaded[path] {
			status = "missing"
		}
		fmt.Fprintf(out, "  %-8s %s\n", status, path)
	}

	types := ws.Types()
	fmt.Fprintf(out, "\nwidgets (%d):\n", len(types))
	for _, t := range types {
		children := ""
		if t.EmbedsChildren {
			children = " +children"
		}
		fmt.Fprintf(out, "  %s [%s]%s\n", t.Name, strings.Join(t.Properties, " "), children)
	}

	vars := ws.Variables()
	fmt.Fprintf(out, "\nvariables (%d):\n", len(vars))
	for _, v := range vars {
		fmt.Fprintf(out, "  %-9s %s\n", v.Kind, v.Name)
	}
	return nil
}
