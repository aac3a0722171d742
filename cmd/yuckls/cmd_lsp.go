package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/dhamidi/yuckls/lsp"
	"github.com/dhamidi/yuckls/workspace"
)

func newLSPCmd() *cobra.Command {
	var (
		tcp  string
		opts = lsp.Options{Version: version}
	)

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := lsp.NewServer(opts)
			if tcp != "" {
				return server.RunTCP(tcp)
			}
			return server.RunStdio()
		},
	}

	cmd.Flags().StringVar(&tcp, "tcp", "", "listen on this address instead of stdio")
	cmd.Flags().StringVar(&opts.Workspace.RootMarker, "root-marker", workspace.DefaultRootMarker, "file name marking the workspace root")
	cmd.Flags().IntVar(&opts.Workspace.MaxFiles, "max-files", 0, "maximum number of files loaded per workspace (0 for no limit)")
	cmd.Flags().DurationVar(&opts.Workspace.LoadTimeout, "load-timeout", 5*time.Second, "abandon a workspace load after this long (0 for no limit)")
	cmd.Flags().BoolVar(&opts.Watch, "watch", true, "reload the workspace when yuck files change")

	return cmd
}
