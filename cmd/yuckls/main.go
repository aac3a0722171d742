package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

func main() {
	var (
		verbose int
		logFile string
	)

	rootCmd := &cobra.Command{
		Use:     "yuckls",
		Short:   "Completion server for eww's yuck configuration language",
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if logFile != "" {
				commonlog.Configure(verbose, &logFile)
			} else {
				commonlog.Configure(verbose, nil)
			}
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase logging verbosity")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", os.Getenv("YUCKLS_LOG"), "write logs to this file instead of stderr")

	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newContextCmd())
	rootCmd.AddCommand(newWorkspaceCmd())
	rootCmd.AddCommand(newCatalogCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
