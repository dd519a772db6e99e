package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "smartpark",
		Short:         "Smart parking backend: dynamic pricing and spot status reconciliation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd())
	root.AddCommand(newReconcileCmd())
	root.AddCommand(newQuoteCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
