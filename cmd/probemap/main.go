// Command probemap drives the probemap hash table: a demo walkthrough,
// timing benchmarks against the built-in map, and a version command.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/homier/probemap"
)

const (
	exitUserError = 1
)

const modulePath = "github.com/homier/probemap"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "probemap",
		Short: "Drivers for the probemap hash table",
		Long: "Probemap exercises an open-addressing hash table with linear probing:\n" +
			"a scripted demo of fill-up and growth, and wall-clock benchmarks\n" +
			"against the built-in map.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.AddCommand(newVersionCmd())
	root.AddCommand(newDemoCmd())
	root.AddCommand(newBenchCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the probemap version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "probemap v%s\nmodule: %s\n", probemap.Version, modulePath)
			return nil
		},
	}
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}
