package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "loom",
		Short: "Loom model-driven code generator",
		Long: `Loom reads a shape model and generates Go types, runtime schema
descriptors, and decoders for every shape in it.`,
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("loom %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
	},
}
