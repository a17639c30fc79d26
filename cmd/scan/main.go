package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set via ldflags at build time.
var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "scan",
		Short:   "scan - SCAN structural clustering over undirected graphs",
		Long:    `scan computes the SCAN closed-neighborhood clustering of an undirected graph, given as a plain edge list.`,
		Version: Version,
	}

	rootCmd.AddCommand(clusterCmd())
	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("scan version %s\n", Version)
		},
	}
}
