package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-scan/internal/config"
)

func initCmd() *cobra.Command {
	var force bool
	var outPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a scan configuration file with default values",
		Long: `init writes a YAML config file with the default build/cluster
parameters, ready to edit and pass to "scan cluster --config".

Examples:
  scan init
  scan init --config scan.yaml --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(outPath, force)
		},
	}

	cmd.Flags().StringVarP(&outPath, "config", "c", "scan.yaml", "Output path for the config file")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")

	return cmd
}

func runInit(outPath string, force bool) error {
	if !force {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("init: %s already exists (use --force to overwrite)", outPath)
		}
	}

	out, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("init: %w", err)
	}
	fmt.Printf("Wrote default config to %s\n", outPath)
	return nil
}
