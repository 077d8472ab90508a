package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/logi2048/internal/config"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective engine configuration",
		Long: `Print the configuration the engine would run with, as YAML.

The file is resolved in this order: --config, ~/.logi2048/config.yaml,
./configs/engine.yaml, then the built-in defaults. --seed overrides the
seed from the file.`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}
}

func runConfig(cmd *cobra.Command, args []string) error {
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
