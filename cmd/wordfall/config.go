package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordfall/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a game would start with, after the search
order (--config, ~/.wordfall/configs, ./configs, built-in defaults) and
normalization. Redirect it to a file to start a custom config.

Examples:
  wordfall config > ~/.wordfall/configs/wordfall.yaml
  wordfall config --defaults
  wordfall config --config ./my.yaml --difficulty easy`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.GetDefaultYAML())
		return err
	}

	e, err := setup(true)
	if err != nil {
		return err
	}
	defer e.closeLog()

	cfg := e.config
	if e.difficulty != "" {
		config.ApplyPreset(&cfg, e.difficulty)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
