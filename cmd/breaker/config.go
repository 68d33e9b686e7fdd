package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-breaker/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a run would use as YAML, after applying
--config, --difficulty and --fps. Use --defaults to print the built-in
defaults instead.

Config search order:
  --config path -> ~/.arcade/configs/breaker.yaml -> ./configs/breaker.yaml -> built-in`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print built-in defaults")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
