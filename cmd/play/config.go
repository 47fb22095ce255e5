package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-play/internal/config"
	"github.com/vovakirdan/tui-play/internal/fault"
)

var flagDefaultConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the configuration",
	Long: `Print the configuration in effect and where it was loaded from.
With --default, print the built-in configuration file instead, as a
starting point for ~/.arcade/play.yaml.`,
	Args: usageArgs(cobra.NoArgs),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaultConfig, "default", false, "Print the built-in configuration file")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagDefaultConfig {
		if _, err := out.Write(config.DefaultYAML()); err != nil {
			return fault.IO("write", "stdout", err)
		}
		return nil
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fault.Internal("encode config", err)
	}
	if _, err := fmt.Fprintf(out, "# source: %s\n%s", cfgSource, data); err != nil {
		return fault.IO("write", "stdout", err)
	}
	return nil
}
