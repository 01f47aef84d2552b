package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bigboard/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads the configuration the same way 'play' does and prints it as
YAML, preceded by a comment naming where it came from.

Search order:
  --config path
  ~/.bigboard/config.yaml
  ./configs/bigboard.yaml
  built-in defaults`,
	Run: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fatal("%v", err)
	}

	data, err := cfg.Marshal()
	if err != nil {
		fatal("%v", err)
	}

	fmt.Printf("# source: %s\n", source)
	os.Stdout.Write(data)
}
