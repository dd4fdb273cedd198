package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/ghostbrawl/internal/config"
)

var flagTOML bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and validate tuning files",
	Long: `Tuning files are searched in this order:
  --config <path>
  ~/.ghostbrawl/ghostbrawl.yaml (or .toml)
  ./configs/ghostbrawl.yaml (or .toml)
  built-in defaults

Fields a file leaves out keep their default values.`,
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective tuning",
	Long: `Print the tuning the game would use, after --difficulty is applied.

Examples:
  ghostbrawl config dump > ~/.ghostbrawl/ghostbrawl.yaml
  ghostbrawl config dump --toml --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfigDump,
}

var configCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a tuning file",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigCheck,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show which tuning file would be loaded",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if path := config.Locate(flagConfig); path != "" {
			fmt.Println(path)
			return
		}
		fmt.Println("(built-in defaults)")
	},
}

func init() {
	configDumpCmd.Flags().BoolVar(&flagTOML, "toml", false, "Print TOML instead of YAML")

	configCmd.AddCommand(configDumpCmd)
	configCmd.AddCommand(configCheckCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigDump(_ *cobra.Command, _ []string) error {
	tuning, err := loadTuning()
	if err != nil {
		return err
	}

	var out []byte
	if flagTOML {
		out, err = toml.Marshal(tuning)
	} else {
		out, err = yaml.Marshal(tuning)
	}
	if err != nil {
		return fmt.Errorf("encode tuning: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}

func runConfigCheck(_ *cobra.Command, args []string) error {
	if _, err := config.LoadFile(args[0]); err != nil {
		return err
	}
	fmt.Printf("%s: ok\n", args[0])
	return nil
}
