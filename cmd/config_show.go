package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/PolarWolf314/liteend/internal/configs"
	"github.com/PolarWolf314/liteend/internal/ui"

	"github.com/spf13/cobra"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
	ConfigCmd.AddCommand(configShowCmd)
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the effective scaffold configuration",
	Long: `Displays the configuration that liteend new will use: the values from
the configuration file, with defaults filling in anything not set.

Examples:
  liteend config show
  liteend config show --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Debugf("Flags: json=%t", configShowJSON)

		config, err := configs.LoadScaffoldConfig()
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to load scaffold config: %v", err)
		}

		out := cmd.OutOrStdout()
		if configShowJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(config)
		}

		source := ui.Path.Sprint(configs.ConfigPath())
		if _, err := os.Stat(configs.ConfigPath()); err != nil {
			source = ui.Muted.Sprint("built-in defaults")
		}

		fmt.Fprintf(out, "Scaffold configuration %s\n", source)
		fmt.Fprintf(out, "  Template:         %s\n", ui.Highlight.Sprint(config.TemplateURL))
		fmt.Fprintf(out, "  Install command:  %s\n", ui.Code.Sprint(config.InstallCommand))
		if config.GenerateCommand != "" {
			fmt.Fprintf(out, "  Generate command: %s\n", ui.Code.Sprint(config.GenerateCommand))
		} else {
			fmt.Fprintf(out, "  Generate command: %s\n", ui.Muted.Sprint("none"))
		}
		fmt.Fprintf(out, "  Env files:        %s -> %s\n", ui.Path.Sprint(config.SampleFile), ui.Path.Sprint(config.EnvFile))
		fmt.Fprintf(out, "  Secret fields:    %s\n", strings.Join(config.SecretFields, ", "))
		fmt.Fprintf(out, "  Secret length:    %d\n", config.SecretLength)
		return nil
	},
	SilenceUsage: true,
}
