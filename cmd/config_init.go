package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/PolarWolf314/liteend/internal/configs"
	kerrors "github.com/PolarWolf314/liteend/internal/errors"
	"github.com/PolarWolf314/liteend/internal/ui"

	"github.com/spf13/cobra"
)

var (
	configInitForce    bool
	configInitTemplate string
)

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing configuration file")
	configInitCmd.Flags().StringVar(&configInitTemplate, "template", "", "template repository to clone (defaults to LiteEnd)")
	ConfigCmd.AddCommand(configInitCmd)
}

// resetConfigInitState resets the config init command's global state for testing.
func resetConfigInitState() {
	configInitForce = false
	configInitTemplate = ""
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default scaffold configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configs.ConfigPath()
		ConfigLogger.Debugf("Config path: %s", path)

		if _, err := os.Stat(path); err == nil && !configInitForce {
			printStatus(cmd.OutOrStdout(), ui.StatusError, "A configuration file already exists at "+ui.Path.Sprint(path))
			printStatus(cmd.OutOrStdout(), ui.StatusInfo, "Run "+ui.Code.Sprint("liteend config init")+" with "+ui.Flag.Sprint("--force")+" to overwrite it")
			return fmt.Errorf("%s: %w", path, kerrors.ErrConfigExists)
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return ConfigLogger.ErrorfAndReturn("Failed to check %s: %v", path, err)
		}

		config := configs.DefaultScaffoldConfig()
		if configInitTemplate != "" {
			config.TemplateURL = configInitTemplate
		}

		if err := configs.SaveScaffoldConfig(config); err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to write configuration: %v", err)
		}

		printStatus(cmd.OutOrStdout(), ui.StatusSuccess, "Wrote scaffold configuration to "+ui.Path.Sprint(path))
		return nil
	},
	SilenceUsage: true,
}
