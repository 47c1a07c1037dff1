package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PolarWolf314/liteend/internal/configs"
	kerrors "github.com/PolarWolf314/liteend/internal/errors"
	logger "github.com/PolarWolf314/liteend/internal/logging"
	"github.com/PolarWolf314/liteend/internal/runner"
	"github.com/PolarWolf314/liteend/internal/secrets"
	"github.com/PolarWolf314/liteend/internal/ui"
	"github.com/PolarWolf314/liteend/internal/workflows"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	newGenerate  bool
	newGitRemote string

	// newRunner is swapped out by tests; nil means the real exec runner.
	newRunner runner.Runner

	NewCmd = &cobra.Command{
		Use:   "new <project-name>",
		Short: "Create a new project",
		Long: `Creates a new project from the LiteEnd template.

The template is cloned into a directory named after the project and its
dependencies are installed. By default a .env file is then generated from
.env.sample with fresh random secrets and the project's key generation
script is run.

Failures of git or npm are reported but do not stop the remaining steps.

Examples:
  # Create a project with generated secrets
  liteend new my-app

  # Skip secret generation
  liteend new my-app --gen=false

  # Point origin at your own repository
  liteend new my-app --git git@github.com:me/my-app.git`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
				Out:     cmd.OutOrStdout(),
				Err:     cmd.ErrOrStderr(),
			}
			Logger.Debugf("Initializing new command with verbose=%t, debug=%t", verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()

			projectName := ""
			if len(args) > 0 {
				projectName = strings.TrimSpace(args[0])
			}
			if projectName == "" {
				printStatus(out, ui.StatusError, "Project name is required!")
				return
			}

			printStatus(out, ui.StatusSuccess, "Welcome to LiteEnd CLI!")

			Logger.Debugf("Loading scaffold config from %s", configs.ConfigPath())
			config, err := configs.LoadScaffoldConfig()
			if err != nil {
				printError(out, "Failed to load scaffold configuration", err)
				return
			}

			result, err := workflows.NewProject(cmd.Context(), workflows.NewProjectOptions{
				ProjectName:  projectName,
				Generate:     newGenerate,
				GitRemote:    newGitRemote,
				Config:       config,
				Runner:       newRunner,
				Materializer: &spinnerMaterializer{inner: config.Materializer(), logger: Logger},
				Logger:       Logger,
				Reporter: func(kind ui.StatusKind, msg string) {
					printStatus(out, kind, msg)
				},
			})
			if err != nil {
				if errors.Is(err, kerrors.ErrSampleNotFound) {
					printError(out, "The template has no "+config.SampleFile+" to generate keys from", err)
					return
				}
				printError(out, "Failed to generate .env keys", err)
				return
			}

			if failed := result.FailedSteps(); len(failed) > 0 {
				Logger.Warnf("%d step(s) reported failures", len(failed))
			}

			printStatus(out, ui.StatusSuccess, "Project created!")
		},
	}
)

func init() {
	NewCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	NewCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	NewCmd.Flags().BoolVar(&newGenerate, "gen", true, "generate keys in .env file")
	NewCmd.Flags().StringVar(&newGitRemote, "git", "", "set git remote url")
}

// spinnerMaterializer shows a spinner while secrets are written.
type spinnerMaterializer struct {
	inner  workflows.Materializer
	logger logger.Logger
}

func (m *spinnerMaterializer) Materialize(projectDir string) (*secrets.MaterializeResult, error) {
	s, cleanup := startSpinner(m.logger, "Writing secrets...")
	defer cleanup()

	result, err := m.inner.Materialize(projectDir)
	if err != nil {
		return nil, err
	}

	s.FinalMSG = ui.StatusLine(ui.StatusSuccess, fmt.Sprintf("Wrote %s with %d fresh secrets",
		ui.Path.Sprint(result.EnvPath), len(result.Overwritten)+len(result.Inserted)))
	return result, nil
}

// GetNewCmd returns the NewCmd for testing.
func GetNewCmd() *cobra.Command {
	return NewCmd
}

// ResetGlobalState resets the new command's flags and hooks to their defaults for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	newGenerate = true
	newGitRemote = ""
	newRunner = nil
	NewCmd.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
}

// SetRunner replaces the command runner for testing.
func SetRunner(r runner.Runner) {
	newRunner = r
}
