package workflows

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/PolarWolf314/liteend/internal/configs"
	kerrors "github.com/PolarWolf314/liteend/internal/errors"
	logger "github.com/PolarWolf314/liteend/internal/logging"
	"github.com/PolarWolf314/liteend/internal/runner"
	"github.com/PolarWolf314/liteend/internal/secrets"
	"github.com/PolarWolf314/liteend/internal/ui"
)

// Step names recorded in NewProjectResult.Steps.
const (
	StepClone     = "clone"
	StepInstall   = "install"
	StepGenerate  = "generate"
	StepGitRemote = "git-remote"
)

// Reporter receives progress lines as the workflow runs.
type Reporter func(kind ui.StatusKind, msg string)

// Materializer writes the project's env file with fresh secrets.
type Materializer interface {
	Materialize(projectDir string) (*secrets.MaterializeResult, error)
}

// NewProjectOptions configures the new project workflow.
type NewProjectOptions struct {
	// ProjectName is both the display name and the directory the template is cloned into.
	ProjectName string

	// Generate materializes secrets and runs the generate command.
	Generate bool

	// GitRemote, when set, replaces the clone's origin URL.
	GitRemote string

	// WorkDir is the directory the project directory is created in. Empty means the
	// current directory.
	WorkDir string

	// Config defaults to configs.DefaultScaffoldConfig().
	Config *configs.ScaffoldConfig

	// Runner defaults to runner.NewExecRunner().
	Runner runner.Runner

	// Materializer defaults to Config.Materializer().
	Materializer Materializer

	Reporter Reporter
	Logger   logger.Logger
}

// StepResult records how one external command ended.
type StepResult struct {
	Name   string
	Result runner.Result

	// Err is set when the command could not be started.
	Err error
}

// Failed reports whether the command could not be started or exited non-zero.
func (s StepResult) Failed() bool {
	return s.Err != nil || !s.Result.Succeeded()
}

// NewProjectResult contains the outcome of a new project run.
type NewProjectResult struct {
	ProjectName string
	ProjectDir  string
	Steps       []StepResult

	// Secrets is nil when generation was disabled.
	Secrets *secrets.MaterializeResult
}

// FailedSteps returns the steps whose command failed.
func (r *NewProjectResult) FailedSteps() []StepResult {
	var failed []StepResult
	for _, step := range r.Steps {
		if step.Failed() {
			failed = append(failed, step)
		}
	}
	return failed
}

type newProjectRun struct {
	opts   NewProjectOptions
	result *NewProjectResult
}

// NewProject scaffolds a project from the configured template.
//
// External commands run in order with inherited standard streams. A command
// that fails is reported as a warning and the next step runs anyway; nothing
// is rolled back.
//
// Returns ErrProjectNameRequired before doing anything if the name is empty.
// Returns the materializer's error, wrapped, if the env file cannot be written;
// the generate command and remote update are skipped in that case.
func NewProject(ctx context.Context, opts NewProjectOptions) (*NewProjectResult, error) {
	if opts.ProjectName == "" {
		return nil, kerrors.ErrProjectNameRequired
	}
	if opts.Config == nil {
		opts.Config = configs.DefaultScaffoldConfig()
	}
	if opts.Runner == nil {
		opts.Runner = runner.NewExecRunner()
	}
	if opts.Materializer == nil {
		opts.Materializer = opts.Config.Materializer()
	}
	if opts.Reporter == nil {
		opts.Reporter = func(ui.StatusKind, string) {}
	}

	run := &newProjectRun{
		opts: opts,
		result: &NewProjectResult{
			ProjectName: opts.ProjectName,
			ProjectDir:  filepath.Join(opts.WorkDir, opts.ProjectName),
		},
	}

	run.report(ui.StatusInfo, fmt.Sprintf("Creating project %q", opts.ProjectName))

	run.report(ui.StatusInfo, "Cloning repository...")
	// "--" keeps a name like "-x" from being read as a git option.
	run.exec(ctx, StepClone, opts.WorkDir, "git", "clone", "--", opts.Config.TemplateURL, opts.ProjectName)
	run.report(ui.StatusInfo, "Repository cloned!")

	run.report(ui.StatusInfo, "Installing dependencies...")
	run.execConfigured(ctx, StepInstall, opts.Config.InstallCommand)
	run.report(ui.StatusInfo, "Dependencies installed!")

	if opts.Generate {
		run.report(ui.StatusInfo, "Generating .env keys")
		materialized, err := opts.Materializer.Materialize(run.result.ProjectDir)
		if err != nil {
			return run.result, fmt.Errorf("generating .env keys: %w", err)
		}
		run.result.Secrets = materialized
		opts.Logger.Infof("Wrote %s (%d secrets overwritten, %d inserted)",
			materialized.EnvPath, len(materialized.Overwritten), len(materialized.Inserted))

		if opts.Config.GenerateCommand != "" {
			run.execConfigured(ctx, StepGenerate, opts.Config.GenerateCommand)
		}
		run.report(ui.StatusInfo, "Keys generated!")
	}

	if opts.GitRemote != "" {
		run.report(ui.StatusInfo, "Setting git remote...")
		run.exec(ctx, StepGitRemote, run.result.ProjectDir, "git", "remote", "set-url", "origin", opts.GitRemote)
		run.report(ui.StatusInfo, fmt.Sprintf("Git remote set to %s!", opts.GitRemote))
	}

	return run.result, nil
}

func (r *newProjectRun) report(kind ui.StatusKind, msg string) {
	r.opts.Reporter(kind, msg)
}

// execConfigured runs a whitespace-separated command from the config inside the project directory.
func (r *newProjectRun) execConfigured(ctx context.Context, step, command string) {
	name, args, err := runner.ParseCommandLine(command)
	if err != nil {
		r.record(StepResult{Name: step, Result: runner.Result{ExitCode: runner.ExitStartFailed}, Err: err})
		return
	}
	r.exec(ctx, step, r.result.ProjectDir, name, args...)
}

func (r *newProjectRun) exec(ctx context.Context, step, dir, name string, args ...string) {
	r.opts.Logger.Debugf("Running %s in %q", runner.CommandLine(name, args), dir)
	result, err := r.opts.Runner.Run(ctx, name, args, runner.Options{Dir: dir, Inherit: true})
	r.record(StepResult{Name: step, Result: result, Err: err})
}

func (r *newProjectRun) record(step StepResult) {
	r.result.Steps = append(r.result.Steps, step)

	switch {
	case step.Err != nil:
		r.opts.Logger.Debugf("Step %s could not run: %v", step.Name, step.Err)
		r.report(ui.StatusWarning, fmt.Sprintf("%s step could not run: %v", step.Name, step.Err))
	case !step.Result.Succeeded():
		r.report(ui.StatusWarning, fmt.Sprintf("%s exited with code %d", step.Result.Command, step.Result.ExitCode))
	}
}
