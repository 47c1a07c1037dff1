package workflows

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/liteend/internal/configs"
	"github.com/PolarWolf314/liteend/internal/envfile"
	kerrors "github.com/PolarWolf314/liteend/internal/errors"
	"github.com/PolarWolf314/liteend/internal/runner"
	"github.com/PolarWolf314/liteend/internal/ui"
)

type recordedCall struct {
	command string
	args    []string
	dir     string
	inherit bool
}

// stubRunner records commands and fakes `git clone` by creating the project
// directory with a sample env file.
type stubRunner struct {
	calls     []recordedCall
	exitCodes map[string]int
	startErrs map[string]error
	sample    string
}

func (s *stubRunner) Run(ctx context.Context, name string, args []string, opts runner.Options) (runner.Result, error) {
	command := runner.CommandLine(name, args)
	s.calls = append(s.calls, recordedCall{command: command, args: args, dir: opts.Dir, inherit: opts.Inherit})

	if err := s.startErrs[name]; err != nil {
		return runner.Result{Command: command, ExitCode: runner.ExitStartFailed}, err
	}

	if name == "git" && len(args) == 4 && args[0] == "clone" {
		projectDir := filepath.Join(opts.Dir, args[3])
		if err := os.MkdirAll(projectDir, 0755); err != nil {
			return runner.Result{}, err
		}
		if s.sample != "" {
			if err := os.WriteFile(filepath.Join(projectDir, ".env.sample"), []byte(s.sample), 0644); err != nil { // #nosec G306
				return runner.Result{}, err
			}
		}
	}

	return runner.Result{Command: command, ExitCode: s.exitCodes[name]}, nil
}

func (s *stubRunner) commands() []string {
	var out []string
	for _, c := range s.calls {
		out = append(out, c.command)
	}
	return out
}

type reportedLine struct {
	kind ui.StatusKind
	msg  string
}

func collectReports(lines *[]reportedLine) Reporter {
	return func(kind ui.StatusKind, msg string) {
		*lines = append(*lines, reportedLine{kind, msg})
	}
}

func TestNewProject_FullSequence(t *testing.T) {
	workDir := t.TempDir()
	stub := &stubRunner{sample: "SALT=x\nDATABASE_PASSWORD=y\n# comment\n\nOTHER=1"}
	var reports []reportedLine

	result, err := NewProject(context.Background(), NewProjectOptions{
		ProjectName: "my-app",
		Generate:    true,
		GitRemote:   "git@example.com:me/my-app.git",
		WorkDir:     workDir,
		Runner:      stub,
		Reporter:    collectReports(&reports),
	})
	if err != nil {
		t.Fatalf("NewProject returned error: %v", err)
	}

	want := []string{
		"git clone -- https://github.com/uxname/liteend.git my-app",
		"npm install --legacy-peer-deps",
		"npm run db:gen",
		"git remote set-url origin git@example.com:me/my-app.git",
	}
	if got := stub.commands(); strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("commands = %v, want %v", got, want)
	}

	projectDir := filepath.Join(workDir, "my-app")
	if stub.calls[0].dir != workDir {
		t.Errorf("clone ran in %q, want %q", stub.calls[0].dir, workDir)
	}
	for _, call := range stub.calls[1:] {
		if call.dir != projectDir {
			t.Errorf("%s ran in %q, want %q", call.command, call.dir, projectDir)
		}
	}
	for _, call := range stub.calls {
		if !call.inherit {
			t.Errorf("%s should inherit standard streams", call.command)
		}
	}

	env, err := envfile.ReadFile(filepath.Join(projectDir, ".env"))
	if err != nil {
		t.Fatalf("Failed to read .env: %v", err)
	}
	for _, field := range []string{"SALT", "DATABASE_PASSWORD", "LOGS_ADMIN_PANEL_PASSWORD"} {
		if v, _ := env.Get(field); len(v) != 64 {
			t.Errorf("%s = %q, want a 64 character token", field, v)
		}
	}

	if result.Secrets == nil || len(result.Secrets.Inserted) != 1 {
		t.Errorf("Secrets = %+v", result.Secrets)
	}
	if len(result.FailedSteps()) != 0 {
		t.Errorf("unexpected failed steps: %+v", result.FailedSteps())
	}
	if len(reports) == 0 || reports[len(reports)-1].msg != "Git remote set to git@example.com:me/my-app.git!" {
		t.Errorf("unexpected reports: %+v", reports)
	}
}

func TestNewProject_NoGenerateNoRemote(t *testing.T) {
	workDir := t.TempDir()
	stub := &stubRunner{}

	result, err := NewProject(context.Background(), NewProjectOptions{
		ProjectName: "plain",
		Generate:    false,
		WorkDir:     workDir,
		Runner:      stub,
	})
	if err != nil {
		t.Fatalf("NewProject returned error: %v", err)
	}

	if len(stub.calls) != 2 {
		t.Fatalf("expected clone and install only, got %v", stub.commands())
	}
	if result.Secrets != nil {
		t.Error("Secrets should be nil when generation is disabled")
	}
	if _, err := os.Stat(filepath.Join(workDir, "plain", ".env")); !os.IsNotExist(err) {
		t.Error(".env should not be written when generation is disabled")
	}
}

func TestNewProject_RequiresName(t *testing.T) {
	stub := &stubRunner{}
	called := false

	_, err := NewProject(context.Background(), NewProjectOptions{
		Runner:   stub,
		Generate: true,
		Reporter: func(ui.StatusKind, string) { called = true },
	})
	if !errors.Is(err, kerrors.ErrProjectNameRequired) {
		t.Fatalf("error = %v, want ErrProjectNameRequired", err)
	}
	if len(stub.calls) != 0 || called {
		t.Error("no side effects expected without a project name")
	}
}

func TestNewProject_ContinuesAfterCommandFailures(t *testing.T) {
	workDir := t.TempDir()
	stub := &stubRunner{
		sample:    "PORT=3000",
		exitCodes: map[string]int{"npm": 1},
	}
	var reports []reportedLine

	result, err := NewProject(context.Background(), NewProjectOptions{
		ProjectName: "flaky",
		Generate:    true,
		GitRemote:   "https://example.com/flaky.git",
		WorkDir:     workDir,
		Runner:      stub,
		Reporter:    collectReports(&reports),
	})
	if err != nil {
		t.Fatalf("NewProject returned error: %v", err)
	}

	if len(stub.calls) != 4 {
		t.Errorf("all four commands should run, got %v", stub.commands())
	}

	failed := result.FailedSteps()
	if len(failed) != 2 || failed[0].Name != StepInstall || failed[1].Name != StepGenerate {
		t.Errorf("failed steps = %+v", failed)
	}

	warnings := 0
	for _, r := range reports {
		if r.kind == ui.StatusWarning {
			warnings++
		}
	}
	if warnings != 2 {
		t.Errorf("expected 2 warnings, got %d: %+v", warnings, reports)
	}
}

func TestNewProject_StartFailureIsRecorded(t *testing.T) {
	workDir := t.TempDir()
	stub := &stubRunner{startErrs: map[string]error{"npm": errors.New("executable file not found")}}

	result, err := NewProject(context.Background(), NewProjectOptions{
		ProjectName: "nonpm",
		WorkDir:     workDir,
		Runner:      stub,
	})
	if err != nil {
		t.Fatalf("NewProject returned error: %v", err)
	}

	failed := result.FailedSteps()
	if len(failed) != 1 || failed[0].Name != StepInstall || failed[0].Err == nil {
		t.Errorf("failed steps = %+v", failed)
	}
}

func TestNewProject_MissingSampleAbortsGeneration(t *testing.T) {
	workDir := t.TempDir()
	stub := &stubRunner{}

	result, err := NewProject(context.Background(), NewProjectOptions{
		ProjectName: "nosample",
		Generate:    true,
		GitRemote:   "https://example.com/nosample.git",
		WorkDir:     workDir,
		Runner:      stub,
	})
	if !errors.Is(err, kerrors.ErrSampleNotFound) {
		t.Fatalf("error = %v, want ErrSampleNotFound", err)
	}
	if result == nil || len(result.Steps) != 2 {
		t.Fatalf("expected clone and install to have run, got %+v", result)
	}
	for _, c := range stub.commands() {
		if strings.Contains(c, "db:gen") || strings.Contains(c, "remote") {
			t.Errorf("%s should not run after a materialization failure", c)
		}
	}
}

func TestNewProject_CustomConfig(t *testing.T) {
	workDir := t.TempDir()
	stub := &stubRunner{sample: "JWT_SECRET=changeme"}

	config := configs.DefaultScaffoldConfig()
	config.TemplateURL = "https://example.com/other.git"
	config.InstallCommand = "pnpm install"
	config.GenerateCommand = ""
	config.SecretFields = []string{"JWT_SECRET"}
	config.SecretLength = 16

	_, err := NewProject(context.Background(), NewProjectOptions{
		ProjectName: "custom",
		Generate:    true,
		WorkDir:     workDir,
		Config:      config,
		Runner:      stub,
	})
	if err != nil {
		t.Fatalf("NewProject returned error: %v", err)
	}

	want := []string{"git clone -- https://example.com/other.git custom", "pnpm install"}
	if got := stub.commands(); strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("commands = %v, want %v", got, want)
	}

	env, err := envfile.ReadFile(filepath.Join(workDir, "custom", ".env"))
	if err != nil {
		t.Fatalf("Failed to read .env: %v", err)
	}
	if v, _ := env.Get("JWT_SECRET"); len(v) != 16 {
		t.Errorf("JWT_SECRET = %q, want 16 characters", v)
	}
	if env.Len() != 1 {
		t.Errorf("unexpected keys %v", env.Keys())
	}
}

func TestNewProject_DashPrefixedNameIsNotAnOption(t *testing.T) {
	workDir := t.TempDir()
	stub := &stubRunner{}

	result, err := NewProject(context.Background(), NewProjectOptions{
		ProjectName: "-x",
		WorkDir:     workDir,
		Runner:      stub,
	})
	if err != nil {
		t.Fatalf("NewProject returned error: %v", err)
	}

	want := []string{"clone", "--", configs.DefaultTemplateURL, "-x"}
	if got := stub.calls[0].args; strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("clone args = %v, want %v", got, want)
	}
	if result.ProjectDir != filepath.Join(workDir, "-x") {
		t.Errorf("ProjectDir = %q", result.ProjectDir)
	}
	if _, err := os.Stat(result.ProjectDir); err != nil {
		t.Errorf("project directory was not created: %v", err)
	}
}
