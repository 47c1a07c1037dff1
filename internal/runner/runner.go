// Package runner runs external commands and reports how they exited.
//
// A command that runs and exits non-zero is not an error: the exit code is
// returned in Result and the caller decides what to do with it. Errors are
// reserved for commands that could not be run at all (missing binary,
// cancelled context, I/O failure).
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ExitStartFailed is the exit code reported when a command could not be started.
const ExitStartFailed = -1

// Options configures a single command invocation.
type Options struct {
	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Env is overlaid on the current environment.
	Env map[string]string

	// Inherit connects the command to this process's stdin, stdout and stderr.
	// When false, stdout and stderr are captured into the Result.
	Inherit bool
}

// Result is the outcome of a command that was started.
type Result struct {
	// Command is the command line as it would be typed in a shell.
	Command  string
	ExitCode int

	// Stdout and Stderr are empty when the streams were inherited.
	Stdout string
	Stderr string
}

// Succeeded reports whether the command exited with code 0.
func (r Result) Succeeded() bool {
	return r.ExitCode == 0
}

// Runner runs external commands.
type Runner interface {
	Run(ctx context.Context, name string, args []string, opts Options) (Result, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// NewExecRunner returns the production Runner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command and blocks until it exits.
func (r *ExecRunner) Run(ctx context.Context, name string, args []string, opts Options) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	result := Result{Command: CommandLine(name, args)}

	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}

	if len(opts.Env) > 0 {
		cmd.Env = cmd.Environ()
		for k, v := range opts.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	var stdout, stderr bytes.Buffer
	if opts.Inherit {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	} else {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	err := cmd.Run()
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		result.ExitCode = ExitStartFailed
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		return result, fmt.Errorf("running %s: %w", result.Command, err)
	}

	return result, nil
}

// CommandLine joins a command name and its arguments with spaces.
func CommandLine(name string, args []string) string {
	return strings.TrimSpace(name + " " + strings.Join(args, " "))
}

// ParseCommandLine splits a configured command such as "npm run db:gen" into
// the executable and its arguments. Quoting is not interpreted.
func ParseCommandLine(command string) (string, []string, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("empty command")
	}
	return fields[0], fields[1:], nil
}
