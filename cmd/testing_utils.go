// Package cmd contains testing utilities shared between command tests.
// This file provides common functions for setting up test environments,
// capturing output, and faking the external tools liteend runs.
package cmd

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/PolarWolf314/liteend/internal/configs"
	"github.com/PolarWolf314/liteend/internal/runner"
	"github.com/spf13/cobra"
)

// setupTestEnvironment changes into tempDir and points the user config at tempUserDir.
func setupTestEnvironment(t *testing.T, tempDir, tempUserDir string) {
	t.Helper()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	originalUserSettings := configs.UserLiteendSettings

	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
		configs.UserLiteendSettings = originalUserSettings
		ResetGlobalState()
		ResetConfigState()
	})

	configs.UserLiteendSettings = &configs.UserSettings{
		UserConfigsPath: filepath.Join(tempUserDir, "config"),
	}
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stdoutReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stderrReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// createTestCLI creates a root command wired to the real subcommands with the given arguments.
func createTestCLI(args []string, stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "liteend",
		Short: "liteend - scaffold new projects from the LiteEnd template.",
	}
	rootCmd.AddCommand(NewCmd)
	rootCmd.AddCommand(ConfigCmd)

	for _, c := range []*cobra.Command{rootCmd, NewCmd, ConfigCmd} {
		c.SetOut(stdout)
		c.SetErr(stderr)
	}
	for _, c := range ConfigCmd.Commands() {
		c.SetOut(stdout)
		c.SetErr(stderr)
	}

	rootCmd.SetArgs(args)
	return rootCmd
}

// fakeToolRunner stands in for git and npm. A `git clone` creates the
// destination directory and, when sample is set, a .env.sample inside it.
type fakeToolRunner struct {
	mu       sync.Mutex
	commands []string
	sample   string
	exitCode map[string]int
}

func (f *fakeToolRunner) Run(ctx context.Context, name string, args []string, opts runner.Options) (runner.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	command := runner.CommandLine(name, args)
	f.commands = append(f.commands, command)

	if name == "git" && len(args) == 4 && args[0] == "clone" {
		projectDir := filepath.Join(opts.Dir, args[3])
		if err := os.MkdirAll(projectDir, 0755); err != nil {
			return runner.Result{}, err
		}
		if f.sample != "" {
			if err := os.WriteFile(filepath.Join(projectDir, ".env.sample"), []byte(f.sample), 0644); err != nil { // #nosec G306
				return runner.Result{}, err
			}
		}
	}

	return runner.Result{Command: command, ExitCode: f.exitCode[name]}, nil
}
