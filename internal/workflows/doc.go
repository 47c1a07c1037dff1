// Package workflows provides the high-level orchestration behind liteend commands.
//
// A workflow sequences external tools and internal packages to implement one
// user-facing command, independent of CLI concerns such as flag parsing,
// spinners and colors. Progress is reported through a Reporter so the cmd
// package decides how it is rendered.
//
// # Available Workflows
//
//   - NewProject: clone the template, install dependencies, materialize
//     secrets, run the generate script and repoint the git remote
//
// # Error Handling
//
// External commands are run through a runner.Runner and their exit codes are
// recorded in the result, but a failing command does not stop the workflow.
// Only input errors and filesystem errors while writing secrets are returned.
// They are typed errors from internal/errors and can be checked with
// errors.Is().
//
// # Context Usage
//
// Workflow functions take a context.Context as their first parameter. It is
// passed on to every external command.
package workflows
