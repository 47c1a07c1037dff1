package main

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/liteend/cmd"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "liteend",
	Short: "liteend - scaffold new projects from the LiteEnd template.",
	Long: `liteend clones the LiteEnd backend template, installs its dependencies
and prepares a .env file with freshly generated secrets.

Usage:
  liteend <command> [flags]

Available Commands:
  new       Create a new project
  config    Manage scaffold configuration

Run 'liteend help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		figure.Write(cmd.OutOrStdout(), figure.NewFigure("LiteEnd", "", true))
		fmt.Fprintln(cmd.OutOrStdout(), "Welcome to LiteEnd CLI! Run 'liteend --help' to see available commands.")
	},
}

func init() {
	rootCmd.AddCommand(cmd.NewCmd)
	rootCmd.AddCommand(cmd.ConfigCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
