package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.3.1"

// Exit codes: configuration and usage problems are distinguished from
// runtime failures so wrapper scripts can tell them apart.
const (
	ExitSuccess      = 0
	ExitRuntimeError = 1
	ExitConfigError  = 2
)

var rootCmd = &cobra.Command{
	Use:   "shotpress [project-dir]",
	Short: "Redact code listings and screenshots, then press screenshots into a PDF",
	Long: `Shotpress prepares project files for publication. It strips marked regions
from code listings, masks configured regions in screenshot images, and lays
the cleaned screenshots out two per page in a single PDF.

With no --code or --screenshots globs, the project directory is scanned in
sorted order: image files become screenshots and text files become code
listings.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectDir := "."
		if len(args) == 1 {
			projectDir = args[0]
		}
		runPress(cmd, projectDir)
		return nil
	},
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print shotpress version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "shotpress version %s\n", version)
	},
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitConfigError
	}

	return exitCode
}
