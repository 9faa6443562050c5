// Package cmd implements the langdetect command-line harness: the
// "CLI harness" external collaborator spec.md §1 leaves undetailed,
// wiring config, logging, metrics and the detector together.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "langdetect",
	Short:   "Statistical language identification",
	Version: version,
	Long: `langdetect identifies the most likely language(s) of a piece of text
using a naive-Bayes character n-gram classifier with randomized
Monte-Carlo trials.

Use "langdetect detect --help" to classify text from the command line.`,
}

// Execute runs the root command, exiting the process with status 1 on
// failure, matching the teacher pack's CLI entry point.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
