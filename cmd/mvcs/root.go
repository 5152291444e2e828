package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/untoldecay/mvcs/internal/appconfig"
)

var (
	jsonOutput bool
	noColor    bool
	authorFlag string
)

var rootCmd = &cobra.Command{
	Use:           "mvcs",
	Short:         "A minimal content-addressed version-control engine",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return appconfig.Initialize()
	},
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: "lifecycle", Title: "Lifecycle:"},
		&cobra.Group{ID: "history", Title: "History:"},
	)

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "accepted but has no effect: every command prints plain text")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")
	rootCmd.PersistentFlags().StringVar(&authorFlag, "author", "", "override the commit author identity")
}

// FatalError prints a formatted error to stderr and exits with status 1,
// mirroring the teacher CLI's error-reporting convention.
func FatalError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
