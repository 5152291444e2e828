package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/untoldecay/mvcs/internal/appconfig"
)

var commitTitle, commitDescription string

var commitCmd = &cobra.Command{
	Use:     "commit [files...]",
	GroupID: "lifecycle",
	Short:   "Record the current working-tree state as a new commit",
	Run: func(cmd *cobra.Command, args []string) {
		if commitTitle == "" {
			FatalError("--title is required")
		}

		p, closeLog, err := openProject()
		if err != nil {
			FatalError("%v", err)
		}
		defer closeLog()

		author := appconfig.Author(authorFlag)
		c, err := p.Commit(args, author, commitTitle, commitDescription)
		if err != nil {
			FatalError("%v", err)
		}
		if err := p.Save(); err != nil {
			FatalError("%v", err)
		}

		fmt.Printf("[%s %s] %s\n", p.CurrentBranch, shortID(c.ID), c.Title)
	},
}

func init() {
	commitCmd.Flags().StringVarP(&commitTitle, "title", "m", "", "commit title (required)")
	commitCmd.Flags().StringVar(&commitDescription, "description", "", "commit description (auto-generated if omitted and a summarizer is configured)")
	rootCmd.AddCommand(commitCmd)
}
