package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logSince string

var logCmd = &cobra.Command{
	Use:     "log",
	GroupID: "history",
	Short:   "Show commit history",
	Run: func(cmd *cobra.Command, args []string) {
		p, closeLog, err := openProject()
		if err != nil {
			FatalError("%v", err)
		}
		defer closeLog()

		if logSince != "" {
			commits, err := p.CommitsSince(logSince)
			if err != nil {
				FatalError("%v", err)
			}
			for _, c := range commits {
				printLogEntry(c.ID, c.Title, c.Date, c.AuthorID)
			}
			return
		}

		id := p.CurrentCommitID
		for id != "" {
			c, ok := p.Commits[id]
			if !ok {
				break
			}
			printLogEntry(c.ID, c.Title, c.Date, c.AuthorID)
			id = c.Parent
		}
	},
}

func printLogEntry(id, title, date, author string) {
	fmt.Printf("%s %s  %s (%s)\n", styled(headerStyle, shortID(id)), date, title, author)
}

func init() {
	logCmd.Flags().StringVar(&logSince, "since", "", `show only commits since a natural-language time (e.g. "3 days ago")`)
	rootCmd.AddCommand(logCmd)
}
