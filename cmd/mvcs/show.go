package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <commit>",
	Short: "Show a commit's metadata and description",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, closeLog, err := openProject()
		if err != nil {
			FatalError("%v", err)
		}
		defer closeLog()

		id, err := p.MatchCommitID(args[0])
		if err != nil {
			FatalError("%v", err)
		}
		c := p.Commits[id]

		fmt.Printf("commit %s\n", c.ID)
		fmt.Printf("Author: %s\n", c.AuthorID)
		fmt.Printf("Date:   %s\n\n", c.Date)
		fmt.Printf("    %s\n\n", c.Title)

		if c.Description == "" {
			return
		}
		if noColor {
			fmt.Println(c.Description)
			return
		}
		rendered, err := glamour.Render(c.Description, "dark")
		if err != nil {
			fmt.Println(c.Description)
			return
		}
		fmt.Print(rendered)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
