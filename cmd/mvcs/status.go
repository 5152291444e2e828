package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/untoldecay/mvcs/internal/core"
)

var statusCmd = &cobra.Command{
	Use:   "status [files...]",
	Short: "Show changes between the working tree and the current commit",
	Run: func(cmd *cobra.Command, args []string) {
		p, closeLog, err := openProject()
		if err != nil {
			FatalError("%v", err)
		}
		defer closeLog()

		st, err := p.Status(args)
		if err != nil {
			FatalError("%v", err)
		}

		printStatus(st)
	},
}

func printStatus(st *core.Status) {
	if len(st.Changes) == 0 {
		fmt.Println("nothing to commit, working tree clean")
		return
	}

	type line struct {
		sign, path string
	}
	var lines []line
	for _, ch := range st.Changes {
		switch {
		case ch.IsDelete():
			lines = append(lines, line{"-", st.LastItems[ch.From].Path})
		case ch.IsReplace():
			lines = append(lines, line{"~", st.NewItems[ch.To].Path})
		default:
			lines = append(lines, line{"+", st.NewItems[ch.To].Path})
		}
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].path < lines[j].path })

	for _, l := range lines {
		switch l.sign {
		case "+":
			fmt.Println(styled(addStyle, "+ "+l.path))
		case "-":
			fmt.Println(styled(delStyle, "- "+l.path))
		default:
			fmt.Println(styled(mutedStyle, "~ "+l.path))
		}
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
