package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/untoldecay/mvcs/internal/core"
)

var branchCmd = &cobra.Command{
	Use:     "branch",
	GroupID: "lifecycle",
	Short:   "List branches",
	Run: func(cmd *cobra.Command, args []string) {
		p, closeLog, err := openProject()
		if err != nil {
			FatalError("%v", err)
		}
		defer closeLog()

		names := make([]string, 0, len(p.Branches))
		for name := range p.Branches {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			marker := "  "
			if name == p.CurrentBranch {
				marker = "* "
			}
			fmt.Printf("%s%s (%s)\n", marker, name, shortID(p.Branches[name]))
		}
	},
}

// withSavedProject opens the project, runs fn against it, and saves on
// success.
func withSavedProject(fn func(p *core.Project) error) {
	p, closeLog, err := openProject()
	if err != nil {
		FatalError("%v", err)
	}
	defer closeLog()

	if err := fn(p); err != nil {
		FatalError("%v", err)
	}
	if err := p.Save(); err != nil {
		FatalError("%v", err)
	}
}

var branchCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a branch at the current commit",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withSavedProject(func(p *core.Project) error { return p.CreateBranch(args[0]) })
	},
}

var branchDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a branch",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withSavedProject(func(p *core.Project) error { return p.DeleteBranch(args[0]) })
	},
}

var branchRenameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a branch",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		withSavedProject(func(p *core.Project) error { return p.RenameBranch(args[0], args[1]) })
	},
}

var branchDefaultCmd = &cobra.Command{
	Use:   "default <name>",
	Short: "Set the default branch",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withSavedProject(func(p *core.Project) error { return p.SetDefaultBranch(args[0]) })
	},
}

func init() {
	branchCmd.AddCommand(branchCreateCmd, branchDeleteCmd, branchRenameCmd, branchDefaultCmd)
	rootCmd.AddCommand(branchCmd)
}
