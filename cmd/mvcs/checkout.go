package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkoutBranchFlag bool

var checkoutCmd = &cobra.Command{
	Use:     "checkout <commit-or-branch>",
	GroupID: "lifecycle",
	Short:   "Materialize a commit or branch tip into the working tree",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, closeLog, err := openProject()
		if err != nil {
			FatalError("%v", err)
		}
		defer closeLog()

		target := args[0]
		if checkoutBranchFlag {
			if err := p.CheckoutBranch(target); err != nil {
				FatalError("%v", err)
			}
		} else if _, isBranch := p.Branches[target]; isBranch {
			if err := p.CheckoutBranch(target); err != nil {
				FatalError("%v", err)
			}
		} else {
			if err := p.Checkout(target); err != nil {
				FatalError("%v", err)
			}
		}

		if err := p.Save(); err != nil {
			FatalError("%v", err)
		}

		fmt.Printf("checked out %s at %s\n", target, shortID(p.CurrentCommitID))
	},
}

func init() {
	checkoutCmd.Flags().BoolVarP(&checkoutBranchFlag, "branch", "b", false, "treat the argument as a branch name")
	rootCmd.AddCommand(checkoutCmd)
}
