package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/untoldecay/mvcs/internal/appconfig"
	"github.com/untoldecay/mvcs/internal/core"
)

var initNonInteractive bool

var initCmd = &cobra.Command{
	Use:     "init",
	GroupID: "lifecycle",
	Short:   "Create a new project in the current directory",
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			FatalError("%v", err)
		}

		title := filepath.Base(cwd)
		description := ""

		if !initNonInteractive {
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Project title").
						Value(&title),
					huh.NewText().
						Title("Description").
						Description("What is this project? (optional)").
						Value(&description),
				),
			).WithTheme(huh.ThemeDracula())

			if err := form.Run(); err != nil {
				if err == huh.ErrUserAborted {
					fmt.Fprintln(os.Stderr, "Init canceled.")
					os.Exit(0)
				}
				FatalError("form error: %v", err)
			}
		}

		author := appconfig.Author(authorFlag)
		p, err := core.Create(cwd, author, title, description, core.Options{})
		if err != nil {
			FatalError("%v", err)
		}
		defer p.Close()
		if err := p.Save(); err != nil {
			FatalError("%v", err)
		}

		fmt.Printf("Initialized empty project %q in %s\n", title, cwd)
	},
}

func init() {
	initCmd.Flags().BoolVar(&initNonInteractive, "yes", false, "skip the interactive wizard")
	rootCmd.AddCommand(initCmd)
}
