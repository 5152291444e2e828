package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Continuously print status as the working tree changes",
	Run: func(cmd *cobra.Command, args []string) {
		p, closeLog, err := openProject()
		if err != nil {
			FatalError("%v", err)
		}
		defer closeLog()

		w, err := p.Watch()
		if err != nil {
			FatalError("%v", err)
		}
		defer w.Close()

		fmt.Println("watching for changes (Ctrl-C to stop)...")
		for {
			select {
			case st := <-w.Changes:
				printStatus(st)
			case err := <-w.Errors:
				fmt.Printf("watch error: %v\n", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
