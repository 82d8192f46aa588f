package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chemreact",
	Short: "chemreact is an interactive chemistry reaction backend.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("welcome to use chemreact, use `chemreact -h` for help")
	},
}

// Execute ...
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
