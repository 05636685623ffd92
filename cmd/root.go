package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "suitomancer",
	Short: "Tool for exploring the four playing-card suits",
	Long: `Suitomancer is a command-line companion to cartomancer for standard
French-suited playing cards. It knows the four suits, their red/black
classification, and how to render them in a terminal.`,
}

func init() {
	RootCmd.AddCommand(demoCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
