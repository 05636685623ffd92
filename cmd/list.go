package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/suitomancer/internal/config"
	"github.com/arcanaland/suitomancer/internal/suit"
)

// listCmd represents the ls command
var listCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the four suits in declaration order",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}

		if !cfg.Display.Color {
			colorize.NoColor = true
		}

		for _, s := range suit.Suits() {
			label := fmt.Sprintf("%s %-8s", s.Symbol(), s)
			if cfg.Display.Style == config.StyleSymbols {
				label = s.Symbol()
			}

			tag := " "
			if t := s.Tag(); t != 0 {
				tag = string(t)
			}

			line := fmt.Sprintf("%s  [%s]  %s", label, tag, s.Color())
			if s.Color() == suit.Red {
				colorize.New(colorize.FgRed).Println(line)
			} else {
				fmt.Println(line)
			}
		}
	},
}

func init() {
	RootCmd.AddCommand(listCmd)
}
