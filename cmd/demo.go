package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/suitomancer/internal/suit"
)

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through every suit and its classification",
	Long: `Demo prints each of the four suits in declaration order, showing its
display string, its diagnostic representation, and its red/black
classification, then checks a suit for equality against itself.`,
	Run: func(cmd *cobra.Command, args []string) {
		runDemo(os.Stdout)
	},
}

// runDemo writes the suit walkthrough to w.
func runDemo(w io.Writer) {
	for _, s := range suit.Suits() {
		fmt.Fprintf(w, "As a string: %s\n", s)
		fmt.Fprintln(w, "As a repr: ")
		fmt.Fprintf(w, "%#v\n", s)
		fmt.Fprintln(w, s.Color())
		fmt.Fprintln(w, "-----")
	}

	first := suit.Suits()[0]
	fmt.Fprintln(w, "Are they equal?")
	fmt.Fprintln(w, first == suit.Hearts)
}
