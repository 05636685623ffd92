package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/arcanaland/suitomancer/internal/config"
	"github.com/arcanaland/suitomancer/internal/suit"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [suit]",
	Short: "Display a suit as a card face with terminal color",
	Long: `Show renders a card face for one of the four suits, with the pips
colored by the suit's red/black classification.

Suits can be named in full or by their single letter:

Examples:
  suitomancer show hearts
  suitomancer show s
  suitomancer show --style symbols clubs`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := suit.ParseSuit(args[0])
		if err != nil {
			return err
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		style := cfg.Display.Style
		if flagStyle, _ := cmd.Flags().GetString("style"); flagStyle != "" {
			if !config.ValidStyle(flagStyle) {
				return fmt.Errorf("unknown display style: %q", flagStyle)
			}
			style = flagStyle
		}

		if !cfg.Display.Color {
			colorize.NoColor = true
		}

		displaySuit(s, style, cfg.Display.Color)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("style", "s", "", "Display style: names or symbols")
}

// suitPigment returns the base color used for a suit's pips.
func suitPigment(s suit.Suit) colorful.Color {
	if s.Color() == suit.Black {
		return colorful.Color{R: 0.45, G: 0.45, B: 0.50}
	}
	return colorful.Color{R: 0.86, G: 0.08, B: 0.24}
}

// pipString formats a glyph with a truecolor foreground escape
func pipString(glyph string, c colorful.Color, useColor bool) string {
	if !useColor {
		return glyph
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, glyph)
}

// renderFace draws a bordered card face for the suit. Pips fade toward
// the bottom of the face by blending the pigment with the frame shade.
func renderFace(s suit.Suit, useColor bool) []string {
	pigment := suitPigment(s)
	frame := colorful.Color{R: 0.80, G: 0.80, B: 0.78}

	pipRows := []string{
		"%s       ",
		"        ",
		"   %s    ",
		"        ",
		"       %s",
	}

	lines := make([]string, 0, len(pipRows)+2)
	lines = append(lines, pipString("┌──────────┐", frame, useColor))

	pipIndex := 0
	pipCount := strings.Count(strings.Join(pipRows, ""), "%s")
	for _, row := range pipRows {
		var body string
		if strings.Contains(row, "%s") {
			// Deeper pips sit closer to the frame shade.
			blend := pigment.BlendRgb(frame, 0.25*float64(pipIndex)/float64(pipCount))
			body = fmt.Sprintf(row, pipString(s.Symbol(), blend, useColor))
			pipIndex++
		} else {
			body = row
		}
		lines = append(lines,
			pipString("│ ", frame, useColor)+body+pipString(" │", frame, useColor))
	}

	lines = append(lines, pipString("└──────────┘", frame, useColor))
	return lines
}

// displaySuit displays the card face next to an info column
func displaySuit(s suit.Suit, style string, useColor bool) {
	faceLines := renderFace(s, useColor)

	maxFaceWidth := 0
	for _, line := range faceLines {
		visibleWidth := visibleLen(stripAnsi(line))
		if visibleWidth > maxFaceWidth {
			maxFaceWidth = visibleWidth
		}
	}

	// Get terminal width
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80 // Default if we can't get terminal width
	}

	name := s.String()
	if style == config.StyleSymbols {
		name = s.Symbol()
	}

	var infoLines []string
	infoLines = append(infoLines, colorize.CyanString("Suit:   ")+colorize.HiWhiteString(name))
	infoLines = append(infoLines, colorize.CyanString("Symbol: ")+colorize.HiWhiteString(s.Symbol()))
	infoLines = append(infoLines, colorize.CyanString("Color:  ")+colorize.HiWhiteString(s.Color().String()))
	if t := s.Tag(); t != 0 {
		infoLines = append(infoLines, colorize.CyanString("Tag:    ")+colorize.HiWhiteString(string(t)))
	}

	// Face on the left, info on the right
	spacing := 4
	infoStartCol := maxFaceWidth + spacing
	if infoStartCol > width-10 {
		infoStartCol = maxFaceWidth + 1
	}

	fmt.Println()

	maxLines := max(len(faceLines), len(infoLines))
	for i := 0; i < maxLines; i++ {
		fmt.Print("  ")
		if i < len(faceLines) {
			fmt.Print(faceLines[i])
			visibleWidth := visibleLen(stripAnsi(faceLines[i]))
			fmt.Print(strings.Repeat(" ", infoStartCol-visibleWidth))
		} else {
			fmt.Print(strings.Repeat(" ", infoStartCol))
		}

		if i < len(infoLines) {
			fmt.Print(infoLines[i])
		}

		fmt.Println()
	}

	fmt.Println()
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

// visibleLen counts display cells, treating every rune as one cell
func visibleLen(s string) int {
	return len([]rune(s))
}

// max returns the maximum of two integers
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
