// Package tag holds the tag cli commands
//
// e.g., testdeck tag color smoke payments
package tag

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/testdeck/internal/cli"
	"github.com/thenoetrevino/testdeck/internal/tagcolor"
	"github.com/thenoetrevino/testdeck/internal/tui/components"
)

// TagCmd returns the tag parent command
func TagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Inspect tag badges",
	}

	cmd.AddCommand(ColorCmd())

	return cmd
}

// ColorCmd returns the tag color subcommand
func ColorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color <tag>...",
		Short: "Show the badge colors a tag gets",
		Long: `Show the badge colors derived from each tag: the djb2 hash, the HSL
background with its RGB and hex forms, and the contrasting text color.

The colors depend only on the tag text, so every client renders a tag alike.

Examples:
  testdeck tag color smoke regression
  testdeck tag color "" --json
`,
		Args: cobra.MinimumNArgs(1),
		RunE: runColor,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// ColorOutput describes the badge of one tag
type ColorOutput struct {
	Label      string              `json:"label"`
	Hash       uint32              `json:"hash"`
	Background tagcolor.Color      `json:"background"`
	RGB        tagcolor.RGB        `json:"rgb"`
	CSS        string              `json:"css"`
	Foreground tagcolor.Foreground `json:"foreground"`
}

func newColorOutput(label string) ColorOutput {
	badge := tagcolor.BadgeFor(label)
	return ColorOutput{
		Label:      label,
		Hash:       tagcolor.Hash(label),
		Background: badge.Background,
		RGB:        badge.Background.RGB(),
		CSS:        badge.Background.CSS(),
		Foreground: badge.Foreground,
	}
}

// ColorsOutput is the result of "tag color"
type ColorsOutput struct {
	Tags []ColorOutput `json:"tags"`
}

// PrintHuman implements cli.HumanPrinter
func (o *ColorsOutput) PrintHuman(w io.Writer) error {
	for _, t := range o.Tags {
		// an empty label still gets a visible swatch in its fallback colors
		text := t.Label
		if text == "" {
			text = " "
		}
		badge := components.BadgeStyle(tagcolor.Badge{Background: t.Background, Foreground: t.Foreground}).Render(text)
		if _, err := fmt.Fprintf(w, "%s  hash=%d  %s  rgb(%d, %d, %d)  %s  text %s\n",
			badge, t.Hash, t.CSS, t.RGB.R, t.RGB.G, t.RGB.B, t.Background.Hex(), t.Foreground); err != nil {
			return err
		}
	}
	return nil
}

func runColor(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFor(cmd)

	out := &ColorsOutput{Tags: make([]ColorOutput, len(args))}
	for i, label := range args {
		out.Tags[i] = newColorOutput(label)
	}

	if formatter.Quiet {
		for _, t := range out.Tags {
			fmt.Println(t.Background.Hex())
		}
		return nil
	}
	return formatter.Success(out)
}
