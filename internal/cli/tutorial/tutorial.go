package tutorial

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Show a short testdeck walkthrough",
		Long: `Show the common testdeck commands as a rendered markdown guide.

Use --raw to print the markdown source, e.g. to paste into a wiki.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetBool("raw")
			return outputTutorial(cmd, raw)
		},
	}
	cmd.Flags().Bool("raw", false, "Print markdown without rendering")
	return cmd
}

func outputTutorial(cmd *cobra.Command, raw bool) error {
	out := cmd.OutOrStdout()
	if raw {
		_, err := fmt.Fprint(out, tutorialContent)
		return err
	}

	rendered, err := glamour.Render(tutorialContent, "auto")
	if err != nil {
		// fall back to the source rather than failing a help command
		rendered = tutorialContent
	}
	_, err = fmt.Fprint(out, rendered)
	return err
}
