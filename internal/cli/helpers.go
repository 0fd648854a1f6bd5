package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// ParseID parses a positive integer ID argument
func ParseID(what, s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s ID must be a positive integer, got %q", ErrUsage, what, s)
	}
	return id, nil
}

// IDArg parses the single positional ID of commands like "plan show <id>"
func IDArg(what string, args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: expected exactly one %s ID", ErrUsage, what)
	}
	return ParseID(what, args[0])
}

// RequirePositiveInt reads an int flag that must be set and > 0
func RequirePositiveInt(cmd *cobra.Command, name string) (int, error) {
	v, err := cmd.Flags().GetInt(name)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to parse --%s: %w", ErrUsage, name, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: --%s must be greater than 0", ErrUsage, name)
	}
	return v, nil
}

// AddOutputFlags registers the --json and --quiet flags every command shares
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// FormatterFor builds the formatter selected by a command's output flags
func FormatterFor(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// AddForceFlag registers --force on commands that ask before deleting
func AddForceFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("force", false, "Skip confirmation")
}

// ConfirmDelete asks on the command's input before deleting what.
// --force, --json and --quiet skip the question.
func ConfirmDelete(cmd *cobra.Command, what string) bool {
	force, _ := cmd.Flags().GetBool("force")
	f := FormatterFor(cmd)
	if force || f.JSON || f.Quiet {
		return true
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Delete %s? (y/N): ", what)
	var response string
	if _, err := fmt.Fscanln(cmd.InOrStdin(), &response); err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
