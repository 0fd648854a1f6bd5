package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// HumanPrinter is implemented by results with their own human-readable layout
type HumanPrinter interface {
	PrintHuman(w io.Writer) error
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			fmt.Printf("%d\n", idGetter.GetID())
			return nil
		}
		if idsGetter, ok := data.(interface{ GetIDs() []int }); ok {
			for _, id := range idsGetter.GetIDs() {
				fmt.Printf("%d\n", id)
			}
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Report prints err in the formatter's mode and returns it wrapped with its exit code
func (f *OutputFormatter) Report(err error) error {
	if fmtErr := f.ErrorWithSuggestion(ErrorCode(err), err.Error(), SuggestionFor(err)); fmtErr != nil {
		fmt.Fprintf(os.Stderr, "Error formatting error message: %v\n", fmtErr)
	}
	return &CommandError{Code: ExitCodeFor(err), Err: err}
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	if p, ok := data.(HumanPrinter); ok {
		return p.PrintHuman(os.Stdout)
	}
	fmt.Printf("%+v\n", data)
	return nil
}

// DeleteResult reports the outcome of a delete command
type DeleteResult struct {
	Kind    string `json:"kind"`
	ID      int    `json:"id"`
	Deleted bool   `json:"deleted"`
}

// GetID returns the deleted record's ID
func (r *DeleteResult) GetID() int {
	return r.ID
}

// PrintHuman implements HumanPrinter
func (r *DeleteResult) PrintHuman(w io.Writer) error {
	if !r.Deleted {
		_, err := fmt.Fprintln(w, "Cancelled")
		return err
	}
	_, err := fmt.Fprintf(w, "✓ %s %d deleted successfully\n", r.Kind, r.ID)
	return err
}
