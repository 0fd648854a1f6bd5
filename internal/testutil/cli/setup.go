// Package cli holds helpers for command tests. It lives apart from testutil
// so that api and service tests can import testutil without pulling in app.
package cli

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/testdeck/internal/api"
	"github.com/thenoetrevino/testdeck/internal/app"
	"github.com/thenoetrevino/testdeck/internal/prefs"
	"github.com/thenoetrevino/testdeck/internal/testutil"
)

// SetupCLITest starts a fake backend and returns it with an App wired to it
// and to an in-memory preference store
func SetupCLITest(t *testing.T, opts ...app.Option) (*testutil.FakeBackend, *app.App) {
	t.Helper()

	fb := testutil.NewFakeBackend(t)
	client, err := api.NewClient(fb.URL(), 5*time.Second)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	store, err := prefs.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to open preferences: %v", err)
	}

	appInstance := app.New(client, store, opts...)
	t.Cleanup(func() {
		if err := appInstance.Close(); err != nil {
			t.Logf("closing app: %v", err)
		}
	})

	return fb, appInstance
}

// ExecuteCLICommand executes a CLI command with a test app instance injected
// into its context, returning captured stdout
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithContext(t, context.Background(), testApp, cmd, args)
}

// ExecuteCLICommandWithContext executes a CLI command with a specific context and test app
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	cmd.SetArgs(args)
	ctxWithApp := app.NewContext(ctx, testApp)
	cmd.SetContext(ctxWithApp)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctxWithApp)
	})

	return output, executeErr
}

// ParseJSON wraps testutil.ParseJSON for CLI tests
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()
	return testutil.ParseJSON(t, output)
}

// Data returns the "data" member of a successful JSON envelope
func Data(t *testing.T, output string) map[string]any {
	t.Helper()
	result := testutil.ParseJSON(t, output)
	if result["success"] != true {
		t.Fatalf("expected success envelope, got: %s", output)
	}
	data, ok := result["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected object data, got: %s", output)
	}
	return data
}
