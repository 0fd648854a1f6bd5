package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/testdeck/internal/api"
	testplanservice "github.com/thenoetrevino/testdeck/internal/services/testplan"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockDataWithID struct {
	ID   int
	Name string
}

func (m mockDataWithID) GetID() int {
	return m.ID
}

type mockList struct {
	IDs []int
}

func (m mockList) GetIDs() []int { return m.IDs }

type mockHuman struct{ Name string }

func (m mockHuman) PrintHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "== %s ==\n", m.Name)
	return err
}

// captureStd redirects stdout and stderr while fn runs
func captureStd(t *testing.T, fn func()) (stdout, stderr string) {
	t.Helper()
	oldOut, oldErr := os.Stdout, os.Stderr
	rOut, wOut, err := os.Pipe()
	require.NoError(t, err)
	rErr, wErr, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout, os.Stderr = wOut, wErr

	outC, errC := make(chan string), make(chan string)
	drain := func(r io.Reader, c chan<- string) {
		var b bytes.Buffer
		_, _ = io.Copy(&b, r)
		c <- b.String()
	}
	go drain(rOut, outC)
	go drain(rErr, errC)

	fn()

	_ = wOut.Close()
	_ = wErr.Close()
	os.Stdout, os.Stderr = oldOut, oldErr
	return <-outC, <-errC
}

// ============================================================================
// Success
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	tests := []struct {
		name string
		data any
		want any
	}{
		{"map data", map[string]any{"test": "value"}, map[string]any{"test": "value"}},
		{"struct with ID", mockDataWithID{ID: 123, Name: "Test"}, map[string]any{"ID": float64(123), "Name": "Test"}},
		{"string data", "simple string", "simple string"},
		{"nil data", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := captureStd(t, func() {
				require.NoError(t, (&OutputFormatter{JSON: true}).Success(tt.data))
			})
			var result map[string]any
			require.NoError(t, json.Unmarshal([]byte(out), &result), out)
			assert.Equal(t, true, result["success"])
			assert.Equal(t, tt.want, result["data"])
		})
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{"value receiver with ID", mockDataWithID{ID: 42}, "42"},
		{"pointer to value receiver", &mockDataWithID{ID: 55}, "55"},
		{"list of IDs", mockList{IDs: []int{3, 8, 13}}, "3\n8\n13"},
		{"empty list", mockList{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := captureStd(t, func() {
				require.NoError(t, (&OutputFormatter{Quiet: true}).Success(tt.data))
			})
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestOutputFormatter_Success_Quiet_WinsOverJSON(t *testing.T) {
	out, _ := captureStd(t, func() {
		require.NoError(t, (&OutputFormatter{JSON: true, Quiet: true}).Success(mockDataWithID{ID: 7}))
	})
	assert.Equal(t, "7\n", out)
}

func TestOutputFormatter_Success_HumanReadable(t *testing.T) {
	out, _ := captureStd(t, func() {
		require.NoError(t, (&OutputFormatter{}).Success(mockHuman{Name: "Checkout"}))
	})
	assert.Equal(t, "== Checkout ==\n", out)

	out, _ = captureStd(t, func() {
		require.NoError(t, (&OutputFormatter{Quiet: true}).Success(struct{ Value int }{42}))
	})
	assert.Contains(t, out, "42", "quiet without IDs falls through to pretty print")
}

// ============================================================================
// Errors
// ============================================================================

func TestOutputFormatter_ErrorWithSuggestion_JSON(t *testing.T) {
	out, errOut := captureStd(t, func() {
		require.NoError(t, (&OutputFormatter{JSON: true}).ErrorWithSuggestion("NOT_FOUND", "plan 4 not found", "try plan list"))
	})
	assert.Empty(t, errOut)

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, false, result["success"])
	assert.Equal(t, map[string]any{
		"code":       "NOT_FOUND",
		"message":    "plan 4 not found",
		"suggestion": "try plan list",
	}, result["error"])
}

func TestOutputFormatter_Error_HumanReadable(t *testing.T) {
	out, errOut := captureStd(t, func() {
		require.NoError(t, (&OutputFormatter{}).Error("X", "boom"))
	})
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Error: boom")
	assert.NotContains(t, errOut, "Suggestion")
}

func TestOutputFormatter_Report(t *testing.T) {
	cause := fmt.Errorf("%w: 4", testplanservice.ErrPlanNotFound)

	var reported error
	out, _ := captureStd(t, func() {
		reported = (&OutputFormatter{JSON: true}).Report(cause)
	})

	var exitErr *CommandError
	require.True(t, errors.As(reported, &exitErr))
	assert.Equal(t, ExitNotFound, exitErr.Code)
	assert.ErrorIs(t, reported, testplanservice.ErrPlanNotFound)
	assert.Contains(t, out, `"code":"NOT_FOUND"`)
	assert.Contains(t, out, "testdeck plan list")
}

func TestOutputFormatter_Report_Unavailable(t *testing.T) {
	_, errOut := captureStd(t, func() {
		_ = (&OutputFormatter{}).Report(fmt.Errorf("GET /x: %w", api.ErrUnavailable))
	})
	assert.Contains(t, errOut, "Suggestion")
	assert.Contains(t, errOut, "TESTDECK_API_URL")
}
