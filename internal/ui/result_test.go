package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestResultRenderKeepsDetailOrder(t *testing.T) {
	r := NewSuccessResult("Form submitted", []Detail{
		{Key: "Account", Value: "acme"},
		{Key: "Username", Value: "alice"},
	}).SetWidth(60)

	out := ansi.Strip(r.Render())

	if !strings.Contains(out, "SUCCESS") || !strings.Contains(out, "Form submitted") {
		t.Errorf("success box missing title:\n%s", out)
	}
	acct := strings.Index(out, "acme")
	user := strings.Index(out, "alice")
	if acct < 0 || user < 0 || acct > user {
		t.Errorf("details out of order:\n%s", out)
	}
}

func TestResultTypes(t *testing.T) {
	tests := []struct {
		name   string
		result *Result
		want   []string
	}{
		{
			name:   "failure shows error",
			result: NewFailureResult("Form rejected", errors.New("2 fields invalid"), nil),
			want:   []string{FailureMarker, "FAILED", "Form rejected", "Error: 2 fields invalid"},
		},
		{
			name:   "warning",
			result: NewWarningResult("Config missing", nil).AddDetail("Path", "/tmp/x"),
			want:   []string{WarningMarker, "WARNING", "Path:", "/tmp/x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ansi.Strip(tt.result.SetWidth(60).String())
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestHeaderRender(t *testing.T) {
	h := NewHeader("Sign in", "tuiform show", []Detail{{Key: "Fields", Value: "3"}}).SetWidth(50)
	out := ansi.Strip(h.Render())

	for _, w := range []string{"SIGN IN", "tuiform show", "Fields:", "3"} {
		if !strings.Contains(out, w) {
			t.Errorf("header missing %q:\n%s", w, out)
		}
	}
}

func TestClampWidth(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{10, MinTerminalWidth},
		{80, 80},
		{500, MaxContentWidth},
	}
	for _, tt := range tests {
		if got := clampWidth(tt.in); got != tt.want {
			t.Errorf("clampWidth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
