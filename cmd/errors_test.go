package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
)

func TestContextError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ContextError
		want string
	}{
		{
			name: "op and path",
			err:  &ContextError{Op: "loading config", Path: "/home/u/.config/gh-emoji/config.yaml", Err: errors.New("permission denied")},
			want: "loading config: /home/u/.config/gh-emoji/config.yaml: permission denied",
		},
		{
			name: "op only",
			err:  &ContextError{Op: "loading config", Err: errors.New("unknown key")},
			want: "loading config: unknown key",
		},
		{
			name: "path only",
			err:  &ContextError{Path: "/tmp/emojis.json", Err: errors.New("not found")},
			want: "/tmp/emojis.json: not found",
		},
		{
			name: "error only",
			err:  &ContextError{Err: errors.New("unknown error")},
			want: "unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContextError_Unwrap(t *testing.T) {
	inner := errors.New("inner error")
	err := &ContextError{Op: "read", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("ContextError should unwrap to inner error")
	}
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain error", errors.New("boom"), 1},
		{"wrapped error", &ContextError{Op: "loading config", Err: errors.New("bad yaml")}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCodeFromError(tt.err); got != tt.want {
				t.Errorf("ExitCodeFromError() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFormatError(t *testing.T) {
	got := FormatError(errors.New("something broke"))
	if got != "gh-emoji: something broke\n" {
		t.Errorf("FormatError() = %q", got)
	}
}

func TestRunCLI(t *testing.T) {
	tests := []struct {
		name       string
		runE       func(*cobra.Command, []string) error
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name: "success writes stdout",
			runE: func(cmd *cobra.Command, _ []string) error {
				cmd.OutOrStdout().Write([]byte("ok\n"))
				return nil
			},
			wantCode:   0,
			wantStdout: "ok\n",
		},
		{
			name:       "error goes to stderr with prefix",
			runE:       func(*cobra.Command, []string) error { return errors.New("failed") },
			wantCode:   1,
			wantStderr: "gh-emoji: failed\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{Use: "test", RunE: tt.runE, SilenceErrors: true, SilenceUsage: true}
			var stdout, stderr bytes.Buffer

			code := RunCLI(cmd, []string{}, &stdout, &stderr)

			if code != tt.wantCode {
				t.Errorf("code = %d, want %d", code, tt.wantCode)
			}
			if stdout.String() != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantStdout)
			}
			if stderr.String() != tt.wantStderr {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}
