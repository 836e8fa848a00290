package acceptance_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"testing"
)

// sandbox is a throwaway home directory for one gh-emoji invocation series.
type sandbox struct {
	home string
}

func newSandbox(t *testing.T) *sandbox {
	t.Helper()
	return &sandbox{home: t.TempDir()}
}

func (s *sandbox) cachePath() string {
	return filepath.Join(s.home, ".cache", "gh-emoji", "emojis.json")
}

// writeConfig writes <home>/.config/gh-emoji/config.yaml.
func (s *sandbox) writeConfig(t *testing.T, content string) {
	t.Helper()
	dir := filepath.Join(s.home, ".config", "gh-emoji")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("creating config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
}

// seedCache writes raw JSON to the cache file.
func (s *sandbox) seedCache(t *testing.T, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(s.cachePath()), 0o755); err != nil {
		t.Fatalf("creating cache dir: %v", err)
	}
	if err := os.WriteFile(s.cachePath(), []byte(content), 0o644); err != nil {
		t.Fatalf("seeding cache: %v", err)
	}
}

// readCache decodes the cache file.
func (s *sandbox) readCache(t *testing.T) []map[string]string {
	t.Helper()
	data, err := os.ReadFile(s.cachePath())
	if err != nil {
		t.Fatalf("reading cache: %v", err)
	}
	var entries []map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("cache is not a JSON array of objects: %v\n%s", err, data)
	}
	return entries
}

// run executes gh-emoji inside the sandbox and returns stdout, stderr, and exit code.
func (s *sandbox) run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(ghEmojiBinary, args...)
	cmd.Dir = s.home
	cmd.Env = append(os.Environ(),
		"HOME="+s.home,
		"XDG_CONFIG_HOME="+filepath.Join(s.home, "xdg-unused"),
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("failed to run gh-emoji: %v", err)
		}
	}
	return stdout.String(), stderr.String(), exitCode
}

// runSuccess runs gh-emoji expecting exit code 0 and returns stdout.
func (s *sandbox) runSuccess(t *testing.T, args ...string) string {
	t.Helper()
	stdout, stderr, exitCode := s.run(t, args...)
	if exitCode != 0 {
		t.Fatalf("expected exit 0, got %d\nargs: %v\nstdout: %s\nstderr: %s", exitCode, args, stdout, stderr)
	}
	return stdout
}

// catalogServer serves body with status and counts requests.
type catalogServer struct {
	*httptest.Server
	hits atomic.Int32
}

func newCatalogServer(t *testing.T, status int, body string) *catalogServer {
	t.Helper()
	cs := &catalogServer{}
	cs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cs.hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(cs.Close)
	return cs
}

// selectorScript writes an executable shell script standing in for sk.
func selectorScript(t *testing.T, dir, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell selector scripts need a POSIX shell")
	}
	path := filepath.Join(dir, "fake-sk")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("writing selector script: %v", err)
	}
	return path
}
