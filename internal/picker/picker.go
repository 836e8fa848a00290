// Package picker drives an external fuzzy line selector over the formatted
// catalog and resolves the chosen line back to its icon.
package picker

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/eykd/gh-emoji/internal/domain"
	"github.com/eykd/gh-emoji/internal/format"
	"github.com/eykd/gh-emoji/internal/logx"
)

// DefaultCommand is the skim selector.
const DefaultCommand = "sk"

// DefaultArgs put the selector in single-selection mode with ANSI colors passed through.
var DefaultArgs = []string{"--no-multi", "--ansi"}

var (
	indexPattern = regexp.MustCompile(`^\s*(\d+)\.`)
	sgrPattern   = regexp.MustCompile("\x1b\\[[0-9;]*m")
)

// SpawnError reports that the selector process could not be started.
type SpawnError struct {
	Command string
	Err     error
}

// Error implements the error interface.
func (e *SpawnError) Error() string {
	return fmt.Sprintf("starting selector %q: %v", e.Command, e.Err)
}

// Unwrap returns the underlying error.
func (e *SpawnError) Unwrap() error {
	return e.Err
}

// ParseIndex extracts the leading catalog index from a selector output line
// such as " 12. 😀 :grinning:". Color escapes are ignored, so selectors
// that echo their colored input still resolve. A number too large for an
// int still counts as a match and yields -1, which no catalog contains.
func ParseIndex(line string) (int, bool) {
	m := indexPattern.FindStringSubmatch(sgrPattern.ReplaceAllString(line, ""))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return -1, true
	}
	return n, true
}

// Picker runs the selector subprocess.
type Picker struct {
	command string
	args    []string
	stderr  io.Writer
}

// New creates a Picker that runs command with args. The selector's stderr
// goes to stderr, or to os.Stderr when nil.
func New(command string, args []string, stderr io.Writer) *Picker {
	if command == "" {
		command = DefaultCommand
		if args == nil {
			args = DefaultArgs
		}
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Picker{command: command, args: args, stderr: stderr}
}

// Pick streams the colored catalog lines into the selector and returns the
// icon named by the last output line that starts with an index. It reports
// false when no line matched. The selector's exit status is not checked.
func (p *Picker) Pick(ctx context.Context, catalog domain.Catalog) (domain.Icon, bool, error) {
	log := logx.Ctx(ctx).With("selector", p.command)

	cmd := exec.CommandContext(ctx, p.command, p.args...)
	cmd.Stderr = p.stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return domain.Icon{}, false, &SpawnError{Command: p.command, Err: err}
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return domain.Icon{}, false, &SpawnError{Command: p.command, Err: err}
	}
	if err := cmd.Start(); err != nil {
		return domain.Icon{}, false, &SpawnError{Command: p.command, Err: err}
	}
	log.Debug("selector started", "pid", cmd.Process.Pid, "icons", len(catalog))

	var (
		result domain.Icon
		found  bool
		g      errgroup.Group
	)

	g.Go(func() error {
		defer stdin.Close()
		w := bufio.NewWriter(stdin)
		for line := range format.Lines(catalog, true) {
			if _, err := w.WriteString(line); err != nil {
				log.Debug("selector stopped reading input", "err", err)
				return nil
			}
		}
		if err := w.Flush(); err != nil {
			log.Debug("selector stopped reading input", "err", err)
		}
		return nil
	})

	g.Go(func() error {
		scanner := bufio.NewScanner(stdout)
		for scanner.Scan() {
			index, ok := ParseIndex(scanner.Text())
			if !ok {
				continue
			}
			result, found = catalog.At(index)
		}
		if err := scanner.Err(); err != nil {
			_, _ = io.Copy(io.Discard, stdout)
			return fmt.Errorf("reading selector output: %w", err)
		}
		return nil
	})

	pumpErr := g.Wait()
	waitErr := cmd.Wait()
	var exitErr *exec.ExitError
	switch {
	case errors.As(waitErr, &exitErr):
		log.Debug("selector exited", "status", exitErr.ExitCode())
	case waitErr != nil:
		log.Debug("selector wait failed", "err", waitErr)
	default:
		log.Debug("selector exited", "status", 0)
	}
	if pumpErr != nil {
		return domain.Icon{}, false, pumpErr
	}
	return result, found, nil
}
