// Package config loads the optional gh-emoji settings file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/eykd/gh-emoji/internal/catalog"
	"github.com/eykd/gh-emoji/internal/picker"
)

// Selector names the external line selector and its arguments.
type Selector struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// Config holds user settings. The cache location is deliberately absent:
// it is fixed under the home directory.
type Config struct {
	Endpoint string   `yaml:"endpoint"`
	Selector Selector `yaml:"selector"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Endpoint: catalog.DefaultEndpoint,
		Selector: Selector{
			Command: picker.DefaultCommand,
			Args:    append([]string(nil), picker.DefaultArgs...),
		},
	}
}

// DefaultPath returns <home>/.config/gh-emoji/config.yaml. Like the cache
// path it depends only on the home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "gh-emoji", "config.yaml"), nil
}

// Load reads the file at path. A missing file yields Default().
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML settings over the defaults. Unknown keys are rejected.
// Setting selector.command without selector.args runs the command with no
// arguments.
func Parse(data []byte) (Config, error) {
	var raw struct {
		Endpoint string `yaml:"endpoint"`
		Selector *struct {
			Command string    `yaml:"command"`
			Args    *[]string `yaml:"args"`
		} `yaml:"selector"`
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}

	cfg := Default()
	if raw.Endpoint != "" {
		cfg.Endpoint = raw.Endpoint
	}
	if s := raw.Selector; s != nil {
		if s.Command != "" {
			cfg.Selector.Command = s.Command
			cfg.Selector.Args = nil
		}
		if s.Args != nil {
			cfg.Selector.Args = *s.Args
		}
	}
	return cfg, nil
}
