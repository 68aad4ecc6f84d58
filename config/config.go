// Package config loads the settings for a device selection run.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/vkngwrapper/swapchainpick/selection"
)

type Config struct {
	Window       WindowConfig           `yaml:"window"`
	Requirements selection.Requirements `yaml:"requirements"`
	Log          LogConfig              `yaml:"log"`
}

// WindowConfig describes the window whose surface is presented to.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Vulkan",
			Width:  800,
			Height: 600,
		},
		Requirements: selection.DefaultRequirements(),
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a YAML file on top of the defaults. An empty path returns the
// defaults untouched.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "failed to read config file")
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, errors.Wrapf(err, "failed to parse config file %s", path)
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("config: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}

	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}

	switch c.Log.Format {
	case "", "text", "json":
	default:
		return errors.Errorf("config: unsupported log format %q", c.Log.Format)
	}

	return c.Requirements.Validate()
}
