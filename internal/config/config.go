// Package config provides configuration loading for simplot.
// It supports loading from a YAML file and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultInput is the table read when nothing else is configured.
const DefaultInput = "CircadianVariability.csv"

// Config contains all simplot settings.
type Config struct {
	// Input is the CSV or .xlsx file to plot.
	Input string `yaml:"input"`

	// Output is the rendered image. Empty means the input path with its
	// extension replaced by .png.
	Output string `yaml:"output,omitempty"`

	// Width and Height of the figure in centimeters.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	Title  string `yaml:"title,omitempty"`
	XLabel string `yaml:"x_label,omitempty"`
	YLabel string `yaml:"y_label,omitempty"`

	// Columns restricts the plot to the named data columns.
	Columns []string `yaml:"columns,omitempty"`

	// Show opens the rendered figure in the default viewer.
	Show bool `yaml:"show"`

	Theme   ThemeConfig   `yaml:"theme"`
	Logging LoggingConfig `yaml:"logging"`
}

// ThemeConfig configures the look of the plotted lines.
type ThemeConfig struct {
	LineWidth string   `yaml:"line_width,omitempty"`
	LineType  string   `yaml:"line_type,omitempty"`
	Alpha     string   `yaml:"alpha,omitempty"`
	Palette   []string `yaml:"palette,omitempty"`
}

// LoggingConfig configures operational logging.
type LoggingConfig struct {
	// Level sets the log verbosity: "warn", "info" (default), "debug" or "trace".
	Level string `yaml:"level"`
}

// Default returns a Config which plots DefaultInput and shows it.
func Default() *Config {
	return &Config{
		Input:  DefaultInput,
		Width:  20,
		Height: 12,
		Show:   true,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path on top of the defaults and applies
// environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides settings from SIMPLOT_* environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("SIMPLOT_INPUT"); v != "" {
		c.Input = v
	}
	if v := os.Getenv("SIMPLOT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// OutputPath returns the image path to render to.
func (c *Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	return strings.TrimSuffix(c.Input, filepath.Ext(c.Input)) + ".png"
}

var formats = map[string]bool{
	".png": true, ".svg": true, ".pdf": true, ".eps": true,
	".jpg": true, ".jpeg": true, ".tif": true, ".tiff": true,
}

// Validate checks c for settings the renderer cannot handle.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("no input file configured")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid figure size %gx%g cm", c.Width, c.Height)
	}
	if ext := strings.ToLower(filepath.Ext(c.OutputPath())); !formats[ext] {
		return fmt.Errorf("unsupported output format %q", ext)
	}
	return nil
}
