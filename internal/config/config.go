// Package config loads extractor settings from defaults, an optional YAML
// file and environment variables. Command-line flags are applied on top by
// the CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/pyhub-apps/pdf-image-extractor/internal/logging"
	"github.com/pyhub-apps/pdf-image-extractor/pkg/domain"
	"github.com/pyhub-apps/pdf-image-extractor/pkg/extract"
	"github.com/pyhub-apps/pdf-image-extractor/pkg/pdf"
)

// Config holds all settings for one extraction run.
type Config struct {
	InputFile    string `yaml:"input_file"`
	OutputDir    string `yaml:"output_dir"`
	ImageFormat  string `yaml:"img_format"`
	ImageQuality int    `yaml:"img_quality"`
	MinWidth     int    `yaml:"min_width"`
	MinHeight    int    `yaml:"min_height"`
	TextBackend  string `yaml:"text_backend"`
	LogLevel     string `yaml:"log_level"`
	LogFormat    string `yaml:"log_format"` // json or console
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:    extract.DefaultOutputDir,
		ImageFormat:  extract.DefaultFormat,
		ImageQuality: extract.DefaultQuality,
		MinWidth:     extract.DefaultMinSide,
		MinHeight:    extract.DefaultMinSide,
		TextBackend:  string(pdf.BackendAuto),
		LogLevel:     "info",
		LogFormat:    logging.FormatConsole,
	}
}

// Load reads configuration from a YAML file and applies environment
// overrides. An empty path skips the file. The result is not validated so
// that flags can still be layered on top.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDotEnv loads variables from the given .env files, or ./.env when none
// are named. Missing files are ignored; variables already set win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := c.Options().Validate(); err != nil {
		return err
	}

	if _, err := pdf.ParseTextBackend(c.TextBackend); err != nil {
		return domain.ValidationError("invalid text backend", err)
	}

	if !logging.ValidFormat(c.LogFormat) {
		return domain.ValidationError(fmt.Sprintf("invalid log format: %s", c.LogFormat), nil)
	}

	return nil
}

// Options converts the configuration into extraction options.
func (c *Config) Options() extract.Options {
	return extract.Options{
		OutputDir: c.OutputDir,
		Format:    c.ImageFormat,
		Quality:   c.ImageQuality,
		MinWidth:  c.MinWidth,
		MinHeight: c.MinHeight,
	}
}

// Backend returns the parsed text backend, falling back to auto.
func (c *Config) Backend() pdf.TextBackend {
	b, err := pdf.ParseTextBackend(c.TextBackend)
	if err != nil {
		return pdf.BackendAuto
	}
	return b
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("PDFIMG_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}

	if v := os.Getenv("PDFIMG_IMG_FORMAT"); v != "" {
		cfg.ImageFormat = v
	}

	if v := os.Getenv("PDFIMG_IMG_QUALITY"); v != "" {
		q, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return domain.ValidationError(fmt.Sprintf("PDFIMG_IMG_QUALITY must be an integer, got %q", v), err)
		}
		cfg.ImageQuality = q
	}

	if v := os.Getenv("PDFIMG_TEXT_BACKEND"); v != "" {
		cfg.TextBackend = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}

	return nil
}
