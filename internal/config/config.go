// Package config loads the vadisplay configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tinyrange/vadisplay/internal/display"
)

// Render paths answer whether the renderer consuming the display uses EGL
// interop.
const (
	RenderPathAuto = "auto"
	RenderPathEGL  = "egl"
	RenderPathGLX  = "glx"
)

type Config struct {
	Backend    string `yaml:"backend"`
	Handle     uint64 `yaml:"handle"`
	RenderPath string `yaml:"render_path"`
	LogLevel   string `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Backend:    "drm",
		RenderPath: RenderPathAuto,
		LogLevel:   "info",
	}
}

func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "vadisplay", "config.yaml"), nil
}

// Load reads the config from the default location. A missing file yields
// the defaults.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	cfg, err := LoadFromPath(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFromPath reads the config at path, filling unset keys with defaults.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := display.ParseType(c.Backend); err != nil {
		return fmt.Errorf("backend: %w", err)
	}
	switch c.RenderPath {
	case RenderPathAuto, RenderPathEGL, RenderPathGLX:
	default:
		return fmt.Errorf("render_path: must be one of auto, egl, glx (got %q)", c.RenderPath)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Request builds the display request the config describes.
func (c *Config) Request() (display.Request, error) {
	typ, err := display.ParseType(c.Backend)
	if err != nil {
		return display.Request{}, err
	}
	return display.Request{Type: typ, Handle: uintptr(c.Handle)}, nil
}

func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// UsesEGL reports whether the renderer is on the EGL interop path. In auto
// mode a Wayland session or an explicit EGL_PLATFORM means EGL.
func (c *Config) UsesEGL(getenv func(string) string) bool {
	switch c.RenderPath {
	case RenderPathEGL:
		return true
	case RenderPathGLX:
		return false
	}
	if getenv("WAYLAND_DISPLAY") != "" {
		return true
	}
	if strings.EqualFold(getenv("XDG_SESSION_TYPE"), "wayland") {
		return true
	}
	return getenv("EGL_PLATFORM") != ""
}
