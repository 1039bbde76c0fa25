// Package config handles configuration loading and validation for Mudra.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the complete application configuration.
type Config struct {
	// Camera configuration for frame capture.
	Camera CameraConfig `toml:"camera"`

	// Server configuration for the HTTP/WebSocket surface.
	Server ServerConfig `toml:"server"`

	// Engine configuration for recognition.
	Engine EngineConfig `toml:"engine"`

	// Speech configuration for the TTS collaborator.
	Speech SpeechConfig `toml:"speech"`
}

// CameraConfig selects and paces the capture device.
type CameraConfig struct {
	DeviceID int `toml:"device_id"`
	FPS      int `toml:"fps"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr      string `toml:"addr"`
	StaticDir string `toml:"static_dir"`
}

// EngineConfig tunes recognition behavior.
type EngineConfig struct {
	// Suggestions is the number of word-completion slots.
	Suggestions int `toml:"suggestions"`

	// MinConfidence is the hand detection confidence threshold.
	MinConfidence float64 `toml:"min_confidence"`
}

// SpeechConfig configures the external speech synthesis command.
type SpeechConfig struct {
	// Command is the TTS executable. Empty means probe for a known one.
	Command string `toml:"command"`

	// TimeoutMs bounds a single synthesis run.
	TimeoutMs int `toml:"timeout_ms"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Camera: CameraConfig{DeviceID: 0, FPS: 30},
		Server: ServerConfig{Addr: ":8080"},
		Engine: EngineConfig{Suggestions: 4, MinConfidence: 0.5},
		Speech: SpeechConfig{TimeoutMs: 10000},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".mudra", "config.toml"), nil
}

// Load reads a TOML config file, applying defaults for anything unset.
// A missing file is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.Camera.FPS <= 0 || c.Camera.FPS > 120 {
		return fmt.Errorf("camera.fps must be in (0,120], got %d", c.Camera.FPS)
	}
	if c.Engine.Suggestions < 0 {
		return fmt.Errorf("engine.suggestions must not be negative, got %d", c.Engine.Suggestions)
	}
	if c.Engine.MinConfidence < 0 || c.Engine.MinConfidence > 1 {
		return fmt.Errorf("engine.min_confidence must be in [0,1], got %f", c.Engine.MinConfidence)
	}
	if c.Server.Addr == "" {
		return errors.New("server.addr must not be empty")
	}
	if c.Speech.TimeoutMs <= 0 {
		return fmt.Errorf("speech.timeout_ms must be positive, got %d", c.Speech.TimeoutMs)
	}
	return nil
}
