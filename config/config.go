// Package config reads and writes the formula factory configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/crillab/formulafactory/wff"
)

// DefaultPath is the configuration file used when none is given.
const DefaultPath = ".formulafactory.yaml"

// MaxDepth is the maximum allowed target depth.
const MaxDepth = 8

// Log configures the logger.
type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Config is the content of the configuration file.
type Config struct {
	Depth           int     `yaml:"depth"`            // Maximum depth of target formulas
	LeafProbability float64 `yaml:"leaf_probability"` // Probability for a node of a target to be atomic
	Seed            int64   `yaml:"seed"`             // Seed of target generation; 0 seeds from the clock
	Log             Log     `yaml:"log"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Depth:           2,
		LeafProbability: wff.DefaultLeafProbability,
		Log:             Log{Level: "info"},
	}
}

// Validate checks that the values of c are usable.
func (c Config) Validate() error {
	if c.Depth < 0 || c.Depth > MaxDepth {
		return fmt.Errorf("invalid depth %d: must be between 0 and %d", c.Depth, MaxDepth)
	}
	if c.LeafProbability < 0 || c.LeafProbability >= 1 {
		return fmt.Errorf("invalid leaf probability %v: must be in [0, 1)", c.LeafProbability)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// Load reads the configuration file at path. Fields missing from the file keep their default value,
// an empty file thus gives the default configuration.
// If path is empty, DefaultPath is read if it exists, and the default configuration is returned otherwise.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("could not open configuration: %w", err)
	}
	defer f.Close()
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("could not parse configuration %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration %q: %w", path, err)
	}
	return cfg, nil
}

// Write writes cfg as YAML at path.
func Write(path string, cfg Config) error {
	d, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, d, 0o644)
}

// Logger builds the logger described by c.
func (c Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
