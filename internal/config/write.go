package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/rileyhilliard/motion/internal/errors"
	"gopkg.in/yaml.v3"
)

const fileHeader = "# motion demo settings. Environment variables override these,\n" +
	"# e.g. MOTION_ANIMATION_FPS=30 or MOTION_OUTPUT_COLOR=never.\n"

// Exists reports whether a regular file is present at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Marshal renders cfg as commented YAML.
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(fileHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(toFile(cfg)); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to encode config", "")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to encode config", "")
	}
	return buf.Bytes(), nil
}

// Write saves cfg to path. Existing files are only replaced when overwrite is set.
func Write(path string, cfg *Config, overwrite bool) error {
	if Exists(path) && !overwrite {
		return errors.New(errors.ErrConfig,
			path+" already exists",
			"Use --force to overwrite it")
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot create config directory "+dir,
				"Check directory permissions")
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot write "+path,
			"Check file permissions")
	}
	return nil
}

// fileConfig mirrors Config with durations as strings, so the YAML reads
// "150ms" rather than a nanosecond count.
type fileConfig struct {
	Version   int `yaml:"version"`
	Animation struct {
		FPS           int     `yaml:"fps"`
		ReducedMotion bool    `yaml:"reduced_motion"`
		PxPerColumn   float64 `yaml:"px_per_column"`
		PxPerRow      float64 `yaml:"px_per_row"`
		TapHold       string  `yaml:"tap_hold"`
	} `yaml:"animation"`
	Output OutputConfig `yaml:"output"`
}

func toFile(cfg *Config) fileConfig {
	var f fileConfig
	f.Version = cfg.Version
	f.Animation.FPS = cfg.Animation.FPS
	f.Animation.ReducedMotion = cfg.Animation.ReducedMotion
	f.Animation.PxPerColumn = cfg.Animation.PxPerColumn
	f.Animation.PxPerRow = cfg.Animation.PxPerRow
	f.Animation.TapHold = cfg.Animation.TapHold.String()
	f.Output = cfg.Output
	return f
}
