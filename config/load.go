package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed motion.yaml
var defaultMotionYAML []byte

// DefaultMotionYAML returns the reference tuning file shipped with the game.
func DefaultMotionYAML() []byte {
	out := make([]byte, len(defaultMotionYAML))
	copy(out, defaultMotionYAML)
	return out
}

// LoadMotion overlays YAML tuning onto the built-in defaults and sanitizes the result.
func LoadMotion(data []byte) (MotionConfig, error) {
	m := DefaultMotion()
	if err := yaml.Unmarshal(data, &m); err != nil {
		return MotionConfig{}, fmt.Errorf("parse motion tuning: %w", err)
	}
	return m.Sanitize(), nil
}

// LoadMotionFile reads and overlays a tuning file.
func LoadMotionFile(path string) (MotionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MotionConfig{}, fmt.Errorf("read motion tuning %s: %w", path, err)
	}
	m, err := LoadMotion(data)
	if err != nil {
		return MotionConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
