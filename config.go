package carousel

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultAnimationLength is the full-travel animation time in milliseconds.
const DefaultAnimationLength = 300

// Config holds the per-processor factors and animation settings. Factors are
// the property values reached when a card is a full container width away from
// center.
type Config struct {
	// AnimationLength is the full-travel animation time in milliseconds.
	AnimationLength uint `yaml:"animation_length"`
	// Easing selects the animation curve.
	Easing Easing `yaml:"easing"`

	ScaleFactor    float64 `yaml:"scale_factor"`
	OpacityFactor  float64 `yaml:"opacity_factor"`
	RotationFactor float64 `yaml:"rotation_factor"` // turns at full extent
}

// DefaultConfig returns 300 ms, in-out-sine, scale 1, opacity 1, rotation 0.
func DefaultConfig() Config {
	return Config{
		AnimationLength: DefaultAnimationLength,
		Easing:          DefaultEasing,
		ScaleFactor:     1,
		OpacityFactor:   1,
		RotationFactor:  0,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if !c.Easing.Valid() {
		return fmt.Errorf("config: unknown easing %q", c.Easing)
	}
	if c.ScaleFactor < 0 {
		return fmt.Errorf("config: scale_factor must be >= 0, got %v", c.ScaleFactor)
	}
	if c.OpacityFactor < 0 || c.OpacityFactor > 1 {
		return fmt.Errorf("config: opacity_factor must be in [0, 1], got %v", c.OpacityFactor)
	}
	return nil
}

// fileConfig mirrors Config with pointer factors so an omitted key keeps its
// default instead of becoming zero.
type fileConfig struct {
	AnimationLength *uint    `yaml:"animation_length"`
	Easing          Easing   `yaml:"easing"`
	ScaleFactor     *float64 `yaml:"scale_factor"`
	OpacityFactor   *float64 `yaml:"opacity_factor"`
	RotationFactor  *float64 `yaml:"rotation_factor"`
}

// ParseConfig decodes YAML on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := DefaultConfig()
	if fc.AnimationLength != nil {
		cfg.AnimationLength = *fc.AnimationLength
	}
	if fc.Easing != "" {
		cfg.Easing = fc.Easing
	}
	if fc.ScaleFactor != nil {
		cfg.ScaleFactor = *fc.ScaleFactor
	}
	if fc.OpacityFactor != nil {
		cfg.OpacityFactor = *fc.OpacityFactor
	}
	if fc.RotationFactor != nil {
		cfg.RotationFactor = *fc.RotationFactor
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}
