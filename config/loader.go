package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variables honored at load and lookup time.
const (
	EnvConfigPath     = "OCIO"
	EnvActiveDisplays = "OCIO_ACTIVE_DISPLAYS"
	EnvActiveViews    = "OCIO_ACTIVE_VIEWS"
)

func activeDisplaysOverride() string {
	return os.Getenv(EnvActiveDisplays)
}

func activeViewsOverride() string {
	return os.Getenv(EnvActiveViews)
}

// CreateFromEnv loads the profile named by the OCIO environment variable.
func CreateFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		return nil, errors.New("OCIO environment variable is not set")
	}
	return CreateFromFile(path)
}

// CreateFromFile loads and validates a YAML profile from disk.
func CreateFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to read config %s: %w", filename, err)
	}
	return CreateFromBytes(data)
}

// CreateFromBytes parses and validates an in-memory YAML profile.
func CreateFromBytes(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("malformed config: %w", err)
	}
	cfg.finalize()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if len(cfg.ColorSpaces) == 0 {
		return errors.New("config declares no colorspaces")
	}
	for role, target := range cfg.Roles {
		if _, ok := cfg.spaceIndex[target]; !ok {
			return fmt.Errorf("role %s refers to unknown colorspace %s", role, target)
		}
	}
	for name, display := range cfg.Displays {
		if len(display.Views) == 0 {
			return fmt.Errorf("display %s declares no views", name)
		}
		for _, view := range display.Views {
			if _, ok := cfg.spaceIndex[view.ColorSpace]; !ok {
				return fmt.Errorf("view %s of display %s refers to unknown colorspace %s",
					view.Name, name, view.ColorSpace)
			}
			if view.Look != "" && cfg.Look(view.Look) == nil {
				return fmt.Errorf("view %s of display %s refers to unknown look %s",
					view.Name, name, view.Look)
			}
		}
	}
	for _, look := range cfg.Looks {
		if _, ok := cfg.spaceIndex[look.ProcessSpace]; !ok {
			return fmt.Errorf("look %s refers to unknown process space %s",
				look.Name, look.ProcessSpace)
		}
		if err := validateSteps(look.Transform); err != nil {
			return fmt.Errorf("look %s: %w", look.Name, err)
		}
	}
	for i := range cfg.ColorSpaces {
		cs := &cfg.ColorSpaces[i]
		if err := validateSteps(cs.ToReference); err != nil {
			return fmt.Errorf("colorspace %s: %w", cs.Name, err)
		}
		if err := validateSteps(cs.FromReference); err != nil {
			return fmt.Errorf("colorspace %s: %w", cs.Name, err)
		}
	}
	return nil
}

func validateSteps(steps []TransformStep) error {
	for _, step := range steps {
		switch step.Type {
		case StepMatrix:
			if len(step.Matrix) != 9 && len(step.Matrix) != 16 {
				return fmt.Errorf("matrix step needs 9 or 16 values, got %d", len(step.Matrix))
			}
			if step.Offset != nil && len(step.Offset) != 4 {
				return fmt.Errorf("matrix offset needs 4 values, got %d", len(step.Offset))
			}
		case StepExponent:
			if len(step.Value) != 4 {
				return fmt.Errorf("exponent step needs 4 values, got %d", len(step.Value))
			}
		case StepSrgbEncode, StepSrgbDecode:
		default:
			return fmt.Errorf("unknown transform step type %q", step.Type)
		}
	}
	return nil
}
