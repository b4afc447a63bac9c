// SPDX-License-Identifier: MIT

// Package config loads the slitherhex CLI configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/j-dobrzanski/Slitherlink/render"
)

// EnvPath names the environment variable consulted when no path is given.
const EnvPath = "SLITHERHEX_CONFIG"

// ErrInvalid indicates a configuration value out of range.
var ErrInvalid = errors.New("config: invalid value")

var validate = newValidator()

// newValidator reports fields by their YAML key rather than the Go name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Config is the root of the configuration file.
type Config struct {
	Generate GenerateConfig `yaml:"generate"`
	Render   render.Style   `yaml:"render"`
}

// GenerateConfig drives `slitherhex generate`.
type GenerateConfig struct {
	Layers    int     `yaml:"layers" validate:"gte=1"`
	Seed      int64   `yaml:"seed"`
	Coverage  float64 `yaml:"coverage" validate:"gt=0,lte=1"`
	HideRatio float64 `yaml:"hide_ratio" validate:"gte=0,lte=1"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Generate: GenerateConfig{
			Layers:    3,
			Seed:      1,
			Coverage:  0.5,
			HideRatio: 0,
		},
		Render: render.DefaultStyle(),
	}
}

// Load reads a YAML configuration file over Default.
// If path is empty it falls back to $SLITHERHEX_CONFIG, and to Default when
// that is unset too. Keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvPath)
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges of every section.
func (c *Config) Validate() error {
	if err := validate.Struct(c.Generate); err != nil {
		return fieldError("generate", err)
	}
	if err := c.Render.Validate(); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}

// fieldError turns the first validator failure into an ErrInvalid naming
// the offending key, e.g. "generate.coverage=1.5 violates lte=1".
func fieldError(section string, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%s: %w", section, err)
	}
	fe := verrs[0]
	rule := fe.Tag()
	if fe.Param() != "" {
		rule += "=" + fe.Param()
	}

	return fmt.Errorf("%s.%s=%v violates %s: %w", section, fe.Field(), fe.Value(), rule, ErrInvalid)
}
