// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the optional runtime settings file.
package config

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultFile is looked up in the working directory when --config is not given.
const DefaultFile = ".dequarantine.yaml"

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse decodes the config from bytes
	Parse(ctx context.Context, data []byte, filename string) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers, in registration order
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config holds presentation and runtime settings. The attribute to
// remove is not configurable.
type Config struct {
	Debug   bool   `json:"debug,omitempty" yaml:"debug,omitempty" hcl:"debug,optional"`
	Format  string `json:"format,omitempty" yaml:"format,omitempty" hcl:"format,optional"`
	Workers int    `json:"workers,omitempty" yaml:"workers,omitempty" hcl:"workers,optional"`
	Color   *bool  `json:"color,omitempty" yaml:"color,omitempty" hcl:"color,optional"`

	location string
}

// Default returns the settings used when no file is present.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

// Location is the file the config was loaded from, empty for defaults.
func (cfg *Config) Location() string {
	return cfg.location
}

// UseColor reports whether colored output is enabled.
func (cfg *Config) UseColor() bool {
	return cfg.Color == nil || *cfg.Color
}

// 🔍 Validate checks values and fills in defaults
func (cfg *Config) Validate() error {
	switch cfg.Format {
	case "":
		cfg.Format = FormatText
	case FormatText, FormatJSON:
	default:
		return errors.Errorf("format must be %q or %q, got %q", FormatText, FormatJSON, cfg.Format)
	}

	if cfg.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}

	return nil
}

// 🎯 Load reads the configuration at path. A missing file is an error
// unless optional is set, in which case defaults are returned.
func Load(ctx context.Context, path string, optional bool) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			logger.Debug().Str("path", path).Msg("no config file, using defaults")
			return Default(), nil
		}
		return nil, errors.Errorf("reading config file: %w", err)
	}

	cfg, err := parse(ctx, data, path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}
	cfg.location = path

	return cfg, nil
}

// parse picks a parser by extension; files without one try every parser
func parse(ctx context.Context, data []byte, path string) (*Config, error) {
	if p := GetParser(path); p != nil {
		cfg, err := p.Parse(ctx, data, path)
		if err != nil {
			return nil, errors.Errorf("parsing config: %w", err)
		}
		return cfg, nil
	}

	if filepath.Ext(path) != "" && filepath.Ext(path) != filepath.Base(path) {
		return nil, errors.Errorf("unsupported config file extension %q", filepath.Ext(path))
	}

	var errs []error
	for _, p := range parsers {
		cfg, err := p.Parse(ctx, data, path)
		if err == nil {
			return cfg, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Errorf("parsing %s as any known format: %w", path, errors.Join(errs...))
}
