// Copyright 2026 Leon Matthews
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


// Package config provides reading of tinysearch configuration files.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoFields is returned when the configuration names no searchable fields.
	ErrNoFields = errors.New("config: at least one field weight required")

	// ErrInvalidWeight is returned when a field weight is zero or negative.
	ErrInvalidWeight = errors.New("config: field weights must be positive")

	// ErrInvalidLimit is returned when a numeric limit is out of range.
	ErrInvalidLimit = errors.New("config: limit out of range")
)

// Config contains configuration for the tinysearch CLI.
type Config struct {
	// Database is the path to the BadgerDB database directory.
	Database string `yaml:"database,omitempty"`

	// Fields maps dotted document field paths to score weightings.
	Fields map[string]int `yaml:"fields,omitempty"`

	// AllowPartial keeps documents matching any token (OR) when true,
	// and requires every token (AND) when false.
	AllowPartial bool `yaml:"allow_partial"`

	// MinTokenLength drops shorter query tokens.
	MinTokenLength int `yaml:"min_token_length,omitempty"`

	// MaxTokens caps how many query tokens are searched for.
	MaxTokens int `yaml:"max_tokens,omitempty"`

	// PoolSize is the bulk import worker pool size. Zero picks a default
	// from the CPU count.
	PoolSize int `yaml:"pool_size,omitempty"`

	// BatchSize is the number of documents per bulk import batch.
	BatchSize int `yaml:"batch_size,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults: title-heavy
// weighting over title and body, OR semantics.
func DefaultConfig() *Config {
	return &Config{
		Database:       "./tinysearch_db",
		Fields:         map[string]int{"title": 5, "body": 1},
		AllowPartial:   true,
		MinTokenLength: 2,
		MaxTokens:      4,
		BatchSize:      50,
	}
}

// Load reads configuration from a YAML file.
// Missing keys keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is valid and complete.
func (c *Config) Validate() error {
	if len(c.Fields) == 0 {
		return ErrNoFields
	}
	for field, weight := range c.Fields {
		if weight <= 0 {
			return fmt.Errorf("%w: %q has weight %d", ErrInvalidWeight, field, weight)
		}
	}
	if c.MinTokenLength < 1 {
		return fmt.Errorf("%w: min_token_length %d", ErrInvalidLimit, c.MinTokenLength)
	}
	if c.MaxTokens < 1 {
		return fmt.Errorf("%w: max_tokens %d", ErrInvalidLimit, c.MaxTokens)
	}
	if c.PoolSize < 0 {
		return fmt.Errorf("%w: pool_size %d", ErrInvalidLimit, c.PoolSize)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("%w: batch_size %d", ErrInvalidLimit, c.BatchSize)
	}
	return nil
}
