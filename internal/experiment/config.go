// Package experiment - config schema, loading and validation.
package experiment

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoInput is returned when the config names no input dataset.
	ErrNoInput = errors.New("experiment: input dataset path required")

	// ErrNoOutput is returned at run time when no output path is set.
	ErrNoOutput = errors.New("experiment: output dataset path required")

	// ErrNoTarget is returned when the config names no target label.
	ErrNoTarget = errors.New("experiment: target label required")

	// ErrNoModifiers is returned when the stage list is empty.
	ErrNoModifiers = errors.New("experiment: at least one modifier stage required")

	// ErrBadKind is returned for a modifier kind other than item or html.
	ErrBadKind = errors.New("experiment: unknown modifier kind")

	// ErrBadSource is returned for an unknown or incompatible payload source.
	ErrBadSource = errors.New("experiment: unknown payload source")

	// ErrBadHighlight is returned for an unknown preview highlighter.
	ErrBadHighlight = errors.New("experiment: unknown preview highlighter")
)

// Modifier kinds and payload source kinds accepted in configs.
const (
	KindItem = "item"
	KindHTML = "html"

	SourceList  = "list"
	SourceFile  = "file"
	SourceDates = "dates"
)

// Preview highlighter names accepted in configs.
const (
	HighlightDates    = "dates"
	HighlightPatterns = "patterns"
	HighlightTags     = "tags"
)

// Config describes one experiment: which corpus to poison, how, and
// where to write the result.
type Config struct {
	Name           string           `yaml:"name"`
	Seed           int64            `yaml:"seed"`
	Input          string           `yaml:"input"`
	Output         string           `yaml:"output"`
	TargetLabel    LabelScalar      `yaml:"target_label"`
	TextProportion float64          `yaml:"text_proportion"`
	Modifiers      []ModifierConfig `yaml:"modifiers"`
	Preview        PreviewConfig    `yaml:"preview"`
}

// ModifierConfig describes one pipeline stage.
//
// Seed 0 means "derive from the run seed"; each stage gets its own
// stream. Level is only meaningful for html stages; leaving it unset
// targets the whole text.
type ModifierConfig struct {
	Kind            string       `yaml:"kind"`
	Location        string       `yaml:"location"`
	TokenProportion float64      `yaml:"token_proportion"`
	Level           *int         `yaml:"level"`
	Seed            int64        `yaml:"seed"`
	Source          SourceConfig `yaml:"source"`
}

// SourceConfig selects where a stage's payloads come from.
//
// Kind list uses Items, kind file uses Path and kind dates uses the year
// range (defaults 1900..2100 when both bounds are zero). Setting
// with_replacement: false makes the stage serve each distinct payload
// once and fail the run when the pool is spent; leaving it unset keeps
// unconstrained draws.
type SourceConfig struct {
	Kind            string   `yaml:"kind"`
	Items           []string `yaml:"items"`
	Path            string   `yaml:"path"`
	YearMin         int      `yaml:"year_min"`
	YearMax         int      `yaml:"year_max"`
	WithReplacement *bool    `yaml:"with_replacement"`
}

// PreviewConfig controls the post-run preview print.
type PreviewConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Limit     int    `yaml:"limit"`
	Highlight string `yaml:"highlight"`
	Path      string `yaml:"path"`
}

// LabelScalar accepts any YAML scalar for the target label and keeps its
// literal text, matching how dataset.Label canonicalizes JSONL labels:
// target_label: 1 and target_label: "1" both read as "1".
type LabelScalar string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *LabelScalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("experiment: target label must be a scalar, got %v", node.Kind)
	}
	*l = LabelScalar(node.Value)
	return nil
}

// Load reads and validates an experiment config. The output path is
// deliberately not required here; the CLI may supply it at run time.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("experiment: read config: %w", err)
	}

	cfg := &Config{}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("experiment: parse config: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks everything that does not require touching the
// filesystem. Proportion and location values are re-checked by the
// modifier constructors during Build.
func (c *Config) Validate() error {
	if c.Input == "" {
		return ErrNoInput
	}
	if c.TargetLabel == "" {
		return ErrNoTarget
	}
	if len(c.Modifiers) == 0 {
		return ErrNoModifiers
	}

	for i, mc := range c.Modifiers {
		switch mc.Kind {
		case KindItem, KindHTML:
		default:
			return fmt.Errorf("%w: stage %d kind %q", ErrBadKind, i, mc.Kind)
		}

		switch mc.Source.Kind {
		case SourceList, SourceFile:
		case SourceDates:
			if mc.Kind == KindHTML {
				return fmt.Errorf("%w: stage %d: html stages need a tag pool, not dates", ErrBadSource, i)
			}
		default:
			return fmt.Errorf("%w: stage %d source %q", ErrBadSource, i, mc.Source.Kind)
		}
	}

	switch c.Preview.Highlight {
	case "", HighlightDates, HighlightPatterns, HighlightTags:
	default:
		return fmt.Errorf("%w: %q", ErrBadHighlight, c.Preview.Highlight)
	}
	return nil
}
