package cvlens

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dnovais/cvlens/quality"
	"github.com/dnovais/cvlens/segment"
	"github.com/dnovais/cvlens/skill"
)

// Config holds all configuration for the analyzer. Every heuristic threshold
// the pipeline uses is a named field here so it can be tuned without touching
// the algorithms.
type Config struct {
	// LineYTolerance is the vertical band, in PDF units, within which text
	// runs are considered part of the same line.
	LineYTolerance float64 `json:"line_y_tolerance" yaml:"line_y_tolerance"`

	// ContactZoneLines is how many lines from the top of the document are
	// scanned for contact signals before normal segmentation takes over.
	ContactZoneLines int `json:"contact_zone_lines" yaml:"contact_zone_lines"`

	// ContactScanLines is how many leading document lines are fed to the
	// contact extractor in addition to the contact/header sections.
	ContactScanLines int `json:"contact_scan_lines" yaml:"contact_scan_lines"`

	// MinContentLength is the minimum line length appended as section content.
	MinContentLength int `json:"min_content_length" yaml:"min_content_length"`

	// ContextRadius is the number of characters captured on each side of a
	// skill mention when building context windows.
	ContextRadius int `json:"context_radius" yaml:"context_radius"`

	// MaxContexts caps how many context windows are kept per skill.
	MaxContexts int `json:"max_contexts" yaml:"max_contexts"`

	// Quality scoring weights and normalization targets.
	Quality quality.Weights `json:"quality" yaml:"quality"`

	// KeywordTopN is how many words the keyword density map keeps.
	KeywordTopN int `json:"keyword_top_n" yaml:"keyword_top_n"`

	// DBPath enables the content-hash result cache when non-empty. The cache
	// is purely an optimization: identical bytes skip re-parsing.
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// DefaultConfig returns a Config matching the production defaults.
func DefaultConfig() Config {
	return Config{
		LineYTolerance:   5.0,
		ContactZoneLines: 8,
		ContactScanLines: 10,
		MinContentLength: 3,
		ContextRadius:    50,
		MaxContexts:      3,
		Quality:          quality.DefaultWeights(),
		KeywordTopN:      20,
	}
}

// LoadConfig reads a YAML or JSON config file and overlays it on defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.LineYTolerance <= 0 {
		return fmt.Errorf("%w: line_y_tolerance must be positive", ErrInvalidConfig)
	}
	if c.ContactZoneLines < 0 || c.ContactScanLines < 0 {
		return fmt.Errorf("%w: contact zone sizes must be non-negative", ErrInvalidConfig)
	}
	if c.ContextRadius <= 0 {
		return fmt.Errorf("%w: context_radius must be positive", ErrInvalidConfig)
	}
	return nil
}

func (c Config) segmentConfig() segment.Config {
	return segment.Config{
		ContactZoneLines: c.ContactZoneLines,
		MinContentLength: c.MinContentLength,
	}
}

func (c Config) skillConfig() skill.Config {
	sc := skill.DefaultConfig()
	sc.ContextRadius = c.ContextRadius
	sc.MaxContexts = c.MaxContexts
	return sc
}
