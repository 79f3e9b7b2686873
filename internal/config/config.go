// Package config loads labkit settings from a .labkit.yaml file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working
// directory when no explicit path is given.
const DefaultFileName = ".labkit.yaml"

// Config is the root of .labkit.yaml.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Input   InputConfig   `yaml:"input"`
	Leap    LeapConfig    `yaml:"leap"`
	Perfect PerfectConfig `yaml:"perfect"`
	Lines   LinesConfig   `yaml:"lines"`
	Audit   AuditConfig   `yaml:"audit"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	// Format is "text" or "json".
	Format string `yaml:"format"`
}

// InputConfig controls the interactive step of each lab.
type InputConfig struct {
	// Enabled turns the one-line interactive prompt on or off.
	Enabled bool `yaml:"enabled"`
}

// LeapConfig sets the range listed by the leap-year lab.
type LeapConfig struct {
	RangeStart int `yaml:"range_start"`
	RangeEnd   int `yaml:"range_end"`
}

// PerfectConfig bounds the perfect-number search.
type PerfectConfig struct {
	SearchLimit int `yaml:"search_limit"`
}

// LinesConfig names the file counted by the line-counter lab.
type LinesConfig struct {
	SampleFile string `yaml:"sample_file"`
}

// AuditConfig sets the complexity budget for labkit audit.
type AuditConfig struct {
	MaxComplexity int `yaml:"max_complexity"`
}

// maxSearchLimit caps the perfect-number search so a demo run stays
// interactive.
const maxSearchLimit = 1_000_000

// maxLeapSpan caps range_end - range_start for the leap-year listing.
const maxLeapSpan = 10_000

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Output:  OutputConfig{Format: "text"},
		Input:   InputConfig{Enabled: true},
		Leap:    LeapConfig{RangeStart: 2000, RangeEnd: 2030},
		Perfect: PerfectConfig{SearchLimit: 10000},
		Lines:   LinesConfig{SampleFile: "sample.txt"},
		Audit:   AuditConfig{MaxComplexity: 10},
	}
}

// Load reads the config at path over the defaults. When path is
// empty, DefaultFileName is tried and its absence is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Output.Format != "text" && c.Output.Format != "json" {
		return fmt.Errorf("invalid output.format %q: must be 'text' or 'json'", c.Output.Format)
	}
	if c.Leap.RangeStart > c.Leap.RangeEnd {
		return fmt.Errorf("invalid leap range: range_start %d > range_end %d",
			c.Leap.RangeStart, c.Leap.RangeEnd)
	}
	// start <= end here, so the unsigned difference cannot wrap.
	if span := uint64(c.Leap.RangeEnd) - uint64(c.Leap.RangeStart); span > maxLeapSpan {
		return fmt.Errorf("invalid leap range: span %d..%d exceeds %d years",
			c.Leap.RangeStart, c.Leap.RangeEnd, maxLeapSpan)
	}
	if c.Perfect.SearchLimit < 1 || c.Perfect.SearchLimit > maxSearchLimit {
		return fmt.Errorf("invalid perfect.search_limit %d: must be in [1, %d]",
			c.Perfect.SearchLimit, maxSearchLimit)
	}
	if c.Lines.SampleFile == "" {
		return errors.New("lines.sample_file must not be empty")
	}
	if c.Audit.MaxComplexity < 1 {
		return fmt.Errorf("invalid audit.max_complexity %d: must be >= 1", c.Audit.MaxComplexity)
	}
	return nil
}
