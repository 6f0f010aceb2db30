package config

import (
	"flag"
	"fmt"
	"math"
	"strconv"
	"time"

	"lifegame/pkg/life"
)

// Special values of Config.Pattern that seed the grid without a catalog entry.
const (
	PatternNone   = ""
	PatternRandom = "random"
	PatternNoise  = "noise"
)

// Config represents the parameters shared by every driver.
type Config struct {
	Width       int
	Height      int
	Interval    time.Duration
	Probability float64
	Seed        int64
	Pattern     string
	PatternFile string
	ConfigFile  string

	Scale int

	LogLevel  string
	LogFormat string
}

// Default returns a Config populated with the reference defaults: a 50x50
// grid stepped every 100ms, randomized with 15% live cells.
func Default() *Config {
	return &Config{
		Width:       50,
		Height:      50,
		Interval:    100 * time.Millisecond,
		Probability: 0.15,
		Seed:        42,
		Pattern:     PatternNone,
		Scale:       12,
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between generations while running")
	fs.Float64Var(&c.Probability, "p", c.Probability, "alive probability used by random fills")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern name, \"random\" or \"noise\"")
	fs.StringVar(&c.PatternFile, "pattern-file", c.PatternFile, "plaintext (.cells) pattern to add to the catalog; selected when -pattern is empty")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "HCL file with settings and extra patterns")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel size of one cell in the GUI")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: text or json")
}

// Resolve loads c.ConfigFile when set, letting flags explicitly set on fs
// override the file, and validates the result. It returns the built-in
// catalog extended with the file's patterns.
func (c *Config) Resolve(fs *flag.FlagSet) (*life.Catalog, error) {
	catalog := life.Builtin()
	if c.ConfigFile != "" {
		f, err := LoadFile(c.ConfigFile)
		if err != nil {
			return nil, err
		}
		explicit := map[string]bool{}
		if fs != nil {
			fs.Visit(func(fl *flag.Flag) { explicit[fl.Name] = true })
		}
		if err := c.Apply(f.Settings, explicit); err != nil {
			return nil, fmt.Errorf("%s: %w", c.ConfigFile, err)
		}
		for _, p := range f.Patterns {
			if err := catalog.Add(p); err != nil {
				return nil, fmt.Errorf("%s: %w", c.ConfigFile, err)
			}
		}
	}
	if c.PatternFile != "" {
		p, err := LoadPatternFile(c.PatternFile)
		if err != nil {
			return nil, err
		}
		if err := catalog.Add(p); err != nil {
			return nil, fmt.Errorf("%s: %w", c.PatternFile, err)
		}
		if c.Pattern == PatternNone {
			c.Pattern = p.Name()
		}
	}
	if err := c.Validate(catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// FromMap returns Default overridden by flag-style key/value pairs. Keys are
// the flag names; unparsable or out-of-range values are ignored.
func FromMap(m map[string]string) *Config {
	c := Default()
	if m == nil {
		return c
	}
	if v, ok := m["width"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := m["height"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := m["interval"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			c.Interval = parsed
		}
	}
	if v, ok := m["p"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Probability = parsed
		}
	}
	if v, ok := m["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := m["pattern"]; ok {
		c.Pattern = v
	}
	if v, ok := m["scale"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Scale = parsed
		}
	}
	return c
}

// Apply copies the settings present in s, skipping those whose flag name is
// in skip.
func (c *Config) Apply(s Settings, skip map[string]bool) error {
	if s.Width != nil && !skip["width"] {
		c.Width = *s.Width
	}
	if s.Height != nil && !skip["height"] {
		c.Height = *s.Height
	}
	if s.Interval != nil && !skip["interval"] {
		d, err := time.ParseDuration(*s.Interval)
		if err != nil {
			return fmt.Errorf("%w: interval %q: %w", life.ErrInvalidConfiguration, *s.Interval, err)
		}
		c.Interval = d
	}
	if s.Probability != nil && !skip["p"] {
		c.Probability = *s.Probability
	}
	if s.Seed != nil && !skip["seed"] {
		c.Seed = *s.Seed
	}
	if s.Pattern != nil && !skip["pattern"] {
		c.Pattern = *s.Pattern
	}
	if s.Scale != nil && !skip["scale"] {
		c.Scale = *s.Scale
	}
	return nil
}

// Validate reports the first invalid field. A nil catalog skips the pattern
// name check.
func (c *Config) Validate(catalog *life.Catalog) error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: grid size %dx%d must be positive", life.ErrInvalidConfiguration, c.Width, c.Height)
	case c.Interval <= 0:
		return fmt.Errorf("%w: interval %v must be positive", life.ErrInvalidConfiguration, c.Interval)
	case math.IsNaN(c.Probability) || c.Probability < 0 || c.Probability > 1:
		return fmt.Errorf("%w: probability %v outside [0,1]", life.ErrInvalidConfiguration, c.Probability)
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale %d must be positive", life.ErrInvalidConfiguration, c.Scale)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", life.ErrInvalidConfiguration, c.LogFormat)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", life.ErrInvalidConfiguration, c.LogLevel)
	}
	switch c.Pattern {
	case PatternNone, PatternRandom, PatternNoise:
		return nil
	}
	if catalog != nil {
		if _, ok := catalog.Lookup(c.Pattern); !ok {
			return fmt.Errorf("%w: unknown pattern %q", life.ErrInvalidConfiguration, c.Pattern)
		}
	}
	return nil
}
