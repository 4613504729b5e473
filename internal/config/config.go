// Package config holds the settings shared by the life front-ends: command
// line flags, an optional HCL settings file and their validation.
package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/emjomi/life/internal/logging"
	"github.com/emjomi/life/pkg/life"
)

// Limits mirror the ranges offered by the preferences of the desktop shell.
const (
	MaxSize = 600
	MinTPS  = 1
	MaxTPS  = 120
)

// Config represents the parameters for a life session.
type Config struct {
	Size   int
	Rule   string
	TPS    int
	Scale  int
	Seed   int64
	Paused bool

	// Pattern optionally replaces the random start with a literal grid,
	// centred in a Size × Size board.
	Pattern []string

	Generations int
	Interactive bool

	LogLevel  string
	LogFormat string

	ConfigFile string
}

// NewConfig returns a Config populated with the defaults.
func NewConfig() *Config {
	return &Config{
		Size:      30,
		Rule:      "B3/S23",
		TPS:       30,
		Scale:     16,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "grid side length in cells")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule in B/S notation or a preset name ("+strings.Join(life.Presets(), ", ")+")")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell in the desktop window")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random grids (0 picks one)")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.IntVar(&c.Generations, "generations", c.Generations, "stop after this many generations in text mode (0 runs forever)")
	fs.BoolVar(&c.Interactive, "tui", c.Interactive, "use the interactive terminal view")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: text or json")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "HCL settings file; explicit flags take precedence")
}

// Validate checks ranges and that the rule and pattern parse.
func (c *Config) Validate() error {
	var errs []error
	if c.Size < 0 || c.Size > MaxSize {
		errs = append(errs, fmt.Errorf("size %d out of range [0, %d]", c.Size, MaxSize))
	}
	if c.TPS < MinTPS || c.TPS > MaxTPS {
		errs = append(errs, fmt.Errorf("tps %d out of range [%d, %d]", c.TPS, MinTPS, MaxTPS))
	}
	if c.Scale < 1 {
		errs = append(errs, fmt.Errorf("scale must be at least 1, got %d", c.Scale))
	}
	if c.Generations < 0 {
		errs = append(errs, fmt.Errorf("generations must not be negative, got %d", c.Generations))
	}
	if _, err := life.LookupRule(c.Rule); err != nil {
		errs = append(errs, err)
	}
	if len(c.Pattern) > 0 {
		if _, err := life.ParsePattern(c.Pattern); err != nil {
			errs = append(errs, fmt.Errorf("pattern: %w", err))
		}
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}
	return errors.Join(errs...)
}
