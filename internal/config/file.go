package config

import (
	"flag"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// fileConfig is the shape of an HCL settings file. Every attribute is
// optional; unknown attributes are rejected by the decoder.
type fileConfig struct {
	Size        *int     `hcl:"size,optional"`
	Rule        *string  `hcl:"rule,optional"`
	TPS         *int     `hcl:"tps,optional"`
	Scale       *int     `hcl:"scale,optional"`
	Seed        *int64   `hcl:"seed,optional"`
	Paused      *bool    `hcl:"paused,optional"`
	Pattern     []string `hcl:"pattern,optional"`
	Generations *int     `hcl:"generations,optional"`
	Interactive *bool    `hcl:"tui,optional"`
	LogLevel    *string  `hcl:"log_level,optional"`
	LogFormat   *string  `hcl:"log_format,optional"`
}

// LoadFile reads the HCL file at path and applies its values. Flags that were
// set explicitly on fs keep their command line value; fs may be nil.
func (c *Config) LoadFile(path string, fs *flag.FlagSet) error {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}
	return c.apply(file.Body, path, fs)
}

// LoadBytes is LoadFile for in-memory content; filename is used in
// diagnostics only.
func (c *Config) LoadBytes(src []byte, filename string, fs *flag.FlagSet) error {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse config %s: %w", filename, diags)
	}
	return c.apply(file.Body, filename, fs)
}

func (c *Config) apply(body hcl.Body, filename string, fs *flag.FlagSet) error {
	var fc fileConfig
	if diags := gohcl.DecodeBody(body, nil, &fc); diags.HasErrors() {
		return fmt.Errorf("failed to decode config %s: %w", filename, diags)
	}

	explicit := map[string]bool{}
	if fs != nil {
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	}
	set := func(flagName string, apply func()) {
		if !explicit[flagName] {
			apply()
		}
	}

	if fc.Size != nil {
		set("size", func() { c.Size = *fc.Size })
	}
	if fc.Rule != nil {
		set("rule", func() { c.Rule = *fc.Rule })
	}
	if fc.TPS != nil {
		set("tps", func() { c.TPS = *fc.TPS })
	}
	if fc.Scale != nil {
		set("scale", func() { c.Scale = *fc.Scale })
	}
	if fc.Seed != nil {
		set("seed", func() { c.Seed = *fc.Seed })
	}
	if fc.Paused != nil {
		set("paused", func() { c.Paused = *fc.Paused })
	}
	if fc.Generations != nil {
		set("generations", func() { c.Generations = *fc.Generations })
	}
	if fc.Interactive != nil {
		set("tui", func() { c.Interactive = *fc.Interactive })
	}
	if fc.LogLevel != nil {
		set("log-level", func() { c.LogLevel = *fc.LogLevel })
	}
	if fc.LogFormat != nil {
		set("log-format", func() { c.LogFormat = *fc.LogFormat })
	}
	if fc.Pattern != nil {
		c.Pattern = fc.Pattern
	}
	return nil
}
