package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/mitchellh/go-homedir"
	"github.com/tliron/commonlog"
)

// DefaultPath is where the CLI looks for a configuration file when none is given.
const DefaultPath = "~/.config/peacock/config.hcl"

// Hue units.
const (
	HueRadians = "radians"
	HueDegrees = "degrees"
)

// Output formats.
const (
	FormatText = "text"
	FormatHCL  = "hcl"
	FormatJSON = "json"
)

// MaxPrecision is the largest number of decimal places worth printing for a float64.
const MaxPrecision = 17

// logger is resolved on every call; the backend is registered by the binary.
func logger() commonlog.Logger {
	return commonlog.GetLogger("peacock.config")
}

// Config holds the CLI settings.
type Config struct {
	Precision int
	HueUnit   string
	Format    string
	Verbosity int
}

// fileConfig mirrors Config with pointer fields so that attributes absent
// from the file leave the defaults alone.
type fileConfig struct {
	Precision *int    `hcl:"precision,optional"`
	HueUnit   *string `hcl:"hue_unit,optional"`
	Format    *string `hcl:"format,optional"`
	Verbosity *int    `hcl:"verbosity,optional"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Precision: 6,
		HueUnit:   HueDegrees,
		Format:    FormatText,
	}
}

// Load reads an HCL configuration file on top of the defaults.
func Load(path string) (*Config, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	src, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(src, expanded)
}

// LoadDefault reads the file at DefaultPath, falling back to the defaults
// when it does not exist.
func LoadDefault() (*Config, error) {
	cfg, err := Load(DefaultPath)
	if errors.Is(err, fs.ErrNotExist) {
		logger().Debugf("no config file at %s, using defaults", DefaultPath)
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes HCL source into a Config. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	var raw fileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("decoding config: %s", diags.Error())
	}

	cfg := Default()
	if raw.Precision != nil {
		cfg.Precision = *raw.Precision
	}
	if raw.HueUnit != nil {
		cfg.HueUnit = *raw.HueUnit
	}
	if raw.Format != nil {
		cfg.Format = *raw.Format
	}
	if raw.Verbosity != nil {
		cfg.Verbosity = *raw.Verbosity
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	logger().Infof("loaded config from %s", filename)
	return cfg, nil
}

// Validate reports the first setting that is out of range.
func (c *Config) Validate() error {
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d, got %d", MaxPrecision, c.Precision)
	}
	switch c.HueUnit {
	case HueRadians, HueDegrees:
	default:
		return fmt.Errorf("unknown hue_unit %q (valid: %s, %s)", c.HueUnit, HueRadians, HueDegrees)
	}
	switch c.Format {
	case FormatText, FormatHCL, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q (valid: %s, %s, %s)", c.Format, FormatText, FormatHCL, FormatJSON)
	}
	return nil
}
