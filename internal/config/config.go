// Package config holds run-wide settings unmarshalled from viper, which merges
// defaults, an optional config file, ALNEDIT_* environment variables, and
// command line flags (see internal/cli).
package config

import (
	"fmt"
	"slices"
	"strings"

	"alnedit/internal/writers"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to upper-cased keys when reading the environment,
// e.g. ALNEDIT_OUTPUT or ALNEDIT_NO_HEADER.
const EnvPrefix = "ALNEDIT"

// Config is the root-level settings struct.
type Config struct {
	// output format, one of writers.Formats()
	Output string `mapstructure:"output"`

	// render text output as a wrapped alignment block
	Pretty bool `mapstructure:"pretty"`

	// columns per line in pretty blocks
	Width int `mapstructure:"width"`

	// worker goroutines for batch runs (0 = all CPUs)
	Threads int `mapstructure:"threads"`

	// suppress the TSV header in text output
	NoHeader bool `mapstructure:"no-header"`

	// read (align) or write (edits) scripts in CIGAR run-length form
	CIGAR bool `mapstructure:"cigar"`

	// batch: keep converting after a failed job
	KeepGoing bool `mapstructure:"keep-going"`

	// logging
	Quiet     bool   `mapstructure:"quiet"`
	Verbose   bool   `mapstructure:"verbose"`
	LogFormat string `mapstructure:"log-format"`
}

// NewViper returns a viper instance with every key defaulted and the
// environment bound.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("output", "text")
	v.SetDefault("pretty", false)
	v.SetDefault("width", 60)
	v.SetDefault("threads", 0)
	v.SetDefault("no-header", false)
	v.SetDefault("cigar", false)
	v.SetDefault("keep-going", false)
	v.SetDefault("quiet", false)
	v.SetDefault("verbose", false)
	v.SetDefault("log-format", "text")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile merges a YAML/JSON/TOML config file into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// New decodes v into a Config and validates it.
func New(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unable to decode config: %w", err)
	}
	c.Output = strings.ToLower(c.Output)
	c.LogFormat = strings.ToLower(c.LogFormat)
	return c, c.Validate()
}

// Validate applies the shared invariants.
func (c Config) Validate() error {
	if formats := writers.Formats(); !slices.Contains(formats, c.Output) {
		return fmt.Errorf("invalid --output %q (want %s)", c.Output, strings.Join(formats, " | "))
	}
	if c.Width < 1 {
		return fmt.Errorf("--width must be >= 1")
	}
	if c.Threads < 0 {
		return fmt.Errorf("--threads must be >= 0")
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid --log-format %q", c.LogFormat)
	}
	if c.Quiet && c.Verbose {
		return fmt.Errorf("--quiet conflicts with --verbose")
	}
	return nil
}
