// internal/cli/options.go
package cli

import (
	"strings"

	"alnedit/internal/writers"
	"github.com/spf13/pflag"
)

// registerPersistent wires the flags shared by every subcommand. Values are
// read back through viper, so only defaults live here.
func registerPersistent(fs *pflag.FlagSet, configPath *string) {
	fs.StringVar(configPath, "config", "", "config file (yaml, json, or toml)")

	// Output
	fs.StringP("output", "o", "text", "output: "+strings.Join(writers.Formats(), " | "))
	fs.Bool("pretty", false, "append an ASCII alignment block (text)")
	fs.Int("width", 60, "columns per alignment block line")
	fs.Bool("no-header", false, "suppress the TSV header (batch text)")

	// Performance
	fs.IntP("threads", "t", 0, "worker threads for batch (0=all CPUs)")

	// Logging
	fs.BoolP("quiet", "q", false, "log errors only")
	fs.Bool("verbose", false, "log debug detail")
	fs.String("log-format", "text", "stderr log format: text | json")
}

func registerCIGAR(fs *pflag.FlagSet, usage string) {
	fs.Bool("cigar", false, usage)
}
