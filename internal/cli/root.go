// Package cli is the command line interface of alnedit: a cobra command
// tree whose settings are merged by viper (flags > ALNEDIT_* env > config
// file > defaults) into a config.Config.
package cli

import (
	"context"
	"io"

	"alnedit/internal/cmdutil"
	"alnedit/internal/config"
	"alnedit/internal/jobs"
	"alnedit/internal/version"
	"alnedit/internal/writers"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runner carries per-invocation state shared by the subcommands.
type runner struct {
	v          *viper.Viper
	cfg        config.Config
	configPath string
	stdout     io.Writer
	stderr     io.Writer
}

// NewRootCmd builds a fresh command tree writing results to stdout and
// diagnostics to stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	r := &runner{v: config.NewViper(), stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "alnedit",
		Short: "Convert pairwise alignments to and from Match/Insert/Delete edit scripts",
		Long: `alnedit converts between two views of a pairwise alignment:

  aligned rows    ACCACAGT-CATA      edit script   MDMMMMMMIMMMM
                  A-CAGAGTACAAA

"align" rebuilds the gapped rows from two ungapped sequences and a script,
"edits" derives the script from two gapped rows, and "batch" runs many of
either from tab-separated files.`,
		Version:           version.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: r.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate("alnedit version {{.Version}}\n")
	registerPersistent(root.PersistentFlags(), &r.configPath)

	root.AddCommand(
		newAlignCmd(r),
		newEditsCmd(r),
		newBatchCmd(r),
		newVersionCmd(),
	)
	return root
}

// setup binds the running command's flags, loads the config file, and puts
// a logger in the command context.
func (r *runner) setup(cmd *cobra.Command, _ []string) error {
	if err := r.v.BindPFlags(cmd.Flags()); err != nil {
		return withCode(ExitUsage, err)
	}
	if err := config.ReadFile(r.v, r.configPath); err != nil {
		return withCode(ExitUsage, err)
	}
	cfg, err := config.New(r.v)
	if err != nil {
		return withCode(ExitUsage, err)
	}
	r.cfg = cfg

	log := cmdutil.NewLogger(r.stderr, cmdutil.LogOptions{Format: cfg.LogFormat, Quiet: cfg.Quiet, Verbose: cfg.Verbose})
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(cmdutil.WithLogger(ctx, log))
	log.Debug("config", "output", cfg.Output, "threads", cfg.Threads, "cigar", cfg.CIGAR, "config_file", r.configPath)
	return nil
}

func (r *runner) writerOptions(table bool) writers.Options {
	o := writers.Options{Table: table, Header: !r.cfg.NoHeader}
	o.CIGAR, o.Pretty, o.Width = r.cfg.CIGAR, r.cfg.Pretty, r.cfg.Width
	return o
}

// emit writes one successful conversion; a failed one becomes the command error.
func (r *runner) emit(res jobs.Result) error {
	if res.Err != nil {
		return withCode(ExitConversion, res.Err)
	}
	in, done := writers.Start(r.stdout, r.cfg.Output, r.writerOptions(false), 1)
	in <- res
	close(in)
	return withCode(ExitOutput, <-done)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := cmd.OutOrStdout().Write([]byte("alnedit version " + version.Version + "\n"))
			return withCode(ExitOutput, err)
		},
	}
}
