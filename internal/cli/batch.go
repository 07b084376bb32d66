// internal/cli/batch.go
package cli

import (
	"alnedit/internal/batch"
	"alnedit/internal/cliutil"
	"alnedit/internal/cmdutil"
	"alnedit/internal/jobs"
	"alnedit/internal/writers"
	"github.com/spf13/cobra"
)

func newBatchCmd(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch FILE...",
		Short: "Convert many alignments from tab-separated job files",
		Long: `Run align and edits conversions listed in tab-separated files.

Each non-blank line not starting with '#' is a job:

  id <TAB> x <TAB> y <TAB> script     align job
  id <TAB> row_a <TAB> row_b          edits job

FILE may be a glob or "-" for stdin. Results are written in input order.
Without --keep-going the first failed job stops the run.`,
		Example: `  alnedit batch jobs.tsv -o jsonl
  alnedit batch 'runs/*.tsv' --keep-going -t 8`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			paths, err := cliutil.ExpandPositionals(args)
			if err != nil {
				return withCode(ExitUsage, err)
			}
			list, err := jobs.LoadAll(paths)
			if err != nil {
				return withCode(ExitUsage, err)
			}
			cmdutil.Logger(ctx).Debug("loaded jobs", "files", len(paths), "jobs", len(list))

			in, done := writers.Start(r.stdout, r.cfg.Output, r.writerOptions(true), 0)
			runErr := batch.Run(ctx, batch.Config{
				Threads:   r.cfg.Threads,
				KeepGoing: r.cfg.KeepGoing,
				CIGAR:     r.cfg.CIGAR,
			}, list, func(res jobs.Result) error {
				in <- res
				return nil
			})
			close(in)
			if werr := <-done; werr != nil {
				return withCode(ExitOutput, werr)
			}
			return withCode(ExitConversion, runErr)
		},
	}
	cmd.Flags().Bool("keep-going", false, "record failed jobs and continue")
	registerCIGAR(cmd.Flags(), "align scripts are run-length encoded")
	return cmd
}
