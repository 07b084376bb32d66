// internal/cli/edits.go
package cli

import (
	"alnedit-core/fasta"
	"alnedit/internal/jobs"
	"github.com/spf13/cobra"
)

func newEditsCmd(r *runner) *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:   "edits [ROW_A ROW_B]",
		Short: "Derive the edit script of two aligned rows",
		Long: `Derive the Match/Insert/Delete script of a pairwise alignment.

ROW_A and ROW_B are equal-length rows using '-' for gaps. With --in, the
rows are the first two records of an aligned FASTA file ("-" for stdin,
gzip accepted).`,
		Example: `  alnedit edits ACCACAGT-CATA A-CAGAGTACAAA
  alnedit edits --in aln.fa --cigar --pretty`,
		Args: func(cmd *cobra.Command, args []string) error {
			if in != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			j := jobs.Job{ID: "edits", Kind: jobs.KindEdits, NameX: "x", NameY: "y"}
			if in != "" {
				a, b, err := fasta.ReadPair(cmd.Context(), in)
				if err != nil {
					return withCode(ExitUsage, err)
				}
				j.X, j.Y, j.NameX, j.NameY = string(a.Seq), string(b.Seq), a.ID, b.ID
			} else {
				j.X, j.Y = args[0], args[1]
			}
			return r.emit(jobs.Convert(j, false))
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "aligned FASTA file holding the two rows")
	registerCIGAR(cmd.Flags(), "print the script run-length encoded (e.g. 1M1D6M1I4M)")
	return cmd
}
