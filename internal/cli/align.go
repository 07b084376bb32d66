// internal/cli/align.go
package cli

import (
	"alnedit-core/fasta"
	"alnedit/internal/jobs"
	"github.com/spf13/cobra"
)

func newAlignCmd(r *runner) *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:   "align [X Y] SCRIPT",
		Short: "Rebuild aligned rows from two sequences and an edit script",
		Long: `Rebuild the two gapped rows described by an edit script.

X and Y are ungapped sequences and SCRIPT is a string of M (match),
D (symbol of X against a gap), and I (symbol of Y against a gap). With
--in, X and Y are the first two records of a FASTA file ("-" for stdin,
gzip accepted) and only SCRIPT is given.`,
		Example: `  alnedit align ACCACAGTCATA ACAGAGTACAAA MDMMMMMMIMMMM
  alnedit align --cigar --in pair.fa 1M1D6M1I4M -o json`,
		Args: func(cmd *cobra.Command, args []string) error {
			if in != "" {
				return cobra.ExactArgs(1)(cmd, args)
			}
			return cobra.ExactArgs(3)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			j := jobs.Job{ID: "align", Kind: jobs.KindAlign, NameX: "x", NameY: "y"}
			if in != "" {
				a, b, err := fasta.ReadPair(cmd.Context(), in)
				if err != nil {
					return withCode(ExitUsage, err)
				}
				j.X, j.Y, j.NameX, j.NameY = string(a.Seq), string(b.Seq), a.ID, b.ID
				j.Script = args[0]
			} else {
				j.X, j.Y, j.Script = args[0], args[1], args[2]
			}
			return r.emit(jobs.Convert(j, r.cfg.CIGAR))
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "FASTA file holding X and Y")
	registerCIGAR(cmd.Flags(), "SCRIPT is run-length encoded (e.g. 1M1D6M1I4M)")
	return cmd
}
