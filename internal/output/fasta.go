// internal/output/fasta.go
package output

import (
	"fmt"
	"io"

	"alnedit-core/edit"
	"alnedit/internal/jobs"
)

// WriteFASTA writes the two aligned rows of r as a pairwise aligned FASTA.
// Failed results are skipped.
func WriteFASTA(w io.Writer, r jobs.Result) error {
	if r.Err != nil {
		return nil
	}
	a, b := r.Job.Names()
	_, err := fmt.Fprintf(w, ">%s cigar=%s\n%s\n>%s\n%s\n", a, edit.EncodeCIGAR(r.Script), r.RowA, b, r.RowB)
	return err
}
