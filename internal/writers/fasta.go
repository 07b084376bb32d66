package writers

import (
	"io"

	"alnedit/internal/jobs"
	"alnedit/internal/output"
)

func init() { Register("fasta", streamFASTA) }

func streamFASTA(w io.Writer, in <-chan jobs.Result, _ Options) error {
	for r := range in {
		if err := output.WriteFASTA(w, r); err != nil {
			return err
		}
	}
	return nil
}
