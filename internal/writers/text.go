package writers

import (
	"fmt"
	"io"

	"alnedit/internal/jobs"
	"alnedit/internal/output"
)

func init() { Register("text", streamText) }

func streamText(w io.Writer, in <-chan jobs.Result, o Options) error {
	if !o.Table {
		for r := range in {
			if err := output.WritePlain(w, r, o.TextOptions); err != nil {
				return err
			}
		}
		return nil
	}
	if o.Header {
		if _, err := fmt.Fprintln(w, output.TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if err := output.WriteTSVRow(w, r, o.TextOptions); err != nil {
			return err
		}
	}
	return nil
}
