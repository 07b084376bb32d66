// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strings"

	"alnedit-core/edit"
	"alnedit/internal/jobs"
	"alnedit/internal/pretty"
)

// TSVHeader is the column header for table output.
const TSVHeader = "id\tkind\tedits\tcigar\trow_a\trow_b\tstatus"

// TextOptions control plain and table text output.
type TextOptions struct {
	CIGAR  bool // print scripts run-length encoded
	Pretty bool // append an alignment block
	Width  int  // block width
}

// WriteTSVRow writes one table row. Failed results carry empty fields and
// the error text in the status column.
func WriteTSVRow(w io.Writer, r jobs.Result, o TextOptions) error {
	if r.Err != nil {
		_, err := fmt.Fprintf(w, "%s\t%s\t\t\t\t\t%s\n", r.Job.ID, r.Job.Kind, oneLine(r.Err.Error()))
		return err
	}
	_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\tok\n",
		r.Job.ID, r.Job.Kind, r.Script.String(), edit.EncodeCIGAR(r.Script), r.RowA, r.RowB)
	if err != nil || !o.Pretty {
		return err
	}
	return writeBlock(w, r, o)
}

// WritePlain writes a single conversion the way a shell user expects it:
// the two aligned rows for align, the script for edits. Failed results
// print nothing; their errors are reported by the caller.
func WritePlain(w io.Writer, r jobs.Result, o TextOptions) error {
	if r.Err != nil {
		return nil
	}
	var err error
	switch r.Job.Kind {
	case jobs.KindAlign:
		if o.Pretty {
			return writeBlock(w, r, o)
		}
		_, err = fmt.Fprintf(w, "%s\n%s\n", r.RowA, r.RowB)
	default:
		_, err = fmt.Fprintln(w, scriptText(r.Script, o.CIGAR))
		if err == nil && o.Pretty {
			err = writeBlock(w, r, o)
		}
	}
	return err
}

func writeBlock(w io.Writer, r jobs.Result, o TextOptions) error {
	la, lb := r.Job.NameX, r.Job.NameY
	_, err := io.WriteString(w, pretty.Render(r.RowA, r.RowB, pretty.Options{Width: o.Width, LabelA: la, LabelB: lb}))
	return err
}

func scriptText(s edit.Script, cigar bool) string {
	if cigar {
		return edit.EncodeCIGAR(s)
	}
	return s.String()
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
