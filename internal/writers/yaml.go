package writers

import (
	"io"

	"alnedit/internal/jobs"
	"alnedit/internal/output"
)

func init() { Register("yaml", streamYAML) }

func streamYAML(w io.Writer, in <-chan jobs.Result, _ Options) error {
	var buf []jobs.Result
	for r := range in {
		buf = append(buf, r)
	}
	return output.WriteYAML(w, buf)
}
