package writers

import (
	"encoding/json"
	"io"

	"alnedit/internal/jobs"
	"alnedit/internal/jsonlutil"
	"alnedit/internal/output"
)

func init() {
	Register("json", streamJSON)
	Register("jsonl", streamJSONL)
}

// streamJSON buffers everything: one array in table mode, one object per
// result otherwise.
func streamJSON(w io.Writer, in <-chan jobs.Result, o Options) error {
	var buf []jobs.Result
	for r := range in {
		buf = append(buf, r)
	}
	if o.Table {
		return output.WriteJSON(w, buf)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	for _, r := range buf {
		if err := enc.Encode(output.ToAPI(r)); err != nil {
			return err
		}
	}
	return nil
}

// streamJSONL writes each result as one JSON line (v1).
func streamJSONL(w io.Writer, in <-chan jobs.Result, _ Options) error {
	return jsonlutil.Encode[jobs.Result](w, in, output.EncodeJSONL, IsBrokenPipe)
}
