// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"alnedit/internal/jobs"
)

// WriteJSON writes a single JSON array of v1 records (pretty-indented).
func WriteJSON(w io.Writer, list []jobs.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToAPIList(list))
}

// EncodeJSONL writes r as one compact JSON line.
func EncodeJSONL(enc *json.Encoder, r jobs.Result) error {
	return enc.Encode(ToAPI(r))
}
