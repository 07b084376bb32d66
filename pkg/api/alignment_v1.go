// pkg/api/alignment_v1.go
package api

// AlignmentV1 is the stable JSON/JSONL/YAML schema for one conversion.
// Keep fields, names, and types stable. Add new fields only with omitempty.
type AlignmentV1 struct {
	ID     string `json:"id" yaml:"id"`
	Kind   string `json:"kind" yaml:"kind"` // "align" | "edits"
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	Line   int    `json:"line,omitempty" yaml:"line,omitempty"`

	RowA   string `json:"row_a,omitempty" yaml:"row_a,omitempty"`
	RowB   string `json:"row_b,omitempty" yaml:"row_b,omitempty"`
	Edits  string `json:"edits,omitempty" yaml:"edits,omitempty"`
	CIGAR  string `json:"cigar,omitempty" yaml:"cigar,omitempty"`
	Length int    `json:"length" yaml:"length"`

	Matches int `json:"matches" yaml:"matches"`
	Inserts int `json:"inserts" yaml:"inserts"`
	Deletes int `json:"deletes" yaml:"deletes"`

	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}
