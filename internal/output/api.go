// internal/output/api.go
package output

import (
	"alnedit-core/edit"
	"alnedit/internal/jobs"
	"alnedit/pkg/api"
)

// ToAPI converts a Result to the stable wire schema (v1).
func ToAPI(r jobs.Result) api.AlignmentV1 {
	v := api.AlignmentV1{
		ID:     r.Job.ID,
		Kind:   string(r.Job.Kind),
		Source: r.Job.Source,
		Line:   r.Job.Line,
	}
	if r.Err != nil {
		v.Error = r.Err.Error()
		return v
	}
	st := r.Script.Stats()
	v.RowA, v.RowB = r.RowA, r.RowB
	v.Edits = r.Script.String()
	v.CIGAR = edit.EncodeCIGAR(r.Script)
	v.Length = len(r.Script)
	v.Matches, v.Inserts, v.Deletes = st.Matches, st.Inserts, st.Deletes
	return v
}

// ToAPIList converts results in order.
func ToAPIList(list []jobs.Result) []api.AlignmentV1 {
	out := make([]api.AlignmentV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPI(r))
	}
	return out
}
