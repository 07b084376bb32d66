// internal/jobs/result.go
package jobs

import (
	"fmt"

	"alnedit-core/edit"
	"cloudeng.io/errors"
)

// Result is the outcome of converting one Job. On failure only Job and Err are set.
type Result struct {
	Job    Job
	RowA   string
	RowB   string
	Script edit.Script
	Err    error
}

// OK reports whether the conversion succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Convert runs the codec for j. When cigar is set, align scripts are read in
// run-length form. Errors are annotated with the job's source location and ID.
func Convert(j Job, cigar bool) Result {
	r := Result{Job: j}
	var err error
	switch j.Kind {
	case KindAlign:
		r.RowA, r.RowB, r.Script, err = convertAlign(j, cigar)
	case KindEdits:
		r.Script, err = convertEdits(j)
		r.RowA, r.RowB = j.X, j.Y
	default:
		err = fmt.Errorf("unknown job kind %q", j.Kind)
	}
	if err != nil {
		return Result{Job: j, Err: errors.Annotate(j.Label(), err)}
	}
	return r
}

// Label identifies j in messages: "source:line id", or just the ID for
// jobs built from command line arguments.
func (j Job) Label() string {
	if j.Source == "" {
		return j.ID
	}
	return fmt.Sprintf("%s:%d %s", j.Source, j.Line, j.ID)
}

func convertAlign(j Job, cigar bool) (string, string, edit.Script, error) {
	x, err := edit.Symbols(j.X)
	if err != nil {
		return "", "", nil, fmt.Errorf("x: %w", err)
	}
	y, err := edit.Symbols(j.Y)
	if err != nil {
		return "", "", nil, fmt.Errorf("y: %w", err)
	}
	var s edit.Script
	if cigar {
		// No consistent script is longer than len(x)+len(y) columns.
		s, err = edit.DecodeCIGAR(j.Script, len(x)+len(y))
	} else {
		s, err = edit.ParseScript(j.Script)
	}
	if err != nil {
		return "", "", nil, err
	}
	if !s.Consistent(len(x), len(y)) {
		cx, cy := s.Counts()
		return "", "", nil, fmt.Errorf("%w: script consumes %d symbol(s) of x and %d of y, sequences have %d and %d",
			edit.ErrInconsistentScript, cx, cy, len(x), len(y))
	}
	a, b, err := edit.AlignScript(x, y, s)
	if err != nil {
		return "", "", nil, err
	}
	return string(a), string(b), s, nil
}

func convertEdits(j Job) (edit.Script, error) {
	a, err := edit.Symbols(j.X)
	if err != nil {
		return nil, fmt.Errorf("row A: %w", err)
	}
	b, err := edit.Symbols(j.Y)
	if err != nil {
		return nil, fmt.Errorf("row B: %w", err)
	}
	return edit.Extract(a, b)
}
