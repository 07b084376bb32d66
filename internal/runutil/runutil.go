// internal/runutil/runutil.go
package runutil

import "runtime"

// EffectiveThreads returns the worker count for a run of n jobs. A request
// below 1 means one worker per CPU; no more workers than jobs are started,
// but at least one is.
func EffectiveThreads(requested, n int) int {
	t := requested
	if t < 1 {
		t = runtime.NumCPU()
	}
	if n > 0 && t > n {
		t = n
	}
	if t < 1 {
		t = 1
	}
	return t
}
