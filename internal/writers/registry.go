// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"alnedit/internal/jobs"
	"alnedit/internal/output"
)

// Options are passed to every writer.
type Options struct {
	output.TextOptions

	// Table selects multi-result output (batch): TSV rows in text, arrays in
	// JSON/YAML. Otherwise a single conversion is printed plainly.
	Table  bool
	Header bool
}

// StreamFunc consumes results until in is closed.
type StreamFunc func(out io.Writer, in <-chan jobs.Result, o Options) error

// Format → writer. Populated from init() blocks in this package.
var registry = map[string]StreamFunc{}

// Register installs fn for format (last wins).
func Register(format string, fn StreamFunc) { registry[format] = fn }

// Formats lists registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Start spins up a writer goroutine for format. The returned error channel
// yields exactly one value after in is closed. The writer keeps draining in
// after a failure so senders never block.
func Start(out io.Writer, format string, o Options, bufSize int) (chan<- jobs.Result, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan jobs.Result, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		if fn, ok := registry[format]; ok {
			err = fn(out, in, o)
		} else {
			err = fmt.Errorf("unknown output format %q (no writer registered)", format)
		}
		for range in {
		}
		errCh <- err
	}()
	return in, errCh
}
