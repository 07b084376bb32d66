// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"alnedit/internal/cli"
	"alnedit/internal/writers"
)

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunContext executes one alnedit invocation and returns its exit code.
// Stdout is buffered and flushed before returning; a failed flush is an
// output error unless the reader went away.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	root := cli.NewRootCmd(outw, stderr)
	root.SetArgs(argv)
	err := root.ExecuteContext(parent)

	if ferr := outw.Flush(); ferr != nil && !writers.IsBrokenPipe(ferr) {
		_, _ = fmt.Fprintln(stderr, "alnedit:", ferr)
		return cli.ExitOutput
	}

	code := cli.ExitCode(err)
	switch code {
	case cli.ExitOK, cli.ExitCanceled:
		return code
	case cli.ExitUsage:
		_, _ = fmt.Fprintf(stderr, "alnedit: %v\nRun 'alnedit --help' for usage.\n", err)
	default:
		_, _ = fmt.Fprintln(stderr, "alnedit:", err)
	}
	return code
}
