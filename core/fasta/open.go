// core/fasta/open.go
package fasta

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// Stdin is read when a path is "-". Tests may replace it.
var Stdin io.Reader = os.Stdin

// multiReadCloser closes every wrapped io.Closer on Close.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openReader opens path ("-" for Stdin) and transparently gunzips it when
// the content starts with the gzip magic (1F 8B) or the name ends in .gz.
func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return maybeGzip(io.NopCloser(Stdin), false)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return maybeGzip(fh, strings.HasSuffix(path, ".gz"))
}

func maybeGzip(rc io.ReadCloser, force bool) (io.ReadCloser, error) {
	br := bufio.NewReader(rc)
	sig, _ := br.Peek(2)
	if !force && !(len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b) {
		return &multiReadCloser{Reader: br, closers: []io.Closer{rc}}, nil
	}
	gr, err := gzip.NewReader(br)
	if err != nil {
		_ = rc.Close()
		return nil, err
	}
	return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, rc}}, nil
}
