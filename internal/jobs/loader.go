// internal/jobs/loader.go
package jobs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Kind selects the conversion a Job performs.
type Kind string

const (
	KindAlign Kind = "align" // x, y, script → rows
	KindEdits Kind = "edits" // rows → script
)

// Job is one line of a batch file.
//
//	align:  id <TAB> x <TAB> y <TAB> script
//	edits:  id <TAB> rowA <TAB> rowB
//
// Fields are tab separated so empty sequences stay representable.
type Job struct {
	Index  int // 0-based position across all loaded files
	Source string
	Line   int
	ID     string
	Kind   Kind

	X, Y   string // ungapped sequences (align) or aligned rows (edits)
	Script string // align only

	// Optional record names (e.g. FASTA IDs) for the two sequences.
	NameX, NameY string
}

// Names returns display names for the two rows, falling back to "<id>/x"
// and "<id>/y".
func (j Job) Names() (string, string) {
	a, b := j.NameX, j.NameY
	if a == "" {
		a = j.ID + "/x"
	}
	if b == "" {
		b = j.ID + "/y"
	}
	return a, b
}

// Stdin is read when a path is "-".
var Stdin io.Reader = os.Stdin

// LoadTSV reads jobs from path ("-" for Stdin).
func LoadTSV(path string) ([]Job, error) {
	if path == "-" {
		return Parse(Stdin, "<stdin>")
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return Parse(fh, path)
}

// LoadAll loads every path in order and numbers jobs globally.
func LoadAll(paths []string) ([]Job, error) {
	var all []Job
	for _, p := range paths {
		js, err := LoadTSV(p)
		if err != nil {
			return nil, err
		}
		for i := range js {
			js[i].Index = len(all)
			all = append(all, js[i])
		}
	}
	return all, nil
}

// Parse reads jobs from r; source labels error messages.
func Parse(r io.Reader, source string) ([]Job, error) {
	var list []Job
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		f := strings.Split(line, "\t")
		for i := range f {
			f[i] = strings.TrimSpace(f[i])
		}
		j := Job{Index: len(list), Source: source, Line: ln, ID: f[0]}
		switch len(f) {
		case 3:
			j.Kind, j.X, j.Y = KindEdits, f[1], f[2]
		case 4:
			j.Kind, j.X, j.Y, j.Script = KindAlign, f[1], f[2], f[3]
		default:
			return nil, fmt.Errorf("%s:%d bad field count %d (want 3 or 4 tab-separated)", source, ln, len(f))
		}
		if j.ID == "" {
			return nil, fmt.Errorf("%s:%d empty job id", source, ln)
		}
		list = append(list, j)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return list, nil
}
