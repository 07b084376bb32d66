package writers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"alnedit/internal/jobs"
	"alnedit/internal/output"
)

func send(in chan<- jobs.Result, rs ...jobs.Result) {
	for _, r := range rs {
		in <- r
	}
	close(in)
}

func sample() []jobs.Result {
	return []jobs.Result{
		jobs.Convert(jobs.Job{ID: "a", Kind: jobs.KindAlign, X: "AC", Y: "C", Script: "DM"}, false),
		jobs.Convert(jobs.Job{ID: "b", Kind: jobs.KindEdits, X: "A-", Y: "AC"}, false),
	}
}

func TestFormatsRegistered(t *testing.T) {
	got := strings.Join(Formats(), ",")
	if got != "fasta,json,jsonl,text,yaml" {
		t.Fatalf("Formats() = %s", got)
	}
}

func TestUnknownFormatError(t *testing.T) {
	var b bytes.Buffer
	in, done := Start(&b, "nope-format", Options{}, 1)
	send(in, sample()...) // must not block
	err := <-done
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("want unknown format error, got %v", err)
	}
}

func TestTextTable(t *testing.T) {
	var b bytes.Buffer
	in, done := Start(&b, "text", Options{Table: true, Header: true}, 4)
	send(in, sample()...)
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(lines) != 3 || lines[0] != output.TSVHeader {
		t.Fatalf("table = %q", b.String())
	}
	if lines[1] != "a\talign\tDM\t1D1M\tAC\t-C\tok" || lines[2] != "b\tedits\tMI\t1M1I\tA-\tAC\tok" {
		t.Fatalf("rows = %q", lines[1:])
	}
}

func TestTextPlain(t *testing.T) {
	var b bytes.Buffer
	in, done := Start(&b, "text", Options{}, 1)
	send(in, sample()[0])
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	if b.String() != "AC\n-C\n" {
		t.Fatalf("plain = %q", b.String())
	}
}

func TestJSONL(t *testing.T) {
	var b bytes.Buffer
	in, done := Start(&b, "jsonl", Options{}, 1)
	send(in, sample()...)
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("jsonl lines = %d", len(lines))
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &m); err != nil || m["edits"] != "MI" {
		t.Fatalf("line 2 = %s (%v)", lines[1], err)
	}
}

func TestJSONTableIsArray(t *testing.T) {
	var b bytes.Buffer
	in, done := Start(&b, "json", Options{Table: true}, 1)
	send(in, sample()...)
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	var arr []map[string]any
	if err := json.Unmarshal(b.Bytes(), &arr); err != nil || len(arr) != 2 {
		t.Fatalf("json array: %v %s", err, b.String())
	}
}

func TestJSONSingleIsObject(t *testing.T) {
	var b bytes.Buffer
	in, done := Start(&b, "json", Options{}, 1)
	send(in, sample()[1])
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	var obj map[string]any
	if err := json.Unmarshal(b.Bytes(), &obj); err != nil || obj["cigar"] != "1M1I" {
		t.Fatalf("json object: %v %s", err, b.String())
	}
}

func TestYAMLAndFASTA(t *testing.T) {
	var y bytes.Buffer
	in, done := Start(&y, "yaml", Options{Table: true}, 1)
	send(in, sample()...)
	if err := <-done; err != nil || !strings.Contains(y.String(), "- id: a\n") {
		t.Fatalf("yaml: %v\n%s", err, y.String())
	}

	var f bytes.Buffer
	in, done = Start(&f, "fasta", Options{}, 1)
	send(in, sample()[0])
	if err := <-done; err != nil || f.String() != ">a/x cigar=1D1M\nAC\n>a/y\n-C\n" {
		t.Fatalf("fasta: %v %q", err, f.String())
	}
}
