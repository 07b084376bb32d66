package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"alnedit/internal/jobs"
	"alnedit/pkg/api"
	"gopkg.in/yaml.v3"
)

func knownResults() []jobs.Result {
	ok := jobs.Convert(jobs.Job{ID: "j1", Kind: jobs.KindAlign, X: "ACCACAGTCATA", Y: "ACAGAGTACAAA", Script: "MDMMMMMMIMMMM"}, false)
	bad := jobs.Convert(jobs.Job{ID: "j2", Kind: jobs.KindEdits, X: "ACG", Y: "AC"}, false)
	return []jobs.Result{ok, bad}
}

func TestToAPI(t *testing.T) {
	rs := knownResults()
	v := ToAPI(rs[0])
	want := api.AlignmentV1{
		ID: "j1", Kind: "align",
		RowA: "ACCACAGT-CATA", RowB: "A-CAGAGTACAAA",
		Edits: "MDMMMMMMIMMMM", CIGAR: "1M1D6M1I4M", Length: 13,
		Matches: 11, Inserts: 1, Deletes: 1,
	}
	if v != want {
		t.Fatalf("ToAPI =\n %+v\nwant\n %+v", v, want)
	}
	e := ToAPI(rs[1])
	if e.Error == "" || e.Edits != "" || e.Length != 0 {
		t.Fatalf("failed result = %+v", e)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, knownResults()); err != nil {
		t.Fatalf("json write: %v", err)
	}
	var got []api.AlignmentV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil || len(got) != 2 || got[0].CIGAR != "1M1D6M1I4M" {
		t.Fatalf("json decode failed: %v %+v", err, got)
	}
	if !strings.Contains(buf.String(), `"error": "j2: length mismatch: rows have 3 and 2 columns"`) {
		t.Fatalf("error field missing:\n%s", buf.String())
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteYAML(&buf, knownResults()[:1]); err != nil {
		t.Fatalf("yaml write: %v", err)
	}
	var got []api.AlignmentV1
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil || len(got) != 1 || got[0].RowB != "A-CAGAGTACAAA" {
		t.Fatalf("yaml decode failed: %v %+v\n%s", err, got, buf.String())
	}
	if !strings.Contains(buf.String(), "row_a: ACCACAGT-CATA") {
		t.Fatalf("unexpected yaml:\n%s", buf.String())
	}
}

func TestWriteTSVRow(t *testing.T) {
	rs := knownResults()
	var buf bytes.Buffer
	for _, r := range rs {
		if err := WriteTSVRow(&buf, r, TextOptions{}); err != nil {
			t.Fatal(err)
		}
	}
	want := "j1\talign\tMDMMMMMMIMMMM\t1M1D6M1I4M\tACCACAGT-CATA\tA-CAGAGTACAAA\tok\n" +
		"j2\tedits\t\t\t\t\tj2: length mismatch: rows have 3 and 2 columns\n"
	if buf.String() != want {
		t.Fatalf("got:\n%q\nwant:\n%q", buf.String(), want)
	}
	if n := strings.Count(TSVHeader, "\t"); n != 6 {
		t.Fatalf("header has %d tabs, want 6", n)
	}
}

func TestWritePlain(t *testing.T) {
	rs := knownResults()
	var buf bytes.Buffer
	if err := WritePlain(&buf, rs[0], TextOptions{}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "ACCACAGT-CATA\nA-CAGAGTACAAA\n" {
		t.Fatalf("align plain = %q", buf.String())
	}

	edits := jobs.Convert(jobs.Job{ID: "e", Kind: jobs.KindEdits, X: "ACCACAGT-CATA", Y: "A-CAGAGTACAAA"}, false)
	buf.Reset()
	if err := WritePlain(&buf, edits, TextOptions{CIGAR: true}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "1M1D6M1I4M\n" {
		t.Fatalf("edits plain = %q", buf.String())
	}

	buf.Reset()
	if err := WritePlain(&buf, rs[1], TextOptions{}); err != nil || buf.Len() != 0 {
		t.Fatalf("failed result should print nothing: %q %v", buf.String(), err)
	}
}

func TestWritePlainPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePlain(&buf, knownResults()[0], TextOptions{Pretty: true, Width: 60}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "# x  1 ACCACAGT-CATA 12\n") {
		t.Fatalf("pretty block = %q", buf.String())
	}
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteFASTA(t *testing.T) {
	rs := knownResults()
	rs[0].Job.NameX = "seqA"
	var buf bytes.Buffer
	for _, r := range rs {
		if err := WriteFASTA(&buf, r); err != nil {
			t.Fatal(err)
		}
	}
	want := ">seqA cigar=1M1D6M1I4M\nACCACAGT-CATA\n>j1/y\nA-CAGAGTACAAA\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
	if err := WriteFASTA(errWriter{}, rs[0]); err == nil {
		t.Fatal("expected write error")
	}
}
