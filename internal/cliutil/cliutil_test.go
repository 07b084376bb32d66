package cliutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.tsv")
	b := filepath.Join(dir, "b.tsv")
	_ = os.WriteFile(a, []byte("a\tA\tA\tM\n"), 0o644)
	_ = os.WriteFile(b, []byte("b\tA\tA\tM\n"), 0o644)
	got, err := ExpandPositionals([]string{"-", filepath.Join(dir, "*.tsv"), "literal.tsv"})
	if err != nil || len(got) != 4 || got[0] != "-" || got[3] != "literal.tsv" {
		t.Fatalf("expand: err=%v got=%v", err, got)
	}
}

func TestExpandPositionalsNoMatch(t *testing.T) {
	_, err := ExpandPositionals([]string{filepath.Join(t.TempDir(), "*.none")})
	if err == nil || !strings.Contains(err.Error(), "no input matched") {
		t.Fatalf("want no-match error, got %v", err)
	}
}
