// core/fasta/reader.go
package fasta

import (
	"context"
	"fmt"
)

// Record is one parsed FASTA entry. Seq holds the symbols exactly as written
// (whitespace stripped), so gap symbols in aligned FASTA survive.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
}

// ReadAll parses every record in path ("-" for stdin, gzip detected).
func ReadAll(ctx context.Context, path string) ([]Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	var recs []Record
	err = Scan(ctx, rc, func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// ReadPair returns the first two records of path. Further records are ignored.
func ReadPair(ctx context.Context, path string) (Record, Record, error) {
	recs, err := ReadAll(ctx, path)
	if err != nil {
		return Record{}, Record{}, err
	}
	if len(recs) < 2 {
		return Record{}, Record{}, fmt.Errorf("%s: need 2 FASTA records, found %d", path, len(recs))
	}
	return recs[0], recs[1], nil
}
