// core/edit/extract.go
package edit

import "fmt"

// Edits derives the "MDI" edit script of the alignment (x, y). Columns are
// counted in characters, not bytes.
//
//	Edits("ACCACAGT-CATA", "A-CAGAGTACAAA") → "MDMMMMMMIMMMM"
func Edits(x, y string) (string, error) {
	rx, err := symbols("row A", x)
	if err != nil {
		return "", err
	}
	ry, err := symbols("row B", y)
	if err != nil {
		return "", err
	}
	s, err := Extract(rx, ry)
	if err != nil {
		return "", err
	}
	return s.String(), nil
}

// Extract classifies each column of two aligned rows.
func Extract(x, y []rune) (Script, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: rows have %d and %d columns", ErrLengthMismatch, len(x), len(y))
	}
	out := make(Script, len(x))
	for col := range x {
		gx, gy := x[col] == Gap, y[col] == Gap
		switch {
		case gx && gy:
			return nil, fmt.Errorf("%w: both rows gapped at column %d", ErrLengthMismatch, col)
		case gx:
			out[col] = Insert
		case gy:
			out[col] = Delete
		default:
			out[col] = Match
		}
	}
	return out, nil
}
