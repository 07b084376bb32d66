// core/edit/align.go
package edit

import (
	"fmt"
	"unicode/utf8"
)

// Align rebuilds the two aligned rows described by edits over the ungapped
// sequences x and y. Symbols are Unicode code points, so one column holds
// one character however many bytes it takes in UTF-8.
//
//	Align("ACCACAGTCATA", "ACAGAGTACAAA", "MDMMMMMMIMMMM")
//	  → "ACCACAGT-CATA", "A-CAGAGTACAAA"
func Align(x, y, edits string) (string, string, error) {
	s, err := ParseScript(edits)
	if err != nil {
		return "", "", err
	}
	rx, err := symbols("x", x)
	if err != nil {
		return "", "", err
	}
	ry, err := symbols("y", y)
	if err != nil {
		return "", "", err
	}
	a, b, err := AlignScript(rx, ry, s)
	if err != nil {
		return "", "", err
	}
	return string(a), string(b), nil
}

// AlignScript is Align over decoded symbols and a parsed Script. The script
// must consume every symbol of x and y exactly once.
func AlignScript(x, y []rune, s Script) ([]rune, []rune, error) {
	if i := indexGap(x); i >= 0 {
		return nil, nil, fmt.Errorf("%w: x position %d", ErrGapInSequence, i)
	}
	if j := indexGap(y); j >= 0 {
		return nil, nil, fmt.Errorf("%w: y position %d", ErrGapInSequence, j)
	}

	rowA := make([]rune, len(s))
	rowB := make([]rune, len(s))
	i, j := 0, 0
	for col, op := range s {
		switch op {
		case Match:
			if i >= len(x) || j >= len(y) {
				return nil, nil, exhausted(col, op, i >= len(x))
			}
			rowA[col], rowB[col] = x[i], y[j]
			i++
			j++
		case Delete:
			if i >= len(x) {
				return nil, nil, exhausted(col, op, true)
			}
			rowA[col], rowB[col] = x[i], Gap
			i++
		case Insert:
			if j >= len(y) {
				return nil, nil, exhausted(col, op, false)
			}
			rowA[col], rowB[col] = Gap, y[j]
			j++
		default:
			return nil, nil, fmt.Errorf("%w %s at position %d", ErrUnknownOperation, op, col)
		}
	}
	if i != len(x) || j != len(y) {
		return nil, nil, fmt.Errorf("%w: script ends with %d symbol(s) of x and %d of y unconsumed",
			ErrInconsistentScript, len(x)-i, len(y)-j)
	}
	return rowA, rowB, nil
}

// Symbols decodes s into one rune per symbol. Invalid UTF-8 is rejected
// rather than replaced, so no input symbol is silently rewritten.
func Symbols(s string) ([]rune, error) {
	if !utf8.ValidString(s) {
		for i, n := 0, 0; i < len(s); n++ {
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size == 1 {
				return nil, fmt.Errorf("%w at symbol %d", ErrInvalidEncoding, n)
			}
			i += size
		}
	}
	return []rune(s), nil
}

func symbols(name, s string) ([]rune, error) {
	r, err := Symbols(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return r, nil
}

func indexGap(s []rune) int {
	for i, r := range s {
		if r == Gap {
			return i
		}
	}
	return -1
}

func exhausted(col int, op Op, inX bool) error {
	seq := "y"
	if inX {
		seq = "x"
	}
	return fmt.Errorf("%w: %s at position %d runs past the end of %s", ErrInconsistentScript, op, col, seq)
}
