// core/edit/script.go
package edit

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Script is an ordered list of edit operations, one per alignment column.
type Script []Op

// Stats holds per-operation counts of a Script.
type Stats struct {
	Matches int
	Inserts int
	Deletes int
}

// ParseScript converts an "MDI" string into a Script. The first character
// outside {M, I, D} is reported with its character position.
func ParseScript(s string) (Script, error) {
	out := make(Script, 0, len(s))
	for _, r := range s {
		if r >= utf8.RuneSelf {
			return nil, fmt.Errorf("%w %q at position %d", ErrUnknownOperation, r, len(out))
		}
		op, err := ParseOp(byte(r))
		if err != nil {
			return nil, fmt.Errorf("%w at position %d", err, len(out))
		}
		out = append(out, op)
	}
	return out, nil
}

func (s Script) String() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, op := range s {
		b.WriteByte(op.Byte())
	}
	return b.String()
}

// Counts returns how many symbols of x and of y the script consumes.
func (s Script) Counts() (x, y int) {
	for _, op := range s {
		if op.consumesX() {
			x++
		}
		if op.consumesY() {
			y++
		}
	}
	return x, y
}

// Consistent reports whether s consumes exactly lenX and lenY symbols, i.e.
// whether aligning sequences of those lengths can succeed.
func (s Script) Consistent(lenX, lenY int) bool {
	x, y := s.Counts()
	return x == lenX && y == lenY
}

// Stats counts each kind of operation in s.
func (s Script) Stats() Stats {
	var st Stats
	for _, op := range s {
		switch op {
		case Match:
			st.Matches++
		case Insert:
			st.Inserts++
		case Delete:
			st.Deletes++
		}
	}
	return st
}

// Ungap removes every gap symbol from an aligned row.
func Ungap(row string) string {
	if strings.IndexByte(row, Gap) < 0 {
		return row
	}
	var b strings.Builder
	b.Grow(len(row))
	for i := 0; i < len(row); i++ {
		if row[i] != Gap {
			b.WriteByte(row[i])
		}
	}
	return b.String()
}
