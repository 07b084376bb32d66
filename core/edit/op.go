// core/edit/op.go
package edit

import "fmt"

// Gap is the reserved symbol marking an inserted or deleted column in an aligned row.
const Gap = '-'

// Op is a single edit operation.
type Op uint8

const (
	Match  Op = iota // both rows carry a symbol
	Insert           // present in y only (gap in row A)
	Delete           // present in x only (gap in row B)
)

// ParseOp maps an operation code ('M', 'I', 'D') to its Op.
func ParseOp(c byte) (Op, error) {
	switch c {
	case 'M':
		return Match, nil
	case 'I':
		return Insert, nil
	case 'D':
		return Delete, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownOperation, c)
}

// Byte returns the single-character code of o.
func (o Op) Byte() byte {
	switch o {
	case Match:
		return 'M'
	case Insert:
		return 'I'
	case Delete:
		return 'D'
	}
	panic(fmt.Sprintf("edit: invalid Op %d", uint8(o)))
}

func (o Op) String() string {
	switch o {
	case Match:
		return "Match"
	case Insert:
		return "Insert"
	case Delete:
		return "Delete"
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// consumesX reports whether o reads a symbol from the first sequence.
func (o Op) consumesX() bool { return o == Match || o == Delete }

// consumesY reports whether o reads a symbol from the second sequence.
func (o Op) consumesY() bool { return o == Match || o == Insert }
