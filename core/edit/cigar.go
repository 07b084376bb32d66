// core/edit/cigar.go
package edit

import (
	"fmt"
	"strconv"
	"strings"
)

// maxRun caps the count of a single run and, when no limit is given, the
// length of a decoded script.
const maxRun = 1 << 30

// EncodeCIGAR run-length encodes s, e.g. "MDMMMMMMIMMMM" → "1M1D6M1I4M".
// Every run carries an explicit count.
func EncodeCIGAR(s Script) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		j := i + 1
		for j < len(s) && s[j] == s[i] {
			j++
		}
		b.WriteString(strconv.Itoa(j - i))
		b.WriteByte(s[i].Byte())
		i = j
	}
	return b.String()
}

type run struct {
	n  int
	op Op
}

// DecodeCIGAR expands a run-length encoded script. Adjacent runs of the same
// operation are accepted and merged.
//
// limit bounds the decoded length: a script for sequences x and y can have
// at most len(x)+len(y) columns, so callers pass that sum and get
// ErrInconsistentScript as soon as the runs add up to more. A negative
// limit allows up to maxRun columns; more is ErrBadRun.
func DecodeCIGAR(c string, limit int) (Script, error) {
	capped := limit < 0
	if capped {
		limit = maxRun
	}
	var (
		runs      []run
		total     int
		n, digits int
	)
	for i := 0; i < len(c); i++ {
		ch := c[i]
		if ch >= '0' && ch <= '9' {
			d := int(ch - '0')
			if n > (maxRun-d)/10 {
				return nil, fmt.Errorf("%w: count too large at position %d", ErrBadRun, i)
			}
			n = n*10 + d
			digits++
			continue
		}
		op, err := ParseOp(ch)
		if err != nil {
			return nil, fmt.Errorf("%w at position %d", err, i)
		}
		if digits == 0 || n == 0 {
			return nil, fmt.Errorf("%w: %c at position %d has no positive count", ErrBadRun, ch, i)
		}
		if n > limit-total {
			if capped {
				return nil, fmt.Errorf("%w: runs expand past %d columns", ErrBadRun, limit)
			}
			return nil, fmt.Errorf("%w: runs expand past %d columns, more than x and y can fill", ErrInconsistentScript, limit)
		}
		total += n
		runs = append(runs, run{n: n, op: op})
		n, digits = 0, 0
	}
	if digits > 0 {
		return nil, fmt.Errorf("%w: trailing count without operation", ErrBadRun)
	}
	out := make(Script, 0, total)
	for _, r := range runs {
		for k := 0; k < r.n; k++ {
			out = append(out, r.op)
		}
	}
	return out, nil
}
