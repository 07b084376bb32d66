package pretty

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Options control the ASCII rendering.
type Options struct {
	// Columns per block line. If <=0, use DefaultOptions.Width.
	Width int

	// Row labels; default "x" and "y".
	LabelA string
	LabelB string

	// Glyphs on the bars row.
	ExactGlyph    byte // same symbol in both rows
	MismatchGlyph byte // different symbols
	GapGlyph      byte // either row gapped
}

// DefaultOptions matches the CLI defaults.
var DefaultOptions = Options{
	Width:         60,
	LabelA:        "x",
	LabelB:        "y",
	ExactGlyph:    '|',
	MismatchGlyph: '.',
	GapGlyph:      ' ',
}

const linePrefix = "# "

func (o Options) withDefaults() Options {
	d := DefaultOptions
	if o.Width > 0 {
		d.Width = o.Width
	}
	if o.LabelA != "" {
		d.LabelA = o.LabelA
	}
	if o.LabelB != "" {
		d.LabelB = o.LabelB
	}
	if o.ExactGlyph != 0 {
		d.ExactGlyph = o.ExactGlyph
	}
	if o.MismatchGlyph != 0 {
		d.MismatchGlyph = o.MismatchGlyph
	}
	if o.GapGlyph != 0 {
		d.GapGlyph = o.GapGlyph
	}
	return d
}

// Bars returns the comparison row for two aligned rows, one glyph per
// character column. Symbols compare case-insensitively.
func Bars(a, b string, o Options) string {
	return bars([]rune(a), []rune(b), o.withDefaults())
}

func bars(a, b []rune, o Options) string {
	n := min(len(a), len(b))
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		switch {
		case a[i] == '-' || b[i] == '-':
			out[i] = o.GapGlyph
		case unicode.ToUpper(a[i]) == unicode.ToUpper(b[i]):
			out[i] = o.ExactGlyph
		default:
			out[i] = o.MismatchGlyph
		}
	}
	return string(out)
}

// Render draws an alignment block wrapped at o.Width columns:
//
//	# x  1 ACCACAGT-CATA 12
//	#      | ||.||| ||.|
//	# y  1 A-CAGAGTACAAA 12
//
// Coordinates are 1-based positions in the ungapped sequences. A line with
// no symbols from a row repeats that row's last position.
func Render(a, b string, o Options) string {
	o = o.withDefaults()
	ra, rb := []rune(a), []rune(b)
	bar := bars(ra, rb, o)

	lw := max(utf8.RuneCountInString(o.LabelA), utf8.RuneCountInString(o.LabelB))
	nw := len(strconv.Itoa(max(countSymbols(ra), countSymbols(rb), 1)))
	indent := strings.Repeat(" ", lw+1+nw+1)

	var sb strings.Builder
	posA, posB := 0, 0
	for off := 0; off < len(bar); off += o.Width {
		end := min(off+o.Width, len(bar))
		if off > 0 {
			sb.WriteString("#\n")
		}
		posA = writeRow(&sb, o.LabelA, ra[off:end], posA, lw, nw)
		sb.WriteString(strings.TrimRight(linePrefix+indent+bar[off:end], " "))
		sb.WriteByte('\n')
		posB = writeRow(&sb, o.LabelB, rb[off:end], posB, lw, nw)
	}
	return sb.String()
}

func writeRow(sb *strings.Builder, label string, chunk []rune, pos, lw, nw int) int {
	n := countSymbols(chunk)
	start := pos + 1
	if n == 0 {
		start = pos
	}
	fmt.Fprintf(sb, "%s%-*s %*d %s %d\n", linePrefix, lw, label, nw, start, string(chunk), pos+n)
	return pos + n
}

func countSymbols(s []rune) int {
	n := 0
	for _, r := range s {
		if r != '-' {
			n++
		}
	}
	return n
}
