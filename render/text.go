package render

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/zgrid/coord"
)

// ErrNothingToDraw is returned when the cell set is empty.
var ErrNothingToDraw = errors.New("render: no cells to draw")

// clearScreen resets the terminal.
const clearScreen = "\x1bc"

// gutter is the width of the row-index column including its trailing space.
const gutter = 6

// Options control Text output. The zero value draws pretty output without clearing.
type Options struct {
	// Plain disables symbol substitution and uses one column per cell.
	Plain bool
	// Clear emits a terminal reset before drawing.
	Clear bool
	// Symbols overrides entries of DefaultSymbols.
	Symbols map[rune]string
}

// Bounds returns the smallest and largest column and row among ps.
// ok is false when ps is empty.
func Bounds(ps map[coord.Pos]rune) (lo, hi coord.Pos, ok bool) {
	first := true
	for p := range ps {
		if first {
			lo, hi, first = p, p, false
			continue
		}
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	return lo, hi, !first
}

// Text writes cells to w in the layout described in the package doc.
// Positions inside the bounding box with no cell are drawn blank.
func Text(w io.Writer, cells map[coord.Pos]rune, opts Options) error {
	lo, hi, ok := Bounds(cells)
	if !ok {
		return ErrNothingToDraw
	}
	table := DefaultSymbols()
	for k, v := range opts.Symbols {
		table[k] = v
	}
	empty := strings.Repeat(" ", cellWidth)
	if opts.Plain {
		empty = " "
	}

	var b strings.Builder
	b.WriteString("\n")
	if opts.Clear {
		b.WriteString(clearScreen + "\n")
	}
	for y := lo.Y; y <= hi.Y; y++ {
		b.WriteString(padLeft(strconv.Itoa(y), gutter-1))
		b.WriteByte(' ')
		for x := lo.X; x <= hi.X; x++ {
			glyph, ok := cells[coord.P(x, y)]
			switch {
			case !ok:
				b.WriteString(empty)
			case opts.Plain:
				b.WriteRune(glyph)
			default:
				b.WriteString(symbol(table, glyph))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat(" ", gutter))
	b.WriteString(Footer(lo.X, hi.X, !opts.Plain))
	b.WriteString("\n\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// Footer builds the column index line for columns lo..hi: lo left-aligned,
// the middle column centred and hi right-aligned across the drawn width,
// merged character by character with the first non-blank winning.
func Footer(lo, hi int, pretty bool) string {
	n := hi - lo + 1
	width := n
	if pretty {
		width *= cellWidth
	}
	left := padRight(strconv.Itoa(lo), width)
	centre := padCentre(strconv.Itoa(lo+n/2), width)
	right := padLeft(strconv.Itoa(hi), width)

	size := min(len(left), len(centre), len(right))
	out := make([]byte, size)
	for i := 0; i < size; i++ {
		out[i] = ' '
		for _, c := range [3]byte{left[i], centre[i], right[i]} {
			if c != ' ' {
				out[i] = c
				break
			}
		}
	}
	return string(out)
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padCentre centres s like Python's str.center: an odd margin puts the
// extra space on the left only when width is odd.
func padCentre(s string, width int) string {
	marg := width - len(s)
	if marg <= 0 {
		return s
	}
	left := marg/2 + (marg & width & 1)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", marg-left)
}
