// Package render turns escape-time fields into ASCII art.
package render

import (
	"io"
	"strings"

	"github.com/san-kum/mandelterm/internal/mandel"
)

// Bullet marks counts in [6, 10].
const Bullet = '•'

// band is an inclusive upper bound and the glyph for counts up to it.
type band struct {
	max   int
	glyph rune
}

// palette is evaluated first match wins. Each band starts one past the
// previous band's max; counts above 700 fall through to '%'.
var palette = []band{
	{2, ' '},
	{5, '.'},
	{10, Bullet},
	{30, '*'},
	{100, '+'},
	{200, 'x'},
	{400, '$'},
	{700, '#'},
}

const overflowGlyph = '%'

// Glyph quantizes an escape count.
func Glyph(count int) rune {
	for _, b := range palette {
		if count <= b.max {
			return b.glyph
		}
	}
	return overflowGlyph
}

// Line renders a single field row. The result has exactly len(row) runes.
func Line(row []int) string {
	var sb strings.Builder
	sb.Grow(len(row))
	for _, n := range row {
		sb.WriteRune(Glyph(n))
	}
	return sb.String()
}

func Lines(f mandel.Field) []string {
	lines := make([]string, len(f))
	for i, row := range f {
		lines[i] = Line(row)
	}
	return lines
}

// Render writes one newline-terminated line per row in a single write.
func Render(w io.Writer, f mandel.Field) error {
	var sb strings.Builder
	for _, line := range Lines(f) {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
