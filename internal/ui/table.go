package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table lays out rows in columns padded by display width, so identifiers in
// wide scripts still line up. The last column is truncated to fit maxWidth
// when maxWidth is positive.
type Table struct {
	Header []string
	Rows   [][]string
}

func (t *Table) Append(cells ...string) { t.Rows = append(t.Rows, cells) }

func (t *Table) Render(s Styler, maxWidth int) string {
	cols := len(t.Header)
	for _, r := range t.Rows {
		cols = max(cols, len(r))
	}
	if cols == 0 {
		return ""
	}
	widths := make([]int, cols)
	measure := func(row []string) {
		for i, c := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(c))
		}
	}
	measure(t.Header)
	for _, r := range t.Rows {
		measure(r)
	}
	if maxWidth > 0 {
		used := 2 * (cols - 1)
		for _, w := range widths[:cols-1] {
			used += w
		}
		if rest := maxWidth - used; rest > 0 && widths[cols-1] > rest {
			widths[cols-1] = max(rest, 8)
		}
	}

	var b strings.Builder
	line := func(row []string, header bool) {
		for i := range cols {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if i == cols-1 {
				cell = truncate(cell, widths[i])
			}
			padded := runewidth.FillRight(cell, widths[i])
			if i == cols-1 {
				padded = cell
			}
			if header {
				padded = s.Title(padded)
			}
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(padded)
		}
		b.WriteString("\n")
	}
	if len(t.Header) > 0 {
		line(t.Header, true)
	}
	for _, r := range t.Rows {
		line(r, false)
	}
	return b.String()
}
