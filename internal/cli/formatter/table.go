package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Align controls how a table column is padded.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

const colGap = 2

// RenderTable renders an aligned table with a header separator line.
// Widths are measured on visible text, so styled cells line up. align may be
// shorter than headers; missing entries default to AlignLeft.
func RenderTable(headers []string, rows [][]string, align ...Align) string {
	if len(headers) == 0 {
		return ""
	}
	cols := len(headers)

	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}
	alignOf := func(i int) Align {
		if i < len(align) {
			return align[i]
		}
		return AlignLeft
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(padCell(style(cell), widths[i], alignOf(i), i == cols-1))
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, func(s string) string { return StyleHeader.Render(s) })
	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")
	for _, row := range rows {
		writeRow(row, func(s string) string { return s })
	}
	return b.String()
}

// padCell pads a cell to width. Trailing padding is omitted on the last
// left-aligned column.
func padCell(cell string, width int, align Align, last bool) string {
	pad := max(width-lipgloss.Width(cell), 0)
	if align == AlignRight {
		return strings.Repeat(" ", pad) + cell
	}
	if last {
		return cell
	}
	return cell + strings.Repeat(" ", pad)
}
