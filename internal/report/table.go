package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// cellStyler decorates an already padded cell. row is -1 for the header.
type cellStyler func(row, col int, cell string) string

// formatTable lays out rows under headers, padding each column to its widest
// cell by display width. Columns listed in rightAlign are right aligned.
// Padding happens before styling so escape sequences never skew alignment.
func formatTable(headers []string, rows [][]string, rightAlign map[int]bool, style cellStyler) []string {
	widths := columnWidths(headers, rows)
	if len(widths) == 0 {
		return nil
	}
	if style == nil {
		style = func(_, _ int, cell string) string { return cell }
	}
	lines := make([]string, 0, len(rows)+2)
	if len(headers) > 0 {
		lines = append(lines, formatRow(-1, headers, widths, rightAlign, style))
		lines = append(lines, ruleRow(widths))
	}
	for i, row := range rows {
		lines = append(lines, formatRow(i, row, widths, rightAlign, style))
	}
	return lines
}

func columnWidths(headers []string, rows [][]string) []int {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	measure := func(row []string) {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}
	return widths
}

func formatRow(rowIdx int, row []string, widths []int, rightAlign map[int]bool, style cellStyler) string {
	last := len(widths) - 1
	cells := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		switch {
		case rightAlign[i]:
			cell = runewidth.FillLeft(cell, width)
		case i < last:
			cell = runewidth.FillRight(cell, width)
		}
		cells[i] = style(rowIdx, i, cell)
	}
	return strings.Join(cells, "  ")
}

func ruleRow(widths []int) string {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = strings.Repeat("-", width)
	}
	return strings.Join(parts, "  ")
}
