// Package report renders the outcome of a generation run.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/davidrencse/Folder-Generator/internal/model"
)

const (
	statusCreated = "created"
	statusSkipped = "skipped"

	statusCol = 1
)

// Summary writes the created count and a note when some names were skipped.
func Summary(w io.Writer, result model.Result) error {
	created := len(result.Created())
	if _, err := fmt.Fprintf(w, "Done. Created %d folders in: %s\n", created, result.TargetDir); err != nil {
		return err
	}
	if created < result.Requested {
		if _, err := fmt.Fprintln(w, "Some names already existed and were skipped."); err != nil {
			return err
		}
	}
	return nil
}

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	created lipgloss.Style
	skipped lipgloss.Style
}

// newStyles binds styles to w so color is dropped when w is not a terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true),
		header:  r.NewStyle().Foreground(lipgloss.Color("#6E6E6E")),
		created: r.NewStyle().Foreground(lipgloss.Color("#52C41A")),
		skipped: r.NewStyle().Foreground(lipgloss.Color("#8C8C8C")),
	}
}

// Names writes every generated name, in generation order, with its status.
func Names(w io.Writer, result model.Result) error {
	if len(result.Folders) == 0 {
		return nil
	}
	st := newStyles(w)

	title := "Folders in: " + result.TargetDir
	if _, err := fmt.Fprintf(w, "%s\n%s\n", st.title.Render(title), strings.Repeat("=", runewidth.StringWidth(title))); err != nil {
		return err
	}

	rows := make([][]string, 0, len(result.Folders))
	for _, f := range result.Folders {
		status := statusSkipped
		if f.Created {
			status = statusCreated
		}
		rows = append(rows, []string{f.Name, status})
	}
	styleCell := func(row, col int, cell string) string {
		switch {
		case row < 0:
			return st.header.Render(cell)
		case col != statusCol:
			return cell
		case result.Folders[row].Created:
			return st.created.Render(cell)
		default:
			return st.skipped.Render(cell)
		}
	}
	for _, line := range formatTable([]string{"Name", "Status"}, rows, map[int]bool{statusCol: true}, styleCell) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
