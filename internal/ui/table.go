package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

func tableBorder() lipgloss.Border {
	if current.Name == "mono" {
		return lipgloss.ASCIIBorder()
	}
	if current.Name == "neon" {
		return lipgloss.RoundedBorder()
	}
	return lipgloss.NormalBorder()
}

// Table renders rows under headers. Cells may carry colour escapes.
func Table(headers []string, rows [][]string) string {
	head := lipgloss.NewStyle().Bold(!disableColor).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(tableBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return head
			}
			return cell
		})
	return t.String()
}

// PrintTable writes Table followed by a newline.
func PrintTable(w io.Writer, headers []string, rows [][]string) {
	fmt.Fprintln(w, Table(headers, rows))
}
