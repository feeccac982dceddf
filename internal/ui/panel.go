package ui

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string { return ansiRegexp.ReplaceAllString(s, "") }

// visibleWidth counts terminal cells, ignoring colour escapes.
func visibleWidth(s string) int { return lipgloss.Width(stripANSI(s)) }

// ProgressBar renders a bar with percentage for a share in [0, 1].
func ProgressBar(share float64, width int) string {
	if width < 5 {
		width = 5
	}
	if share < 0 {
		share = 0
	}
	if share > 1 {
		share = 1
	}
	filled := int(share * float64(width))
	bar := strings.Repeat(current.BarFull, filled) + strings.Repeat(current.BarEmpty, width-filled)
	return fmt.Sprintf("%s %3d%%", bar, int(share*100+0.5))
}

// Panel draws a framed box using the current theme.
func Panel(w io.Writer, title string, lines []string) {
	t := Current()
	if title != "" {
		lines = append([]string{C(t.Title, title), ""}, lines...)
	}
	// compute visible width
	maxw := 0
	for _, ln := range lines {
		if vw := visibleWidth(ln); vw > maxw {
			maxw = vw
		}
	}
	pad := func(s string) string {
		if vis := visibleWidth(s); vis < maxw {
			s += strings.Repeat(" ", maxw-vis)
		}
		return s
	}
	fmt.Fprintln(w, t.CornerTL+strings.Repeat(t.H, maxw+2)+t.CornerTR)
	for _, ln := range lines {
		fmt.Fprintln(w, t.V+" "+pad(ln)+" "+t.V)
	}
	fmt.Fprintln(w, t.CornerBL+strings.Repeat(t.H, maxw+2)+t.CornerBR)
}

// KV formats an aligned "label  value" line.
func KV(label, value string, width int) string {
	gap := width - visibleWidth(label)
	if gap < 1 {
		gap = 1
	}
	return C(current.Muted, label) + strings.Repeat(" ", gap) + value
}
