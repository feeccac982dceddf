package ui

import (
	"fmt"
	"math"
	"strings"
)

// Bin is one histogram bucket [Lo, Hi).
type Bin struct {
	Lo, Hi float64
	Count  int
}

// Bins groups xs into n equal-width buckets spanning their range.
func Bins(xs []float64, n int) []Bin {
	if len(xs) == 0 || n <= 0 {
		return nil
	}
	lo, hi := xs[0], xs[0]
	for _, x := range xs {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	if hi == lo {
		return []Bin{{Lo: lo, Hi: hi, Count: len(xs)}}
	}
	width := (hi - lo) / float64(n)
	bins := make([]Bin, n)
	for i := range bins {
		bins[i].Lo = lo + width*float64(i)
		bins[i].Hi = lo + width*float64(i+1)
	}
	for _, x := range xs {
		i := int((x - lo) / width)
		if i >= n {
			i = n - 1
		}
		bins[i].Count++
	}
	return bins
}

// Histogram renders bins as horizontal bars. label formats a bucket's lower bound.
func Histogram(bins []Bin, width int, label func(float64) string) []string {
	if width < 5 {
		width = 5
	}
	peak := 0
	labels := make([]string, len(bins))
	lw := 0
	for i, b := range bins {
		peak = max(peak, b.Count)
		labels[i] = label(b.Lo)
		lw = max(lw, len(labels[i]))
	}
	out := make([]string, 0, len(bins))
	for i, b := range bins {
		n := 0
		if peak > 0 {
			n = int(math.Round(float64(b.Count) / float64(peak) * float64(width)))
		}
		out = append(out, fmt.Sprintf("%*s %s %d",
			lw, labels[i], C(current.Accent, strings.Repeat(current.BarFull, n)), b.Count))
	}
	return out
}
