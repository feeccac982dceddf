package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plain(t *testing.T) {
	t.Helper()
	SetColorForcing(false, true)
	SetTheme("classic")
	t.Cleanup(func() { SetColorForcing(false, false) })
}

func TestFormatters(t *testing.T) {
	plain(t)
	assert.Equal(t, "12.3%", Percent(0.1234))
	assert.Equal(t, "-60.0%", Percent(-0.6))
	assert.Equal(t, "+4.7%", SignedPercent(0.0472))
	assert.Equal(t, "+50%", WholePercent(0.5))
	assert.Equal(t, "-20%", WholePercent(-0.2))
	assert.Equal(t, "1.440x", Multiple(1.44, 3))
	assert.Equal(t, "↓ -2.0%", Delta(-0.02))
	assert.Equal(t, "+0.0%", Delta(0))
}

func TestMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{10000, "$10,000"},
		{999.4, "$999"},
		{1234567.8, "$1,234,568"},
		{-1500, "-$1,500"},
		{-2500000, "-$2,500,000"},
		{0, "$0"},
		{-0.4, "$0"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Money(c.in), "Money(%v)", c.in)
	}
}

func TestPanel_AlignsBorders(t *testing.T) {
	plain(t)
	var buf bytes.Buffer
	Panel(&buf, "Results", []string{"short", "a much longer line"})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	width := visibleWidth(lines[0])
	for _, ln := range lines {
		assert.Equal(t, width, visibleWidth(ln), "line %q", ln)
	}
	assert.True(t, strings.HasPrefix(lines[0], "┌"))
	assert.Contains(t, lines[1], "Results")
}

func TestMonoTheme(t *testing.T) {
	plain(t)
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })

	var buf bytes.Buffer
	Fail(&buf, "boom")
	OK(&buf, "saved")
	assert.Equal(t, "error: boom\nok saved\n", buf.String())
	assert.Equal(t, "mono", Current().Name)
}

func TestProgressBar(t *testing.T) {
	plain(t)
	assert.Equal(t, "█████░░░░░  50%", ProgressBar(0.5, 10))
	assert.Equal(t, "░░░░░   0%", ProgressBar(-1, 2))
	assert.Equal(t, "█████ 100%", ProgressBar(3, 5))
}

func TestBinsAndHistogram(t *testing.T) {
	plain(t)
	xs := []float64{0, 0.1, 0.2, 0.9, 1.0}
	bins := Bins(xs, 2)
	require.Len(t, bins, 2)
	assert.Equal(t, 3, bins[0].Count)
	assert.Equal(t, 2, bins[1].Count)

	rows := Histogram(bins, 6, Percent)
	require.Len(t, rows, 2)
	assert.Equal(t, " 0.0% ██████ 3", rows[0])
	assert.Equal(t, "50.0% ████ 2", rows[1])

	assert.Len(t, Bins([]float64{2, 2, 2}, 4), 1)
	assert.Nil(t, Bins(nil, 3))
}

func TestTable_ContainsCells(t *testing.T) {
	plain(t)
	out := Table([]string{"Path", "CAGR"}, [][]string{{"↑ ↓", "-10.6%"}})
	assert.Contains(t, out, "Path")
	assert.Contains(t, out, "↑ ↓")
	assert.Contains(t, out, "-10.6%")
}
