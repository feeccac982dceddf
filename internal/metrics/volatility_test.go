package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolatilityScenarios_SolvesUpDown(t *testing.T) {
	got, err := VolatilityScenarios(0.2, []float64{1, 3})
	require.NoError(t, err)
	require.Len(t, got, 2)

	flat := got[0]
	assert.InDelta(t, 0.2, flat.Up, 1e-12)
	assert.InDelta(t, 0.2, flat.Down, 1e-12)
	assert.InDelta(t, 0.0, flat.Drag(), 1e-12)
	assert.Equal(t, "±0.0%", flat.Description())

	wide := got[1]
	assert.InDelta(t, 0.8, wide.Up, 1e-12)
	assert.InDelta(t, -0.4, wide.Down, 1e-12)
	assert.InDelta(t, 3.0, (1+wide.Up)/(1+wide.Down), 1e-12)
	assert.InDelta(t, 3.24, wide.TerminalUpUp, 1e-12)
	assert.InDelta(t, 1.08, wide.TerminalUpDown, 1e-12)
	assert.InDelta(t, 0.36, wide.TerminalDownDown, 1e-12)

	mid := math.Sqrt(1.08) - 1
	assert.InDelta(t, (0.8+2*mid-0.4)/4, wide.Geometric2Period, 1e-12)
	assert.InDelta(t, mid, wide.Median2Period, 1e-12)
	assert.Equal(t, "±60.0%", wide.Description())
}

func TestVolatilityScenarios_DragGrowsWithRatio(t *testing.T) {
	got, err := VolatilityScenarios(0.2, Linspace(1.1, 5, 20))
	require.NoError(t, err)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i].Geometric2Period, got[i-1].Geometric2Period)
		assert.InDelta(t, 0.2, 0.5*got[i].Up+0.5*got[i].Down, 1e-12)
	}

	sum := Summarize(got)
	assert.InDelta(t, got[len(got)-1].Geometric2Period, sum.MinGeometric, 1e-12)
	assert.InDelta(t, got[0].Geometric2Period, sum.MaxGeometric, 1e-12)
	assert.InDelta(t, 0.2-sum.MinGeometric, sum.MaxDrag, 1e-12)
}

func TestVolatilityScenarios_Defaults(t *testing.T) {
	got, err := VolatilityScenarios(0.2, nil)
	require.NoError(t, err)
	assert.Len(t, got, len(DefaultVolatilityRatios))
}

func TestVolatilityScenarios_RejectsNonPositiveRatio(t *testing.T) {
	_, err := VolatilityScenarios(0.2, []float64{2, 0})
	assert.Error(t, err)
	assert.Equal(t, VolatilitySummary{}, Summarize(nil))
}
