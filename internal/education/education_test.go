package education

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/finmetrics/internal/model"
)

func TestTopics_AllRender(t *testing.T) {
	for _, topic := range Topics() {
		t.Run(topic.ID, func(t *testing.T) {
			md, err := Markdown(topic.ID, DefaultInputs())
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(md, "# "), "topic should start with a heading")
			assert.NotContains(t, md, "<no value>")
		})
	}
}

func TestArithmetic_DefaultExample(t *testing.T) {
	md, err := Markdown("arithmetic", DefaultInputs())
	require.NoError(t, err)
	assert.Contains(t, md, "| Arithmetic mean | 15.0% |")
	assert.Contains(t, md, "| Terminal value | 1.200x |")
	assert.Contains(t, md, "| Geometric mean (CAGR) | 9.5% |")
	assert.Contains(t, md, "after Year 1: $1.500")
	assert.Contains(t, md, "Volatility effect")
}

func TestArithmetic_NoGapWithoutVolatility(t *testing.T) {
	in := DefaultInputs()
	in.Year1, in.Year2 = 0.1, 0.1
	md, err := Markdown("arithmetic", in)
	require.NoError(t, err)
	assert.NotContains(t, md, "Volatility effect")
}

func TestMultiplicative_Table(t *testing.T) {
	in := DefaultInputs()
	in.Years = 2
	md, err := Markdown("multiplicative", in)
	require.NoError(t, err)
	assert.Contains(t, md, "| 0 | 1.00x | 1.00x |")
	assert.Contains(t, md, "| 2 | 1.21x | 1.20x |")
	assert.Contains(t, md, "**Compounding bonus:** 0.01x")
}

func TestDrag_Scenarios(t *testing.T) {
	md, err := Markdown("drag", DefaultInputs())
	require.NoError(t, err)
	assert.Contains(t, md, "| Low Volatility | +21% | +19% | 20.0% |")
	assert.Contains(t, md, "| High Volatility | +100% | -60% | 20.0% | 4.7% | 15.3% | 75.0% |")
}

func TestTrees_ListsEveryPath(t *testing.T) {
	in := DefaultInputs()
	in.TreePeriods = 3
	md, err := Markdown("trees", in)
	require.NoError(t, err)
	assert.Contains(t, md, "There are 8 equally likely outcomes")
	assert.Contains(t, md, "| +50% -> +50% -> +50% | 3.375x |")
	assert.Contains(t, md, "| -20% -> -20% -> -20% | 0.512x |")
}

func TestTakeaways_Challenge(t *testing.T) {
	md, err := Markdown("takeaways", DefaultInputs())
	require.NoError(t, err)
	assert.Contains(t, md, "Investment A provides a 19.8% geometric return")
	assert.Contains(t, md, "50% chance of +80%, 50% chance of -40%")
}

func TestMarkdown_Errors(t *testing.T) {
	_, err := Markdown("astrology", DefaultInputs())
	assert.True(t, model.IsKind(err, model.KindNotFound))

	in := DefaultInputs()
	in.TreePeriods = 5
	_, err = Markdown("trees", in)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestRenderer_PlainStyle(t *testing.T) {
	r, err := NewRenderer(RenderOptions{Style: "notty", Width: 100})
	require.NoError(t, err)
	out, err := r.Render("drag", DefaultInputs())
	require.NoError(t, err)
	assert.Contains(t, out, "Volatility Drag Effect")
	assert.Contains(t, out, "Key observations")
	assert.NotContains(t, out, "\x1b[")
}

func TestRenderer_Raw(t *testing.T) {
	r, err := NewRenderer(RenderOptions{Raw: true})
	require.NoError(t, err)
	var sb strings.Builder
	require.NoError(t, r.Write(&sb, "takeaways", DefaultInputs()))
	assert.True(t, strings.HasPrefix(sb.String(), "# Key Takeaways"))
}
