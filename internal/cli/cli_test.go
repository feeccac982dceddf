package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/finmetrics/internal/model"
	"github.com/idilsaglam/finmetrics/internal/store/jsonstore"
	"github.com/idilsaglam/finmetrics/internal/stub"
	"github.com/idilsaglam/finmetrics/internal/ui"
)

// isolate points config and data lookups at a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmp, "data"))
	t.Cleanup(func() {
		ui.SetColorForcing(false, false)
		ui.SetTheme("classic")
	})
	return tmp
}

func execute(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestBare_PrintsStub(t *testing.T) {
	isolate(t)
	code, out, errOut := execute(t)
	require.Equal(t, 0, code, errOut)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, stub.Lines(), lines)
	for _, name := range stub.OmittedFiles() {
		assert.NotContains(t, out, name)
	}
	assert.Empty(t, errOut)
}

func TestBare_Idempotent(t *testing.T) {
	isolate(t)
	_, first, _ := execute(t)
	_, second, _ := execute(t)
	assert.Equal(t, first, second)
}

func TestBare_SkipsConfigAndLogging(t *testing.T) {
	tmp := isolate(t)
	logFile := filepath.Join(tmp, "finmetrics.log")
	t.Setenv("FINMETRICS_THEME", "sepia")
	t.Setenv("FINMETRICS_LOG_FILE", logFile)

	code, _, _ := execute(t)
	assert.Equal(t, 0, code)
	assert.NoFileExists(t, logFile)

	// the same environment is rejected once a subcommand loads it
	code, _, errOut := execute(t, "version")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "theme")
}

func TestConfig_OnlyUsedSectionsValidated(t *testing.T) {
	isolate(t)
	t.Setenv("FINMETRICS_SIMULATOR_RUNS", "1234")
	t.Setenv("FINMETRICS_CALCULATOR_PERIODS", "9")

	for _, args := range [][]string{
		{"version"},
		{"runs", "ls", "--no-color"},
		{"learn", "--no-color"},
		{"placeholder", "main"},
	} {
		code, _, errOut := execute(t, args...)
		assert.Equal(t, 0, code, "%v: %s", args, errOut)
	}

	code, _, errOut := execute(t, "simulate")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "simulator.runs")
	assert.NotContains(t, errOut, "calculator.periods")

	code, _, errOut = execute(t, "calc", "volatility")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "calculator.periods")
	assert.NotContains(t, errOut, "simulator.runs")
}

func TestPlaceholder(t *testing.T) {
	isolate(t)
	code, out, _ := execute(t, "placeholder", "render_calculator")
	require.Equal(t, 0, code)
	assert.Equal(t, "Executing render_calculator\n", out)

	code, out, _ = execute(t, "placeholder", "--list")
	require.Equal(t, 0, code)
	assert.Equal(t, "main\nrender_calculator\nrender_education\nrender_simulator\n", out)

	code, _, errOut := execute(t, "placeholder", "render_portfolio")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "unknown placeholder")
}

func TestExitCodes(t *testing.T) {
	isolate(t)
	cases := []struct {
		name string
		args []string
		want int
	}{
		{"unknown command", []string{"bogus"}, 2},
		{"unknown flag", []string{"calc", "scenario", "--nope"}, 2},
		{"extra args", []string{"version", "extra"}, 2},
		{"out of range", []string{"calc", "scenario", "--periods", "9", "--no-color"}, 2},
		{"bad runs choice", []string{"simulate", "--runs", "1234"}, 2},
		{"bad format", []string{"runs", "show", "abc", "--format", "xml"}, 2},
		{"unknown topic", []string{"learn", "astrology"}, 2},
		{"missing run", []string{"runs", "show", "abc"}, 1},
		{"missing config file", []string{"--config", "/does/not/exist.yaml", "version"}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _, errOut := execute(t, tc.args...)
			assert.Equal(t, tc.want, code, errOut)
			assert.NotEmpty(t, errOut)
		})
	}
}

func TestCalcScenario(t *testing.T) {
	isolate(t)
	code, out, errOut := execute(t, "calc", "scenario", "--no-color", "--up", "100", "--down", "-60")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Single Scenario Analysis")
	assert.Contains(t, out, "All Possible Outcomes")
	assert.Contains(t, out, "1.440x")
	assert.Contains(t, out, "Key Takeaways")
}

func TestCalcVolatility_FromConfigFile(t *testing.T) {
	tmp := isolate(t)
	cfg := filepath.Join(tmp, "custom.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("no_color: true\ncalculator:\n  target: 10\n  steps: 3\n"), 0o644))

	code, out, errOut := execute(t, "--config", cfg, "calc", "volatility")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Volatility Impact Analysis")
	assert.Contains(t, out, "Arithmetic mean return: 10.0%")
	assert.Contains(t, out, "1.10")
	assert.Contains(t, out, "5.00")
}

func TestSimulate_SaveAndManageRuns(t *testing.T) {
	tmp := isolate(t)
	code, out, errOut := execute(t, "simulate", "--no-color",
		"--runs", "1000", "--periods", "3", "--seed", "7", "--workers", "2", "--save")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Simulation Parameters")
	assert.Contains(t, out, "Key Statistics")
	assert.Contains(t, out, "Completed 1000 simulations")
	assert.Contains(t, out, "saved run ")

	runs, err := jsonstore.New(filepath.Join(tmp, "data", "finmetrics", "runs")).List()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	id := runs[0].ID
	assert.Equal(t, uint64(7), runs[0].Params.Seed)

	code, out, _ = execute(t, "runs", "ls", "--no-color")
	require.Equal(t, 0, code)
	assert.Contains(t, out, id[:8])

	code, out, _ = execute(t, "runs", "show", id[:8], "--format", "json")
	require.Equal(t, 0, code)
	var got model.Run
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, id, got.ID)
	assert.Equal(t, runs[0].Summary, got.Summary)

	code, out, _ = execute(t, "runs", "show", id, "--format", "yaml")
	require.Equal(t, 0, code)
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, id, doc["id"])

	code, out, _ = execute(t, "runs", "show", id, "--no-color")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Outcome Percentiles")

	code, out, _ = execute(t, "runs", "rm", id, "--no-color")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "removed run "+id[:8])

	code, out, _ = execute(t, "runs", "ls", "--no-color")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "(no saved runs)")
}

func TestSimulate_DeterministicWithSeed(t *testing.T) {
	isolate(t)
	args := []string{"simulate", "--no-color", "--runs", "1000", "--periods", "4", "--seed", "11"}
	_, first, _ := execute(t, args...)
	_, second, _ := execute(t, append(args, "--workers", "3")...)

	// elapsed time differs between runs
	trim := func(s string) string { return s[:strings.Index(s, "Completed")] }
	assert.Equal(t, trim(first), trim(second))
}

func TestLearn(t *testing.T) {
	isolate(t)
	code, out, _ := execute(t, "learn", "--no-color")
	require.Equal(t, 0, code)
	for _, id := range []string{"arithmetic", "multiplicative", "drag", "trees", "takeaways"} {
		assert.Contains(t, out, id)
	}

	code, out, errOut := execute(t, "learn", "arithmetic", "--raw", "--year1", "10", "--year2", "10")
	require.Equal(t, 0, code, errOut)
	assert.True(t, strings.HasPrefix(out, "# Arithmetic vs Geometric Returns"))
	assert.Contains(t, out, "| Arithmetic mean | 10.0% |")

	code, out, errOut = execute(t, "learn", "drag", "--no-color")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Volatility Drag Effect")

	code, _, _ = execute(t, "learn", "trees", "--tree-periods", "7")
	assert.Equal(t, 2, code)
}

func TestVersion(t *testing.T) {
	isolate(t)
	code, out, _ := execute(t, "version")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "finmetrics dev"))
}
