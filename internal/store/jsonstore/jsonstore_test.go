package jsonstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/finmetrics/internal/model"
)

func clock(start time.Time) func() time.Time {
	t := start
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func sampleRun(seed uint64) model.Run {
	return model.Run{
		Elapsed: 1500 * time.Millisecond,
		Params: model.SimulationParams{
			Initial: 10000, Up: 0.6, Down: -0.2, ProbUp: 0.5,
			Periods: 10, Runs: 1000, Seed: seed,
		},
		Summary: model.SimulationSummary{
			MeanFinal:   31000,
			MedianFinal: 21000,
			Percentiles: []model.PercentileRow{{Percentile: 50, Value: 21000, CAGR: 0.077}},
		},
	}
}

func TestSave_WritesNamedFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "runs")
	s := New(dir, WithNow(func() time.Time {
		return time.Date(2024, 3, 1, 12, 30, 0, 0, time.FixedZone("CET", 3600))
	}))

	got, err := s.Save(sampleRun(7))
	require.NoError(t, err)
	require.Len(t, got.ID, 36)
	assert.Equal(t, time.Date(2024, 3, 1, 11, 30, 0, 0, time.UTC), got.CreatedAt)

	des, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, des, 1)
	assert.Equal(t, "20240301T113000Z_"+got.ID[:8]+".json", des[0].Name())
}

func TestList_NewestFirst(t *testing.T) {
	s := New(t.TempDir(), WithNow(clock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))))
	first, err := s.Save(sampleRun(1))
	require.NoError(t, err)
	second, err := s.Save(sampleRun(2))
	require.NoError(t, err)

	runs, err := s.List()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second.ID, runs[0].ID)
	assert.Equal(t, first.ID, runs[1].ID)
	assert.Equal(t, uint64(1), runs[1].Params.Seed)
	assert.Equal(t, 1500*time.Millisecond, runs[1].Elapsed)
	assert.Equal(t, sampleRun(1).Summary, runs[1].Summary)
}

func TestList_MissingDirIsEmpty(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nope"))
	runs, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestList_IgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	_, err := s.Save(sampleRun(1))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.json"), 0o755))

	runs, err := s.List()
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestList_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{"), 0o644))
	_, err := New(dir).List()
	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindStorage))
}

func TestGet_FullIDAndPrefix(t *testing.T) {
	s := New(t.TempDir())
	saved, err := s.Save(sampleRun(3))
	require.NoError(t, err)

	got, err := s.Get(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)

	got, err = s.Get(saved.ID[:6])
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
}

func TestGet_NotFound(t *testing.T) {
	s := New(t.TempDir())
	_, err := s.Save(sampleRun(1))
	require.NoError(t, err)

	_, err = s.Get("does-not-exist")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.True(t, strings.Contains(err.Error(), "does-not-exist"))

	_, err = s.Get("")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	saved, err := s.Save(sampleRun(1))
	require.NoError(t, err)

	require.NoError(t, s.Delete(saved.ID))
	runs, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	err = s.Delete(saved.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
