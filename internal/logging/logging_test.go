package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_NopWithoutSinks(t *testing.T) {
	l, err := New(Config{Level: "debug"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.ErrorLevel))
}

func TestNew_WritesToFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "finmetrics.log")
	l, err := New(Config{Level: "warn", File: p})
	require.NoError(t, err)

	l.Info("dropped")
	l.Warn("kept", zap.Int("runs", 1000))
	require.NoError(t, l.Sync())

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	out := string(b)
	assert.False(t, strings.Contains(out, "dropped"))
	assert.Contains(t, out, `"msg":"kept"`)
	assert.Contains(t, out, `"runs":1000`)
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(Config{Level: "chatty", File: filepath.Join(t.TempDir(), "x.log")})
	assert.Error(t, err)
}

func TestSet_Restores(t *testing.T) {
	prev := L()
	custom := zap.NewExample()
	restore := Set(custom)
	assert.Same(t, custom, L())
	restore()
	assert.Same(t, prev, L())

	restore = Set(nil)
	assert.NotNil(t, L())
	restore()
}
