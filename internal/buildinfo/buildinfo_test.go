package buildinfo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString_Stamped(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })

	Version, Commit, Date = "v1.2.3", "0123456789abcdef", "2024-05-01"
	s := String()
	assert.True(t, strings.HasPrefix(s, "finmetrics v1.2.3 (commit 0123456789ab, built 2024-05-01, go"), s)
}
