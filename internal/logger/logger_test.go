package logger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2026, 10, 19, 13, 4, 5, 0, time.Local)
}

func TestLogWritesFileAndMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "cube.txt")
	l := New(path)
	l.now = fixedClock

	l.Log("window opened")
	l.Logf("resize %dx%d", 400, 300)

	want := []string{
		"[2026-10-19 13:04:05] window opened",
		"[2026-10-19 13:04:05] resize 400x300",
	}
	assert.Equal(t, want, l.Lines())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want[0]+"\n"+want[1]+"\n", string(data))
	assert.Equal(t, path, l.Path())
}

func TestMemoryOnly(t *testing.T) {
	l := New("")
	l.Log("x")
	assert.Len(t, l.Lines(), 1)
	assert.Empty(t, l.Path())
}

func TestLinesIsCopy(t *testing.T) {
	l := New("")
	l.Log("a")
	lines := l.Lines()
	lines[0] = "changed"
	assert.NotEqual(t, "changed", l.Lines()[0])
}
