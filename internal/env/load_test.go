package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line, key, value string
		ok               bool
	}{
		{"", "", "", false},
		{"   # comment", "", "", false},
		{"NOEQUALS", "", "", false},
		{"=value", "", "", false},
		{"A=1", "A", "1", true},
		{"  B = two words  ", "B", "two words", true},
		{`C="quoted"`, "C", "quoted", true},
		{"D='single'", "D", "single", true},
		{`E="mismatched'`, "E", `"mismatched'`, true},
		{"export F=x=y", "F", "x=y", true},
	}
	for _, tt := range tests {
		key, value, ok := parseLine(tt.line)
		assert.Equal(t, tt.ok, ok, tt.line)
		assert.Equal(t, tt.key, key, tt.line)
		assert.Equal(t, tt.value, value, tt.line)
	}
}

func TestLoadMissing(t *testing.T) {
	keys, err := Load(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestLoadKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CUBE_TEST_NEW=1\nCUBE_TEST_OLD=2\n"), 0644))
	t.Setenv("CUBE_TEST_OLD", "kept")
	t.Setenv("CUBE_TEST_NEW", "")
	os.Unsetenv("CUBE_TEST_NEW")

	keys, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"CUBE_TEST_NEW"}, keys)
	assert.Equal(t, "1", os.Getenv("CUBE_TEST_NEW"))
	assert.Equal(t, "kept", os.Getenv("CUBE_TEST_OLD"))
}
