package paths

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDataDir(t *testing.T) {
	got := DefaultDataDir()
	assert.True(t, filepath.IsAbs(got))
	assert.True(t, strings.HasSuffix(got, AppDirName))
}

func TestResolveDataDir(t *testing.T) {
	t.Run("flag wins over everything", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/tmp/env-dir")
		got, err := ResolveDataDir("/tmp/flag-dir", "/tmp/config-dir")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/flag-dir", got)
	})

	t.Run("config value wins over env", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/tmp/env-dir")
		got, err := ResolveDataDir("", "/tmp/config-dir")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/config-dir", got)
	})

	t.Run("env wins over default", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/tmp/env-dir")
		got, err := ResolveDataDir("", "")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/env-dir", got)
	})

	t.Run("falls back to platform default", func(t *testing.T) {
		t.Setenv(EnvDataDir, "")
		got, err := ResolveDataDir("", "")
		require.NoError(t, err)
		assert.Equal(t, DefaultDataDir(), got)
	})

	t.Run("relative paths are made absolute", func(t *testing.T) {
		got, err := ResolveDataDir("rel-dir", "")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
	})
}
