package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := `
# editor defaults
CRONBUILD_TEST_EXPR=0 0 0 L * ?
CRONBUILD_TEST_LEVEL = debug

not-a-pair
=orphan
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	t.Setenv("CRONBUILD_TEST_EXPR", "")
	os.Unsetenv("CRONBUILD_TEST_EXPR")
	t.Setenv("CRONBUILD_TEST_LEVEL", "")
	os.Unsetenv("CRONBUILD_TEST_LEVEL")

	require.NoError(t, LoadEnv(path))
	assert.Equal(t, "0 0 0 L * ?", os.Getenv("CRONBUILD_TEST_EXPR"))
	assert.Equal(t, "debug", os.Getenv("CRONBUILD_TEST_LEVEL"))
}

func TestLoadEnvKeepsExistingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CRONBUILD_TEST_KEEP=file\n"), 0644))

	t.Setenv("CRONBUILD_TEST_KEEP", "process")

	require.NoError(t, LoadEnv(path))
	assert.Equal(t, "process", os.Getenv("CRONBUILD_TEST_KEEP"))
}

func TestLoadEnvMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")

	assert.Error(t, LoadEnv(missing))
	assert.NoError(t, LoadEnvOptional(missing))
}
