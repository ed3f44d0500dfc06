package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pouriyajamshidi/kindof/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadDefaults_NoConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("KINDOF_CONFIG", "")

	d, err := app.LoadDefaults()
	require.NoError(t, err)

	assert.Empty(t, d.Format)
	assert.Empty(t, d.Omit)
	assert.False(t, d.Roots)
	assert.False(t, d.NoColor)
}

func TestLoadDefaults_File(t *testing.T) {
	t.Setenv("KINDOF_CONFIG", writeConfig(t, `
format: yaml
omit:
  - password
  - token
preview: true
no_color: true
`))

	d, err := app.LoadDefaults()
	require.NoError(t, err)

	assert.Equal(t, app.Defaults{
		Format:  "yaml",
		Omit:    []string{"password", "token"},
		Preview: true,
		NoColor: true,
	}, d)
}

func TestLoadDefaults_EnvOverridesFile(t *testing.T) {
	t.Setenv("KINDOF_CONFIG", writeConfig(t, "format: yaml\nroots: false\n"))
	t.Setenv("KINDOF_FORMAT", "ndjson")
	t.Setenv("KINDOF_ROOTS", "true")

	d, err := app.LoadDefaults()
	require.NoError(t, err)

	assert.Equal(t, "ndjson", d.Format)
	assert.True(t, d.Roots)
}

func TestLoadDefaults_MissingExplicitFile(t *testing.T) {
	t.Setenv("KINDOF_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := app.LoadDefaults()
	assert.Error(t, err)
}
