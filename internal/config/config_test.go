package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, "", c.OutputDir)
	assert.Equal(t, "{name}", c.OutputNameFormat)
	assert.Equal(t, "json", c.ExportFormat)
	assert.Equal(t, 10, c.PageSize)
	assert.Equal(t, 30, c.MaxCellWidth)
	assert.Equal(t, 6, c.DefaultPreviewColumns)
	assert.Equal(t, "info", c.LogLevel)
}

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
output_dir: /tmp/out
export_format: xlsx
page_size: 25
log_level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/out", c.OutputDir)
	assert.Equal(t, "xlsx", c.ExportFormat)
	assert.Equal(t, 25, c.PageSize)
	assert.Equal(t, 30, c.MaxCellWidth)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestParseRejectsInvalidValues(t *testing.T) {
	docs := []string{
		"page_size: -1",
		"max_cell_width: -5",
		"default_preview_columns: -2",
		"export_format: csv",
		"log_level: loud",
		"page_size: [1, 2]",
	}
	for _, doc := range docs {
		_, err := Parse([]byte(doc))
		assert.Error(t, err, doc)
	}
}

func TestParseAcceptsLogLevelAliases(t *testing.T) {
	for _, level := range []string{"debug", "INFO", "warn", "warning", "Error"} {
		c, err := Parse([]byte("log_level: " + level))
		require.NoError(t, err, level)
		assert.Equal(t, level, c.LogLevel)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	c, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	_, err = Load(path, true)
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xmltable.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_cell_width: 12\n"), 0o644))

	c, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, 12, c.MaxCellWidth)
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	assert.Equal(t, filepath.Join(home, "exports"), ExpandHome("~/exports"))
	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, "/abs", ExpandHome("/abs"))
	assert.Equal(t, "~user/x", ExpandHome("~user/x"))
}

func TestResolvedOutputDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	require.NoError(t, os.Mkdir(filepath.Join(home, "Desktop"), 0o755))

	assert.Equal(t, filepath.Join(home, "Desktop"), Default().ResolvedOutputDir())

	c := Default()
	c.OutputDir = "~/out"
	assert.Equal(t, filepath.Join(home, "out"), c.ResolvedOutputDir())
}
