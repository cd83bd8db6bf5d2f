package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultDayWidth, cfg.DayWidth)
	assert.Equal(t, DefaultMarginDays, cfg.MarginDays)
	assert.Contains(t, cfg.DBPath, "yabane.db")
	assert.Len(t, cfg.Export.Sections, 6)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(
		"db_path: /tmp/custom.db\nday_width: 12\nexport:\n  sections: [arrows, wbs]\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
	assert.Equal(t, 12, cfg.DayWidth)
	assert.Equal(t, DefaultMarginDays, cfg.MarginDays, "untouched fields keep defaults")
	assert.Equal(t, []string{"arrows", "wbs"}, cfg.Export.Sections)
}

func TestLoad_EnvOverridesDBPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: /tmp/from-file.db\n"), 0o644))
	t.Setenv("YABANE_DB", "/tmp/from-env.db")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env.db", cfg.DBPath)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "width.yml")
	require.NoError(t, os.WriteFile(path, []byte("day_width: -3\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)

	path = filepath.Join(dir, "section.yml")
	require.NoError(t, os.WriteFile(path, []byte("export:\n  sections: [gantt]\n"), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "unknown export section")
}
