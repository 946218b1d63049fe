package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings().MaxPages, s.MaxPages)
	assert.Equal(t, "data", s.DataDirName)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	for _, name := range []string{"woodstock.json", "woodstock.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)

			s := DefaultSettings()
			s.ProjectDir = "/srv/woodstock"
			s.MaxPages = 3
			s.SavePosters = true
			s.LogLevel = "debug"
			require.NoError(t, s.Save(path))

			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, s, got)
		})
	}
}

func TestLoad_PartialYAMLKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "woodstock.yml")
	require.NoError(t, os.WriteFile(path, []byte("max_pages: 7\n"), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, s.MaxPages)
	assert.Equal(t, DefaultSettings().UserAgent, s.UserAgent)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0644))
	_, err := Load(bad)
	assert.Error(t, err)

	outOfRange := filepath.Join(dir, "range.json")
	require.NoError(t, os.WriteFile(outOfRange, []byte(`{"max_pages": 0, "log_level": "loud"}`), 0644))
	_, err = Load(outOfRange)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_pages")
	assert.Contains(t, err.Error(), "log_level")
}

func TestValidate_LogLevel(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"", true},
		{"debug", true},
		{"WARN", true},
		{"warning", true},
		{" error ", true},
		{"loud", false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			s := DefaultSettings()
			s.LogLevel = tt.level
			err := s.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, "log_level")
			}
		})
	}
}

func TestDataDir_Creates(t *testing.T) {
	s := DefaultSettings()
	s.ProjectDir = t.TempDir()

	dir, err := s.DataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.ProjectDir, "data"), dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
