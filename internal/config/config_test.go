package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	c := NewConfig()
	assert.Equal(t, DefaultMaxDisplayRows, c.MaxDisplayRows)
	assert.Equal(t, DefaultDateLayout, c.DateLayout)
	assert.NoError(t, c.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"defaults are valid", NewConfig(), false},
		{"zero display rows allowed", Config{MaxDisplayRows: 0, DateLayout: DefaultDateLayout}, false},
		{"negative display rows rejected", Config{MaxDisplayRows: -1, DateLayout: DefaultDateLayout}, true},
		{"empty layout rejected", Config{MaxDisplayRows: 5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSetAndGetConfig(t *testing.T) {
	defer Reset()

	c := NewConfig()
	c.MaxDisplayRows = 3
	require.NoError(t, SetConfig(c))
	assert.Equal(t, 3, GetConfig().MaxDisplayRows)

	bad := Config{MaxDisplayRows: -1, DateLayout: DefaultDateLayout}
	assert.Error(t, SetConfig(bad))
	assert.Equal(t, 3, GetConfig().MaxDisplayRows)

	Reset()
	assert.Equal(t, DefaultMaxDisplayRows, GetConfig().MaxDisplayRows)
}

func TestLoadFromFile(t *testing.T) {
	defer Reset()

	path := filepath.Join(t.TempDir(), "strata.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_display_rows: 25\ndate_layout: \"2006-01-02\"\n"), 0o644))

	c, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 25, c.MaxDisplayRows)
	assert.Equal(t, "2006-01-02", c.DateLayout)
	assert.Equal(t, 25, GetConfig().MaxDisplayRows)
}

func TestLoadFromFileEnvOverrides(t *testing.T) {
	defer Reset()

	path := filepath.Join(t.TempDir(), "strata.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_display_rows: 25\n"), 0o644))

	t.Setenv(EnvMaxDisplayRows, "7")
	t.Setenv(EnvDateLayout, "02 Jan 06")

	c, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 7, c.MaxDisplayRows)
	assert.Equal(t, "02 Jan 06", c.DateLayout)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
