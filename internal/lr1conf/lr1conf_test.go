package lr1conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Load_missingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func Test_Load_fileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lr1.toml")
	body := "max_states = 50\nmax_steps = 75\n\n[catalog]\npath = \"grammars.db\"\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.MaxStates)
	assert.Equal(t, 75, cfg.MaxSteps)
	assert.Equal(t, "grammars.db", cfg.Catalog.Path)
}

func Test_Load_zeroFieldsFallBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lr1.toml")
	require.NoError(t, os.WriteFile(path, []byte("[catalog]\npath = \"x.db\"\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxStates, cfg.MaxStates)
	assert.Equal(t, DefaultMaxSteps, cfg.MaxSteps)
}

func Test_Load_malformedTOMLReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lr1.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid toml"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
