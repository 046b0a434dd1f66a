package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/waylist/internal/config"
)

func TestConfigInit(t *testing.T) {
	home := setupTestEnv(t)
	path := filepath.Join(home, "conf", "config.yaml")

	out, _, err := executeCmd(t, "1.0.0", "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized at "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.New().List, cfg.List)

	_, _, err = executeCmd(t, "1.0.0", "--config", path, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = executeCmd(t, "1.0.0", "--config", path, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigValidate(t *testing.T) {
	home := setupTestEnv(t)
	path := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("list:\n  pagination:\n    page_size: 7\n"), 0o600))

	out, _, err := executeCmd(t, "1.0.0", "--config", path, "config", "validate", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "page_size: 7")

	require.NoError(t, os.WriteFile(path, []byte("list:\n  pagination:\n    page_size: 0\n"), 0o600))
	_, _, err = executeCmd(t, "1.0.0", "--config", path, "config", "validate")
	require.Error(t, err)
}
