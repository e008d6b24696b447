package wordbee

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.Nil(t, GenerateSample(path))

	cfg, err := NewConfig(path)
	require.Nil(t, err)
	require.Equal(t, DefaultConfig, *cfg)
}

func TestConfigEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.Nil(t, os.WriteFile(path, []byte("common: mine.txt\n"), 0644))
	t.Setenv("WORDBEE_WORDLIST_DIR", "/srv/wordlists")

	cfg, err := NewConfig(path)
	require.Nil(t, err)
	require.Equal(t, "mine.txt", cfg.Common)
	require.Equal(t, "/srv/wordlists", cfg.WordlistDir)
	require.Equal(t, DefaultConfig.Other, cfg.Other, "unset fields use defaults")
	require.Equal(t, filepath.Join("/srv/wordlists", "mine.txt"), cfg.Path(cfg.Common))
	require.Equal(t, "/abs/list.txt", cfg.Path("/abs/list.txt"))
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("WORDBEE_OTHER", "extra.txt")
	cfg, err := NewConfigFromEnv()
	require.Nil(t, err)
	require.Equal(t, "extra.txt", cfg.Other)
	require.Equal(t, DefaultConfig.Common, cfg.Common)
}
