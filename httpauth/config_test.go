package httpauth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig(env.Options{})
	require.NoError(t, err)
	assert.Empty(t, cfg.Path)
	assert.False(t, cfg.NoFallback)
	assert.False(t, cfg.RequestID)
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("NETRC_FILE", "/tmp/netrc")
	t.Setenv("NETRC_NO_FALLBACK", "true")
	t.Setenv("NETRC_REQUEST_ID", "true")

	cfg, err := NewConfig(env.Options{})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/netrc", cfg.Path)
	assert.True(t, cfg.NoFallback)
	assert.True(t, cfg.RequestID)
}

func TestNewConfigWithPrefix(t *testing.T) {
	t.Setenv("MYAPP_NETRC_FILE", "/srv/netrc")

	cfg, err := NewConfig(env.Options{Prefix: "MYAPP_"})
	require.NoError(t, err)
	assert.Equal(t, "/srv/netrc", cfg.Path)
}

func TestConfigTransport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netrc")
	require.NoError(t, os.WriteFile(path, []byte("machine h login l password p\n"), 0o600))

	cfg := Config{Path: path, NoFallback: true, RequestID: true}
	tr, err := cfg.Transport()
	require.NoError(t, err)

	require.NotNil(t, tr.nrc.Machine("h"))
	assert.True(t, tr.noFallback)
	assert.True(t, tr.requestID)
}

func TestConfigTransportBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netrc")
	require.NoError(t, os.WriteFile(path, []byte("machine\n"), 0o600))

	_, err := Config{Path: path}.Transport()
	assert.Error(t, err)
}

func TestNewTransportFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netrc")
	require.NoError(t, os.WriteFile(path, []byte("default login guest\n"), 0o600))
	t.Setenv("NETRC_FILE", path)

	tr, err := NewTransportFromEnv(env.Options{})
	require.NoError(t, err)
	require.NotNil(t, tr.nrc.Default())
	assert.Equal(t, "guest", tr.nrc.Default().Login)
}
