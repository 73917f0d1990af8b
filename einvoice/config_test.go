package einvoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("EINVOICE_API_KEY", "key-123")
	t.Setenv("EINVOICE_BASE_URL", "")
	t.Setenv("EINVOICE_DEBUG", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "key-123", cfg.APIKey)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.True(t, cfg.Debug)
}

func TestLoadConfig_MissingKey(t *testing.T) {
	t.Setenv("EINVOICE_API_KEY", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EINVOICE_API_KEY")
}

func TestLoadConfig_BaseURLOverride(t *testing.T) {
	t.Setenv("EINVOICE_API_KEY", "key-123")
	t.Setenv("EINVOICE_BASE_URL", "http://127.0.0.1:9999")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9999", cfg.BaseURL)
}
