package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv isolates a test from variables set on the host.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GEMINI_API_KEY", "GEMINI_API_KEY_FILE", "GEMINI_MODEL", "GEMINI_ENDPOINT",
		"GEMINI_TEMPERATURE", "GEMINI_MAX_OUTPUT_TOKENS", "SERVER_HOST", "SERVER_PORT", "PORT",
		"CORS_ALLOWED_ORIGINS", "CHUNK_SIZE", "GENERATION_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT",
		"ENV", "CI",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("SECRETS_DIR", t.TempDir())
	t.Setenv("ENV_FILE", "")
	t.Chdir(t.TempDir())
}

func TestLoadConfig(t *testing.T) {
	clearEnv(t)

	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-pro")
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, http://frontend:5173")
	t.Setenv("CHUNK_SIZE", "500")
	t.Setenv("GENERATION_TIMEOUT", "45s")
	t.Setenv("GEMINI_TEMPERATURE", "0.4")
	t.Setenv("GEMINI_MAX_OUTPUT_TOKENS", "1024")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-1.5-pro", cfg.GeminiModel)
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.Equal(t, []string{"http://localhost:5173", "http://frontend:5173"}, cfg.AllowedOrigins)
	assert.Equal(t, 500, cfg.ChunkSize)
	assert.Equal(t, 45*time.Second, cfg.GenerationTimeout)
	require.NotNil(t, cfg.Temperature)
	assert.InDelta(t, 0.4, *cfg.Temperature, 0.0001)
	require.NotNil(t, cfg.MaxOutputTokens)
	assert.Equal(t, int32(1024), *cfg.MaxOutputTokens)
}

func TestLoadConfigWithDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultServerPort, cfg.ServerPort)
	assert.Equal(t, DefaultGeminiModel, cfg.GeminiModel)
	assert.Equal(t, DefaultChunkSize, cfg.ChunkSize)
	assert.Zero(t, cfg.GenerationTimeout)
	assert.Nil(t, cfg.Temperature)
	assert.Nil(t, cfg.MaxOutputTokens)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.Equal(t, Development, cfg.Env)
}

func TestLoadConfigMissingAPIKey(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestLoadConfigAPIKeySources(t *testing.T) {
	t.Run("key file", func(t *testing.T) {
		clearEnv(t)
		keyFile := filepath.Join(t.TempDir(), "key")
		require.NoError(t, os.WriteFile(keyFile, []byte("  file-key\n"), 0o600))
		t.Setenv("GEMINI_API_KEY_FILE", keyFile)

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "file-key", cfg.GeminiAPIKey)
	})

	t.Run("unreadable key file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GEMINI_API_KEY_FILE", filepath.Join(t.TempDir(), "nope"))

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read API key file")
	})

	t.Run("docker secret", func(t *testing.T) {
		clearEnv(t)
		secrets := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(secrets, "gemini_api_key"), []byte("secret-key"), 0o600))
		t.Setenv("SECRETS_DIR", secrets)

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "secret-key", cfg.GeminiAPIKey)
	})

	t.Run("env file", func(t *testing.T) {
		clearEnv(t)
		envFile := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(envFile, []byte("GEMINI_API_KEY=dotenv-key\nSERVER_PORT=9090\n"), 0o600))
		t.Setenv("ENV_FILE", envFile)
		// godotenv never overrides variables that are already set, even to ""
		require.NoError(t, os.Unsetenv("GEMINI_API_KEY"))
		require.NoError(t, os.Unsetenv("SERVER_PORT"))

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "dotenv-key", cfg.GeminiAPIKey)
		assert.Equal(t, "9090", cfg.ServerPort)
	})
}

func TestLoadConfigInvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("CHUNK_SIZE", "abc")
	t.Setenv("GENERATION_TIMEOUT", "soon")
	t.Setenv("GEMINI_TEMPERATURE", "hot")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CHUNK_SIZE")
	assert.Contains(t, err.Error(), "GENERATION_TIMEOUT")
	assert.Contains(t, err.Error(), "GEMINI_TEMPERATURE")
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			ServerPort:   "3001",
			GeminiAPIKey: "key",
			GeminiModel:  DefaultGeminiModel,
			ChunkSize:    DefaultChunkSize,
			LogLevel:     "info",
		}
	}

	assert.NoError(t, ValidateConfig(valid()))

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"missing key", func(c *Config) { c.GeminiAPIKey = "" }, "GEMINI_API_KEY"},
		{"empty model", func(c *Config) { c.GeminiModel = "" }, "GEMINI_MODEL"},
		{"bad port", func(c *Config) { c.ServerPort = "70000" }, "SERVER_PORT"},
		{"zero chunk size", func(c *Config) { c.ChunkSize = 0 }, "CHUNK_SIZE"},
		{"negative timeout", func(c *Config) { c.GenerationTimeout = -time.Second }, "GENERATION_TIMEOUT"},
		{"unknown log level", func(c *Config) { c.LogLevel = "verbose" }, "LOG_LEVEL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := ValidateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestLoadConfigMissingEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load env file")
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())
	assert.Equal(t, "release", GetEnvironment().GinMode())

	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())
	assert.Equal(t, "test", GetEnvironment().GinMode())

	t.Setenv("CI", "")
	t.Setenv("ENV", "")
	assert.Equal(t, Development, GetEnvironment())
	assert.False(t, GetEnvironment().IsProduction())
}
