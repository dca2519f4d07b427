package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"CI", "ENV", "SERVER_PORT", "SERVER_HOST", "STATIC_DIR", "LLM_PROVIDER", "LLM_MODEL",
		"GEMINI_API_KEY", "GEMINI_API_KEY_FILE", "DEEPSEEK_API_KEY", "DEEPSEEK_API_URL", "DEEPSEEK_MODEL",
		"UPSTREAM_TIMEOUT", "DB_DRIVER", "DB_PATH", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD",
		"DB_NAME", "DB_SSL_MODE", "REDIS_URL", "RATE_LIMIT_PER_HOUR", "S3_BUCKET_NAME", "AWS_REGION",
		"OPERATOR_JWT_SECRET", "OPERATOR_JWT_SECRET_FILE", "DEEPSEEK_API_KEY_FILE",
	} {
		t.Setenv(name, "")
	}
	// Point secret lookups at an empty directory so the host's /run/secrets is never read.
	t.Setenv("SECRETS_DIR", t.TempDir())
}

func TestLoadConfigWithDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.ServerPort)
	assert.Equal(t, ":5000", cfg.Addr())
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, "frontend", cfg.StaticDir)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "promptchef.db", cfg.DBPath)
	assert.Equal(t, 60, cfg.RateLimitPerHour)
	assert.Zero(t, cfg.UpstreamTimeout)
}

func TestLoadConfigDeepSeekModelDefault(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "DeepSeek")
	t.Setenv("DEEPSEEK_API_KEY", "ds-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ProviderDeepSeek, cfg.Provider)
	assert.Equal(t, "deepseek-chat", cfg.Model)
	assert.Equal(t, "https://api.deepseek.com/v1/chat/completions", cfg.DeepSeekAPIURL)
}

func TestLoadConfigReadsSecretFiles(t *testing.T) {
	clearEnv(t)

	keyFile := filepath.Join(t.TempDir(), "gemini")
	require.NoError(t, os.WriteFile(keyFile, []byte("  from-file \n"), 0o600))
	t.Setenv("GEMINI_API_KEY_FILE", keyFile)

	secretsDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(secretsDir, "operator_jwt_secret"), []byte("s3cret\n"), 0o600))
	t.Setenv("SECRETS_DIR", secretsDir)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.GeminiAPIKey)
	assert.Equal(t, "s3cret", cfg.OperatorJWTSecret)
}

func TestLoadConfigParsesTimeoutAndLimit(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("UPSTREAM_TIMEOUT", "45s")
	t.Setenv("RATE_LIMIT_PER_HOUR", "5")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 45*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, 5, cfg.RateLimitPerHour)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Run("timeout", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GEMINI_API_KEY", "k")
		t.Setenv("UPSTREAM_TIMEOUT", "soon")

		_, err := LoadConfig()
		assert.ErrorContains(t, err, "UPSTREAM_TIMEOUT")
	})

	t.Run("rate limit", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GEMINI_API_KEY", "k")
		t.Setenv("RATE_LIMIT_PER_HOUR", "many")

		_, err := LoadConfig()
		assert.ErrorContains(t, err, "RATE_LIMIT_PER_HOUR")
	})
}

func TestValidateConfig(t *testing.T) {
	clearEnv(t)

	valid := func() *Config {
		return &Config{
			ServerPort:   "5000",
			Provider:     ProviderGemini,
			GeminiAPIKey: "k",
			DBDriver:     DriverSQLite,
			DBPath:       "test.db",
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateConfig(valid()))
	})

	t.Run("missing gemini key", func(t *testing.T) {
		cfg := valid()
		cfg.GeminiAPIKey = ""
		assert.ErrorContains(t, ValidateConfig(cfg), "GEMINI_API_KEY")
	})

	t.Run("fallback needs both keys", func(t *testing.T) {
		cfg := valid()
		cfg.Provider = ProviderFallback
		err := ValidateConfig(cfg)
		assert.ErrorContains(t, err, "DEEPSEEK_API_KEY")
		assert.NotContains(t, err.Error(), "GEMINI_API_KEY")
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := valid()
		cfg.Provider = "bard"
		assert.ErrorContains(t, ValidateConfig(cfg), `unknown provider "bard"`)
	})

	t.Run("postgres reports every missing field", func(t *testing.T) {
		cfg := valid()
		cfg.DBDriver = DriverPostgres
		err := ValidateConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_HOST")
		assert.Contains(t, err.Error(), "DB_NAME")
		assert.Contains(t, err.Error(), "DB_USER")
	})

	t.Run("field is reachable with errors.As", func(t *testing.T) {
		cfg := valid()
		cfg.Provider = ProviderDeepSeek
		err := ValidateConfig(cfg)

		var verr ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "DEEPSEEK_API_KEY", verr.Field)
		assert.True(t, strings.HasPrefix(err.Error(), "configuration validation failed:\n"))
	})

	t.Run("s3 needs region", func(t *testing.T) {
		cfg := valid()
		cfg.S3BucketName = "reports"
		assert.ErrorContains(t, ValidateConfig(cfg), "AWS_REGION")
	})

	t.Run("production needs operator secret", func(t *testing.T) {
		t.Setenv("ENV", "production")
		assert.ErrorContains(t, ValidateConfig(valid()), "OPERATOR_JWT_SECRET")

		cfg := valid()
		cfg.DBDriver = DriverNone
		assert.NoError(t, ValidateConfig(cfg))
	})
}

func TestGetEnvironment(t *testing.T) {
	clearEnv(t)
	assert.Equal(t, Development, GetEnvironment())

	t.Setenv("ENV", "test")
	assert.Equal(t, Test, GetEnvironment())

	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())
}

func TestOperatorSecretFromSecretsDir(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("SECRETS_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "operator_jwt_secret"), []byte("s3cret\n"), 0o600))

	assert.Equal(t, "s3cret", OperatorSecret())

	t.Setenv("OPERATOR_JWT_SECRET", "from-env")
	assert.Equal(t, "from-env", OperatorSecret())
}
