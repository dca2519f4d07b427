package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Provider names accepted in LLM_PROVIDER
const (
	ProviderGemini   = "gemini"
	ProviderDeepSeek = "deepseek"
	ProviderFallback = "fallback"
)

// Database drivers accepted in DB_DRIVER
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverNone     = "none"
)

const (
	defaultServerPort    = "5000"
	defaultGeminiModel   = "gemini-2.5-flash"
	defaultDeepSeekURL   = "https://api.deepseek.com/v1/chat/completions"
	defaultDeepSeekModel = "deepseek-chat"
	defaultStaticDir     = "frontend"
	defaultDBPath        = "promptchef.db"
	defaultRateLimit     = 60
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string
	StaticDir  string

	// Upstream model configuration
	Provider        string
	Model           string
	GeminiAPIKey    string
	DeepSeekAPIKey  string
	DeepSeekAPIURL  string
	DeepSeekModel   string
	UpstreamTimeout time.Duration

	// Evaluation history storage
	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Rate limiting
	RedisURL         string
	RateLimitPerHour int

	// Report archive
	S3BucketName string
	AWSRegion    string

	// Operator tokens for the evaluation history endpoints
	OperatorJWTSecret string
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{}

	switch env {
	case CI, Development, Test, Production:
		if err := loadFromEnvironment(cfg); err != nil {
			return nil, fmt.Errorf("failed to load %s configuration: %w", env, err)
		}
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadFromEnvironment(cfg *Config) error {
	cfg.ServerPort = lookup("SERVER_PORT", defaultServerPort)
	cfg.ServerHost = lookup("SERVER_HOST", "")
	cfg.StaticDir = lookup("STATIC_DIR", defaultStaticDir)

	cfg.Provider = strings.ToLower(lookup("LLM_PROVIDER", ProviderGemini))
	cfg.GeminiAPIKey = readSecret("GEMINI_API_KEY")
	cfg.DeepSeekAPIKey = readSecret("DEEPSEEK_API_KEY")
	cfg.DeepSeekAPIURL = lookup("DEEPSEEK_API_URL", defaultDeepSeekURL)
	cfg.DeepSeekModel = lookup("DEEPSEEK_MODEL", defaultDeepSeekModel)

	cfg.Model = lookup("LLM_MODEL", "")
	if cfg.Model == "" {
		cfg.Model = defaultGeminiModel
		if cfg.Provider == ProviderDeepSeek {
			cfg.Model = cfg.DeepSeekModel
		}
	}

	if raw := lookup("UPSTREAM_TIMEOUT", ""); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid UPSTREAM_TIMEOUT %q: %w", raw, err)
		}
		cfg.UpstreamTimeout = timeout
	}

	cfg.DBDriver = strings.ToLower(lookup("DB_DRIVER", DriverSQLite))
	cfg.DBPath = lookup("DB_PATH", defaultDBPath)
	cfg.DBHost = lookup("DB_HOST", "")
	cfg.DBPort = lookup("DB_PORT", "5432")
	cfg.DBUser = readSecret("DB_USER")
	cfg.DBPassword = readSecret("DB_PASSWORD")
	cfg.DBName = lookup("DB_NAME", "")
	cfg.DBSSLMode = lookup("DB_SSL_MODE", "disable")

	cfg.RedisURL = readSecret("REDIS_URL")
	cfg.RateLimitPerHour = defaultRateLimit
	if raw := lookup("RATE_LIMIT_PER_HOUR", ""); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_PER_HOUR %q: %w", raw, err)
		}
		cfg.RateLimitPerHour = limit
	}

	cfg.S3BucketName = lookup("S3_BUCKET_NAME", "")
	cfg.AWSRegion = lookup("AWS_REGION", "")

	cfg.OperatorJWTSecret = readSecret("OPERATOR_JWT_SECRET")

	return nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// PostgresDSN builds the connection string for the postgres driver
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func lookup(name, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(name)); value != "" {
		return value
	}
	return fallback
}

// readSecret resolves a sensitive value. The plain environment variable wins,
// then a file named by <NAME>_FILE, then the lower-cased name in SECRETS_DIR.
func readSecret(name string) string {
	if value := strings.TrimSpace(os.Getenv(name)); value != "" {
		return value
	}

	if path := os.Getenv(name + "_FILE"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			return strings.TrimSpace(string(data))
		}
	}

	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, strings.ToLower(name))); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

// OperatorSecret resolves OPERATOR_JWT_SECRET without loading or validating the rest of the configuration
func OperatorSecret() string {
	return readSecret("OPERATOR_JWT_SECRET")
}
