package config

import (
	"errors"
	"fmt"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration is usable, reporting every problem at once.
// Each problem is a ValidationError reachable with errors.As.
func ValidateConfig(cfg *Config) error {
	var errs []error

	if cfg.ServerPort == "" {
		errs = append(errs, ValidationError{"SERVER_PORT", "must not be empty"})
	}

	switch cfg.Provider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			errs = append(errs, ValidationError{"GEMINI_API_KEY", "required when LLM_PROVIDER is gemini"})
		}
	case ProviderDeepSeek:
		if cfg.DeepSeekAPIKey == "" {
			errs = append(errs, ValidationError{"DEEPSEEK_API_KEY", "required when LLM_PROVIDER is deepseek"})
		}
	case ProviderFallback:
		if cfg.GeminiAPIKey == "" {
			errs = append(errs, ValidationError{"GEMINI_API_KEY", "required when LLM_PROVIDER is fallback"})
		}
		if cfg.DeepSeekAPIKey == "" {
			errs = append(errs, ValidationError{"DEEPSEEK_API_KEY", "required when LLM_PROVIDER is fallback"})
		}
	default:
		errs = append(errs, ValidationError{"LLM_PROVIDER", fmt.Sprintf("unknown provider %q", cfg.Provider)})
	}

	if cfg.UpstreamTimeout < 0 {
		errs = append(errs, ValidationError{"UPSTREAM_TIMEOUT", "must not be negative"})
	}

	switch cfg.DBDriver {
	case DriverSQLite:
		if cfg.DBPath == "" {
			errs = append(errs, ValidationError{"DB_PATH", "required when DB_DRIVER is sqlite"})
		}
	case DriverPostgres:
		if cfg.DBHost == "" {
			errs = append(errs, ValidationError{"DB_HOST", "required when DB_DRIVER is postgres"})
		}
		if cfg.DBName == "" {
			errs = append(errs, ValidationError{"DB_NAME", "required when DB_DRIVER is postgres"})
		}
		if cfg.DBUser == "" {
			errs = append(errs, ValidationError{"DB_USER", "required when DB_DRIVER is postgres"})
		}
	case DriverNone:
	default:
		errs = append(errs, ValidationError{"DB_DRIVER", fmt.Sprintf("unknown driver %q", cfg.DBDriver)})
	}

	if cfg.RedisURL != "" && cfg.RateLimitPerHour <= 0 {
		errs = append(errs, ValidationError{"RATE_LIMIT_PER_HOUR", "must be positive when REDIS_URL is set"})
	}

	if cfg.S3BucketName != "" && cfg.AWSRegion == "" {
		errs = append(errs, ValidationError{"AWS_REGION", "required when S3_BUCKET_NAME is set"})
	}

	if IsProduction() && cfg.OperatorJWTSecret == "" && cfg.DBDriver != DriverNone {
		errs = append(errs, ValidationError{"OPERATOR_JWT_SECRET", "required in production when evaluation history is enabled"})
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%w", errors.Join(errs...))
	}

	return nil
}
