package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultServerPort  = "3001"
	DefaultGeminiModel = "gemini-1.5-flash"
	DefaultChunkSize   = 2000
)

// Config holds all configuration for the application
type Config struct {
	Env Environment

	// Server configuration
	ServerHost     string
	ServerPort     string
	AllowedOrigins []string

	// Gemini configuration
	GeminiAPIKey    string
	GeminiModel     string
	GeminiEndpoint  string
	Temperature     *float32
	MaxOutputTokens *int32

	// Streaming configuration
	ChunkSize         int
	GenerationTimeout time.Duration

	LogLevel  string
	LogFormat string
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// LoadConfig builds a Config from the environment. A .env file in the working
// directory (or the file named by ENV_FILE) is loaded first if present; values
// already set in the process environment win.
func LoadConfig() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := &Config{
		Env:            GetEnvironment(),
		ServerHost:     os.Getenv("SERVER_HOST"),
		ServerPort:     getEnv("SERVER_PORT", getEnv("PORT", DefaultServerPort)),
		AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		GeminiModel:    getEnv("GEMINI_MODEL", DefaultGeminiModel),
		GeminiEndpoint: os.Getenv("GEMINI_ENDPOINT"),
		ChunkSize:      DefaultChunkSize,
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
	}

	var errs []string

	apiKey, err := loadAPIKey()
	if err != nil {
		errs = append(errs, err.Error())
	}
	cfg.GeminiAPIKey = apiKey

	if v := os.Getenv("CHUNK_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Sprintf("CHUNK_SIZE: invalid integer %q", v))
		} else {
			cfg.ChunkSize = n
		}
	}

	if v := os.Getenv("GENERATION_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Sprintf("GENERATION_TIMEOUT: invalid duration %q", v))
		} else {
			cfg.GenerationTimeout = d
		}
	}

	if v := os.Getenv("GEMINI_TEMPERATURE"); v != "" {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			errs = append(errs, fmt.Sprintf("GEMINI_TEMPERATURE: invalid number %q", v))
		} else {
			t := float32(f)
			cfg.Temperature = &t
		}
	}

	if v := os.Getenv("GEMINI_MAX_OUTPUT_TOKENS"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			errs = append(errs, fmt.Sprintf("GEMINI_MAX_OUTPUT_TOKENS: invalid integer %q", v))
		} else {
			m := int32(n)
			cfg.MaxOutputTokens = &m
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration validation failed:\n%s", strings.Join(errs, "\n"))
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadDotEnv() error {
	path := os.Getenv("ENV_FILE")
	if path == "" {
		path = ".env"
		if _, err := os.Stat(path); err != nil {
			return nil
		}
	}
	return godotenv.Load(path)
}

// loadAPIKey resolves the Gemini API key from GEMINI_API_KEY, the file named by
// GEMINI_API_KEY_FILE, or the gemini_api_key Docker secret, in that order.
func loadAPIKey() (string, error) {
	if key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); key != "" {
		return key, nil
	}

	if keyFile := os.Getenv("GEMINI_API_KEY_FILE"); keyFile != "" {
		data, err := os.ReadFile(keyFile)
		if err != nil {
			return "", fmt.Errorf("failed to read API key file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	return readSecret("gemini_api_key"), nil
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
