package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// ValidateConfig checks that every field required to serve requests is present
// and well formed. All problems are reported together.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.GeminiAPIKey == "" {
		errors = append(errors, ValidationError{
			Field:   "GEMINI_API_KEY",
			Message: "required (or GEMINI_API_KEY_FILE / gemini_api_key secret)",
		}.Error())
	}

	if cfg.GeminiModel == "" {
		errors = append(errors, ValidationError{Field: "GEMINI_MODEL", Message: "must not be empty"}.Error())
	}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port <= 0 || port > 65535 {
		errors = append(errors, ValidationError{
			Field:   "SERVER_PORT",
			Message: fmt.Sprintf("invalid port %q", cfg.ServerPort),
		}.Error())
	}

	if cfg.ChunkSize <= 0 {
		errors = append(errors, ValidationError{Field: "CHUNK_SIZE", Message: "must be positive"}.Error())
	}

	if cfg.GenerationTimeout < 0 {
		errors = append(errors, ValidationError{Field: "GENERATION_TIMEOUT", Message: "must not be negative"}.Error())
	}

	if !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		errors = append(errors, ValidationError{
			Field:   "LOG_LEVEL",
			Message: fmt.Sprintf("unknown level %q", cfg.LogLevel),
		}.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
