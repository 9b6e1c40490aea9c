package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks the configuration for the current environment.
// Development and test runs tolerate missing secrets so local tooling works;
// production and CI do not.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.JWTSecret == "" {
		if IsProduction() || IsCI() {
			errors = append(errors, "JWT_SECRET is required")
		}
	}

	if cfg.DBPassword == "" && IsProduction() {
		errors = append(errors, "DB_PASSWORD is required in production")
	}

	if cfg.ServerPort == "" {
		errors = append(errors, "SERVER_PORT must not be empty")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}

	return nil
}
