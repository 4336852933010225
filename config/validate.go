package config

import "fmt"

// Validate checks values that would otherwise fail later at runtime.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Form.MaxPhotoBytes <= 0 {
		return fmt.Errorf("MAX_PHOTO_BYTES must be positive, got %d", c.Form.MaxPhotoBytes)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL_MINUTES must be positive")
	}
	if c.Print.Attempts < 1 {
		return fmt.Errorf("PRINT_ATTEMPTS must be at least 1, got %d", c.Print.Attempts)
	}
	return nil
}

// IsDevelopment reports whether the service runs with development settings.
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development"
}
