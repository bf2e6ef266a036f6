package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if strings.TrimSpace(c.Radarr.Host) == "" {
		errs = append(errs, "radarr.host: required")
	}
	if c.Radarr.Port < 1 || c.Radarr.Port > 65535 {
		errs = append(errs, fmt.Sprintf("radarr.port: must be between 1 and 65535, got %d", c.Radarr.Port))
	}
	if c.Radarr.APIKey == "" {
		errs = append(errs, "radarr.api_key: required (set --api-key or api_key in the config file)")
	}
	if c.Radarr.URLBase != "" && !strings.HasPrefix(c.Radarr.URLBase, "/") {
		errs = append(errs, fmt.Sprintf("radarr.url_base: must start with /, got %q", c.Radarr.URLBase))
	}
	if c.Radarr.Timeout < 0 {
		errs = append(errs, fmt.Sprintf("radarr.timeout: must not be negative, got %s", c.Radarr.Timeout))
	}

	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	return errs
}
