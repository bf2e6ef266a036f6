// Package config holds monitorr settings and loads optional TOML files with
// environment variable substitution.
package config

import (
	"fmt"
	"net"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Defaults mirror the command line defaults.
const (
	DefaultHost       = "localhost"
	DefaultPort       = 7878
	DefaultURLBase    = "/radarr"
	DefaultPathPrefix = "/movies/"
	DefaultLogLevel   = "info"
)

// Config is the root configuration structure.
type Config struct {
	Radarr    RadarrConfig    `toml:"radarr"`
	Reconcile ReconcileConfig `toml:"reconcile"`
	Log       LogConfig       `toml:"log"`
}

type RadarrConfig struct {
	Host    string        `toml:"host"`
	Port    int           `toml:"port"`
	APIKey  string        `toml:"api_key"`
	URLBase string        `toml:"url_base"`
	Timeout time.Duration `toml:"timeout"`
}

type ReconcileConfig struct {
	PrintOnly  bool   `toml:"print_only"`
	PathPrefix string `toml:"path_prefix"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Radarr: RadarrConfig{
			Host:    DefaultHost,
			Port:    DefaultPort,
			URLBase: DefaultURLBase,
		},
		Reconcile: ReconcileConfig{
			PathPrefix: DefaultPathPrefix,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// BaseURL returns the server's scheme://host:port.
func (c *Config) BaseURL() string {
	return "http://" + net.JoinHostPort(c.Radarr.Host, strconv.Itoa(c.Radarr.Port))
}

// Load reads and parses the configuration file. Keys absent from the file
// keep their defaults. References to unset environment variables are
// reported as a *ConfigError.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing}
	}

	cfg := Default()
	if _, err := toml.Decode(content, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Check validates the config and returns a *ConfigError describing every
// problem, or nil.
func (c *Config) Check(path string) error {
	if errs := c.Validate(); len(errs) > 0 {
		return &ConfigError{Path: path, Errors: errs}
	}
	return nil
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// substituteEnvVars replaces ${VAR_NAME} with environment variable values
// and returns the names of variables that are not set. Full-line comments
// are left alone.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	seen := make(map[string]bool)

	lines := strings.SplitAfter(content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		lines[i] = envVarPattern.ReplaceAllStringFunc(line, func(match string) string {
			varName := match[2 : len(match)-1] // Strip ${ and }
			if value, ok := os.LookupEnv(varName); ok {
				return value
			}
			if !seen[varName] {
				seen[varName] = true
				missing = append(missing, varName)
			}
			return match
		})
	}

	return strings.Join(lines, ""), missing
}
