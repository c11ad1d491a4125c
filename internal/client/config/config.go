// Package config loads the client configuration: defaults first, then an
// optional YAML file, then SKILLBARTER_* environment variables. Later sources
// win.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "SKILLBARTER_CONFIG"

// DefaultConfigPaths lists where a config file is looked for, in order.
var DefaultConfigPaths = []string{
	"skillbarter.yaml",
	"skillbarter.yml",
}

// Config holds runtime settings for the SkillBarter CLI.
type Config struct {
	// ServerURL is the backend REST base address.
	ServerURL string `koanf:"server_url"`
	// SocketURL is the realtime channel address.
	SocketURL string `koanf:"socket_url"`
	// SessionFile is where the (token, user) pair is persisted.
	SessionFile string `koanf:"session_file"`
	// RequestTimeout bounds each REST call.
	RequestTimeout time.Duration `koanf:"request_timeout"`

	Log LogConfig `koanf:"log"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

func defaultConfig() *Config {
	sessionFile := "session.json"
	if home, err := os.UserHomeDir(); err == nil {
		sessionFile = filepath.Join(home, ".skillbarter", "session.json")
	}
	return &Config{
		ServerURL:      "http://localhost:3000",
		SocketURL:      "ws://localhost:3000/ws",
		SessionFile:    sessionFile,
		RequestTimeout: 15 * time.Second,
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds the effective configuration. A config file is optional; a file
// named by SKILLBARTER_CONFIG must exist.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path, required := configPath(); path != "" {
		err := k.Load(file.Provider(path), yaml.Parser())
		if err != nil && (required || !errors.Is(err, os.ErrNotExist)) {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// SKILLBARTER_LOG_LEVEL → log.level, SKILLBARTER_SERVER_URL → server_url.
	err := k.Load(env.Provider("SKILLBARTER_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "SKILLBARTER_"))
		if rest, ok := strings.CutPrefix(s, "log_"); ok {
			return "log." + rest
		}
		return s
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// configPath resolves the config file to use and whether it is mandatory.
func configPath() (string, bool) {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		return p, true
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p, false
		}
	}
	return "", false
}
