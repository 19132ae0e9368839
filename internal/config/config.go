package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Defaults can be overridden at build time with -ldflags "-X ...".
var (
	DefaultBackendURL = "http://localhost:8001"
	DefaultAuthURL    = "https://auth.emergentagent.com/"
)

const (
	DefaultLanguage  = "ar"
	DefaultTheme     = "light"
	DefaultRateLimit = 10.0
	DefaultBurst     = 5
)

// Config represents the client configuration persisted in ~/.neuroad/config.yaml.
type Config struct {
	BackendURL   string      `yaml:"backend_url" mapstructure:"backend_url"`
	AuthURL      string      `yaml:"auth_url" mapstructure:"auth_url"`
	SessionToken string      `yaml:"session_token,omitempty" mapstructure:"session_token"`
	User         *UserConfig `yaml:"user,omitempty" mapstructure:"user"`

	// Set by a successful session exchange, cleared by the next identity check.
	JustAuthenticated bool `yaml:"just_authenticated,omitempty" mapstructure:"just_authenticated"`

	Language string `yaml:"language" mapstructure:"language"`
	Theme    string `yaml:"theme" mapstructure:"theme"`

	RateLimit float64 `yaml:"rate_limit" mapstructure:"rate_limit"` // requests per second
	Burst     int     `yaml:"burst" mapstructure:"burst"`
	LogLevel  string  `yaml:"log_level,omitempty" mapstructure:"log_level"`
}

// UserConfig caches the identity returned by the backend.
type UserConfig struct {
	ID      string `yaml:"id" mapstructure:"id"`
	Email   string `yaml:"email" mapstructure:"email"`
	Name    string `yaml:"name" mapstructure:"name"`
	Picture string `yaml:"picture,omitempty" mapstructure:"picture"`
}

var (
	mu         sync.RWMutex
	configPath string
	configDir  string
)

// env var -> config key
var envBindings = map[string]string{
	"backend_url": "NEUROAD_BACKEND_URL",
	"auth_url":    "NEUROAD_AUTH_URL",
	"language":    "NEUROAD_LANG",
	"theme":       "NEUROAD_THEME",
	"log_level":   "NEUROAD_LOG_LEVEL",
}

func init() {
	// Under sudo, os.UserHomeDir() returns /root; prefer the invoking user's home.
	var home string
	if sudoUser := os.Getenv("SUDO_USER"); sudoUser != "" {
		if u, err := user.Lookup(sudoUser); err == nil {
			home = u.HomeDir
		}
	}
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			home = "."
		}
	}

	SetDir(filepath.Join(home, ".neuroad"))
}

// SetDir relocates the config directory. Used by tests and --config-dir.
func SetDir(dir string) {
	mu.Lock()
	defer mu.Unlock()
	configDir = dir
	configPath = filepath.Join(dir, "config.yaml")
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	mu.RLock()
	defer mu.RUnlock()
	return configPath
}

// GetConfigDir returns the config directory
func GetConfigDir() string {
	mu.RLock()
	defer mu.RUnlock()
	return configDir
}

// Default returns a configuration with every field at its default value.
func Default() *Config {
	return &Config{
		BackendURL: DefaultBackendURL,
		AuthURL:    DefaultAuthURL,
		Language:   DefaultLanguage,
		Theme:      DefaultTheme,
		RateLimit:  DefaultRateLimit,
		Burst:      DefaultBurst,
	}
}

// LoadEnv loads a .env file from the working directory if one exists.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("⚠️  failed to load .env file", "error", err)
		}
		return
	}
	slog.Debug("✅ loaded .env file")
}

// Load loads the configuration from file, creating a default one on first run.
// NEUROAD_* environment variables take precedence over the file.
func Load() (*Config, error) {
	dir, path := GetConfigDir(), GetConfigPath()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(Default()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	setDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.BackendURL = strings.TrimRight(cfg.BackendURL, "/")

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("backend_url", d.BackendURL)
	v.SetDefault("auth_url", d.AuthURL)
	v.SetDefault("language", d.Language)
	v.SetDefault("theme", d.Theme)
	v.SetDefault("rate_limit", d.RateLimit)
	v.SetDefault("burst", d.Burst)
}

// Save saves the configuration to file
func Save(cfg *Config) error {
	dir, path := GetConfigDir(), GetConfigPath()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// 0600: the file holds the session token
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Update loads the config, applies fn and saves the result.
func Update(fn func(cfg *Config)) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	fn(cfg)
	if err := Save(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ClearSession removes every trace of the signed-in user.
func (c *Config) ClearSession() {
	c.SessionToken = ""
	c.User = nil
	c.JustAuthenticated = false
}

// Watch reloads the config whenever the file changes and passes the new
// value to fn. It blocks until ctx is cancelled.
func Watch(ctx context.Context, fn func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors and Save replace the file.
	if err := watcher.Add(GetConfigDir()); err != nil {
		return fmt.Errorf("failed to watch config directory: %w", err)
	}

	path := filepath.Clean(GetConfigPath())
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := Load()
			if err != nil {
				slog.Warn("config reload failed", "error", err)
				continue
			}
			fn(cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("config watcher error", "error", err)
		}
	}
}
