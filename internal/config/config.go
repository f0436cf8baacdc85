// Package config resolves the effective CLI settings: built-in defaults, then
// the TOML settings file, then NUTRICOACH_* variables from dir/.env, then the
// process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/bnema/nutricoach-cli/internal/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DirName     = ".nutricoach"
	configName  = "config"
	configType  = "toml"
	envFileName = ".env"

	DefaultAPIBaseURL = "http://localhost:5000/api"
	DefaultAPITimeout = 30 * time.Second
	// DefaultCaptchaSiteKey is the widget vendor's always-pass test key.
	DefaultCaptchaSiteKey = "1x00000000000000000000AA"
	DefaultLogLevel       = "warn"
	DefaultEnvironment    = "prod"

	BackendFile         = "file"
	BackendPass         = "pass"
	BackendPassFallback = "pass+file"
)

var (
	validEnvs = map[string]bool{
		"dev":     true,
		"test":    true,
		"staging": true,
		"prod":    true,
	}
	validBackends = map[string]bool{
		BackendFile:         true,
		BackendPass:         true,
		BackendPassFallback: true,
	}
	validLevels = map[string]bool{
		"debug":   true,
		"info":    true,
		"warn":    true,
		"warning": true,
		"error":   true,
	}
)

type Config struct {
	APIBaseURL     string        `env:"NUTRICOACH_API_BASE_URL"`
	APITimeout     time.Duration `env:"NUTRICOACH_API_TIMEOUT"`
	CaptchaSiteKey string        `env:"NUTRICOACH_CAPTCHA_SITE_KEY"`
	LogLevel       string        `env:"NUTRICOACH_LOG_LEVEL"`
	Environment    string        `env:"NUTRICOACH_ENVIRONMENT"`
	StoreBackend   string        `env:"NUTRICOACH_STORE_BACKEND"`
	StoreDir       string        `env:"NUTRICOACH_STORE_DIR"`

	// File is the settings file that was read, empty when none exists.
	File string
	// EnvFileValues holds the variables read from dir/.env.
	EnvFileValues map[string]string
}

// DefaultDir is ~/.nutricoach.
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, DirName), nil
}

// FilePath is the settings file inside dir.
func FilePath(dir string) string {
	return filepath.Join(dir, configName+"."+configType)
}

// Load reads dir/config.toml when present and applies environ on top.
func Load(dir string, environ []string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)
	setDefaults(v, dir)

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		APIBaseURL:     v.GetString(string(domain.SettingAPIBaseURL)),
		APITimeout:     v.GetDuration(string(domain.SettingAPITimeout)),
		CaptchaSiteKey: v.GetString(string(domain.SettingCaptchaSiteKey)),
		LogLevel:       v.GetString(string(domain.SettingLogLevel)),
		Environment:    v.GetString(string(domain.SettingEnvironment)),
		StoreBackend:   v.GetString(string(domain.SettingStoreBackend)),
		StoreDir:       v.GetString(string(domain.SettingStoreDir)),
		File:           v.ConfigFileUsed(),
	}

	envFileValues, err := readEnvFile(filepath.Join(dir, envFileName))
	if err != nil {
		return nil, err
	}
	cfg.EnvFileValues = envFileValues

	envSet := env.EnvSet{}
	for key, value := range envFileValues {
		envSet[key] = value
	}
	for key, value := range env.EnvironToEnvSet(environ) {
		envSet[key] = value
	}

	if err := env.Unmarshal(envSet, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// readEnvFile returns nil when path does not exist. The process environment is
// left untouched.
func readEnvFile(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read env file: %w", err)
	}

	return values, nil
}

func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault(string(domain.SettingAPIBaseURL), DefaultAPIBaseURL)
	v.SetDefault(string(domain.SettingAPITimeout), DefaultAPITimeout)
	v.SetDefault(string(domain.SettingCaptchaSiteKey), DefaultCaptchaSiteKey)
	v.SetDefault(string(domain.SettingLogLevel), DefaultLogLevel)
	v.SetDefault(string(domain.SettingEnvironment), DefaultEnvironment)
	v.SetDefault(string(domain.SettingStoreBackend), BackendFile)
	v.SetDefault(string(domain.SettingStoreDir), filepath.Join(dir, "store"))
}

func (c *Config) normalize() {
	c.APIBaseURL = strings.TrimSpace(c.APIBaseURL)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.Environment = strings.ToLower(strings.TrimSpace(c.Environment))
	c.StoreBackend = strings.ToLower(strings.TrimSpace(c.StoreBackend))
	c.StoreDir = expandHome(strings.TrimSpace(c.StoreDir))
	if strings.TrimSpace(c.CaptchaSiteKey) == "" {
		c.CaptchaSiteKey = DefaultCaptchaSiteKey
	}
}

func (c *Config) Validate() error {
	if err := validateBaseURL(c.APIBaseURL); err != nil {
		return err
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("api timeout must be positive, got %v", c.APITimeout)
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level '%s'. Valid levels: debug, info, warn, error", c.LogLevel)
	}
	if !validEnvs[c.Environment] {
		return fmt.Errorf("invalid environment '%s'. Valid environments: dev, test, staging, prod", c.Environment)
	}
	if !validBackends[c.StoreBackend] {
		return fmt.Errorf("invalid store backend '%s'. Valid backends: file, pass, pass+file", c.StoreBackend)
	}
	if c.StoreDir == "" {
		return errors.New("store dir cannot be empty")
	}

	return nil
}

// Value returns the effective value of key formatted the way `config set` accepts it.
func (c *Config) Value(key domain.SettingKey) string {
	switch key {
	case domain.SettingAPIBaseURL:
		return c.APIBaseURL
	case domain.SettingAPITimeout:
		return c.APITimeout.String()
	case domain.SettingCaptchaSiteKey:
		return c.CaptchaSiteKey
	case domain.SettingLogLevel:
		return c.LogLevel
	case domain.SettingEnvironment:
		return c.Environment
	case domain.SettingStoreBackend:
		return c.StoreBackend
	case domain.SettingStoreDir:
		return c.StoreDir
	default:
		return ""
	}
}

// ValidateSetting checks a single value before it is persisted.
func ValidateSetting(key domain.SettingKey, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case domain.SettingAPIBaseURL:
		return validateBaseURL(value)
	case domain.SettingAPITimeout:
		timeout, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("parse api timeout: %w", err)
		}
		if timeout <= 0 {
			return fmt.Errorf("api timeout must be positive, got %v", timeout)
		}
	case domain.SettingLogLevel:
		if !validLevels[strings.ToLower(value)] {
			return fmt.Errorf("invalid log level '%s'", value)
		}
	case domain.SettingEnvironment:
		if !validEnvs[strings.ToLower(value)] {
			return fmt.Errorf("invalid environment '%s'", value)
		}
	case domain.SettingStoreBackend:
		if !validBackends[strings.ToLower(value)] {
			return fmt.Errorf("invalid store backend '%s'", value)
		}
	case domain.SettingCaptchaSiteKey, domain.SettingStoreDir:
		if value == "" {
			return fmt.Errorf("%s cannot be empty", key)
		}
	default:
		return fmt.Errorf("%w %q", domain.ErrUnknownSetting, string(key))
	}

	return nil
}

func validateBaseURL(raw string) error {
	if raw == "" {
		return errors.New("api base url cannot be empty")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse api base url: %w", err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("api base url must be an absolute http(s) url, got %q", raw)
	}

	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}
