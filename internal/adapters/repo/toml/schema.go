package toml

import (
	"fmt"

	"github.com/bnema/nutricoach-cli/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version int           `toml:"version"`
	API     apiSchema     `toml:"api,omitempty"`
	Captcha captchaSchema `toml:"captcha,omitempty"`
	Log     logSchema     `toml:"log,omitempty"`
	Store   storeSchema   `toml:"store,omitempty"`
}

type apiSchema struct {
	BaseURL string `toml:"base_url,omitempty"`
	Timeout string `toml:"timeout,omitempty"`
}

type captchaSchema struct {
	SiteKey string `toml:"site_key,omitempty"`
}

type logSchema struct {
	Level       string `toml:"level,omitempty"`
	Environment string `toml:"environment,omitempty"`
}

type storeSchema struct {
	Backend string `toml:"backend,omitempty"`
	Dir     string `toml:"dir,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported settings schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

// field maps a setting key onto its slot in the schema.
func (s *fileSchema) field(key domain.SettingKey) (*string, error) {
	switch key {
	case domain.SettingAPIBaseURL:
		return &s.API.BaseURL, nil
	case domain.SettingAPITimeout:
		return &s.API.Timeout, nil
	case domain.SettingCaptchaSiteKey:
		return &s.Captcha.SiteKey, nil
	case domain.SettingLogLevel:
		return &s.Log.Level, nil
	case domain.SettingEnvironment:
		return &s.Log.Environment, nil
	case domain.SettingStoreBackend:
		return &s.Store.Backend, nil
	case domain.SettingStoreDir:
		return &s.Store.Dir, nil
	default:
		return nil, fmt.Errorf("%w %q", domain.ErrUnknownSetting, string(key))
	}
}
