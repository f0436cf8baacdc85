package domain

import (
	"fmt"
	"strings"
)

// SettingKey names one persisted CLI setting, written as "section.name".
type SettingKey string

const (
	SettingAPIBaseURL     SettingKey = "api.base_url"
	SettingAPITimeout     SettingKey = "api.timeout"
	SettingCaptchaSiteKey SettingKey = "captcha.site_key"
	SettingLogLevel       SettingKey = "log.level"
	SettingEnvironment    SettingKey = "log.environment"
	SettingStoreBackend   SettingKey = "store.backend"
	SettingStoreDir       SettingKey = "store.dir"
)

var ErrUnknownSetting = fmt.Errorf("%w: unknown setting", ErrInvalidArgument)

func SettingKeys() []SettingKey {
	return []SettingKey{
		SettingAPIBaseURL,
		SettingAPITimeout,
		SettingCaptchaSiteKey,
		SettingLogLevel,
		SettingEnvironment,
		SettingStoreBackend,
		SettingStoreDir,
	}
}

func ParseSettingKey(raw string) (SettingKey, error) {
	key := SettingKey(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range SettingKeys() {
		if key == known {
			return key, nil
		}
	}

	return "", fmt.Errorf("%w %q", ErrUnknownSetting, raw)
}
