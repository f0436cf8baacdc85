package ports

import (
	"context"

	"github.com/bnema/nutricoach-cli/internal/domain"
)

// SettingsRepository persists the values a user set explicitly; defaults are not stored.
type SettingsRepository interface {
	Values(ctx context.Context) (map[domain.SettingKey]string, error)
	Set(ctx context.Context, key domain.SettingKey, value string) error
	Unset(ctx context.Context, key domain.SettingKey) error
	Path() string
}
