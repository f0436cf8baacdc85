package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/nutricoach-cli/internal/domain"
	"github.com/bnema/nutricoach-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	settingsFileMode = 0o600
	settingsDirMode  = 0o700
	tempFilePattern  = ".config-*.toml.tmp"
)

// SettingsRepository edits the user's config.toml. Reads of the effective
// configuration go through the config package.
type SettingsRepository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SettingsRepository = (*SettingsRepository)(nil)

func NewSettingsRepository(path string) (*SettingsRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("settings path is empty")
	}

	normalized, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &SettingsRepository{path: normalized, mu: lockForPath(normalized)}, nil
}

func (r *SettingsRepository) Path() string {
	return r.path
}

func (r *SettingsRepository) Values(ctx context.Context) (map[domain.SettingKey]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	values := map[domain.SettingKey]string{}
	for _, key := range domain.SettingKeys() {
		slot, err := file.field(key)
		if err != nil {
			return nil, err
		}
		if *slot != "" {
			values[key] = *slot
		}
	}

	return values, nil
}

func (r *SettingsRepository) Set(ctx context.Context, key domain.SettingKey, value string) error {
	return r.update(ctx, key, strings.TrimSpace(value))
}

func (r *SettingsRepository) Unset(ctx context.Context, key domain.SettingKey) error {
	return r.update(ctx, key, "")
}

func (r *SettingsRepository) update(ctx context.Context, key domain.SettingKey, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	slot, err := file.field(key)
	if err != nil {
		return err
	}
	*slot = value

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *SettingsRepository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read settings file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode settings file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *SettingsRepository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), settingsDirMode); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode settings file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp settings file: %w", err)
	}

	if err := tempFile.Chmod(settingsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp settings file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp settings file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace settings file: %w", err)
	}

	cleanup = false

	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve settings path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
