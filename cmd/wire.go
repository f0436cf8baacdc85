package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/bnema/nutricoach-cli/internal/adapters/api"
	tomlrepo "github.com/bnema/nutricoach-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/nutricoach-cli/internal/adapters/secrets/chain"
	filestore "github.com/bnema/nutricoach-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/nutricoach-cli/internal/adapters/secrets/pass"
	"github.com/bnema/nutricoach-cli/internal/application"
	"github.com/bnema/nutricoach-cli/internal/config"
	"github.com/bnema/nutricoach-cli/internal/logger"
	"github.com/bnema/nutricoach-cli/internal/ports"
	"github.com/bnema/nutricoach-cli/internal/version"
)

type app struct {
	cfg       *config.Config
	configDir string
	logger    *slog.Logger
	sessions  *application.SessionService
	settings  ports.SettingsRepository
	flags     *rootFlags
	now       func() time.Time
}

type rootFlags struct {
	output string
	token  string
}

func wireApp(flags *rootFlags) (*app, error) {
	configDir, err := config.DefaultDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(configDir, os.Environ())
	if err != nil {
		return nil, err
	}

	log := logger.New(os.Stderr, logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)

	settings, err := tomlrepo.NewSettingsRepository(config.FilePath(configDir))
	if err != nil {
		return nil, fmt.Errorf("wire settings repository: %w", err)
	}

	store, err := newSecretStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire session store: %w", err)
	}

	return &app{
		cfg:       cfg,
		configDir: configDir,
		logger:    log,
		sessions:  application.NewSessionService(store, ports.SystemClock{}, log),
		settings:  settings,
		flags:     flags,
		now:       time.Now,
	}, nil
}

func newSecretStore(cfg *config.Config) (ports.SecretStore, error) {
	switch cfg.StoreBackend {
	case config.BackendPass:
		return passstore.NewStore(passstore.DefaultPrefix), nil
	case config.BackendPassFallback:
		return chainstore.NewPassFirstWithFileFallback(passstore.DefaultPrefix, cfg.StoreDir)
	default:
		return filestore.NewStore(cfg.StoreDir), nil
	}
}

// services builds the API bindings after flags are parsed so --token can take effect.
func (a *app) services() (*api.Services, error) {
	var source api.TokenSource = a.sessions
	if token := strings.TrimSpace(a.flags.token); token != "" {
		source = api.StaticToken(token)
	}

	client, err := api.New(a.cfg.APIBaseURL,
		api.WithTimeout(a.cfg.APITimeout),
		api.WithTokenSource(source),
		api.WithLogger(a.logger),
		api.WithUserAgent("ncc/"+version.Version),
		api.WithInterceptor(announceRequest),
	)
	if err != nil {
		return nil, fmt.Errorf("wire api client: %w", err)
	}

	return api.NewServices(client), nil
}
