package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bnema/hksl/internal/adapters/gameapi"
	sqlrepo "github.com/bnema/hksl/internal/adapters/repo/sql"
	tomlrepo "github.com/bnema/hksl/internal/adapters/repo/toml"
	chainstore "github.com/bnema/hksl/internal/adapters/secrets/chain"
	"github.com/bnema/hksl/internal/catalog"
	"github.com/bnema/hksl/internal/config"
	"github.com/bnema/hksl/internal/logging"
	"github.com/bnema/hksl/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	cfg        config.Config
	logger     *zap.Logger
	identities ports.IdentityRepository
	game       *gameapi.Client
	closers    []func() error
}

func wireApp(ctx context.Context, configPath string) (*app, error) {
	v := viper.New()
	cfg, err := config.Load(v, configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	a := &app{
		cfg:    cfg,
		logger: logger,
		game: &gameapi.Client{
			BaseURL:        cfg.Game.BaseURL,
			HTTPClient:     http.DefaultClient,
			RequestTimeout: cfg.Game.RequestTimeout,
			Logger:         logger.Named("gameapi"),
		},
		closers: []func() error{func() error { _ = logger.Sync(); return nil }},
	}

	identities, err := a.wireIdentities(ctx, v)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.identities = identities

	logger.Debug("wired",
		zap.String("config_file", cfg.File),
		zap.String("store", cfg.Store.Driver),
		zap.String("game_base_url", cfg.Game.BaseURL),
	)

	return a, nil
}

func (a *app) wireIdentities(ctx context.Context, v *viper.Viper) (ports.IdentityRepository, error) {
	switch a.cfg.Store.Driver {
	case config.StoreSQLite, config.StorePostgres:
		repo, err := sqlrepo.Open(ctx, sqlrepo.Dialect(a.cfg.Store.Driver), a.cfg.Store.DSN)
		if err != nil {
			return nil, fmt.Errorf("wire %s identity store: %w", a.cfg.Store.Driver, err)
		}
		a.closers = append(a.closers, repo.Close)
		return repo, nil
	default:
		secretStore, err := chainstore.NewPassWithFileFallback(a.cfg.Store.SecretsDir)
		if err != nil {
			return nil, fmt.Errorf("wire secret store chain: %w", err)
		}
		repo, err := tomlrepo.NewRepository(v, secretStore)
		if err != nil {
			return nil, fmt.Errorf("wire identity repository: %w", err)
		}
		return repo, nil
	}
}

// resolver fetches the manifest and pairs it with the embedded glyph table.
func (a *app) resolver(ctx context.Context) (*catalog.Resolver, error) {
	manifest, err := a.game.Manifest(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch manifest: %w", err)
	}

	resolver, err := catalog.New(manifest)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	return resolver, nil
}

func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
