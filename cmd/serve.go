package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	slackadapter "github.com/bnema/hksl/internal/adapters/slack"
	"github.com/bnema/hksl/internal/application"
	"github.com/bnema/hksl/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the App Home over Socket Mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := wireApp(ctx, opts.configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			return runServe(ctx, a)
		},
	}
}

func runServe(ctx context.Context, a *app) error {
	if err := a.cfg.RequireSlack(); err != nil {
		return err
	}

	resolver, err := a.resolver(ctx)
	if err != nil {
		return err
	}
	if coverage := resolver.Coverage(); !coverage.Complete() {
		a.logger.Warn("manifest items without a glyph", zap.Any("items", coverage.MissingGlyphs))
	}

	api, socket := slackadapter.NewSocketClient(a.cfg.Slack.BotToken, a.cfg.Slack.AppToken, a.cfg.Slack.Debug)
	surface := slackadapter.NewSurface(api)

	home := application.NewHomeService(a.identities, a.game, surface, resolver, a.logger.Named("home"))
	activity := application.NewActivityTracker(nil)
	router := application.NewRouter(application.RouterDeps{
		Home:       home,
		Identities: a.identities,
		Game:       a.game,
		Surface:    surface,
		Activity:   activity,
		Policy:     a.cfg.Auth.UnknownUserPolicy,
		Logger:     a.logger.Named("router"),
	})
	refresher := application.NewRefresher(home, activity, application.RefreshConfig{
		Interval:     a.cfg.Refresh.Interval,
		ActiveWindow: a.cfg.Refresh.ActiveWindow,
		Retention:    a.cfg.Refresh.Retention,
		Concurrency:  a.cfg.Refresh.Concurrency,
		PublishRate:  a.cfg.Refresh.PublishRate,
	}, a.logger.Named("refresh"))
	listener := slackadapter.NewListener(socket, router, a.logger.Named("slack"))

	a.logger.Info("serving",
		zap.String("version", version.Version),
		zap.Int("items", len(resolver.Manifest().Items)),
		zap.String("unknown_user_policy", string(a.cfg.Auth.UnknownUserPolicy)),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return refresher.Run(gctx) })
	g.Go(func() error { return listener.Run(gctx) })

	if err := g.Wait(); err != nil {
		return fmt.Errorf("serve: %w", err)
	}

	a.logger.Info("stopped")
	return nil
}
