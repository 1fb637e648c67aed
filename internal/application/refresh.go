package application

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/bnema/hksl/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

var errSkipped = errors.New("no linked identity")

const (
	DefaultRefreshInterval    = 5 * time.Second
	DefaultRefreshWindow      = 5 * time.Minute
	DefaultRefreshRetention   = 30 * time.Minute
	DefaultRefreshConcurrency = 4
	DefaultPublishRate        = 10.0
)

type RefreshConfig struct {
	Interval     time.Duration
	ActiveWindow time.Duration
	Retention    time.Duration
	Concurrency  int
	// PublishRate is the maximum number of home publishes per second.
	// Zero or less disables the limit.
	PublishRate float64
}

func (c RefreshConfig) withDefaults() RefreshConfig {
	if c.Interval <= 0 {
		c.Interval = DefaultRefreshInterval
	}
	if c.ActiveWindow <= 0 {
		c.ActiveWindow = DefaultRefreshWindow
	}
	if c.Retention < c.ActiveWindow {
		c.Retention = max(DefaultRefreshRetention, c.ActiveWindow)
	}
	if c.Concurrency <= 0 {
		c.Concurrency = DefaultRefreshConcurrency
	}

	return c
}

type SweepReport struct {
	Pruned   int
	Active   int
	Rendered int
	Skipped  int
	Failed   int
}

// Refresher periodically re-renders the home of recently active users so
// timers and yields stay current without user interaction.
type Refresher struct {
	home     *HomeService
	activity *ActivityTracker
	cfg      RefreshConfig
	limiter  *rate.Limiter
	logger   *zap.Logger
}

func NewRefresher(home *HomeService, activity *ActivityTracker, cfg RefreshConfig, logger *zap.Logger) *Refresher {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg = cfg.withDefaults()

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.PublishRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.PublishRate), max(1, int(cfg.PublishRate)))
	}

	return &Refresher{
		home:     home,
		activity: activity,
		cfg:      cfg,
		limiter:  limiter,
		logger:   logger,
	}
}

// Run sweeps every interval until ctx is cancelled.
func (r *Refresher) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			report := r.Sweep(ctx)
			if report.Active > 0 {
				r.logger.Debug("refresh sweep",
					zap.Int("active", report.Active),
					zap.Int("rendered", report.Rendered),
					zap.Int("skipped", report.Skipped),
					zap.Int("failed", report.Failed),
					zap.Int("pruned", report.Pruned),
				)
			}
		}
	}
}

// Sweep re-renders every active user once. Failures for one user are logged
// and counted but never stop the others.
func (r *Refresher) Sweep(ctx context.Context) SweepReport {
	report := SweepReport{Pruned: r.activity.Prune(r.cfg.Retention)}

	active := r.activity.Active(r.cfg.ActiveWindow)
	report.Active = len(active)

	var rendered, skipped, failed atomic.Int64

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(r.cfg.Concurrency)
	for _, userID := range active {
		group.Go(func() error {
			switch err := r.refreshUser(groupCtx, userID); {
			case errors.Is(err, errSkipped):
				skipped.Add(1)
			case err != nil:
				failed.Add(1)
				r.logger.Warn("refresh user", zap.String("user_id", string(userID)), zap.Error(err))
			default:
				rendered.Add(1)
			}
			return nil
		})
	}
	_ = group.Wait()

	report.Rendered = int(rendered.Load())
	report.Skipped = int(skipped.Load())
	report.Failed = int(failed.Load())
	return report
}

func (r *Refresher) refreshUser(ctx context.Context, userID domain.UserID) error {
	identity, err := r.home.Identity(ctx, userID)
	if err != nil {
		return err
	}
	if identity == nil {
		return errSkipped
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return err
	}

	return r.home.RenderIdentity(ctx, *identity)
}
