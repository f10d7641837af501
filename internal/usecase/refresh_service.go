package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vitos/cointrackr/internal/domain"
	"go.uber.org/zap"
)

const chartDays = 30

// RefreshService owns all upstream I/O: the periodic snapshot refresh and
// the on-demand per-asset chart fetch. Overlapping refreshes are allowed
// to race; the data is idempotent, so the last response to land simply
// wins via the store's Replace.
type RefreshService struct {
	source   domain.MarketDataSource
	store    *SnapshotStore
	interval time.Duration
	logger   *zap.Logger

	timeNow func() time.Time // For testing

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRefreshService(source domain.MarketDataSource, store *SnapshotStore, interval time.Duration, logger *zap.Logger) *RefreshService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RefreshService{
		source:   source,
		store:    store,
		interval: interval,
		logger:   logger,
		timeNow:  time.Now,
	}
}

// Start refreshes once immediately, then on every tick until Stop.
func (s *RefreshService) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.run(ctx)

	s.logger.Info("refresh loop started", zap.Duration("interval", s.interval))
}

// Stop cancels the refresh loop and waits for it to exit. The loop is an
// owned resource: tearing it down here is what prevents a dangling fetch
// loop after the service goes away.
func (s *RefreshService) Stop(ctx context.Context) error {
	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("refresh loop stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *RefreshService) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	if err := s.Refresh(ctx); err != nil {
		s.logger.Error("initial refresh failed", zap.Error(err))
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil {
				s.logger.Error("refresh failed", zap.Error(err))
			}
		}
	}
}

// Refresh fetches the market list once and replaces the snapshot. On
// failure the store keeps its stale snapshot and records the error so the
// UI can surface a retry.
func (s *RefreshService) Refresh(ctx context.Context) error {
	entries, err := s.source.Markets(ctx)
	if err != nil {
		err = fmt.Errorf("fetch markets: %w", err)
		s.store.SetError(err)
		return err
	}

	s.store.Replace(&domain.Snapshot{
		Entries:   entries,
		FetchedAt: s.timeNow(),
	})
	s.logger.Info("snapshot replaced", zap.Int("entries", len(entries)))
	return nil
}

// ChartSeries fetches one asset's 30-day price history and builds the
// series for the requested range. Chart failures are isolated from the
// snapshot: they never touch the store or its error state.
func (s *RefreshService) ChartSeries(ctx context.Context, id string, rng domain.ChartRange) (ChartSeries, error) {
	points, err := s.source.MarketChart(ctx, id, chartDays)
	if err != nil {
		s.logger.Error("chart fetch failed", zap.String("id", id), zap.Error(err))
		return ChartSeries{}, fmt.Errorf("fetch chart for %s: %w", id, err)
	}
	return BuildChartSeries(points, rng), nil
}
