package scheduler

import (
	"context"
	"time"

	"github.com/ACX0S/Spatioo-sub001/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingSweeper interface {
	ExpirePending(ctx context.Context) (domain.SweepReport, error)
}

// Scheduler runs the expiration sweep on a fixed interval. The sweep itself
// is idempotent and race-safe, so overlapping or missed ticks are harmless;
// reclamation is only guaranteed eventually, bounded by the interval.
type Scheduler struct {
	sweeper  bookingSweeper
	interval time.Duration
	logger   logger.Logger
}

func New(sweeper bookingSweeper, interval time.Duration, logger logger.Logger) *Scheduler {
	return &Scheduler{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("expiration sweeper started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("expiration sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	report, err := s.sweeper.ExpirePending(ctx)
	if err != nil {
		s.logger.Error("expiration sweep failed",
			logger.String("error", err.Error()),
		)
		return
	}

	if report.Expired > 0 || report.Failed > 0 {
		s.logger.Info("expiration sweep finished",
			logger.Int("expired", report.Expired),
			logger.Int("failed", report.Failed),
		)
	}
}
