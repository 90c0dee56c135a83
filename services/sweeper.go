// sweeper.go - Periodic auto-return sweep
// Runs the booking auto-return on a fixed interval, decoupled from any
// request path. Stops when its context is cancelled.

package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type Sweeper struct {
	bookings *BookingService
	log      *logrus.Logger
	interval time.Duration
}

func NewSweeper(bookings *BookingService, log *logrus.Logger, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &Sweeper{bookings: bookings, log: log, interval: interval}
}

// Run sweeps once immediately, then on every tick until ctx is done.
func (s *Sweeper) Run(ctx context.Context) {
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("auto-return sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	closed, err := s.bookings.AutoReturn(ctx, time.Now())
	if err != nil {
		s.log.WithError(err).Error("auto-return sweep failed")
		return
	}
	if closed > 0 {
		s.log.WithField("closed", closed).Info("auto-return sweep expired overdue bookings")
	}
}
