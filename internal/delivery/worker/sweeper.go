// Package worker contains background deliveries that run beside the HTTP API.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"bankauth/config"
	"bankauth/internal/delivery"
	"bankauth/internal/domain/lifecycle"
	"bankauth/internal/errors"
	"bankauth/internal/usecase"
	"bankauth/internal/util"

	"go.uber.org/fx"
)

type tokenSweeper struct {
	interval      time.Duration
	refreshTokens usecase.RefreshTokenUsecase
	logger        *slog.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}
}

// SweeperParams holds dependencies for the expired refresh token sweeper
type SweeperParams struct {
	fx.In

	Lc            fx.Lifecycle
	Cfg           *config.Config
	Logger        *slog.Logger
	RefreshTokens usecase.RefreshTokenUsecase
}

// NewTokenSweeper creates a delivery that periodically removes expired refresh tokens.
// A zero auth.cleanupInterval disables it; expired tokens are still removed when presented.
func NewTokenSweeper(params SweeperParams) (delivery.Delivery, error) {
	var interval time.Duration
	if params.Cfg.Auth != nil {
		interval = params.Cfg.Auth.CleanupInterval
	}

	s := newTokenSweeper(interval, params.RefreshTokens, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func newTokenSweeper(interval time.Duration, refreshTokens usecase.RefreshTokenUsecase, logger *slog.Logger) *tokenSweeper {
	return &tokenSweeper{
		interval:      interval,
		refreshTokens: refreshTokens,
		logger:        logger.With(slog.String("component", "token_sweeper")),
		stopCh:        make(chan struct{}),
		done:          make(chan struct{}),
	}
}

// Serve runs the sweep loop until ctx is cancelled or the sweeper is stopped.
func (s *tokenSweeper) Serve(ctx context.Context) error {
	defer close(s.done)

	if s.interval <= 0 {
		s.logger.Info("Refresh token sweeper disabled")

		return nil
	}

	s.logger.Info("Starting refresh token sweeper", slog.String("interval", util.FormatDuration(s.interval)))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopCh:
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *tokenSweeper) sweep(ctx context.Context) {
	start := time.Now()

	removed, err := s.refreshTokens.CleanupExpired(ctx)
	if err != nil {
		// The next tick retries.
		s.logger.Error("Refresh token sweep failed", slog.Any("error", err))

		return
	}

	s.logger.Debug("Refresh token sweep finished",
		slog.Int64("removed", removed),
		slog.Duration("took", time.Since(start)),
	)
}

func (s *tokenSweeper) stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stopCh) })

	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down refresh token sweeper")

	select {
	case <-s.done:
		return nil
	case <-shutdownCtx.Done():
		return errors.Wrap(shutdownCtx.Err(), "wait for refresh token sweeper")
	}
}
