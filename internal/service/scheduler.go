package service

import (
	"context"
	"errors"
	"log/slog"

	errorvalues "github.com/nekocare/backend/internal/error_values"
	"github.com/robfig/cron/v3"
)

type Refresher interface {
	Refresh(ctx context.Context) RefreshResult
}

// RefreshScheduler triggers dashboard refreshes on a cron schedule.
type RefreshScheduler struct {
	cron   *cron.Cron
	target Refresher
	logger *slog.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

func NewRefreshScheduler(target Refresher, schedule string, logger *slog.Logger) (*RefreshScheduler, error) {
	if target == nil {
		return nil, errors.New("refresh target is nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	rs := &RefreshScheduler{
		cron:   cron.New(),
		target: target,
		logger: logger.With(slog.String("component", "refresh_scheduler")),
		ctx:    ctx,
		cancel: cancel,
	}
	if _, err := rs.cron.AddFunc(schedule, rs.RunOnce); err != nil {
		cancel()
		return nil, errors.New("invalid refresh schedule: " + err.Error())
	}
	return rs, nil
}

func (rs *RefreshScheduler) Start() {
	rs.cron.Start()
}

// Stop cancels a running refresh and waits for it to return.
func (rs *RefreshScheduler) Stop() error {
	rs.cancel()
	<-rs.cron.Stop().Done()
	return nil
}

func (rs *RefreshScheduler) RunOnce() {
	if rs.ctx.Err() != nil {
		return
	}
	res := rs.target.Refresh(rs.ctx)
	switch {
	case errors.Is(res.Err, errorvalues.ErrRefreshInFlight):
		rs.logger.Debug("scheduled refresh skipped, another one is running")
	case res.Err != nil:
		rs.logger.Warn("scheduled refresh failed", slog.String("error", res.Err.Error()))
	default:
		rs.logger.Info("scheduled refresh done", slog.Int("logs", res.Logs), slog.Int("risks", res.Risks))
	}
}
