package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	errorvalues "github.com/nekocare/backend/internal/error_values"
	"github.com/nekocare/backend/pkg/entity"
	"golang.org/x/sync/errgroup"
)

const (
	recentLogsLimit  = 7
	recentRisksLimit = 5
	petsListLimit    = 20
)

// RefreshResult describes one run of the check/seed/fetch flow.
type RefreshResult struct {
	// Refresh did not run (another one was in flight or the store is closed)
	Skipped bool
	// Existence check found no logs
	SeedAttempted bool
	// Pet, logs and risks were all created
	Seeded bool
	// Why seeding stopped or partially failed. Never stops the fetch
	SeedErr error
	// Existence check or fetch failure. State is left as it was
	Err        error
	Logs       int
	Risks      int
	FinishedAt time.Time
}

func (r RefreshResult) OK() bool {
	return r.Err == nil
}

// Refresh runs the flow unless one is already running, in which case it
// returns at once with ErrRefreshInFlight and touches nothing.
func (s *DashboardStore) Refresh(ctx context.Context) RefreshResult {
	if s.closed.Load() {
		return RefreshResult{Skipped: true, Err: errorvalues.ErrStoreClosed}
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		s.logger.Info("dashboard refresh rejected: already in flight")
		return RefreshResult{Skipped: true, Err: errorvalues.ErrRefreshInFlight}
	}
	defer s.inFlight.Store(false)

	res := s.runFlow(ctx)
	res.FinishedAt = s.now()
	s.recordSync(res)
	return res
}

func (s *DashboardStore) runFlow(ctx context.Context) (res RefreshResult) {
	defer s.flow.Store(int32(FlowIdle))
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("dashboard refresh panicked", slog.Any("panic", r))
			res.Err = fmt.Errorf("refresh panicked: %v", r)
		}
	}()

	s.flow.Store(int32(FlowCheckingExistence))
	count, err := s.logs.Count(ctx)
	if err != nil {
		s.logger.Error("dashboard refresh aborted: existence check failed", slog.String("error", err.Error()))
		res.Err = errors.Join(errorvalues.ErrBackendUnavailable, err)
		return res
	}

	if count == 0 {
		s.flow.Store(int32(FlowSeeding))
		s.logger.Info("no health logs found, seeding demo data")
		res.SeedAttempted = true
		res.SeedErr = s.seed(ctx)
		res.Seeded = res.SeedErr == nil
	}

	s.flow.Store(int32(FlowFetching))
	res.Logs, res.Risks, res.Err = s.fetch(ctx)
	s.fetchPets(ctx)
	return res
}

// fetch publishes logs and risks together or not at all.
func (s *DashboardStore) fetch(ctx context.Context) (int, int, error) {
	var (
		logs  []entity.DailyHealthLog
		risks []entity.RiskAssessment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		l, err := s.logs.GetRecent(gctx, recentLogsLimit)
		if err != nil {
			return errors.New("fetching health logs: " + err.Error())
		}
		logs = l
		return nil
	})
	g.Go(func() error {
		r, err := s.risks.GetRecent(gctx, recentRisksLimit)
		if err != nil {
			return errors.New("fetching risk assessments: " + err.Error())
		}
		risks = r
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("dashboard fetch failed, keeping previous state", slog.String("error", err.Error()))
		return 0, 0, errors.Join(errorvalues.ErrBackendUnavailable, err)
	}

	logs = normalizeLogs(logs)
	risks = normalizeRisks(risks)

	s.mu.Lock()
	s.state.HealthLogs = logs
	s.state.RiskHistory = risks
	if n := len(logs); n > 0 && logs[n-1].Payload.DrinkML != nil {
		s.state.WaterIntake = *logs[n-1].Payload.DrinkML
	}
	s.mu.Unlock()
	s.logger.Info("dashboard data fetched", slog.Int("logs", len(logs)), slog.Int("risks", len(risks)))
	return len(logs), len(risks), nil
}

// fetchPets feeds the pet selector. Its failure does not fail the refresh.
func (s *DashboardStore) fetchPets(ctx context.Context) {
	pets, err := s.pets.List(ctx, petsListLimit)
	if err != nil {
		s.logger.Warn("listing pets failed", slog.String("error", err.Error()))
		return
	}
	list := make([]entity.Pet, 0, len(pets))
	for _, p := range pets {
		if p != nil {
			list = append(list, *p)
		}
	}
	s.mu.Lock()
	s.state.Pets = list
	s.mu.Unlock()
}

func (s *DashboardStore) recordSync(res RefreshResult) {
	status := SyncStatus{At: res.FinishedAt}
	if res.Err != nil {
		status.Failed = true
		status.Reason = res.Err.Error()
	}
	s.mu.Lock()
	s.state.LastSync = status
	s.mu.Unlock()
}

// normalizeLogs keeps the newest recentLogsLimit logs, oldest first.
func normalizeLogs(logs []entity.DailyHealthLog) []entity.DailyHealthLog {
	out := slices.Clone(logs)
	if out == nil {
		out = []entity.DailyHealthLog{}
	}
	slices.SortStableFunc(out, func(a, b entity.DailyHealthLog) int {
		return a.LogDate.Compare(b.LogDate)
	})
	if len(out) > recentLogsLimit {
		out = out[len(out)-recentLogsLimit:]
	}
	return out
}

// normalizeRisks keeps the newest recentRisksLimit assessments, newest first.
func normalizeRisks(risks []entity.RiskAssessment) []entity.RiskAssessment {
	out := slices.Clone(risks)
	if out == nil {
		out = []entity.RiskAssessment{}
	}
	slices.SortStableFunc(out, func(a, b entity.RiskAssessment) int {
		return b.AssessedAt.Compare(a.AssessedAt)
	})
	if len(out) > recentRisksLimit {
		out = out[:recentRisksLimit]
	}
	return out
}
