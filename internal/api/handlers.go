package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/nekocare/backend/internal/error_values"
	"github.com/nekocare/backend/internal/service"
	"github.com/nekocare/backend/pkg/entity"
	"github.com/nekocare/backend/pkg/httputil"
)

const refreshTimeout = 30 * time.Second

type RestoreRequest struct {
	UserID string `json:"uid"`
	Secret string `json:"secret"`
}

type AnonymousSessionResponse struct {
	UserID string `json:"uid"`
	Secret string `json:"secret,omitempty"`
	Token  string `json:"token"`
}

type SelectPetRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type TimeRangeRequest struct {
	Range string `json:"range"`
}

type LevelPoint struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

type DashboardResponse struct {
	service.DashboardState
	WaterPercent     float64      `json:"water_percent"`
	EatingOverview   []LevelPoint `json:"eating_overview"`
	DrinkingOverview []LevelPoint `json:"drinking_overview"`
}

type RefreshResponse struct {
	OK            bool      `json:"ok"`
	Skipped       bool      `json:"skipped"`
	SeedAttempted bool      `json:"seed_attempted"`
	Seeded        bool      `json:"seeded"`
	SeedError     string    `json:"seed_error,omitempty"`
	Error         string    `json:"error,omitempty"`
	Logs          int       `json:"logs"`
	Risks         int       `json:"risks"`
	FinishedAt    time.Time `json:"finished_at"`
}

type RiskAssessmentResponse struct {
	entity.RiskProfile
	Elevated bool `json:"elevated"`
}

func (s *Server) SignInAnonymously(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	sess, err := s.identityService.SignInAnonymously(ctx)
	if err != nil {
		logger.Error("anonymous sign-in error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during sign-in", nil)
		return
	}
	token, err := s.jwtService.GenerateToken(sess.User)
	if err != nil {
		logger.Error("anonymous sign-in error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, AnonymousSessionResponse{
		UserID: sess.User.ID.String(),
		Secret: sess.Secret,
		Token:  token,
	})
	logger.Info("anonymous identity created", slog.String("uid", sess.User.ID.String()))
}

func (s *Server) RestoreAnonymous(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RestoreRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("restore error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	uid, err := uuid.Parse(req.UserID)
	if err != nil {
		logger.Error("restore error: invalid uid")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid uid", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.identityService.RestoreAnonymous(ctx, uid, req.Secret)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("restore error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "identity doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("restore error: wrong secret")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid uid or secret", nil)
		default:
			logger.Error("restore error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during restore", nil)
		}
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("restore error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, AnonymousSessionResponse{
		UserID: user.ID.String(),
		Token:  token,
	})
	logger.Info("anonymous identity restored")
}

func (s *Server) GetDashboard(w http.ResponseWriter, r *http.Request) {
	snap := s.dashboardService.Snapshot()
	httputil.WriteJSONResponse(w, http.StatusOK, DashboardResponse{
		DashboardState:   snap,
		WaterPercent:     entity.WaterPercent(snap.WaterIntake, snap.WaterGoal),
		EatingOverview:   levelOverview(snap.HealthLogs, func(l entity.DailyHealthLog) string { return l.EatingLevel }),
		DrinkingOverview: levelOverview(snap.HealthLogs, func(l entity.DailyHealthLog) string { return l.DrinkingLevel }),
	})
}

func (s *Server) RefreshDashboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	// Identity stays in the context, client disconnects do not stop the flow
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), refreshTimeout)
	defer cancel()
	res := s.dashboardService.Refresh(ctx)
	resp := RefreshResponse{
		OK:            res.OK(),
		Skipped:       res.Skipped,
		SeedAttempted: res.SeedAttempted,
		Seeded:        res.Seeded,
		Logs:          res.Logs,
		Risks:         res.Risks,
		FinishedAt:    res.FinishedAt,
	}
	if res.SeedErr != nil {
		resp.SeedError = res.SeedErr.Error()
	}
	if res.Err != nil {
		resp.Error = res.Err.Error()
	}
	switch {
	case res.Err == nil:
		logger.Info("dashboard refreshed", slog.Int("logs", res.Logs), slog.Int("risks", res.Risks))
		httputil.WriteJSONResponse(w, http.StatusOK, resp)
	case errors.Is(res.Err, errorvalues.ErrRefreshInFlight):
		logger.Warn("refresh rejected: another refresh in flight")
		httputil.WriteJSONResponse(w, http.StatusConflict, resp)
	default:
		logger.Error("refresh failed", slog.String("error", res.Err.Error()))
		httputil.WriteJSONResponse(w, http.StatusServiceUnavailable, resp)
	}
}

func (s *Server) SelectPet(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req SelectPetRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("select pet error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	pet, err := s.dashboardService.SelectPet(&service.SelectPetRequest{
		ID:   req.ID,
		Name: req.Name,
		Type: req.Type,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidPet) {
			logger.Error("select pet error: invalid pet", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid pet", err)
			return
		}
		logger.Error("select pet error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while selecting pet", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, pet)
}

func (s *Server) SetTimeRange(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req TimeRangeRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("time range error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if err := s.dashboardService.SetTimeRange(entity.TimeRange(req.Range)); err != nil {
		if errors.Is(err, errorvalues.ErrInvalidTimeRange) {
			logger.Error("time range error: unknown range", slog.String("range", req.Range))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown time range", nil)
			return
		}
		logger.Error("time range error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while setting time range", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"time_range": req.Range})
}

func (s *Server) GetRiskAssessment(w http.ResponseWriter, r *http.Request) {
	profile := s.dashboardService.Snapshot().LatestRiskAssessment
	httputil.WriteJSONResponse(w, http.StatusOK, RiskAssessmentResponse{
		RiskProfile: profile,
		Elevated:    profile.Elevated(),
	})
}

func levelOverview(logs []entity.DailyHealthLog, level func(entity.DailyHealthLog) string) []LevelPoint {
	points := make([]LevelPoint, 0, len(logs))
	for _, l := range logs {
		points = append(points, LevelPoint{
			Date:  l.LogDate.Format(time.DateOnly),
			Score: entity.LevelScore(level(l)),
		})
	}
	return points
}
