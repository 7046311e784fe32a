package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nekocare/backend/internal/service"
)

type Server struct {
	mx               *chi.Mux
	mu               sync.Mutex
	srv              *http.Server
	dashboardService service.DashboardServiceI
	identityService  service.IdentityServiceI
	jwtService       JWTServiceI
}

type ServicesList struct {
	DashboardService service.DashboardServiceI
	IdentityService  service.IdentityServiceI
	JwtService       JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:               chi.NewMux(),
		dashboardService: servicesOptions.DashboardService,
		identityService:  servicesOptions.IdentityService,
		jwtService:       servicesOptions.JwtService,
	}
	s.mountRoutes()
	return s
}

func (s *Server) mountRoutes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/anonymous", s.SignInAnonymously)
		r.Post("/auth/anonymous/restore", s.RestoreAnonymous)
		r.Group(func(r chi.Router) {
			r.Use(s.OptionalAuthMiddleware, s.LoggerExtensionMiddleware)
			r.Get("/dashboard", s.GetDashboard)
			r.Post("/dashboard/refresh", s.RefreshDashboard)
			r.Put("/dashboard/pet", s.SelectPet)
			r.Put("/dashboard/time-range", s.SetTimeRange)
			r.Get("/risk-assessment", s.GetRiskAssessment)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run blocks until the server stops. A Shutdown is not reported as an error.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.mu.Lock()
	s.srv = srv
	s.mu.Unlock()
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
