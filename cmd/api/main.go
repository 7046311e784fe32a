package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nekocare/backend/internal/api"
	"github.com/nekocare/backend/internal/repository"
	"github.com/nekocare/backend/internal/service"
	"github.com/nekocare/backend/pkg/cleanup"
	"github.com/nekocare/backend/pkg/config"
	jwtservice "github.com/nekocare/backend/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool := repository.NewPool(&dbCfg)
	identityService := service.NewIdentityService(repository.NewUsersRepo(pool))
	store := service.NewDashboardStore(service.StoreDeps{
		Pets:     repository.NewPetsRepo(pool),
		Logs:     repository.NewHealthLogsRepo(pool),
		Risks:    repository.NewRiskAssessmentsRepo(pool),
		Identity: identityService,
	}, service.StoreOptions{
		WaterGoal: cfg.GetInt("WATER_GOAL_ML", 0),
		DemoMode:  cfg.GetBool("DEMO_MODE"),
	})
	if err := store.Activate(context.Background()); err != nil {
		log.Fatal("activating dashboard store error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{Name: "closing dashboard store", F: store.Close})

	if schedule := cfg.GetString("REFRESH_SCHEDULE"); schedule != "" {
		scheduler, err := service.NewRefreshScheduler(store, schedule, slog.Default())
		if err != nil {
			log.Fatal(err)
		}
		scheduler.Start()
		cleanup.Register(&cleanup.Job{Name: "stopping refresh scheduler", F: scheduler.Stop})
	}

	serv := api.New(&api.ServicesList{
		DashboardService: store,
		IdentityService:  identityService,
		JwtService:       jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	cleanup.Register(&cleanup.Job{
		Name: "shutting down http server",
		F: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return serv.Shutdown(ctx)
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	errCh := make(chan error, 1)
	go func() {
		errCh <- serv.Run(cfg.GetString("API_ADDRESS"))
	}()
	slog.Info("server started", slog.String("address", cfg.GetString("API_ADDRESS")))

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			slog.Error("server error", slog.String("error", err.Error()))
		}
	}
	cleanup.CleanUp()
}
