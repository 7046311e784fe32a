package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/nekocare/backend/internal/error_values"
	"github.com/nekocare/backend/internal/repository"
	"github.com/nekocare/backend/pkg/entity"
)

const (
	defaultPetName     = "Mochi"
	defaultPetType     = "Cat"
	defaultWaterIntake = 250
	defaultWaterGoal   = 400
	defaultTimeRange   = entity.Range3Months
)

type FlowState int32

const (
	FlowIdle FlowState = iota
	FlowCheckingExistence
	FlowSeeding
	FlowFetching
)

func (fs FlowState) String() string {
	switch fs {
	case FlowCheckingExistence:
		return "checking_existence"
	case FlowSeeding:
		return "seeding"
	case FlowFetching:
		return "fetching"
	default:
		return "idle"
	}
}

type SyncStatus struct {
	At     time.Time `json:"at"`
	Failed bool      `json:"failed"`
	Reason string    `json:"reason,omitempty"`
}

// DashboardState is everything the dashboard screens render.
type DashboardState struct {
	SelectedPet          entity.Pet              `json:"selected_pet"`
	Pets                 []entity.Pet            `json:"pets"`
	TimeRange            entity.TimeRange        `json:"time_range"`
	WaterIntake          int                     `json:"water_intake"`
	WaterGoal            int                     `json:"water_goal"`
	HealthLogs           []entity.DailyHealthLog `json:"health_logs"`
	RiskHistory          []entity.RiskAssessment `json:"risk_history"`
	LatestRiskAssessment entity.RiskProfile      `json:"latest_risk_assessment"`
	LastSync             SyncStatus              `json:"last_sync"`
}

type StoreDeps struct {
	Pets     repository.PetsRepositoryI
	Logs     repository.HealthLogsRepositoryI
	Risks    repository.RiskAssessmentsRepositoryI
	Identity IdentityProvider
}

type StoreOptions struct {
	// Water goal in ml, defaultWaterGoal when zero
	WaterGoal int
	// Allows seeding under the placeholder owner when no identity resolves
	DemoMode bool
	Logger   *slog.Logger
	Now      func() time.Time
	Rand     *rand.Rand
}

// DashboardStore owns the dashboard state of one session. Create it with
// NewDashboardStore, start it with Activate and release it with Close.
type DashboardStore struct {
	pets     repository.PetsRepositoryI
	logs     repository.HealthLogsRepositoryI
	risks    repository.RiskAssessmentsRepositoryI
	identity IdentityProvider

	demoMode bool
	logger   *slog.Logger
	now      func() time.Time
	// only touched by the refresh holding inFlight
	rng *rand.Rand

	mu    sync.RWMutex
	state DashboardState

	inFlight atomic.Bool
	flow     atomic.Int32
	closed   atomic.Bool

	lifecycleMu sync.Mutex
	cancel      context.CancelFunc
	wg          sync.WaitGroup
}

func NewDashboardStore(deps StoreDeps, opts StoreOptions) *DashboardStore {
	if deps.Pets == nil || deps.Logs == nil || deps.Risks == nil {
		log.Fatal("on dashboard store provided nil repos")
	}
	if opts.WaterGoal <= 0 {
		opts.WaterGoal = defaultWaterGoal
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	}
	return &DashboardStore{
		pets:     deps.Pets,
		logs:     deps.Logs,
		risks:    deps.Risks,
		identity: deps.Identity,
		demoMode: opts.DemoMode,
		logger:   opts.Logger.With(slog.String("component", "dashboard_store")),
		now:      opts.Now,
		rng:      opts.Rand,
		state: DashboardState{
			SelectedPet:          entity.Pet{Name: defaultPetName, Type: defaultPetType},
			Pets:                 []entity.Pet{},
			TimeRange:            defaultTimeRange,
			WaterIntake:          defaultWaterIntake,
			WaterGoal:            opts.WaterGoal,
			HealthLogs:           []entity.DailyHealthLog{},
			RiskHistory:          []entity.RiskAssessment{},
			LatestRiskAssessment: entity.DefaultRiskProfile(),
		},
	}
}

// Activate runs the first refresh in the background.
func (s *DashboardStore) Activate(ctx context.Context) error {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()
	if s.closed.Load() {
		return errorvalues.ErrStoreClosed
	}
	if s.cancel != nil {
		return nil
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		res := s.Refresh(ctx)
		if res.Err != nil && !errors.Is(res.Err, errorvalues.ErrRefreshInFlight) {
			s.logger.Warn("initial dashboard refresh failed", slog.String("error", res.Err.Error()))
		}
	}()
	return nil
}

// Close cancels the background refresh and waits for it. Later refreshes
// are refused.
func (s *DashboardStore) Close() error {
	s.lifecycleMu.Lock()
	s.closed.Store(true)
	if s.cancel != nil {
		s.cancel()
	}
	s.lifecycleMu.Unlock()
	s.wg.Wait()
	return nil
}

func (s *DashboardStore) State() FlowState {
	return FlowState(s.flow.Load())
}

func (s *DashboardStore) Snapshot() DashboardState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := s.state
	snap.Pets = slices.Clone(s.state.Pets)
	snap.HealthLogs = slices.Clone(s.state.HealthLogs)
	for i := range snap.HealthLogs {
		snap.HealthLogs[i].Payload = snap.HealthLogs[i].Payload.Clone()
	}
	snap.LatestRiskAssessment = s.state.LatestRiskAssessment.Clone()
	snap.RiskHistory = slices.Clone(s.state.RiskHistory)
	return snap
}

func (s *DashboardStore) SetSelectedPet(pet entity.Pet) {
	s.mu.Lock()
	s.state.SelectedPet = pet
	s.mu.Unlock()
}

func (s *DashboardStore) SelectPet(req *SelectPetRequest) (entity.Pet, error) {
	if err := validateStruct(req); err != nil {
		return entity.Pet{}, errors.Join(errorvalues.ErrInvalidPet, err)
	}
	pet := entity.Pet{Name: req.Name, Type: req.Type}
	if req.ID != "" {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			return entity.Pet{}, errors.Join(errorvalues.ErrInvalidPet, err)
		}
		pet.ID = id
	}
	if pet.Type == "" {
		pet.Type = defaultPetType
	}
	s.SetSelectedPet(pet)
	return pet, nil
}

// SetTimeRange only changes the displayed label; fetch windows are fixed.
func (s *DashboardStore) SetTimeRange(r entity.TimeRange) error {
	if _, err := entity.ParseTimeRange(string(r)); err != nil {
		return errorvalues.ErrInvalidTimeRange
	}
	s.mu.Lock()
	s.state.TimeRange = r
	s.mu.Unlock()
	s.logger.Debug("time range updated", slog.String("range", string(r)))
	return nil
}
