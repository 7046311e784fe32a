package service_test

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/nekocare/backend/internal/error_values"
	"github.com/nekocare/backend/pkg/entity"
)

// fakeBackend behaves like the tables behind the repositories. Error fields
// make the matching call fail.
type fakeBackend struct {
	mu    sync.Mutex
	pets  []*entity.Pet
	logs  []entity.DailyHealthLog
	risks []entity.RiskAssessment

	countErr       error
	findPetErr     error
	createPetErr   error
	listPetsErr    error
	insertLogsErr  error
	insertRisksErr error
	getLogsErr     error
	getRisksErr    error

	// called inside Count before answering
	countHook func()

	countCalls       int
	createPetCalls   int
	insertLogsCalls  int
	insertRisksCalls int
	getLogsCalls     int
	getRisksCalls    int
	createdPets      []entity.Pet
}

func (fb *fakeBackend) inserts() int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.createPetCalls + fb.insertLogsCalls + fb.insertRisksCalls
}

type petsRepoMock struct{ db *fakeBackend }

func (m *petsRepoMock) FindFirst(ctx context.Context) (*entity.Pet, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if m.db.findPetErr != nil {
		return nil, m.db.findPetErr
	}
	if len(m.db.pets) == 0 {
		return nil, errorvalues.ErrPetNotFound
	}
	p := *m.db.pets[0]
	return &p, nil
}

func (m *petsRepoMock) Create(ctx context.Context, pet *entity.Pet) (uuid.UUID, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	m.db.createPetCalls++
	m.db.createdPets = append(m.db.createdPets, *pet)
	if m.db.createPetErr != nil {
		return uuid.UUID{}, m.db.createPetErr
	}
	p := *pet
	p.ID = uuid.New()
	m.db.pets = append(m.db.pets, &p)
	return p.ID, nil
}

func (m *petsRepoMock) List(ctx context.Context, limit int) ([]*entity.Pet, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if m.db.listPetsErr != nil {
		return nil, m.db.listPetsErr
	}
	return slices.Clone(m.db.pets[:min(limit, len(m.db.pets))]), nil
}

type logsRepoMock struct{ db *fakeBackend }

func (m *logsRepoMock) Count(ctx context.Context) (int, error) {
	m.db.mu.Lock()
	m.db.countCalls++
	hook := m.db.countHook
	m.db.mu.Unlock()
	if hook != nil {
		hook()
	}
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if m.db.countErr != nil {
		return 0, m.db.countErr
	}
	return len(m.db.logs), nil
}

func (m *logsRepoMock) GetRecent(ctx context.Context, limit int) ([]entity.DailyHealthLog, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	m.db.getLogsCalls++
	if m.db.getLogsErr != nil {
		return nil, m.db.getLogsErr
	}
	sorted := slices.Clone(m.db.logs)
	slices.SortFunc(sorted, func(a, b entity.DailyHealthLog) int { return a.LogDate.Compare(b.LogDate) })
	if len(sorted) > limit {
		sorted = sorted[len(sorted)-limit:]
	}
	return sorted, nil
}

func (m *logsRepoMock) CreateBatch(ctx context.Context, logs []entity.DailyHealthLog) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	m.db.insertLogsCalls++
	if m.db.insertLogsErr != nil {
		return m.db.insertLogsErr
	}
	for _, l := range logs {
		l.ID = uuid.New()
		m.db.logs = append(m.db.logs, l)
	}
	return nil
}

type risksRepoMock struct{ db *fakeBackend }

func (m *risksRepoMock) GetRecent(ctx context.Context, limit int) ([]entity.RiskAssessment, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	m.db.getRisksCalls++
	if m.db.getRisksErr != nil {
		return nil, m.db.getRisksErr
	}
	sorted := slices.Clone(m.db.risks)
	slices.SortFunc(sorted, func(a, b entity.RiskAssessment) int { return b.AssessedAt.Compare(a.AssessedAt) })
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (m *risksRepoMock) CreateBatch(ctx context.Context, risks []entity.RiskAssessment) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	m.db.insertRisksCalls++
	if m.db.insertRisksErr != nil {
		return m.db.insertRisksErr
	}
	for _, r := range risks {
		r.ID = uuid.New()
		m.db.risks = append(m.db.risks, r)
	}
	return nil
}

type identityMock struct {
	current   uuid.UUID
	anonID    uuid.UUID
	anonErr   error
	anonCalls int
}

func (im *identityMock) CurrentIdentity(ctx context.Context) (uuid.UUID, bool) {
	return im.current, im.current != uuid.Nil
}

func (im *identityMock) CreateAnonymousIdentity(ctx context.Context) (uuid.UUID, error) {
	im.anonCalls++
	if im.anonErr != nil {
		return uuid.UUID{}, im.anonErr
	}
	return im.anonID, nil
}

func intPtr(v int) *int {
	return &v
}

// backendWith fills the fake with n daily logs ending on the day before now
// and m risk assessments one day apart.
func backendWith(n, m int) *fakeBackend {
	fb := &fakeBackend{}
	cat := &entity.Pet{ID: uuid.New(), Name: "Tofu", Type: "Cat", OwnerID: uuid.New()}
	fb.pets = append(fb.pets, cat)
	day := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	for i := range n {
		fb.logs = append(fb.logs, entity.DailyHealthLog{
			ID:          uuid.New(),
			CatID:       cat.ID,
			LogDate:     day.AddDate(0, 0, -i),
			EatingLevel: "3",
			Payload:     entity.LogPayload{DrinkML: intPtr(200 + i)},
		})
	}
	for i := range m {
		fb.risks = append(fb.risks, entity.RiskAssessment{
			ID:         uuid.New(),
			RiskLevel:  "Low",
			RiskCount:  i,
			AssessedAt: day.AddDate(0, 0, -i),
		})
	}
	return fb
}
