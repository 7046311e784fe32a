package service

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/nekocare/backend/internal/error_values"
	"github.com/nekocare/backend/pkg/entity"
)

const seedDays = 7

// PlaceholderOwnerID owns demo data when no identity can be resolved.
// Only used with DemoMode.
var PlaceholderOwnerID = uuid.Nil

// GenerateSeedLogs builds one synthetic log per UTC calendar day, the last
// one dated on now's day.
func GenerateSeedLogs(catID uuid.UUID, now time.Time, rng *rand.Rand) []entity.DailyHealthLog {
	utc := now.UTC()
	today := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	logs := make([]entity.DailyHealthLog, 0, seedDays)
	for i := range seedDays {
		sleep := rng.IntN(10) + 8
		drink := rng.IntN(200) + 100
		logs = append(logs, entity.DailyHealthLog{
			CatID:         catID,
			LogDate:       today.AddDate(0, 0, -(seedDays - 1 - i)),
			WeightKg:      5.0,
			FoodText:      "Tuna & Salmon",
			EatingLevel:   randomLevel(rng),
			DrinkingLevel: randomLevel(rng),
			UrineAmount:   entity.UrineAmounts[rng.IntN(len(entity.UrineAmounts))],
			StoolType:     "Normal",
			EnergyLevel:   "High",
			Payload: entity.LogPayload{
				SleepHours: &sleep,
				DrinkML:    &drink,
			},
		})
	}
	return logs
}

func GenerateSeedRisks(now time.Time) []entity.RiskAssessment {
	day := 24 * time.Hour
	return []entity.RiskAssessment{
		{
			RiskLevel:   "Low",
			SummaryText: "สุขภาพโดยรวมแข็งแรงดี ระดับน้ำและอาหารปกติ",
			RiskCount:   1,
			AssessedAt:  now.Add(-2 * day),
		},
		{
			RiskLevel:   "Medium",
			SummaryText: "ควรดื่มน้ำเพิ่มขึ้นเล็กน้อย",
			RiskCount:   2,
			AssessedAt:  now.Add(-10 * day),
		},
	}
}

func randomLevel(rng *rand.Rand) string {
	return string(rune('1' + rng.IntN(5)))
}

// seed creates a pet when needed, then a week of logs and two risks.
// The pet is not removed when later inserts fail.
func (s *DashboardStore) seed(ctx context.Context) error {
	catID, err := s.resolvePet(ctx)
	if err != nil {
		s.logger.Error("seeding aborted: no pet", slog.String("error", err.Error()))
		return err
	}
	now := s.now()

	var logsErr, risksErr error
	if err := s.logs.CreateBatch(ctx, GenerateSeedLogs(catID, now, s.rng)); err != nil {
		s.logger.Error("seeding health logs failed", slog.String("error", err.Error()))
		logsErr = errors.Join(errorvalues.ErrBackendUnavailable, err)
	}
	if err := s.risks.CreateBatch(ctx, GenerateSeedRisks(now)); err != nil {
		s.logger.Error("seeding risk assessments failed", slog.String("error", err.Error()))
		risksErr = errors.Join(errorvalues.ErrBackendUnavailable, err)
	}
	if logsErr == nil && risksErr == nil {
		s.logger.Info("seeding complete", slog.String("cat_id", catID.String()))
	}
	return errors.Join(logsErr, risksErr)
}

func (s *DashboardStore) resolvePet(ctx context.Context) (uuid.UUID, error) {
	pet, err := s.pets.FindFirst(ctx)
	if err == nil {
		return pet.ID, nil
	}
	if !errors.Is(err, errorvalues.ErrPetNotFound) {
		return uuid.UUID{}, errors.Join(errorvalues.ErrSeedDependencyFailure, errorvalues.ErrBackendUnavailable, err)
	}
	owner, err := s.resolveOwner(ctx)
	if err != nil {
		return uuid.UUID{}, errors.Join(errorvalues.ErrSeedDependencyFailure, err)
	}
	id, err := s.pets.Create(ctx, &entity.Pet{
		Name:    defaultPetName,
		Type:    defaultPetType,
		OwnerID: owner,
	})
	if err != nil {
		return uuid.UUID{}, errors.Join(errorvalues.ErrSeedDependencyFailure, err)
	}
	return id, nil
}

// resolveOwner tries the caller's identity, then a new anonymous one. The
// placeholder owner is allowed in demo mode only.
func (s *DashboardStore) resolveOwner(ctx context.Context) (uuid.UUID, error) {
	if s.identity != nil {
		if uid, ok := s.identity.CurrentIdentity(ctx); ok {
			return uid, nil
		}
	}
	var cause error = errors.New("no identity provider configured")
	if s.identity != nil {
		uid, err := s.identity.CreateAnonymousIdentity(ctx)
		if err == nil {
			return uid, nil
		}
		cause = err
	}
	if s.demoMode {
		s.logger.Warn("no owner identity, using placeholder owner (demo mode)", slog.String("cause", cause.Error()))
		return PlaceholderOwnerID, nil
	}
	s.logger.Error("no owner identity could be resolved", slog.String("cause", cause.Error()))
	return uuid.UUID{}, errors.Join(errorvalues.ErrMissingOwnerIdentity, cause)
}
