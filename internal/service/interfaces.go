//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/nekocare/backend/pkg/entity"
)

// IdentityProvider resolves who owns data created during seeding.
type IdentityProvider interface {
	// Identity of the caller carried by ctx, if any
	CurrentIdentity(ctx context.Context) (uuid.UUID, bool)
	// Creates a fresh anonymous identity
	CreateAnonymousIdentity(ctx context.Context) (uuid.UUID, error)
}

type SelectPetRequest struct {
	ID   string `validate:"omitempty,uuid"`
	Name string `validate:"required,pet_name,max=100"`
	Type string `validate:"omitempty,max=50"`
}

type DashboardServiceI interface {
	// Runs check/seed/fetch flow. Never fails out-of-band, outcome is in the result
	Refresh(ctx context.Context) RefreshResult
	// Copy of the current dashboard state
	Snapshot() DashboardState
	// Replaces selected pet without validation and without refetching
	SetSelectedPet(pet entity.Pet)
	// Validates request and selects the pet
	SelectPet(req *SelectPetRequest) (entity.Pet, error)
	// Replaces active time range label
	SetTimeRange(r entity.TimeRange) error
}

type IdentityServiceI interface {
	SignInAnonymously(ctx context.Context) (*AnonymousSession, error)
	RestoreAnonymous(ctx context.Context, uid uuid.UUID, secret string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
