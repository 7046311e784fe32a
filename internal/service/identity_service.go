package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/nekocare/backend/internal/error_values"
	"github.com/nekocare/backend/internal/repository"
	"github.com/nekocare/backend/pkg/entity"
	"github.com/nekocare/backend/pkg/session"
	"golang.org/x/crypto/bcrypt"
)

var hashCost = bcrypt.DefaultCost

type AnonymousSession struct {
	User *entity.User
	// Shown once; the client keeps it to restore the identity later
	Secret string
}

type IdentityService struct {
	repo repository.UsersRepositoryI
}

func NewIdentityService(usersRepo repository.UsersRepositoryI) *IdentityService {
	if usersRepo == nil {
		log.Fatal("provided nil usersRepo")
	}
	return &IdentityService{
		repo: usersRepo,
	}
}

func (is *IdentityService) CurrentIdentity(ctx context.Context) (uuid.UUID, bool) {
	return session.UserIDFromContext(ctx)
}

// CreateAnonymousIdentity creates an owner that cannot be restored later.
func (is *IdentityService) CreateAnonymousIdentity(ctx context.Context) (uuid.UUID, error) {
	id, err := is.repo.CreateAnonymous(ctx, "")
	if err != nil {
		return uuid.UUID{}, errors.New("users repository error: " + err.Error())
	}
	return id, nil
}

func (is *IdentityService) SignInAnonymously(ctx context.Context) (*AnonymousSession, error) {
	secret := uuid.NewString()
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), hashCost)
	if err != nil {
		return nil, errors.New("hashing secret error: " + err.Error())
	}
	id, err := is.repo.CreateAnonymous(ctx, string(hash))
	if err != nil {
		return nil, errors.New("users repository error: " + err.Error())
	}
	return &AnonymousSession{
		User: &entity.User{
			ID:           id,
			Name:         "anonymous",
			PasswordHash: string(hash),
			IsAnonymous:  true,
		},
		Secret: secret,
	}, nil
}

func (is *IdentityService) RestoreAnonymous(ctx context.Context, uid uuid.UUID, secret string) (*entity.User, error) {
	user, err := is.repo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	if user.PasswordHash == "" {
		return nil, errorvalues.ErrWrongCredentials
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(secret)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return user, nil
}

func (is *IdentityService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := is.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	return user, nil
}
