package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	errorvalues "github.com/nekocare/backend/internal/error_values"
	"github.com/nekocare/backend/internal/service"
	"github.com/nekocare/backend/pkg/entity"
	"github.com/nekocare/backend/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockState int

const (
	stateSuccess mockState = iota
	stateDBError
	stateUserNotFoundError
)

type usersRepoMock struct {
	state  mockState
	users  map[uuid.UUID]*entity.User
	hashes []string
}

func newUsersRepoMock() *usersRepoMock {
	return &usersRepoMock{users: map[uuid.UUID]*entity.User{}}
}

func (m *usersRepoMock) CreateAnonymous(ctx context.Context, secretHash string) (uuid.UUID, error) {
	if m.state == stateDBError {
		return uuid.UUID{}, errors.New("db error")
	}
	id := uuid.New()
	m.hashes = append(m.hashes, secretHash)
	m.users[id] = &entity.User{ID: id, Name: "anonymous", PasswordHash: secretHash, IsAnonymous: true}
	return id, nil
}

func (m *usersRepoMock) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	switch m.state {
	case stateDBError:
		return nil, errors.New("db error")
	case stateUserNotFoundError:
		return nil, errorvalues.ErrUserNotFound
	}
	u, ok := m.users[uid]
	if !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	return u, nil
}

func TestCurrentIdentity(t *testing.T) {
	s := service.NewIdentityService(newUsersRepoMock())
	_, ok := s.CurrentIdentity(context.Background())
	assert.False(t, ok)

	uid := uuid.New()
	got, ok := s.CurrentIdentity(session.WithUserID(context.Background(), uid))
	assert.True(t, ok)
	assert.Equal(t, uid, got)
}

func TestCreateAnonymousIdentity(t *testing.T) {
	repo := newUsersRepoMock()
	s := service.NewIdentityService(repo)
	t.Run("success", func(t *testing.T) {
		id, err := s.CreateAnonymousIdentity(context.Background())
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
		assert.Equal(t, []string{""}, repo.hashes)
	})
	t.Run("db error", func(t *testing.T) {
		repo.state = stateDBError
		_, err := s.CreateAnonymousIdentity(context.Background())
		assert.Error(t, err)
	})
}

func TestAnonymousSignInAndRestore(t *testing.T) {
	repo := newUsersRepoMock()
	s := service.NewIdentityService(repo)
	ctx := context.Background()

	sess, err := s.SignInAnonymously(ctx)
	require.NoError(t, err)
	assert.True(t, sess.User.IsAnonymous)
	assert.NotEmpty(t, sess.Secret)
	assert.NotEqual(t, sess.Secret, repo.hashes[0])

	t.Run("restored", func(t *testing.T) {
		u, err := s.RestoreAnonymous(ctx, sess.User.ID, sess.Secret)
		require.NoError(t, err)
		assert.Equal(t, sess.User.ID, u.ID)
	})
	t.Run("wrong secret", func(t *testing.T) {
		_, err := s.RestoreAnonymous(ctx, sess.User.ID, "guess")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("identity without secret", func(t *testing.T) {
		id, err := s.CreateAnonymousIdentity(ctx)
		require.NoError(t, err)
		_, err = s.RestoreAnonymous(ctx, id, "")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("unknown user", func(t *testing.T) {
		_, err := s.RestoreAnonymous(ctx, uuid.New(), sess.Secret)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		repo.state = stateDBError
		_, err := s.RestoreAnonymous(ctx, sess.User.ID, sess.Secret)
		assert.Error(t, err)
		_, err = s.SignInAnonymously(ctx)
		assert.Error(t, err)
	})
}

func TestGetUserByID(t *testing.T) {
	repo := newUsersRepoMock()
	s := service.NewIdentityService(repo)
	id, err := s.CreateAnonymousIdentity(context.Background())
	require.NoError(t, err)

	u, err := s.GetByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, id, u.ID)

	repo.state = stateUserNotFoundError
	_, err = s.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)

	repo.state = stateDBError
	_, err = s.GetByID(context.Background(), id)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, errorvalues.ErrUserNotFound)
}
