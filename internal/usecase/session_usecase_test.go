package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/espressoflow/pos-backend/internal/domain"
	"github.com/espressoflow/pos-backend/internal/repository/memory"
	"github.com/espressoflow/pos-backend/internal/usecase"
	"github.com/espressoflow/pos-backend/pkg/e"
	"github.com/espressoflow/pos-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionRepo struct {
	sessions map[string]*domain.User
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*domain.User)}
}

func (f *fakeSessionRepo) Set(_ context.Context, token string, user *domain.User) error {
	f.sessions[token] = user
	return nil
}

func (f *fakeSessionRepo) Get(_ context.Context, token string) (*domain.User, error) {
	user, ok := f.sessions[token]
	if !ok {
		return nil, e.ErrSessionNotFound
	}
	return user, nil
}

func (f *fakeSessionRepo) Delete(_ context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

func newSessionFixture(t *testing.T) (*usecase.SessionUseCase, *fakeSessionRepo) {
	t.Helper()

	users := []domain.User{
		*domain.NewUser("u-1", "Jane Doe", "jane@coffee.com", domain.RoleAdmin, ""),
	}
	sessions := newFakeSessionRepo()

	uc := usecase.NewSessionUC(
		memory.NewUserRepo(users),
		sessions,
		time.Millisecond,
		logger.NewSlogLogger(),
	)

	return uc, sessions
}

func TestLoginKnownEmail(t *testing.T) {
	uc, sessions := newSessionFixture(t)

	session, err := uc.Login(context.Background(), usecase.NewLoginReq("JANE@coffee.com", "any"))
	require.NoError(t, err)

	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "Jane Doe", session.User.Name)
	assert.Equal(t, domain.RoleAdmin, session.User.Role)
	assert.Contains(t, sessions.sessions, session.Token)
}

func TestLoginUnknownEmailGetsDemoIdentity(t *testing.T) {
	uc, _ := newSessionFixture(t)

	session, err := uc.Login(context.Background(), usecase.NewLoginReq("stranger@example.com", "any"))
	require.NoError(t, err)

	assert.Equal(t, "Demo Admin", session.User.Name)
	assert.Equal(t, domain.RoleAdmin, session.User.Role)
}

func TestLoginCancelledBeforeDelay(t *testing.T) {
	users := []domain.User{}
	uc := usecase.NewSessionUC(
		memory.NewUserRepo(users),
		newFakeSessionRepo(),
		time.Minute,
		logger.NewSlogLogger(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Login(ctx, usecase.NewLoginReq("jane@coffee.com", "any"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRestore(t *testing.T) {
	uc, _ := newSessionFixture(t)
	ctx := context.Background()

	session, err := uc.Login(ctx, usecase.NewLoginReq("jane@coffee.com", "any"))
	require.NoError(t, err)

	user, err := uc.Restore(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, "jane@coffee.com", user.Email)
}

func TestRestoreRequiresToken(t *testing.T) {
	uc, _ := newSessionFixture(t)

	_, err := uc.Restore(context.Background(), "")
	assert.ErrorIs(t, err, e.ErrSessionTokenRequired)
}

func TestRestoreUnknownToken(t *testing.T) {
	uc, _ := newSessionFixture(t)

	_, err := uc.Restore(context.Background(), "missing")
	assert.ErrorIs(t, err, e.ErrSessionNotFound)
}

func TestLogout(t *testing.T) {
	uc, sessions := newSessionFixture(t)
	ctx := context.Background()

	session, err := uc.Login(ctx, usecase.NewLoginReq("jane@coffee.com", "any"))
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx, session.Token))
	assert.NotContains(t, sessions.sessions, session.Token)

	assert.ErrorIs(t, uc.Logout(ctx, ""), e.ErrSessionTokenRequired)
}
