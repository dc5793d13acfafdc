package usecase

import (
	"context"
	"time"

	"github.com/espressoflow/pos-backend/internal/domain"
	"github.com/espressoflow/pos-backend/pkg/e"
	"github.com/espressoflow/pos-backend/pkg/logger"
	"github.com/google/uuid"
)

// SessionUseCase — имитация входа и хранение сессии в key-value хранилище.
// Аутентификация не проверяет учётные данные: любой запрос принимается.
type SessionUseCase struct {
	userRepo    UserRepository
	sessionRepo SessionRepository
	loginDelay  time.Duration
	logger      logger.Logger
}

func NewSessionUC(
	userRepo UserRepository,
	sessionRepo SessionRepository,
	loginDelay time.Duration,
	logger logger.Logger,
) *SessionUseCase {
	return &SessionUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		loginDelay:  loginDelay,
		logger:      logger,
	}
}

// Login имитирует задержку внешнего провайдера и создаёт сессию.
// При отмене контекста до истечения задержки вход не происходит.
func (s *SessionUseCase) Login(ctx context.Context, req *LoginReq) (*SessionRes, error) {
	const op = "SessionUseCase.Login"

	select {
	case <-time.After(s.loginDelay):
	case <-ctx.Done():
		return nil, e.Wrap(op, ctx.Err())
	}

	user := s.resolveUser(ctx, req.Email)

	token := uuid.NewString()
	if err := s.sessionRepo.Set(ctx, token, user); err != nil {
		return nil, e.Wrap(op, err)
	}

	s.logger.Infof("user signed in: %s (%s)", user.Email, user.Role)
	return &SessionRes{
		Token: token,
		User:  *NewUserRes(user),
	}, nil
}

// Restore восстанавливает сессию по токену без повторной аутентификации.
func (s *SessionUseCase) Restore(ctx context.Context, token string) (*UserRes, error) {
	const op = "SessionUseCase.Restore"

	if token == "" {
		return nil, e.Wrap(op, e.ErrSessionTokenRequired)
	}

	user, err := s.sessionRepo.Get(ctx, token)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewUserRes(user), nil
}

// Logout удаляет сессию из хранилища.
func (s *SessionUseCase) Logout(ctx context.Context, token string) error {
	const op = "SessionUseCase.Logout"

	if token == "" {
		return e.Wrap(op, e.ErrSessionTokenRequired)
	}

	if err := s.sessionRepo.Delete(ctx, token); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// resolveUser подбирает сотрудника по почте; незнакомая почта получает
// демо-администратора (вход принимается всегда).
func (s *SessionUseCase) resolveUser(ctx context.Context, email string) *domain.User {
	if email != "" {
		user, err := s.userRepo.GetByEmail(ctx, email)
		if err == nil {
			return user
		}
		s.logger.Debugf("no staff account for %s, using demo identity", email)
	}

	return domain.NewUser(
		"g_123",
		"Demo Admin",
		"admin@espressoflow.com",
		domain.RoleAdmin,
		"https://picsum.photos/100/100?random=99",
	)
}
