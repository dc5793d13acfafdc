package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/espressoflow/pos-backend/internal/cfg"
	"github.com/espressoflow/pos-backend/internal/domain"
	"github.com/espressoflow/pos-backend/pkg/clients"
	"github.com/espressoflow/pos-backend/pkg/e"
	"github.com/espressoflow/pos-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// SessionRepo хранит сессии сотрудников в Redis: идентичность вошедшего
// сериализуется в JSON под ключом с TTL и удаляется при выходе.
type SessionRepo struct {
	client *clients.RedisClient
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

// sessionModel — представление пользователя в хранилище сессий.
type sessionModel struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

func NewSessionRepo(client *clients.RedisClient, cfg *cfg.RedisCfg, logger logger.Logger) *SessionRepo {
	return &SessionRepo{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// Set сохраняет идентичность под ключом сессии с настроенным TTL.
func (s *SessionRepo) Set(ctx context.Context, token string, user *domain.User) error {
	data, err := json.Marshal(toSessionModel(user))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := s.client.Client.Set(ctx, s.sessionKey(token), data, s.cfg.SessionTTL).Err(); err != nil {
		s.logger.Warnf("Redis SET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Get читает идентичность по токену. Отсутствие ключа — e.ErrSessionNotFound.
func (s *SessionRepo) Get(ctx context.Context, token string) (*domain.User, error) {
	data, err := s.client.Client.Get(ctx, s.sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrSessionNotFound)
		}
		s.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model sessionModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return toUser(&model), nil
}

// Delete удаляет ключ сессии. Удаление несуществующего ключа не ошибка.
func (s *SessionRepo) Delete(ctx context.Context, token string) error {
	if err := s.client.Client.Del(ctx, s.sessionKey(token)).Err(); err != nil {
		s.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// sessionKey возвращает Redis-ключ для токена сессии.
func (s *SessionRepo) sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

func toSessionModel(user *domain.User) *sessionModel {
	return &sessionModel{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   string(user.Role),
		Avatar: user.Avatar,
	}
}

func toUser(model *sessionModel) *domain.User {
	return domain.NewUser(model.ID, model.Name, model.Email, domain.Role(model.Role), model.Avatar)
}
