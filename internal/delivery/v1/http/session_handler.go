package http

import (
	"net/http"

	"github.com/espressoflow/pos-backend/internal/usecase"
	"github.com/espressoflow/pos-backend/pkg/e"
	"github.com/espressoflow/pos-backend/pkg/logger"
)

type SessionHandler struct {
	sessionUsecase usecase.SessionUC
	logger         logger.Logger
}

func NewSessionHandler(sessionUsecase usecase.SessionUC, logger logger.Logger) *SessionHandler {
	return &SessionHandler{sessionUsecase: sessionUsecase, logger: logger}
}

// login
//
//	@Summary		Вход сотрудника
//	@Description	Проверяет учётные данные и открывает сессию
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		loginRequest	true	"Учётные данные"
//	@Success		200		{object}	sessionResponse	"Сессия открыта"
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/auth/login [post]
func (h *SessionHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	if req.Email == "" || req.Password == "" {
		WriteError(w, e.ErrMissingFields)
		return
	}

	session, err := h.sessionUsecase.Login(r.Context(), usecase.NewLoginReq(req.Email, req.Password))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, sessionResponse{
		Token: session.Token,
		User:  toUserResponse(&session.User),
	})
}

// restore
//
//	@Summary		Текущая сессия
//	@Description	Возвращает сотрудника по токену сессии
//	@Tags			auth
//	@Produce		json
//	@Param			X-Session-Token	header		string			true	"Токен сессии"
//	@Success		200				{object}	userResponse	"Сотрудник"
//	@Failure		401				{object}	ErrorResponse	"Сессия не найдена"
//	@Router			/auth/session [get]
func (h *SessionHandler) restore(w http.ResponseWriter, r *http.Request) {
	user, err := h.sessionUsecase.Restore(r.Context(), sessionToken(r))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toUserResponse(user))
}

// logout
//
//	@Summary		Выход
//	@Description	Закрывает сессию по токену
//	@Tags			auth
//	@Produce		json
//	@Param			X-Session-Token	header		string					true	"Токен сессии"
//	@Success		200				{object}	map[string]interface{}	"Сессия закрыта"
//	@Failure		401				{object}	ErrorResponse			"Токен не передан"
//	@Router			/auth/logout [post]
func (h *SessionHandler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionUsecase.Logout(r.Context(), sessionToken(r)); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"LoggedOut": true,
	})
}
