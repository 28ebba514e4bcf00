package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/mindwell/internal/error_values"
	"github.com/limbo/mindwell/internal/service"
	"github.com/limbo/mindwell/pkg/entity"
	"github.com/limbo/mindwell/pkg/httputil"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type CreateChallengeRequest struct {
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	StartsAt    time.Time                `json:"startsAt"`
	TotalPoints int                      `json:"totalPoints"`
	Elements    []CreateChallengeElement `json:"elements"`
}

type CreateChallengeElement struct {
	Title  string `json:"title"`
	Day    int    `json:"day"`
	Points int    `json:"points"`
}

type GetChallengesResponse struct {
	UserID     string              `json:"uid"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	Challenges []*entity.Challenge `json:"challenges"`
}

// CompletionRequest is the body of PATCH /challenges/{id}/completed.
// Completed is a pointer so a missing field is told apart from false.
type CompletionRequest struct {
	ElementID string `json:"elementId"`
	Completed *bool  `json:"completed"`
}

// Register godoc
// @Summary Register user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Credentials"
// @Success 201 {object} map[string]string
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 409 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /auth/register [post]
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("registering error: validation failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid name or password", err)
		case errors.Is(err, errorvalues.ErrUserExists):
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
		default:
			logger.Error("registering error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

// Login godoc
// @Summary Login and get bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 403 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /auth/login [post]
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("login error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user with such name doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
		}
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

// DeleteAccount godoc
// @Summary Delete own account
// @Description Removes the user with all of their challenges and progress. Requires the current password.
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Param request body DeleteAccountRequest true "Current password"
// @Success 204
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 403 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /auth/account [delete]
func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("account deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req DeleteAccountRequest
	if err = httputil.DecodeJSON(r, &req); err != nil || req.Password == "" {
		logger.Error("account deletion error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	err = s.userService.DeleteAccount(ctx, uid, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("account deletion error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid password", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("account deletion error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("account deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting account", nil)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("account deleted")
}

// CreateChallenge godoc
// @Summary Create challenge with its elements
// @Tags challenges
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateChallengeRequest true "Challenge"
// @Success 201 {object} entity.Challenge
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 409 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /challenges [post]
func (s *Server) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create challenge error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateChallengeRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("create challenge error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	elements := make([]service.CreateElementRequest, 0, len(req.Elements))
	for _, el := range req.Elements {
		elements = append(elements, service.CreateElementRequest{
			Title:  el.Title,
			Day:    el.Day,
			Points: el.Points,
		})
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	challenge, err := s.challengesService.CreateChallenge(ctx, uid, &service.CreateChallengeRequest{
		Title:       req.Title,
		Description: req.Description,
		StartsAt:    req.StartsAt,
		TotalPoints: req.TotalPoints,
		Elements:    elements,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("create challenge error: validation failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge", err)
		case errors.Is(err, errorvalues.ErrUserHasChallenge):
			logger.Error("create challenge error: attempt to create existed challenge")
			httputil.WriteErrorResponse(w, http.StatusConflict, "challenge already exists", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create challenge error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't create challenge: user doesn't exists", nil)
		default:
			logger.Error("create challenge error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating challenge", err)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, challenge)
	logger.Info("challenge created", slog.String("challenge_id", challenge.ID.String()))
}

// GetChallenges godoc
// @Summary List own challenges
// @Tags challenges
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size, 1..50"
// @Param page query int false "Page number"
// @Success 200 {object} GetChallengesResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /challenges [get]
func (s *Server) GetChallenges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get challenges error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	challenges, err := s.challengesService.GetUserChallenges(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.Error("getting challenges list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting challenges list", err)
		return
	}
	if challenges == nil {
		challenges = []*entity.Challenge{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetChallengesResponse{
		UserID:     uid.String(),
		Page:       page,
		Limit:      limit,
		Challenges: challenges,
	})
	logger.Info("challenges provided")
}

// GetChallenge godoc
// @Summary Get challenge with elements
// @Tags challenges
// @Security BearerAuth
// @Produce json
// @Param id path string true "Challenge ID"
// @Success 200 {object} entity.Challenge
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /challenges/{id} [get]
func (s *Server) GetChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get challenge error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("get challenge error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	challenge, err := s.challengesService.GetChallenge(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrChallengeNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("get challenge error: unexist or foreign challenge")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "challenge doesn't exist", nil)
		default:
			logger.Error("get challenge error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting challenge", err)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, challenge)
	logger.Info("challenge provided")
}

// DeleteChallenge godoc
// @Summary Delete challenge
// @Tags challenges
// @Security BearerAuth
// @Param id path string true "Challenge ID"
// @Success 204
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /challenges/{id} [delete]
func (s *Server) DeleteChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("challenge deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("challenge deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	err = s.challengesService.DeleteChallenge(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrChallengeNotFound):
			logger.Error("challenge deletion error: unexist challenge")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "challenge doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("challenge deletion error: challenge has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "challenge doesn't exist", nil)
		default:
			logger.Error("challenge deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting challenge", err)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("challenge deleted")
}

// RecordCompletion godoc
// @Summary Mark challenge element completed or not
// @Tags challenges
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Challenge ID"
// @Param request body CompletionRequest true "Element and flag"
// @Success 200 {object} entity.CompletionResult
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /challenges/{id}/completed [patch]
func (s *Server) RecordCompletion(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("completion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	challengeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("completion error: invalid challenge id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	var req CompletionRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("completion error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	elementID, err := uuid.Parse(req.ElementID)
	if err != nil {
		logger.Error("completion error: invalid element id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid element id", nil)
		return
	}
	if req.Completed == nil {
		logger.Error("completion error: completed flag missing")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "completed flag is required", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	res, err := s.completionService.RecordCompletion(ctx, uid, challengeID, elementID, *req.Completed)
	if err != nil {
		logger.Error("completion error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "failed to update completion", err)
		return
	}
	s.metrics.observeCompletion(res.Completed)
	httputil.WriteJSONResponse(w, http.StatusOK, res)
	logger.Info("completion recorded",
		slog.String("challenge_id", challengeID.String()),
		slog.String("element_id", elementID.String()),
		slog.Bool("completed", res.Completed))
}

// GetProgress godoc
// @Summary Get own progress and streaks
// @Tags challenges
// @Security BearerAuth
// @Produce json
// @Success 200 {object} entity.UserProgress
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /challenges/progress [get]
func (s *Server) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get progress error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	progress, err := s.progressService.GetProgress(ctx, uid)
	if err != nil {
		logger.Error("get progress error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "failed to get user progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, progress)
	logger.Info("progress provided")
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	if s.pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), time.Second*2)
		defer cancel()
		if err := s.pinger.Ping(ctx); err != nil {
			GetLoggerFromCtx(r.Context()).Error("health check failed", slog.String("error", err.Error()))
			httputil.WriteJSONResponse(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
