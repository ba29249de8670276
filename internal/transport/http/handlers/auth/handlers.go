package authhandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"financeflow/internal/domain/auth"
	"financeflow/internal/transport/http/api"
	"financeflow/internal/transport/http/middleware"
	"financeflow/internal/transport/http/shared"
)

const minPasswordLength = 6

type Handler struct {
	Store  auth.StoreAPI
	Secret string
	TTL    time.Duration
}

func NewHandler(store auth.StoreAPI, secret string, ttl time.Duration) *Handler {
	return &Handler{Store: store, Secret: secret, TTL: ttl}
}

type registerRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var payload registerRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	validator := shared.NewValidator()
	validator.Required("username", payload.Username, "username is required")
	validator.MinLength("password", payload.Password, minPasswordLength, "password must be at least 6 characters long")
	if payload.Password != payload.ConfirmPassword {
		validator.Add("confirmPassword", "passwords do not match")
	}
	if validator.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Store.Register(r.Context(), payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUsernameTaken) {
			api.Fail(w, http.StatusConflict, "username_taken", "username already exists", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "register_failed", "failed to register account", middleware.GetRequestID(r.Context()))
		return
	}

	api.Created(w, map[string]string{"id": id, "username": payload.Username}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	id, err := h.Store.Authenticate(r.Context(), payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid username or password", middleware.GetRequestID(r.Context()))
			return
		}
		slog.Error("authenticate failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusServiceUnavailable, "persistence_unavailable", "failed to verify credentials", middleware.GetRequestID(r.Context()))
		return
	}

	session := auth.NewAuthenticatedSession(id, payload.Username)
	token, err := auth.GenerateToken(h.Secret, session, h.TTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_error", "failed to issue token", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{
		"token": token,
		"user":  map[string]string{"id": id, "username": payload.Username},
	}, middleware.GetRequestID(r.Context()))
}

// HandleGuest issues a token for an ephemeral session whose ledger is never
// persisted.
func (h *Handler) HandleGuest(w http.ResponseWriter, r *http.Request) {
	token, err := auth.GenerateToken(h.Secret, auth.NewGuestSession(), h.TTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_error", "failed to issue token", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{
		"token":   token,
		"warning": "guest mode: data will not be saved between sessions",
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	api.Success(w, map[string]string{"status": "logged_out"}, middleware.GetRequestID(r.Context()))
}
