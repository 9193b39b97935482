package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/polesense/polesense-be/internal/auth"
	"github.com/polesense/polesense-be/internal/http/respond"
	"github.com/polesense/polesense-be/internal/middleware"
	"github.com/polesense/polesense-be/internal/models/dto"
	"github.com/polesense/polesense-be/internal/storage"
)

// AuthHandler owns the signup/signin/user-info endpoints.
type AuthHandler struct {
	svc      *auth.Service
	validate *validator.Validate
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc, validate: validator.New()}
}

// Register attaches auth routes to the router.
func (h *AuthHandler) Register(r chi.Router) {
	r.Post("/api/auth/signup", h.handleSignup)
	r.Post("/api/auth/signin", h.handleSignin)
	r.With(middleware.RequireAuth(h.svc)).Get("/api/auth/user-info", h.handleUserInfo)
}

func (h *AuthHandler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respond.Error(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	if _, err := h.svc.Register(r.Context(), req.Name, req.Email, req.Phone, req.Password, req.Role); err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingFields):
			respond.Error(w, http.StatusBadRequest, "All fields are required")
		case errors.Is(err, storage.ErrAlreadyExists):
			respond.Error(w, http.StatusBadRequest, "Email already registered")
		default:
			log.Error().Err(err).Msg("signup failed")
			respond.Error(w, http.StatusInternalServerError, "Failed to register user")
		}
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully"})
}

func (h *AuthHandler) handleSignin(w http.ResponseWriter, r *http.Request) {
	var req dto.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Email == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "Email and password required")
		return
	}

	token, user, err := h.svc.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respond.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Error().Err(err).Msg("signin failed")
		respond.Error(w, http.StatusInternalServerError, "Failed to sign in")
		return
	}

	respond.JSON(w, http.StatusOK, dto.SigninResponse{
		Message: "Login successful",
		Token:   token,
		Role:    user.Role,
	})
}

func (h *AuthHandler) handleUserInfo(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Token missing")
		return
	}

	user, err := h.svc.GetUserInfo(r.Context(), subject.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "User not found")
			return
		}
		log.Error().Err(err).Int64("user_id", subject.UserID).Msg("user-info lookup failed")
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}

	respond.JSON(w, http.StatusOK, dto.UserInfoResponse{Name: user.Name, Role: user.Role})
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			if fe.Tag() == "email" {
				return "Invalid email address"
			}
		}
	}
	return "All fields are required"
}
