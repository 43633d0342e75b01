package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sayemas-kitchen/api/internal/auth"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler issues staff tokens for the dashboard and menu refresh.
type AuthHandler struct {
	jwtSecret    string
	passwordHash string
}

// NewAuthHandler creates a new AuthHandler. passwordHash is the bcrypt hash
// of the shared staff password; empty disables staff login.
func NewAuthHandler(jwtSecret, passwordHash string) *AuthHandler {
	return &AuthHandler{jwtSecret: jwtSecret, passwordHash: passwordHash}
}

// RegisterRoutes registers auth endpoints on the given Chi router.
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.Login)
}

// --- Request / Response types ---

type loginRequest struct {
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// --- Handlers ---

// Login handles staff password authentication.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Password == "" {
		writeError(w, http.StatusBadRequest, "password is required")
		return
	}
	if h.passwordHash == "" {
		writeError(w, http.StatusServiceUnavailable, "staff login is not configured")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(req.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := auth.GenerateToken(h.jwtSecret, auth.RoleStaff)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token})
}
