package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/sinawatra/TamDan/internal/domain/user"
	"github.com/sinawatra/TamDan/internal/shared/auth"
	"github.com/sinawatra/TamDan/internal/shared/middleware"
)

const authCookieName = "access_token"

// AuthHandler serves signup, login, logout and the current-user lookup.
type AuthHandler struct {
	users user.Repository
	jwt   *auth.JWT
}

func NewAuthHandler(users user.Repository, jwt *auth.JWT) *AuthHandler {
	return &AuthHandler{users: users, jwt: jwt}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		fail(w, http.StatusBadRequest, "Name, email, and password are required")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		internalError(w, "Could not create user")
		return
	}

	u, err := h.users.Create(r.Context(), user.CreateUserParams{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			fail(w, http.StatusBadRequest, "Email already in use")
			return
		}
		log.Printf("Error creating user: %v", err)
		internalError(w, "Could not create user")
		return
	}

	token, err := h.jwt.Generate(u.ID)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		internalError(w, "Could not create user")
		return
	}

	h.setAuthCookie(w, r, token)
	respond(w, http.StatusCreated, envelope{
		"status": statusSuccess,
		"token":  token,
		"data":   envelope{"user": u.Public()},
	})
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		fail(w, http.StatusBadRequest, "Please provide email and password")
		return
	}

	// Unknown email and wrong password produce the same response so the
	// endpoint does not leak which accounts exist.
	u, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if !errors.Is(err, user.ErrNotFound) {
			log.Printf("Error fetching user by email: %v", err)
			internalError(w, "Could not log in")
			return
		}
		fail(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err := auth.VerifyPassword(u.PasswordHash, req.Password); err != nil {
		fail(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := h.jwt.Generate(u.ID)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		internalError(w, "Could not log in")
		return
	}

	h.setAuthCookie(w, r, token)
	respond(w, http.StatusOK, envelope{
		"status": statusSuccess,
		"token":  token,
		"data":   envelope{"user": u.Public()},
	})
}

func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	})
	respond(w, http.StatusOK, envelope{"status": statusSuccess})
}

// HandleMe returns the authenticated user. The auth middleware has
// already resolved the token, so a missing context user is a wiring bug.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		fail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	respond(w, http.StatusOK, envelope{
		"status": statusSuccess,
		"data":   envelope{"user": u},
	})
}

func (h *AuthHandler) setAuthCookie(w http.ResponseWriter, r *http.Request, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.jwt.TTL().Seconds()),
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	})
}

func isSecureRequest(r *http.Request) bool {
	return r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"
}
