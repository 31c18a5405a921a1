package auth

import (
	"crypto/subtle"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/personality-cat/backend/internal/models"
)

// JWTSecret is the HMAC signing key for admin tokens. Overridable through
// JWT_SECRET; the fallback is for local development only.
var JWTSecret = []byte(envOr("JWT_SECRET", "bigfive-cat-staging-signing-key-2026"))

// Handler authenticates the single operator account configured through the
// environment. There is no participant auth: sessions are anonymous and
// addressed by unguessable IDs.
type Handler struct {
	username     string
	passwordHash string // bcrypt hash; empty when only plaintext is set
	password     string // plaintext fallback for local development
}

func NewHandler() *Handler {
	h := &Handler{
		username:     envOr("ADMIN_USERNAME", "admin"),
		passwordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		password:     os.Getenv("ADMIN_PASSWORD"),
	}
	if h.passwordHash == "" && h.password == "" {
		log.Println("WARN: neither ADMIN_PASSWORD_HASH nor ADMIN_PASSWORD set; admin login disabled")
	}
	return h
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Username and password are required"})
		return
	}

	if !h.credentialsValid(req.Username, req.Password) {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid username or password"})
		return
	}

	token, err := generateToken(h.username)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to generate token"})
		return
	}

	writeJSON(w, http.StatusOK, models.AdminLoginResponse{Success: true, Token: token})
}

func (h *Handler) credentialsValid(username, password string) bool {
	if h.passwordHash == "" && h.password == "" {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(username), []byte(h.username)) != 1 {
		return false
	}
	if h.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(h.password)) == 1
}

func generateToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  username,
		"role": "admin",
		"exp":  time.Now().Add(72 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWTSecret)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
