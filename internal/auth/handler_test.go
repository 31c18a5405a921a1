package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/personality-cat/backend/internal/models"
)

func loginRequest(t *testing.T, h *Handler, body models.AdminLoginRequest) *httptest.ResponseRecorder {
	t.Helper()
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Login(rec, req)
	return rec
}

func TestLoginWithPlaintextPassword(t *testing.T) {
	h := &Handler{username: "admin", password: "s3cret"}

	rec := loginRequest(t, h, models.AdminLoginRequest{Username: "admin", Password: "s3cret"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp models.AdminLoginResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Token == "" {
		t.Errorf("response = %+v, want success with token", resp)
	}
}

func TestLoginWithBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	h := &Handler{username: "admin", passwordHash: string(hash)}

	rec := loginRequest(t, h, models.AdminLoginRequest{Username: "admin", Password: "s3cret"})
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	rec = loginRequest(t, h, models.AdminLoginRequest{Username: "admin", Password: "wrong"})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong password status = %d, want 401", rec.Code)
	}
}

func TestLoginRejections(t *testing.T) {
	h := &Handler{username: "admin", password: "s3cret"}

	rec := loginRequest(t, h, models.AdminLoginRequest{Username: "intruder", Password: "s3cret"})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong username status = %d, want 401", rec.Code)
	}

	rec = loginRequest(t, h, models.AdminLoginRequest{Username: "admin"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing password status = %d, want 400", rec.Code)
	}

	// No credentials configured at all: login always fails.
	disabled := &Handler{username: "admin"}
	rec = loginRequest(t, disabled, models.AdminLoginRequest{Username: "admin", Password: "anything"})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("disabled login status = %d, want 401", rec.Code)
	}
}
