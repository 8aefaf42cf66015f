package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"care-info-api/internal/auth"
	"care-info-api/internal/middleware"
	"care-info-api/internal/model"
	"care-info-api/internal/store"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string         `json:"message"`
	User    model.Identity `json:"user"`
	Token   string         `json:"token"`
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err, "")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		h.fail(w, r, &ValidationError{Msg: "All fields are required"}, "")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.fail(w, r, err, "Error registering user")
		return
	}

	u := &model.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
	}
	if err := h.store.CreateUser(r.Context(), u); err != nil {
		h.fail(w, r, err, "")
		return
	}

	h.log.WithField("user_id", u.ID).Info("user registered")
	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "User registered successfully",
		"id":      u.ID,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err, "")
		return
	}
	if req.Email == "" || req.Password == "" {
		h.fail(w, r, &ValidationError{Msg: "Email and password required"}, "")
		return
	}

	u, err := h.store.UserByEmail(r.Context(), req.Email)
	if errors.Is(err, store.ErrNotFound) {
		// same answer as a wrong password
		h.fail(w, r, errInvalidCredentials, "")
		return
	}
	if err != nil {
		h.fail(w, r, err, "")
		return
	}
	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		h.fail(w, r, errInvalidCredentials, "")
		return
	}

	tok, err := auth.MakeToken(u.ID, h.secret, h.tokenTTL)
	if err != nil {
		h.fail(w, r, err, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Message: "Login successful",
		User:    u.Identity(),
		Token:   tok,
	})
}

// Me returns the identity behind the bearer token. Mounted behind middleware.Auth,
// so the user id is always set.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	u, err := h.store.UserByID(r.Context(), uid)
	if err != nil {
		h.fail(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, u.Identity())
}
