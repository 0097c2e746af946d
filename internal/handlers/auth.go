// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"techpulse/internal/auth"
	"techpulse/internal/middleware"
	"techpulse/internal/models"
	"techpulse/internal/session"
)

// Auth serves the login, signup and session endpoints.
type Auth struct {
	sessions  *session.Store
	verifier  auth.Verifier
	directory auth.Directory
}

func NewAuth(sessions *session.Store, verifier auth.Verifier, directory auth.Directory) *Auth {
	return &Auth{sessions: sessions, verifier: verifier, directory: directory}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	User *models.User `json:"user"`
}

// Login verifies credentials and opens a session.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validateCredentials(req.Email, req.Password); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	user, ok := h.verifier.Verify(req.Email, req.Password)
	if !ok {
		respondError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	if _, err := h.sessions.Create(r.Context(), w, user); err != nil {
		slog.Error("session create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "could not start session")
		return
	}

	slog.Info("user logged in", "email", user.Email, "role", user.Role)
	respondJSON(w, http.StatusOK, sessionResponse{User: user})
}

// Signup registers a new account and opens a session for it.
func (h *Auth) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validateSignup(req.Name, req.Email, req.Password); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	if h.directory.EmailTaken(req.Email) {
		respondError(w, http.StatusConflict, "email is already registered")
		return
	}

	user := &models.User{
		ID:     uuid.NewString(),
		Name:   req.Name,
		Email:  req.Email,
		Role:   models.RoleUser,
		Avatar: "https://i.pravatar.cc/150?u=" + url.QueryEscape(req.Email),
	}

	if _, err := h.sessions.Create(r.Context(), w, user); err != nil {
		slog.Error("session create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "could not start session")
		return
	}

	slog.Info("user signed up", "email", user.Email)
	respondJSON(w, http.StatusCreated, sessionResponse{User: user})
}

// Logout destroys the current session, if any.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Error("session destroy failed", "error", err)
	}
	w.WriteHeader(http.StatusNoContent)
}

// Session reports the currently authenticated user, or a null user when
// the request carries no valid session. The front-end polls this on load
// to restore login state.
func (h *Auth) Session(w http.ResponseWriter, r *http.Request) {
	var user *models.User
	if sess := middleware.SessionFromCtx(r.Context()); sess != nil {
		user = &sess.User
	}
	respondJSON(w, http.StatusOK, sessionResponse{User: user})
}
