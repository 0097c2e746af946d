// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// TechPulse API. Read endpoints are public; mutations require a session,
// with article writes gated on the author or admin role.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"techpulse/internal/handlers"
	"techpulse/internal/middleware"
	"techpulse/internal/session"
)

// loginRateLimit caps login attempts per client IP within loginRateWindow.
const (
	loginRateLimit  = 5
	loginRateWindow = time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. The returned RateLimiter must be stopped on
// shutdown.
func New(sessionStore *session.Store, auth *handlers.Auth, content *handlers.Content) (chi.Router, *middleware.RateLimiter) {
	r := chi.NewRouter()
	loginLimiter := middleware.NewRateLimiter(loginRateLimit, loginRateWindow)

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check — no auth, no CSRF.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.CSRF)

		// Auth endpoints.
		r.Group(func(r chi.Router) {
			r.Use(loginLimiter.Middleware)
			r.Post("/login", auth.Login)
		})
		r.Post("/signup", auth.Signup)
		r.Post("/logout", auth.Logout)
		r.Get("/session", auth.Session)

		// Articles — reads are public, writes need the publisher role.
		// The slug lookup lives under a static prefix because chi allows
		// only one wildcard name per segment, and every other route here
		// addresses articles by id.
		r.Route("/articles", func(r chi.Router) {
			r.Get("/", content.ListArticles)
			r.Get("/slug/{slug}", content.GetArticle)
			r.Get("/{id}/comments", content.ListComments)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Post("/{id}/comments", content.CreateComment)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Use(middleware.RequirePublisher)
				r.Post("/", content.CreateArticle)
				r.Put("/{id}", content.UpdateArticle)
				r.Delete("/{id}", content.DeleteArticle)
			})
		})

		// Comments — edits and deletes need a session.
		r.Route("/comments", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Put("/{id}", content.UpdateComment)
			r.Delete("/{id}", content.DeleteComment)
		})

		r.Get("/categories", content.ListCategories)
	})

	return r, loginLimiter
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
