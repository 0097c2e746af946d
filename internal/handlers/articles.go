// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"techpulse/internal/middleware"
	"techpulse/internal/store"
)

// Content serves the article, comment and category endpoints.
type Content struct {
	content *store.ContentStore
}

func NewContent(content *store.ContentStore) *Content {
	return &Content{content: content}
}

type articleRequest struct {
	Title      string   `json:"title"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content"`
	CoverImage string   `json:"coverImage"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	Featured   bool     `json:"featured"`
}

type articleUpdateRequest struct {
	Title      *string  `json:"title"`
	Excerpt    *string  `json:"excerpt"`
	Content    *string  `json:"content"`
	CoverImage *string  `json:"coverImage"`
	Category   *string  `json:"category"`
	Tags       []string `json:"tags"`
	Featured   *bool    `json:"featured"`
}

// ListArticles returns articles newest first. Supports featured, category,
// tag and limit query parameters, combined conjunctively.
func (h *Content) ListArticles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter store.ArticleFilter
	if v := q.Get("featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "featured must be a boolean")
			return
		}
		filter.Featured = &featured
	}
	filter.Category = q.Get("category")
	filter.Tag = q.Get("tag")
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			respondError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		filter.Limit = limit
	}

	articles, err := h.content.ListArticles(r.Context(), filter)
	if err != nil {
		slog.Error("article list failed", "error", err)
		respondError(w, http.StatusInternalServerError, "could not load articles")
		return
	}
	respondJSON(w, http.StatusOK, articles)
}

// GetArticle looks up an article by slug and counts the view.
func (h *Content) GetArticle(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	article, err := h.content.IncrementViews(r.Context(), slug)
	if err != nil {
		slog.Error("article lookup failed", "slug", slug, "error", err)
		respondError(w, http.StatusInternalServerError, "could not load article")
		return
	}
	if article == nil {
		respondError(w, http.StatusNotFound, "article not found")
		return
	}
	respondJSON(w, http.StatusOK, article)
}

// CreateArticle publishes a new article. The author snapshot is taken from
// the authenticated session, never from the request body.
func (h *Content) CreateArticle(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req articleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validateArticleDraft(req.Title, req.Content, req.Category); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	article, err := h.content.CreateArticle(r.Context(), store.ArticleDraft{
		Title:        req.Title,
		Excerpt:      req.Excerpt,
		Content:      req.Content,
		CoverImage:   req.CoverImage,
		AuthorID:     sess.User.ID,
		AuthorName:   sess.User.Name,
		AuthorAvatar: sess.User.Avatar,
		Category:     req.Category,
		Tags:         req.Tags,
		Featured:     req.Featured,
	})
	if err != nil {
		slog.Error("article create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "could not create article")
		return
	}

	slog.Info("article created", "id", article.ID, "slug", article.Slug, "author", article.AuthorName)
	respondJSON(w, http.StatusCreated, article)
}

// UpdateArticle applies a partial update; absent fields keep their values.
func (h *Content) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req articleUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validateArticleUpdate(req.Title, req.Content); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	article, err := h.content.UpdateArticle(r.Context(), id, store.ArticleUpdate{
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		Category:   req.Category,
		Tags:       req.Tags,
		Featured:   req.Featured,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "article not found")
			return
		}
		slog.Error("article update failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "could not update article")
		return
	}

	respondJSON(w, http.StatusOK, article)
}

// DeleteArticle removes an article and every comment attached to it.
func (h *Content) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.content.DeleteArticle(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "article not found")
			return
		}
		slog.Error("article delete failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "could not delete article")
		return
	}

	slog.Info("article deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

// ListCategories returns category names with their article counts.
func (h *Content) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.content.CategorySummary(r.Context())
	if err != nil {
		slog.Error("category summary failed", "error", err)
		respondError(w, http.StatusInternalServerError, "could not load categories")
		return
	}
	respondJSON(w, http.StatusOK, categories)
}
