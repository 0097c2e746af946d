// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"techpulse/internal/middleware"
	"techpulse/internal/store"
)

type commentRequest struct {
	Content  string `json:"content"`
	ParentID string `json:"parentId"`
}

type commentUpdateRequest struct {
	Content string `json:"content"`
}

// ListComments returns the comments of one article, oldest first.
func (h *Content) ListComments(w http.ResponseWriter, r *http.Request) {
	articleID := chi.URLParam(r, "id")

	comments, err := h.content.ListCommentsByArticle(r.Context(), articleID)
	if err != nil {
		slog.Error("comment list failed", "articleID", articleID, "error", err)
		respondError(w, http.StatusInternalServerError, "could not load comments")
		return
	}
	respondJSON(w, http.StatusOK, comments)
}

// CreateComment attaches a new comment to an article. The author snapshot
// comes from the authenticated session.
func (h *Content) CreateComment(w http.ResponseWriter, r *http.Request) {
	articleID := chi.URLParam(r, "id")

	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req commentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validateCommentContent(req.Content); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	comment, err := h.content.CreateComment(r.Context(), store.CommentDraft{
		Content:      req.Content,
		ArticleID:    articleID,
		AuthorID:     sess.User.ID,
		AuthorName:   sess.User.Name,
		AuthorAvatar: sess.User.Avatar,
		ParentID:     req.ParentID,
	})
	if err != nil {
		slog.Error("comment create failed", "articleID", articleID, "error", err)
		respondError(w, http.StatusInternalServerError, "could not create comment")
		return
	}

	respondJSON(w, http.StatusCreated, comment)
}

// UpdateComment replaces the text of an existing comment.
func (h *Content) UpdateComment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req commentUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validateCommentContent(req.Content); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	comment, err := h.content.UpdateComment(r.Context(), id, req.Content)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "comment not found")
			return
		}
		slog.Error("comment update failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "could not update comment")
		return
	}

	respondJSON(w, http.StatusOK, comment)
}

// DeleteComment removes a single comment. Replies stay in place.
func (h *Content) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.content.DeleteComment(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "comment not found")
			return
		}
		slog.Error("comment delete failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "could not delete comment")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
