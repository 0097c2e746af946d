// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"techpulse/internal/models"
)

// CommentDraft carries caller-supplied fields for a new comment. The store
// does not verify that ArticleID or ParentID reference existing records; a
// dangling reference is simply never returned by any lookup.
type CommentDraft struct {
	Content      string
	ArticleID    string
	AuthorID     string
	AuthorName   string
	AuthorAvatar string
	ParentID     string
}

// ListCommentsByArticle returns the comments for an article in insertion
// order. An unknown article id yields an empty list, not an error.
func (s *ContentStore) ListCommentsByArticle(ctx context.Context, articleID string) ([]models.Comment, error) {
	s.delay()

	var result []models.Comment
	for _, c := range s.readComments(ctx) {
		if c.ArticleID == articleID {
			result = append(result, c)
		}
	}
	return result, nil
}

// CreateComment appends a new comment with a fresh id and timestamp.
func (s *ContentStore) CreateComment(ctx context.Context, draft CommentDraft) (*models.Comment, error) {
	s.delay()
	s.mu.Lock()
	defer s.mu.Unlock()

	comment := models.Comment{
		ID:           uuid.NewString(),
		Content:      draft.Content,
		ArticleID:    draft.ArticleID,
		AuthorID:     draft.AuthorID,
		AuthorName:   draft.AuthorName,
		AuthorAvatar: draft.AuthorAvatar,
		CreatedAt:    time.Now(),
		ParentID:     draft.ParentID,
	}

	comments := append(s.readComments(ctx), comment)
	if err := writeCollection(ctx, s.kv, commentsKey, comments); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return &comment, nil
}

// UpdateComment replaces the content of an existing comment. Returns
// ErrNotFound when the id does not exist.
func (s *ContentStore) UpdateComment(ctx context.Context, id, content string) (*models.Comment, error) {
	s.delay()
	s.mu.Lock()
	defer s.mu.Unlock()

	comments := s.readComments(ctx)
	for i := range comments {
		if comments[i].ID == id {
			comments[i].Content = content
			if err := writeCollection(ctx, s.kv, commentsKey, comments); err != nil {
				return nil, fmt.Errorf("update comment: %w", err)
			}
			updated := comments[i]
			return &updated, nil
		}
	}
	return nil, fmt.Errorf("update comment %q: %w", id, ErrNotFound)
}

// DeleteComment removes a comment by id. Replies referencing it as their
// parent are left in place. Returns ErrNotFound when the id does not exist.
func (s *ContentStore) DeleteComment(ctx context.Context, id string) error {
	s.delay()
	s.mu.Lock()
	defer s.mu.Unlock()

	comments := s.readComments(ctx)
	remaining := comments[:0]
	found := false
	for _, c := range comments {
		if c.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, c)
	}
	if !found {
		return fmt.Errorf("delete comment %q: %w", id, ErrNotFound)
	}

	if err := writeCollection(ctx, s.kv, commentsKey, remaining); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
