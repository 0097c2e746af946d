// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides the content repository: article and comment CRUD
// over the key-value persistence layer, including derived-field computation
// (slug, read time), filtering, and cascade semantics.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"techpulse/internal/kv"
	"techpulse/internal/models"
	"techpulse/internal/slug"
)

const (
	articlesKey = "articles"
	commentsKey = "comments"
)

// ContentStore handles all article and comment operations. It owns both
// collections exclusively; nothing else reads or writes their keys.
//
// Every operation pauses for a configurable simulated latency before
// touching the store — the repository stands in for a remote API and
// callers must treat each call as suspending. The latency always elapses
// once an operation starts; there is no cancellation.
//
// A mutex serializes every read-modify-write span, so concurrent callers
// within this process cannot interleave partial writes. Two separate
// processes sharing a backend still race last-writer-wins; that is a known
// limit of the storage model.
type ContentStore struct {
	kv      kv.Store
	mu      sync.Mutex
	latency time.Duration
}

// NewContentStore creates a content store over the given key-value backend.
// latency is the uniform simulated delay applied to every operation; pass 0
// to disable (tests).
func NewContentStore(s kv.Store, latency time.Duration) *ContentStore {
	return &ContentStore{kv: s, latency: latency}
}

// ArticleFilter narrows ListArticles results. Zero values mean "no
// constraint"; all provided predicates must hold.
type ArticleFilter struct {
	Featured *bool  // exact match on the featured flag
	Category string // case-insensitive exact match
	Tag      string // case-insensitive membership test against tags
	Limit    int    // truncate after sorting, always from index 0
}

// ArticleDraft carries caller-supplied fields for a new article. Derived
// fields (id, slug, read time, views, timestamps) are computed by Create.
type ArticleDraft struct {
	Title        string
	Excerpt      string
	Content      string
	CoverImage   string
	AuthorID     string
	AuthorName   string
	AuthorAvatar string
	Category     string
	Tags         []string
	Featured     bool
}

// ArticleUpdate is a partial update: nil fields are left unchanged.
// ID, CreatedAt, and the author snapshot are immutable after creation.
type ArticleUpdate struct {
	Title      *string
	Excerpt    *string
	Content    *string
	CoverImage *string
	Category   *string
	Tags       []string
	Featured   *bool
}

// CategoryCount is one row of the category summary.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// delay applies the simulated network latency.
func (s *ContentStore) delay() {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
}

// readArticles loads the articles collection. A missing key, corrupt
// document, or unavailable backend all degrade to an empty collection —
// consumers must tolerate an empty list rather than crash.
func (s *ContentStore) readArticles(ctx context.Context) []models.Article {
	return readCollection[models.Article](ctx, s.kv, articlesKey)
}

// readComments loads the comments collection with the same degradation
// rules as readArticles.
func (s *ContentStore) readComments(ctx context.Context) []models.Comment {
	return readCollection[models.Comment](ctx, s.kv, commentsKey)
}

func readCollection[T any](ctx context.Context, s kv.Store, key string) []T {
	raw, err := s.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			slog.Warn("collection unreadable, treating as empty", "key", key, "error", err)
		}
		return nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		slog.Warn("collection corrupt, treating as empty", "key", key, "error", err)
		return nil
	}
	return items
}

func writeCollection[T any](ctx context.Context, s kv.Store, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// ListArticles returns articles sorted by creation date descending (newest
// first), filtered, and truncated to the filter's limit.
func (s *ContentStore) ListArticles(ctx context.Context, f ArticleFilter) ([]models.Article, error) {
	s.delay()

	articles := s.readArticles(ctx)

	sort.Slice(articles, func(i, j int) bool {
		return articles[i].CreatedAt.After(articles[j].CreatedAt)
	})

	result := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if f.Featured != nil && a.Featured != *f.Featured {
			continue
		}
		if f.Category != "" && !strings.EqualFold(a.Category, f.Category) {
			continue
		}
		if f.Tag != "" && !a.HasTag(f.Tag) {
			continue
		}
		result = append(result, a)
		if f.Limit > 0 && len(result) == f.Limit {
			break
		}
	}
	return result, nil
}

// FindArticleBySlug retrieves an article by its slug. Returns nil if not
// found — the caller decides whether absence is a 404.
func (s *ContentStore) FindArticleBySlug(ctx context.Context, articleSlug string) (*models.Article, error) {
	s.delay()

	for _, a := range s.readArticles(ctx) {
		if a.Slug == articleSlug {
			article := a
			return &article, nil
		}
	}
	return nil, nil
}

// CreateArticle inserts a new article with all derived fields computed:
// fresh id, title-derived slug (disambiguated with a numeric suffix on
// collision), content-derived read time, zero views, and equal
// created/updated timestamps. Creates are not idempotent — a retry
// produces a second record under a new id.
func (s *ContentStore) CreateArticle(ctx context.Context, draft ArticleDraft) (*models.Article, error) {
	s.delay()
	s.mu.Lock()
	defer s.mu.Unlock()

	articles := s.readArticles(ctx)
	now := time.Now()

	article := models.Article{
		ID:           uuid.NewString(),
		Title:        draft.Title,
		Slug:         uniqueSlug(slug.Generate(draft.Title), articles, ""),
		Excerpt:      draft.Excerpt,
		Content:      draft.Content,
		CoverImage:   draft.CoverImage,
		AuthorID:     draft.AuthorID,
		AuthorName:   draft.AuthorName,
		AuthorAvatar: draft.AuthorAvatar,
		CreatedAt:    now,
		UpdatedAt:    now,
		Category:     draft.Category,
		Tags:         draft.Tags,
		ReadTime:     models.EstimateReadTime(draft.Content),
		Featured:     draft.Featured,
		Views:        0,
	}

	articles = append(articles, article)
	if err := writeCollection(ctx, s.kv, articlesKey, articles); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return &article, nil
}

// UpdateArticle merges the partial update onto the existing record.
// The slug is re-derived when the title changes and the read time when the
// content changes; UpdatedAt always refreshes. Returns ErrNotFound when the
// id does not exist.
func (s *ContentStore) UpdateArticle(ctx context.Context, id string, patch ArticleUpdate) (*models.Article, error) {
	s.delay()
	s.mu.Lock()
	defer s.mu.Unlock()

	articles := s.readArticles(ctx)
	idx := -1
	for i := range articles {
		if articles[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("update article %q: %w", id, ErrNotFound)
	}

	a := &articles[idx]
	if patch.Title != nil {
		a.Title = *patch.Title
		a.Slug = uniqueSlug(slug.Generate(a.Title), articles, id)
	}
	if patch.Excerpt != nil {
		a.Excerpt = *patch.Excerpt
	}
	if patch.Content != nil {
		a.Content = *patch.Content
		a.ReadTime = models.EstimateReadTime(a.Content)
	}
	if patch.CoverImage != nil {
		a.CoverImage = *patch.CoverImage
	}
	if patch.Category != nil {
		a.Category = *patch.Category
	}
	if patch.Tags != nil {
		a.Tags = patch.Tags
	}
	if patch.Featured != nil {
		a.Featured = *patch.Featured
	}
	a.UpdatedAt = time.Now()

	if err := writeCollection(ctx, s.kv, articlesKey, articles); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	updated := *a
	return &updated, nil
}

// DeleteArticle removes the article and cascades to every comment whose
// ArticleID matches it. Returns ErrNotFound when the id does not exist.
func (s *ContentStore) DeleteArticle(ctx context.Context, id string) error {
	s.delay()
	s.mu.Lock()
	defer s.mu.Unlock()

	articles := s.readArticles(ctx)
	remaining := articles[:0]
	found := false
	for _, a := range articles {
		if a.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, a)
	}
	if !found {
		return fmt.Errorf("delete article %q: %w", id, ErrNotFound)
	}

	if err := writeCollection(ctx, s.kv, articlesKey, remaining); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	comments := s.readComments(ctx)
	kept := comments[:0]
	for _, c := range comments {
		if c.ArticleID != id {
			kept = append(kept, c)
		}
	}
	if err := writeCollection(ctx, s.kv, commentsKey, kept); err != nil {
		return fmt.Errorf("delete article comments: %w", err)
	}
	return nil
}

// IncrementViews bumps the view counter of the article with the given slug
// and returns the updated record, or nil when the slug does not resolve.
func (s *ContentStore) IncrementViews(ctx context.Context, articleSlug string) (*models.Article, error) {
	s.delay()
	s.mu.Lock()
	defer s.mu.Unlock()

	articles := s.readArticles(ctx)
	for i := range articles {
		if articles[i].Slug == articleSlug {
			articles[i].Views++
			if err := writeCollection(ctx, s.kv, articlesKey, articles); err != nil {
				return nil, fmt.Errorf("increment views: %w", err)
			}
			updated := articles[i]
			return &updated, nil
		}
	}
	return nil, nil
}

// CategorySummary returns the distinct categories with their article
// counts, sorted alphabetically.
func (s *ContentStore) CategorySummary(ctx context.Context) ([]CategoryCount, error) {
	s.delay()

	counts := make(map[string]int)
	for _, a := range s.readArticles(ctx) {
		if a.Category != "" {
			counts[a.Category]++
		}
	}

	result := make([]CategoryCount, 0, len(counts))
	for name, n := range counts {
		result = append(result, CategoryCount{Name: name, Count: n})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// uniqueSlug disambiguates a title-derived slug against the existing
// collection by appending a numeric suffix (-2, -3, …). excludeID skips the
// record being updated so an unchanged title keeps its slug.
func uniqueSlug(base string, articles []models.Article, excludeID string) string {
	taken := func(candidate string) bool {
		for _, a := range articles {
			if a.ID != excludeID && a.Slug == candidate {
				return true
			}
		}
		return false
	}

	if !taken(base) {
		return base
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", base, n)
		if !taken(candidate) {
			return candidate
		}
	}
}
