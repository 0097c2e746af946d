// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Handler tests drive each endpoint directly with httptest recorders.
// Route wiring, middleware chains and full request flows are covered by the
// router package tests.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"techpulse/internal/auth"
	"techpulse/internal/kv"
	"techpulse/internal/middleware"
	"techpulse/internal/models"
	"techpulse/internal/session"
	"techpulse/internal/store"
)

func newAuthHandler(t *testing.T) *Auth {
	t.Helper()

	verifier, err := auth.NewStaticVerifier(auth.DefaultAccounts())
	if err != nil {
		t.Fatalf("verifier: %v", err)
	}
	sessions := session.NewStore(kv.NewMemory())
	return NewAuth(sessions, verifier, verifier)
}

func newContentHandler(t *testing.T) *Content {
	t.Helper()

	cs := store.NewContentStore(kv.NewMemory(), 0)
	if err := cs.Initialize(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return NewContent(cs)
}

// withURLParam attaches a chi route parameter to the request context.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// withSession attaches an authenticated session to the request context.
func withSession(r *http.Request, user models.User) *http.Request {
	data := &session.Data{User: user}
	return r.WithContext(context.WithValue(r.Context(), middleware.SessionKey, data))
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(dst); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestLogin(t *testing.T) {
	h := newAuthHandler(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid admin", `{"email":"admin@example.com","password":"admin123"}`, http.StatusOK},
		{"valid author", `{"email":"jane@example.com","password":"password"}`, http.StatusOK},
		{"wrong password", `{"email":"admin@example.com","password":"nope"}`, http.StatusUnauthorized},
		{"unknown email", `{"email":"ghost@example.com","password":"password"}`, http.StatusUnauthorized},
		{"missing password", `{"email":"admin@example.com"}`, http.StatusBadRequest},
		{"malformed body", `{not json`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest("POST", "/api/login", strings.NewReader(tt.body))

			h.Login(w, r)

			if w.Code != tt.wantStatus {
				t.Fatalf("status: got %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestLoginSetsSessionCookie(t *testing.T) {
	h := newAuthHandler(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/login",
		strings.NewReader(`{"email":"john@example.com","password":"password"}`))
	h.Login(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}

	var found bool
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName && c.Value != "" {
			found = true
			if !c.HttpOnly {
				t.Error("session cookie should be HttpOnly")
			}
		}
	}
	if !found {
		t.Error("no session cookie set on login")
	}

	var resp sessionResponse
	decodeBody(t, w, &resp)
	if resp.User == nil || resp.User.Email != "john@example.com" {
		t.Errorf("user: got %+v, want john@example.com", resp.User)
	}
	if resp.User.Role != models.RoleAdmin {
		t.Errorf("role: got %q, want admin", resp.User.Role)
	}
}

func TestSignup(t *testing.T) {
	h := newAuthHandler(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/signup",
		strings.NewReader(`{"name":"New User","email":"new@example.com","password":"secret123"}`))
	h.Signup(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201", w.Code)
	}

	var resp sessionResponse
	decodeBody(t, w, &resp)
	if resp.User == nil {
		t.Fatal("no user in response")
	}
	if resp.User.Role != models.RoleUser {
		t.Errorf("role: got %q, want user", resp.User.Role)
	}
	if resp.User.ID == "" {
		t.Error("user should get a generated id")
	}
	if want := "https://i.pravatar.cc/150?u=new%40example.com"; resp.User.Avatar != want {
		t.Errorf("avatar: got %q, want %q", resp.User.Avatar, want)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	h := newAuthHandler(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/signup",
		strings.NewReader(`{"name":"Jane Again","email":"JANE@example.com","password":"secret123"}`))
	h.Signup(w, r)

	if w.Code != http.StatusConflict {
		t.Fatalf("status: got %d, want 409", w.Code)
	}
}

func TestSessionEndpoint(t *testing.T) {
	h := newAuthHandler(t)

	// Without a session the user is null.
	w := httptest.NewRecorder()
	h.Session(w, httptest.NewRequest("GET", "/api/session", nil))

	var resp sessionResponse
	decodeBody(t, w, &resp)
	if resp.User != nil {
		t.Errorf("anonymous session: got user %+v, want null", resp.User)
	}

	// With a loaded session the user comes back.
	w = httptest.NewRecorder()
	r := withSession(httptest.NewRequest("GET", "/api/session", nil),
		models.User{ID: "2", Name: "Jane Smith", Role: models.RoleAuthor})
	h.Session(w, r)

	decodeBody(t, w, &resp)
	if resp.User == nil || resp.User.Name != "Jane Smith" {
		t.Errorf("authenticated session: got %+v, want Jane Smith", resp.User)
	}
}

func TestLogoutWithoutSession(t *testing.T) {
	h := newAuthHandler(t)

	w := httptest.NewRecorder()
	h.Logout(w, httptest.NewRequest("POST", "/api/logout", nil))

	if w.Code != http.StatusNoContent {
		t.Errorf("status: got %d, want 204", w.Code)
	}
}

func TestGetArticleBySlug(t *testing.T) {
	h := newContentHandler(t)

	w := httptest.NewRecorder()
	r := withURLParam(httptest.NewRequest("GET", "/api/articles/slug/x", nil),
		"slug", "web-development-trends-2023")
	h.GetArticle(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}

	var article models.Article
	decodeBody(t, w, &article)
	if article.ID != "2" {
		t.Errorf("id: got %q, want 2", article.ID)
	}
	if article.Views != 831 {
		t.Errorf("views: got %d, want 831 (seeded 830 plus this read)", article.Views)
	}
}

func TestGetArticleUnknownSlug(t *testing.T) {
	h := newContentHandler(t)

	w := httptest.NewRecorder()
	r := withURLParam(httptest.NewRequest("GET", "/api/articles/slug/x", nil),
		"slug", "no-such-article")
	h.GetArticle(w, r)

	if w.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", w.Code)
	}
}

func TestListArticlesQueryParams(t *testing.T) {
	h := newContentHandler(t)

	tests := []struct {
		name      string
		query     string
		wantCode  int
		wantCount int
	}{
		{"all", "", http.StatusOK, 4},
		{"featured", "?featured=true", http.StatusOK, 2},
		{"category", "?category=cybersecurity", http.StatusOK, 1},
		{"limit", "?limit=2", http.StatusOK, 2},
		{"combined", "?featured=true&limit=1", http.StatusOK, 1},
		{"bad featured", "?featured=maybe", http.StatusBadRequest, 0},
		{"bad limit", "?limit=-1", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ListArticles(w, httptest.NewRequest("GET", "/api/articles"+tt.query, nil))

			if w.Code != tt.wantCode {
				t.Fatalf("status: got %d, want %d", w.Code, tt.wantCode)
			}
			if tt.wantCode != http.StatusOK {
				return
			}

			var articles []models.Article
			decodeBody(t, w, &articles)
			if len(articles) != tt.wantCount {
				t.Errorf("count: got %d, want %d", len(articles), tt.wantCount)
			}
		})
	}
}

func TestCreateArticleTakesAuthorFromSession(t *testing.T) {
	h := newContentHandler(t)

	body := `{"title":"Session Author Test","content":"Body text.","category":"Testing"}`
	w := httptest.NewRecorder()
	r := withSession(httptest.NewRequest("POST", "/api/articles", strings.NewReader(body)),
		models.User{ID: "2", Name: "Jane Smith", Avatar: "https://i.pravatar.cc/150?u=jane", Role: models.RoleAuthor})
	h.CreateArticle(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201: %s", w.Code, w.Body.String())
	}

	var article models.Article
	decodeBody(t, w, &article)
	if article.AuthorID != "2" || article.AuthorName != "Jane Smith" {
		t.Errorf("author snapshot: got %q/%q, want 2/Jane Smith", article.AuthorID, article.AuthorName)
	}
	if article.Slug != "session-author-test" {
		t.Errorf("slug: got %q", article.Slug)
	}
}

func TestCreateArticleWithoutSession(t *testing.T) {
	h := newContentHandler(t)

	body := `{"title":"T","content":"C","category":"X"}`
	w := httptest.NewRecorder()
	h.CreateArticle(w, httptest.NewRequest("POST", "/api/articles", strings.NewReader(body)))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", w.Code)
	}
}

func TestCreateArticleValidation(t *testing.T) {
	h := newContentHandler(t)

	body := `{"title":"  ","content":"C","category":"X"}`
	w := httptest.NewRecorder()
	r := withSession(httptest.NewRequest("POST", "/api/articles", strings.NewReader(body)),
		models.User{ID: "1", Name: "John Doe", Role: models.RoleAdmin})
	h.CreateArticle(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", w.Code)
	}

	var resp errorResponse
	decodeBody(t, w, &resp)
	if resp.Error != "title is required" {
		t.Errorf("error: got %q", resp.Error)
	}
}

func TestUpdateArticleNotFound(t *testing.T) {
	h := newContentHandler(t)

	w := httptest.NewRecorder()
	r := withURLParam(httptest.NewRequest("PUT", "/api/articles/x",
		strings.NewReader(`{"featured":true}`)), "id", "missing")
	h.UpdateArticle(w, r)

	if w.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", w.Code)
	}
}

func TestDeleteArticleNotFound(t *testing.T) {
	h := newContentHandler(t)

	w := httptest.NewRecorder()
	r := withURLParam(httptest.NewRequest("DELETE", "/api/articles/x", nil), "id", "missing")
	h.DeleteArticle(w, r)

	if w.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", w.Code)
	}
}

func TestListComments(t *testing.T) {
	h := newContentHandler(t)

	w := httptest.NewRecorder()
	r := withURLParam(httptest.NewRequest("GET", "/api/articles/1/comments", nil), "id", "1")
	h.ListComments(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}

	var comments []models.Comment
	decodeBody(t, w, &comments)
	if len(comments) != 3 {
		t.Errorf("count: got %d, want 3 seeded comments", len(comments))
	}
}

func TestCreateCommentTakesAuthorFromSession(t *testing.T) {
	h := newContentHandler(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/articles/2/comments",
		strings.NewReader(`{"content":"Great overview."}`))
	r = withURLParam(r, "id", "2")
	r = withSession(r, models.User{ID: "9", Name: "Reader", Role: models.RoleUser})
	h.CreateComment(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201: %s", w.Code, w.Body.String())
	}

	var comment models.Comment
	decodeBody(t, w, &comment)
	if comment.ArticleID != "2" {
		t.Errorf("articleId: got %q, want 2", comment.ArticleID)
	}
	if comment.AuthorName != "Reader" {
		t.Errorf("author: got %q, want Reader", comment.AuthorName)
	}
}

func TestUpdateCommentNotFound(t *testing.T) {
	h := newContentHandler(t)

	w := httptest.NewRecorder()
	r := withURLParam(httptest.NewRequest("PUT", "/api/comments/x",
		strings.NewReader(`{"content":"edited"}`)), "id", "missing")
	h.UpdateComment(w, r)

	if w.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", w.Code)
	}
}

func TestListCategories(t *testing.T) {
	h := newContentHandler(t)

	w := httptest.NewRecorder()
	h.ListCategories(w, httptest.NewRequest("GET", "/api/categories", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}

	var categories []store.CategoryCount
	decodeBody(t, w, &categories)
	if len(categories) != 4 {
		t.Fatalf("count: got %d, want 4 seeded categories", len(categories))
	}
	for _, c := range categories {
		if c.Count != 1 {
			t.Errorf("category %q: got count %d, want 1", c.Name, c.Count)
		}
	}
}
