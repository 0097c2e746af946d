package handlers

import "strings"

const (
	maxTitleLength   = 200
	maxContentLength = 100000
	maxCommentLength = 5000
	maxNameLength    = 100
	maxEmailLength   = 254
	minPasswordLen   = 6
)

// validateArticleDraft returns the first problem found, or "".
func validateArticleDraft(title, content, category string) string {
	if strings.TrimSpace(title) == "" {
		return "title is required"
	}
	if len(title) > maxTitleLength {
		return "title is too long"
	}
	if strings.TrimSpace(content) == "" {
		return "content is required"
	}
	if len(content) > maxContentLength {
		return "content is too long"
	}
	if strings.TrimSpace(category) == "" {
		return "category is required"
	}
	return ""
}

// validateArticleUpdate checks only fields present in a partial update.
func validateArticleUpdate(title, content *string) string {
	if title != nil {
		if strings.TrimSpace(*title) == "" {
			return "title is required"
		}
		if len(*title) > maxTitleLength {
			return "title is too long"
		}
	}
	if content != nil {
		if strings.TrimSpace(*content) == "" {
			return "content is required"
		}
		if len(*content) > maxContentLength {
			return "content is too long"
		}
	}
	return ""
}

func validateCommentContent(content string) string {
	if strings.TrimSpace(content) == "" {
		return "content is required"
	}
	if len(content) > maxCommentLength {
		return "content is too long"
	}
	return ""
}

func validateCredentials(email, password string) string {
	if strings.TrimSpace(email) == "" {
		return "email is required"
	}
	if !strings.Contains(email, "@") || len(email) > maxEmailLength {
		return "email is invalid"
	}
	if password == "" {
		return "password is required"
	}
	return ""
}

func validateSignup(name, email, password string) string {
	if strings.TrimSpace(name) == "" {
		return "name is required"
	}
	if len(name) > maxNameLength {
		return "name is too long"
	}
	if msg := validateCredentials(email, password); msg != "" {
		return msg
	}
	if len(password) < minPasswordLen {
		return "password must be at least 6 characters"
	}
	return ""
}
