// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from article titles.
package slug

import (
	"regexp"
	"strings"
)

var (
	// nonWord matches anything that isn't a word character, whitespace, or hyphen.
	nonWord = regexp.MustCompile(`[^\w\s-]`)
	// whitespace collapses runs of whitespace into a single separator.
	whitespace = regexp.MustCompile(`\s+`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a URL-friendly slug from the given title.
// Example: "The Future of AI: New Frontiers!" → "the-future-of-ai-new-frontiers"
func Generate(title string) string {
	result := strings.ToLower(strings.TrimSpace(title))
	result = nonWord.ReplaceAllString(result, "")
	result = whitespace.ReplaceAllString(result, "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}
