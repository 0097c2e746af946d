// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"math"
	"strings"
	"time"
)

// wordsPerMinute is the reading speed used for read-time estimation.
const wordsPerMinute = 200

// Article represents a published or draft blog article. Author fields are a
// denormalized snapshot taken at creation time, so later profile edits do
// not rewrite historical content.
type Article struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Excerpt      string    `json:"excerpt"`
	Content      string    `json:"content"`
	CoverImage   string    `json:"coverImage"`
	AuthorID     string    `json:"authorId"`
	AuthorName   string    `json:"authorName"`
	AuthorAvatar string    `json:"authorAvatar,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Category     string    `json:"category"`
	Tags         []string  `json:"tags"`
	ReadTime     int       `json:"readTime"`
	Featured     bool      `json:"featured"`
	Views        int       `json:"views"`
}

// HasTag reports whether the article carries the given tag, ignoring case.
func (a *Article) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// EstimateReadTime returns the estimated reading time in minutes for the
// given content, at 200 words per minute. Any non-empty content yields at
// least one minute.
func EstimateReadTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 1
	}
	return int(math.Ceil(float64(words) / wordsPerMinute))
}
