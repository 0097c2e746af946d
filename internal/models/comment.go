// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Comment is a reader comment on an article. ParentID is an optional
// back-reference for threaded replies; it is a lookup hint only — the store
// does not validate that it points at an existing comment, and deleting a
// parent does not remove its replies.
type Comment struct {
	ID           string    `json:"id"`
	Content      string    `json:"content"`
	ArticleID    string    `json:"articleId"`
	AuthorID     string    `json:"authorId"`
	AuthorName   string    `json:"authorName"`
	AuthorAvatar string    `json:"authorAvatar,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	ParentID     string    `json:"parentId,omitempty"`
}
