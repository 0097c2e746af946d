// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"techpulse/internal/kv"
	"techpulse/internal/models"
)

// Initialize writes the fixed seed data for any collection key that is
// absent. It is idempotent: an existing (even empty) collection is never
// touched, so running it twice cannot duplicate or reset data.
func (s *ContentStore) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.kv.Get(ctx, articlesKey); errors.Is(err, kv.ErrNotFound) {
		if err := writeCollection(ctx, s.kv, articlesKey, seedArticles()); err != nil {
			return fmt.Errorf("seed articles: %w", err)
		}
		slog.Info("seeded articles collection", "count", len(seedArticles()))
	}

	if _, err := s.kv.Get(ctx, commentsKey); errors.Is(err, kv.ErrNotFound) {
		if err := writeCollection(ctx, s.kv, commentsKey, seedComments()); err != nil {
			return fmt.Errorf("seed comments: %w", err)
		}
		slog.Info("seeded comments collection", "count", len(seedComments()))
	}

	return nil
}

// seedArticles returns the four default articles: one per launch category,
// two of them featured. Read times here are fixed editorial values, not
// derived from the sample bodies.
func seedArticles() []models.Article {
	return []models.Article{
		{
			ID:      "1",
			Title:   "The Future of Artificial Intelligence: Exploring New Frontiers",
			Slug:    "future-of-artificial-intelligence",
			Excerpt: "Discover how AI is transforming industries and what the future holds for this revolutionary technology.",
			Content: `# The Future of Artificial Intelligence

Artificial Intelligence has rapidly evolved from a theoretical concept to a transformative force across industries.

## Current Applications

AI is revolutionizing diagnostics, drug discovery, and personalized medicine. Self-driving vehicles grow more sophisticated each year, and predictive analytics helps businesses make data-driven decisions.

## Ethical Considerations

As AI becomes more powerful, privacy, bias, accountability, and job displacement sit at the forefront of the discussion.

## The Road Ahead

General AI, human-AI collaboration, quantum acceleration, and brain-computer interfaces all promise groundbreaking developments. The journey is just beginning, and its ultimate impact depends on how we guide it.`,
			CoverImage:   "https://images.unsplash.com/photo-1620712943543-bcc4688e7485?ixlib=rb-4.0.3&auto=format&fit=crop&w=1600&q=80",
			AuthorID:     "1",
			AuthorName:   "John Doe",
			AuthorAvatar: "https://i.pravatar.cc/150?u=john",
			CreatedAt:    time.Date(2023, time.November, 15, 0, 0, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2023, time.November, 15, 0, 0, 0, 0, time.UTC),
			Category:     "Artificial Intelligence",
			Tags:         []string{"AI", "Machine Learning", "Technology", "Future"},
			ReadTime:     8,
			Featured:     true,
			Views:        1240,
		},
		{
			ID:      "2",
			Title:   "Web Development Trends in 2023: What You Need to Know",
			Slug:    "web-development-trends-2023",
			Excerpt: "Stay ahead of the curve with these emerging web development technologies and methodologies.",
			Content: `# Web Development Trends in 2023

The web development landscape continues to evolve at a rapid pace.

## Frameworks

React, Vue, and Angular still dominate, but Svelte and Solid.js are gaining ground for their performance and developer experience. Next.js, Nuxt, and SvelteKit are becoming the standard for full-stack work.

## Performance and Security

Core Web Vitals remain crucial for SEO and user experience, and with increasing cyber threats, CSP, HTTPS, and regular audits are standard practice.

Stay ahead of these trends to build applications that are fast, secure, and delightful to use.`,
			CoverImage:   "https://images.unsplash.com/photo-1607798748738-b15c40d33d57?ixlib=rb-4.0.3&auto=format&fit=crop&w=1600&q=80",
			AuthorID:     "2",
			AuthorName:   "Jane Smith",
			AuthorAvatar: "https://i.pravatar.cc/150?u=jane",
			CreatedAt:    time.Date(2023, time.December, 2, 0, 0, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2023, time.December, 2, 0, 0, 0, 0, time.UTC),
			Category:     "Web Development",
			Tags:         []string{"JavaScript", "React", "Web Development", "Frontend"},
			ReadTime:     6,
			Featured:     false,
			Views:        830,
		},
		{
			ID:      "3",
			Title:   "Cybersecurity Best Practices for Remote Work",
			Slug:    "cybersecurity-best-practices-remote-work",
			Excerpt: "Protect your data and systems with these essential cybersecurity measures for remote teams.",
			Content: `# Cybersecurity Best Practices for Remote Work

As remote work becomes increasingly common, cybersecurity has never been more important.

## Essentials

Change default router passwords, enable WPA3, and keep firmware updated. Always use a company VPN when accessing sensitive information. Use a password manager with strong, unique passwords and enable two-factor authentication wherever possible.

## Phishing Awareness

Be vigilant about phishing attempts, which have increased dramatically during the shift to remote work. Verify sender identities before clicking links or downloading attachments.`,
			CoverImage:   "https://images.unsplash.com/photo-1563986768609-322da13575f3?ixlib=rb-4.0.3&auto=format&fit=crop&w=1600&q=80",
			AuthorID:     "1",
			AuthorName:   "John Doe",
			AuthorAvatar: "https://i.pravatar.cc/150?u=john",
			CreatedAt:    time.Date(2023, time.December, 10, 0, 0, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2023, time.December, 10, 0, 0, 0, 0, time.UTC),
			Category:     "Cybersecurity",
			Tags:         []string{"Security", "Remote Work", "VPN", "Data Protection"},
			ReadTime:     5,
			Featured:     false,
			Views:        615,
		},
		{
			ID:      "4",
			Title:   "The Rise of Quantum Computing: Implications for Cryptography",
			Slug:    "quantum-computing-implications-cryptography",
			Excerpt: "How quantum computers will transform cybersecurity and what organizations can do to prepare.",
			Content: `# The Rise of Quantum Computing

Quantum computing represents a paradigm shift in computational power, with profound implications for cryptography.

## Threat to Current Cryptography

Many encryption methods rely on problems that are hard for classical computers, such as factoring large numbers. Quantum computers running Shor's algorithm could break them in minutes rather than billions of years.

## Post-Quantum Cryptography

Researchers are standardizing quantum-resistant algorithms: lattice-based, hash-based, code-based, and isogeny-based schemes. Organizations should inventory their cryptographic implementations now and build crypto-agility for the transition ahead.`,
			CoverImage:   "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?ixlib=rb-4.0.3&auto=format&fit=crop&w=1600&q=80",
			AuthorID:     "2",
			AuthorName:   "Jane Smith",
			AuthorAvatar: "https://i.pravatar.cc/150?u=jane",
			CreatedAt:    time.Date(2023, time.December, 20, 0, 0, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2023, time.December, 20, 0, 0, 0, 0, time.UTC),
			Category:     "Quantum Computing",
			Tags:         []string{"Quantum", "Cryptography", "Security", "Computing"},
			ReadTime:     7,
			Featured:     true,
			Views:        925,
		},
	}
}

// seedComments returns the default comment thread on the first article.
func seedComments() []models.Comment {
	return []models.Comment{
		{
			ID:           "1",
			Content:      "Great article! I especially appreciated the insights on AI in healthcare.",
			ArticleID:    "1",
			AuthorID:     "2",
			AuthorName:   "Jane Smith",
			AuthorAvatar: "https://i.pravatar.cc/150?u=jane",
			CreatedAt:    time.Date(2023, time.November, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "2",
			Content:      "I agree with Jane. The healthcare applications are particularly exciting.",
			ArticleID:    "1",
			AuthorID:     "3",
			AuthorName:   "Robert Johnson",
			AuthorAvatar: "https://i.pravatar.cc/150?u=robert",
			CreatedAt:    time.Date(2023, time.November, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "3",
			Content:      "Have you considered the ethical implications of AI in autonomous vehicles?",
			ArticleID:    "1",
			AuthorID:     "4",
			AuthorName:   "Emily Chen",
			AuthorAvatar: "https://i.pravatar.cc/150?u=emily",
			CreatedAt:    time.Date(2023, time.November, 18, 0, 0, 0, 0, time.UTC),
		},
	}
}
