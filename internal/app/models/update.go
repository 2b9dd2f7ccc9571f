package models

import "time"

// Update represents a site update/changelog entry authored by the admin.
// Featured updates surface in a separate prominent view.
type Update struct {
	ID         int64          `json:"id"`
	Title      string         `json:"title"`
	Content    string         `json:"content"`
	Version    string         `json:"version,omitempty"`
	Category   string         `json:"category"`
	Priority   UpdatePriority `json:"priority"`
	IsFeatured bool           `json:"isFeatured"`
	AuthorID   int64          `json:"authorId"`
	AuthorName string         `json:"authorName"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}
