package models

import "time"

// TrendingThreshold is the like count at which a post counts as trending.
const TrendingThreshold = 5

// Post represents a news/blog entry authored by the admin or a staff member.
// Author fields are denormalized so a post survives roster changes.
type Post struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Excerpt      string     `json:"excerpt"`
	ImageURL     string     `json:"imageUrl,omitempty"`
	AuthorID     int64      `json:"authorId"`
	AuthorName   string     `json:"authorName"`
	AuthorAvatar string     `json:"authorAvatar,omitempty"`
	AuthorType   AuthorType `json:"authorType"`
	LikesCount   int        `json:"likesCount"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// IsTrending reports whether the post has crossed the trending threshold.
func (p *Post) IsTrending() bool {
	return p.LikesCount >= TrendingThreshold
}
