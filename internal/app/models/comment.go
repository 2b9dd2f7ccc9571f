package models

import "time"

// Comment belongs to exactly one post and is written by an anonymous visitor.
type Comment struct {
	ID             int64     `json:"id"`
	PostID         int64     `json:"postId"`
	UserName       string    `json:"userName"`
	UserIdentifier string    `json:"-"`
	Content        string    `json:"content"`
	LikesCount     int       `json:"likesCount"`
	CreatedAt      time.Time `json:"createdAt"`
}
