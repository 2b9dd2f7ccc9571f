package dto

import "github.com/kaan/gamerhub/internal/app/models"

// CreatePostRequest is the payload for publishing a post.
// Excerpt is optional; when absent it is derived from the content.
type CreatePostRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Content  string `json:"content" binding:"required"`
	Excerpt  string `json:"excerpt" binding:"omitempty,max=500"`
	ImageURL string `json:"imageUrl" binding:"omitempty,url"`
}

// UpdatePostRequest is the payload for editing a post
type UpdatePostRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Content  string `json:"content" binding:"required"`
	Excerpt  string `json:"excerpt" binding:"omitempty,max=500"`
	ImageURL string `json:"imageUrl" binding:"omitempty,url"`
}

// LikeRequest attributes a like to a returning browser
type LikeRequest struct {
	UserIdentifier string `json:"userIdentifier" binding:"required,max=128"`
}

// LikeResponse is the structured outcome of a like attempt. A duplicate like
// is an expected rejection, not an error.
type LikeResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	LikesCount int    `json:"likesCount,omitempty"`
}

// PostResponse augments a post with its derived trending flag
type PostResponse struct {
	models.Post
	IsTrending bool `json:"isTrending"`
}

// FromPost converts a post model into its response shape
func FromPost(p *models.Post) PostResponse {
	return PostResponse{
		Post:       *p,
		IsTrending: p.IsTrending(),
	}
}

// PostListResponse is a paginated page of posts
type PostListResponse struct {
	Posts      []PostResponse `json:"posts"`
	Pagination PaginationInfo `json:"pagination"`
}
