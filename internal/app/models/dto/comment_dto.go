package dto

// CreateCommentRequest is the payload for commenting on a post
type CreateCommentRequest struct {
	UserName       string `json:"userName" binding:"required,max=100"`
	UserIdentifier string `json:"userIdentifier" binding:"required,max=128"`
	Content        string `json:"content" binding:"required,max=5000"`
}
