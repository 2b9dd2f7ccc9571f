package dto

// CreateUpdateRequest is the payload for publishing a site update
type CreateUpdateRequest struct {
	Title      string `json:"title" binding:"required,max=200"`
	Content    string `json:"content" binding:"required"`
	Version    string `json:"version" binding:"omitempty,max=50"`
	Category   string `json:"category" binding:"required,max=50"`
	Priority   string `json:"priority" binding:"required,oneof=low medium high critical"`
	IsFeatured bool   `json:"isFeatured"`
}

// UpdateUpdateRequest is the payload for editing a site update
type UpdateUpdateRequest struct {
	Title      string `json:"title" binding:"required,max=200"`
	Content    string `json:"content" binding:"required"`
	Version    string `json:"version" binding:"omitempty,max=50"`
	Category   string `json:"category" binding:"required,max=50"`
	Priority   string `json:"priority" binding:"required,oneof=low medium high critical"`
	IsFeatured bool   `json:"isFeatured"`
}

// UpdateListResponse is a paginated page of site updates
type UpdateListResponse struct {
	Updates    interface{}    `json:"updates"`
	Pagination PaginationInfo `json:"pagination"`
}
