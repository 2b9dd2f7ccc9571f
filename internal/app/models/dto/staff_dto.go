package dto

import "github.com/kaan/gamerhub/internal/app/models"

// CreateStaffRequest is the payload for adding a roster member
type CreateStaffRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,max=50"`
	Avatar   string `json:"avatar" binding:"omitempty,url"`
	Joined   string `json:"joined" binding:"max=100"`
}

// UpdateStaffRequest is the payload for editing a roster member.
// Password is optional; an empty value keeps the current hash.
type UpdateStaffRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"omitempty,min=6"`
	Role     string `json:"role" binding:"required,max=50"`
	Avatar   string `json:"avatar" binding:"omitempty,url"`
	Joined   string `json:"joined" binding:"max=100"`
	Posts    int    `json:"posts" binding:"min=0"`
	Likes    int    `json:"likes" binding:"min=0"`
	Points   int    `json:"points" binding:"min=0"`
	Hits     int    `json:"hits" binding:"min=0"`
}

// StaffResponse is the public roster shape; no credential fields
type StaffResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
	Joined string `json:"joined"`
	Posts  int    `json:"posts"`
	Likes  int    `json:"likes"`
	Points int    `json:"points"`
	Hits   int    `json:"hits"`
}

// FromStaffMember converts a staff model into the public roster shape
func FromStaffMember(m *models.StaffMember) StaffResponse {
	return StaffResponse{
		ID:     m.ID,
		Name:   m.Name,
		Role:   string(m.Role),
		Avatar: m.Avatar,
		Joined: m.Joined,
		Posts:  m.Posts,
		Likes:  m.Likes,
		Points: m.Points,
		Hits:   m.Hits,
	}
}
