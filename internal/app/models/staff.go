package models

import "time"

// StaffMember represents a roster member. PasswordHash never leaves the
// repository layer in API responses.
type StaffMember struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         RoleType  `json:"role"`
	Avatar       string    `json:"avatar"`
	Joined       string    `json:"joined"`
	Posts        int       `json:"posts"`
	Likes        int       `json:"likes"`
	Points       int       `json:"points"`
	Hits         int       `json:"hits"`
	CreatedAt    time.Time `json:"createdAt"`
}
