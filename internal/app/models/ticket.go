package models

import "time"

// SupportTicket represents a support request submitted by an anonymous
// visitor. UserIdentifier is the client-generated opaque token that scopes
// "my tickets" listings to a returning browser.
type SupportTicket struct {
	ID             int64          `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Category       string         `json:"category"`
	Priority       TicketPriority `json:"priority"`
	UserName       string         `json:"userName"`
	UserEmail      string         `json:"userEmail"`
	UserIdentifier string         `json:"-"`
	Status         TicketStatus   `json:"status"`
	AdminResponse  *string        `json:"adminResponse,omitempty"`
	ResolvedBy     *string        `json:"resolvedBy,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	ResolvedAt     *time.Time     `json:"resolvedAt,omitempty"`
}
