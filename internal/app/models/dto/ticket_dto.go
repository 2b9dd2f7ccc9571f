package dto

// CreateTicketRequest is the payload submitted by an anonymous visitor
type CreateTicketRequest struct {
	Title          string `json:"title" binding:"required,max=200"`
	Description    string `json:"description" binding:"required"`
	Category       string `json:"category" binding:"required,max=50"`
	Priority       string `json:"priority" binding:"required,oneof=low medium high urgent"`
	UserName       string `json:"userName" binding:"required,max=100"`
	UserEmail      string `json:"userEmail" binding:"required,email"`
	UserIdentifier string `json:"userIdentifier" binding:"required,max=128"`
}

// ResolveTicketRequest carries the operator's optional free-text response
type ResolveTicketRequest struct {
	AdminResponse string `json:"adminResponse" binding:"omitempty,max=5000"`
}
