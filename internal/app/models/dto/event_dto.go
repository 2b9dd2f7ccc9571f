package dto

// CreateEventRequest is the payload for creating an event
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Date        string `json:"date" binding:"required,max=100"`
	Description string `json:"description" binding:"required"`
	Icon        string `json:"icon" binding:"max=16"`
	Status      string `json:"status" binding:"required,oneof=upcoming ongoing completed"`
}

// UpdateEventRequest is the payload for editing an event
type UpdateEventRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Date        string `json:"date" binding:"required,max=100"`
	Description string `json:"description" binding:"required"`
	Icon        string `json:"icon" binding:"max=16"`
	Status      string `json:"status" binding:"required,oneof=upcoming ongoing completed"`
}
