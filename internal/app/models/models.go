package models

// RoleType defines the operator role carried in token claims
type RoleType string

const (
	RoleAdmin RoleType = "ADMIN"
	RoleStaff RoleType = "STAFF"
)

// EventStatus drives the display bucket of an event
type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventOngoing   EventStatus = "ongoing"
	EventCompleted EventStatus = "completed"
)

// ValidEventStatus reports whether s is a known event status.
func ValidEventStatus(s EventStatus) bool {
	switch s {
	case EventUpcoming, EventOngoing, EventCompleted:
		return true
	}
	return false
}

// TicketStatus is the support ticket state. Transitions are one-way:
// pending -> resolved.
type TicketStatus string

const (
	TicketPending  TicketStatus = "pending"
	TicketResolved TicketStatus = "resolved"
)

// TicketPriority is a closed enumeration
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

// ValidTicketPriority reports whether p is a known ticket priority.
func ValidTicketPriority(p TicketPriority) bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityUrgent:
		return true
	}
	return false
}

// AuthorType identifies which kind of operator authored a post
type AuthorType string

const (
	AuthorAdmin AuthorType = "admin"
	AuthorStaff AuthorType = "staff"
)

// UpdatePriority is a closed enumeration for site updates
type UpdatePriority string

const (
	UpdatePriorityLow      UpdatePriority = "low"
	UpdatePriorityMedium   UpdatePriority = "medium"
	UpdatePriorityHigh     UpdatePriority = "high"
	UpdatePriorityCritical UpdatePriority = "critical"
)

// ValidUpdatePriority reports whether p is a known update priority.
func ValidUpdatePriority(p UpdatePriority) bool {
	switch p {
	case UpdatePriorityLow, UpdatePriorityMedium, UpdatePriorityHigh, UpdatePriorityCritical:
		return true
	}
	return false
}
