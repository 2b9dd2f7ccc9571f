package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	EventRepository   *EventRepository
	StaffRepository   *StaffRepository
	TicketRepository  *TicketRepository
	PostRepository    *PostRepository
	CommentRepository *CommentRepository
	UpdateRepository  *UpdateRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		EventRepository:   NewEventRepository(db),
		StaffRepository:   NewStaffRepository(db),
		TicketRepository:  NewTicketRepository(db),
		PostRepository:    NewPostRepository(db),
		CommentRepository: NewCommentRepository(db),
		UpdateRepository:  NewUpdateRepository(db),
	}
}
