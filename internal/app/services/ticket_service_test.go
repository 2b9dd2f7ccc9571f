package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kaan/gamerhub/internal/app/models"
	"github.com/kaan/gamerhub/internal/app/models/dto"
	"github.com/kaan/gamerhub/internal/pkg/apperrors"
)

type fakeTicketRepo struct {
	tickets map[int64]*models.SupportTicket
	nextID  int64
	listErr error
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: map[int64]*models.SupportTicket{}, nextID: 1}
}

func (f *fakeTicketRepo) Create(ctx context.Context, ticket *models.SupportTicket) (int64, error) {
	ticket.ID = f.nextID
	ticket.Status = models.TicketPending
	ticket.CreatedAt = time.Now()
	f.tickets[ticket.ID] = ticket
	f.nextID++
	return ticket.ID, nil
}

func (f *fakeTicketRepo) GetByID(ctx context.Context, id int64) (*models.SupportTicket, error) {
	ticket, ok := f.tickets[id]
	if !ok {
		return nil, apperrors.ErrTicketNotFound
	}
	return ticket, nil
}

func (f *fakeTicketRepo) ListByStatus(ctx context.Context, status models.TicketStatus) ([]*models.SupportTicket, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []*models.SupportTicket{}
	for _, t := range f.tickets {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTicketRepo) ListByUserIdentifier(ctx context.Context, userIdentifier string) ([]*models.SupportTicket, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []*models.SupportTicket{}
	for _, t := range f.tickets {
		if t.UserIdentifier == userIdentifier {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTicketRepo) Resolve(ctx context.Context, id int64, adminResponse *string, resolvedBy string) error {
	ticket, ok := f.tickets[id]
	if !ok {
		return apperrors.ErrTicketNotFound
	}
	if ticket.Status != models.TicketPending {
		return apperrors.ErrTicketAlreadyResolved
	}
	now := time.Now()
	ticket.Status = models.TicketResolved
	ticket.AdminResponse = adminResponse
	ticket.ResolvedBy = &resolvedBy
	ticket.ResolvedAt = &now
	return nil
}

func (f *fakeTicketRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.tickets[id]; !ok {
		return apperrors.ErrTicketNotFound
	}
	delete(f.tickets, id)
	return nil
}

type fakeNotifier struct {
	sent    []string
	sendErr error
}

func (f *fakeNotifier) SendTicketResolvedEmail(toEmail, toName, ticketTitle, adminResponse string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, toEmail)
	return nil
}

func TestResolveTicketIsOneWay(t *testing.T) {
	repo := newFakeTicketRepo()
	notifier := &fakeNotifier{}
	svc := NewTicketService(repo, notifier)

	id, err := svc.CreateTicket(context.Background(), &dto.CreateTicketRequest{
		Title:          "Cannot log in",
		Description:    "Login button does nothing",
		Category:       "account",
		Priority:       "high",
		UserName:       "Visitor",
		UserEmail:      "visitor@example.com",
		UserIdentifier: "visitor-a",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	response := "Fixed, try again"
	ticket, err := svc.ResolveTicket(context.Background(), id, &dto.ResolveTicketRequest{AdminResponse: response}, "admin")
	if err != nil {
		t.Fatalf("resolve should succeed: %v", err)
	}
	if ticket.Status != models.TicketResolved {
		t.Errorf("expected resolved status, got %q", ticket.Status)
	}
	if ticket.AdminResponse == nil || *ticket.AdminResponse != response {
		t.Error("expected admin response recorded")
	}
	if ticket.ResolvedAt == nil {
		t.Error("expected resolved timestamp")
	}
	if len(notifier.sent) != 1 || notifier.sent[0] != "visitor@example.com" {
		t.Errorf("expected one resolution email to the submitter, got %v", notifier.sent)
	}

	// A second resolve is a conflict, not a silent overwrite
	_, err = svc.ResolveTicket(context.Background(), id, &dto.ResolveTicketRequest{}, "admin")
	if !errors.Is(err, apperrors.ErrTicketAlreadyResolved) {
		t.Fatalf("expected already-resolved conflict, got %v", err)
	}
}

func TestResolveTicketSurvivesEmailFailure(t *testing.T) {
	repo := newFakeTicketRepo()
	notifier := &fakeNotifier{sendErr: errors.New("smtp unreachable")}
	svc := NewTicketService(repo, notifier)

	id, _ := svc.CreateTicket(context.Background(), &dto.CreateTicketRequest{
		Title:          "Broken page",
		Description:    "Page 500s",
		Category:       "site",
		Priority:       "urgent",
		UserName:       "Visitor",
		UserEmail:      "visitor@example.com",
		UserIdentifier: "visitor-b",
	})

	ticket, err := svc.ResolveTicket(context.Background(), id, &dto.ResolveTicketRequest{}, "admin")
	if err != nil {
		t.Fatalf("mail failure must not roll back the resolution, got %v", err)
	}
	if ticket.Status != models.TicketResolved {
		t.Errorf("expected resolved status, got %q", ticket.Status)
	}
}

func TestCreateTicketRejectsUnknownPriority(t *testing.T) {
	svc := NewTicketService(newFakeTicketRepo(), &fakeNotifier{})

	_, err := svc.CreateTicket(context.Background(), &dto.CreateTicketRequest{
		Title:          "Title",
		Description:    "Desc",
		Category:       "other",
		Priority:       "critical",
		UserName:       "Visitor",
		UserEmail:      "v@example.com",
		UserIdentifier: "visitor-c",
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation failure for unknown priority, got %v", err)
	}
}

func TestListMyTicketsScopedToIdentifier(t *testing.T) {
	repo := newFakeTicketRepo()
	svc := NewTicketService(repo, &fakeNotifier{})

	for _, id := range []string{"visitor-a", "visitor-a", "visitor-b"} {
		_, _ = svc.CreateTicket(context.Background(), &dto.CreateTicketRequest{
			Title:          "T",
			Description:    "D",
			Category:       "other",
			Priority:       "low",
			UserName:       "V",
			UserEmail:      "v@example.com",
			UserIdentifier: id,
		})
	}

	mine, err := svc.ListMyTickets(context.Background(), "visitor-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("expected 2 tickets for visitor-a, got %d", len(mine))
	}

	// No identifier means no tickets, not an error
	none, err := svc.ListMyTickets(context.Background(), "")
	if err != nil || len(none) != 0 {
		t.Errorf("expected empty result for blank identifier, got %v / %v", none, err)
	}
}

func TestListTicketsDegradesToEmptyOnFailure(t *testing.T) {
	repo := newFakeTicketRepo()
	repo.listErr = errors.New("query failed")
	svc := NewTicketService(repo, &fakeNotifier{})

	tickets, err := svc.ListTicketsByStatus(context.Background(), models.TicketPending)
	if err != nil {
		t.Fatalf("expected no error on list failure, got %v", err)
	}
	if len(tickets) != 0 {
		t.Errorf("expected empty list, got %d", len(tickets))
	}
}
