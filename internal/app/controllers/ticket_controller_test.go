package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kaan/gamerhub/internal/app/models"
	"github.com/kaan/gamerhub/internal/app/models/dto"
	"github.com/kaan/gamerhub/internal/pkg/apperrors"
)

type stubTicketService struct{}

func (s *stubTicketService) CreateTicket(ctx context.Context, req *dto.CreateTicketRequest) (int64, error) {
	return 1, nil
}

func (s *stubTicketService) GetTicketByID(ctx context.Context, id int64) (*models.SupportTicket, error) {
	return &models.SupportTicket{ID: id, Status: models.TicketPending}, nil
}

func (s *stubTicketService) ListMyTickets(ctx context.Context, userIdentifier string) ([]*models.SupportTicket, error) {
	return []*models.SupportTicket{}, nil
}

func (s *stubTicketService) ListTicketsByStatus(ctx context.Context, status models.TicketStatus) ([]*models.SupportTicket, error) {
	return []*models.SupportTicket{}, nil
}

func (s *stubTicketService) ResolveTicket(ctx context.Context, id int64, req *dto.ResolveTicketRequest, resolvedBy string) (*models.SupportTicket, error) {
	return nil, apperrors.ErrTicketNotFound
}

func (s *stubTicketService) DeleteTicket(ctx context.Context, id int64) error {
	return nil
}

func TestCreateTicketInvalidBodyReturnsFieldErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewTicketController(&stubTicketService{})
	router.POST("/tickets", controller.CreateTicket)

	body := `{
		"title": "Cannot log in",
		"description": "Login button does nothing",
		"category": "account",
		"priority": "critical",
		"userName": "Visitor",
		"userEmail": "visitor@example.com",
		"userIdentifier": "visitor-a"
	}`
	req := httptest.NewRequest(http.MethodPost, "/tickets", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp struct {
		Error struct {
			Code    string          `json:"code"`
			Details json.RawMessage `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error.Code != string(dto.ErrorCodeValidationFailed) {
		t.Errorf("expected VAL_001, got %q", resp.Error.Code)
	}

	// The failed rules arrive as a structured field list, not a flat string
	var fieldErrors []dto.FieldError
	if err := json.Unmarshal(resp.Error.Details, &fieldErrors); err != nil {
		t.Fatalf("details should be a field-error list, got %s", resp.Error.Details)
	}
	if len(fieldErrors) != 1 || fieldErrors[0].Field != "Priority" {
		t.Errorf("expected a single Priority field error, got %+v", fieldErrors)
	}
}

func TestCreateTicketMalformedJSONStillRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewTicketController(&stubTicketService{})
	router.POST("/tickets", controller.CreateTicket)

	req := httptest.NewRequest(http.MethodPost, "/tickets", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
