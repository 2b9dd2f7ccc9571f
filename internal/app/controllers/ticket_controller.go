package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kaan/gamerhub/internal/app/models"
	"github.com/kaan/gamerhub/internal/app/models/dto"
	"github.com/kaan/gamerhub/internal/app/services"
	"github.com/kaan/gamerhub/internal/middleware"
)

// TicketController handles support ticket operations
type TicketController struct {
	ticketService services.TicketService
}

// NewTicketController creates a new TicketController
func NewTicketController(ticketService services.TicketService) *TicketController {
	return &TicketController{
		ticketService: ticketService,
	}
}

// CreateTicket submits a support ticket
// @Summary Submit a support ticket
// @Description Records a new pending ticket from an anonymous visitor
// @Tags tickets
// @Accept json
// @Produce json
// @Param request body dto.CreateTicketRequest true "Ticket information"
// @Success 201 {object} dto.APIResponse{data=models.SupportTicket} "Ticket created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /tickets [post]
func (c *TicketController) CreateTicket(ctx *gin.Context) {
	var req dto.CreateTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	id, err := c.ticketService.CreateTicket(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	created, err := c.ticketService.GetTicketByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      created,
		Timestamp: time.Now(),
	})
}

// ListMyTickets retrieves the tickets of a returning visitor
// @Summary List my tickets
// @Description Retrieves the tickets submitted under the caller's user identifier
// @Tags tickets
// @Produce json
// @Param userIdentifier query string true "Visitor identifier"
// @Success 200 {object} dto.APIResponse{data=[]models.SupportTicket} "Tickets retrieved successfully"
// @Router /tickets/mine [get]
func (c *TicketController) ListMyTickets(ctx *gin.Context) {
	userIdentifier := ctx.Query("userIdentifier")

	tickets, err := c.ticketService.ListMyTickets(ctx, userIdentifier)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      tickets,
		Timestamp: time.Now(),
	})
}

// ListTickets retrieves tickets by status for the admin queue
// @Summary List tickets by status
// @Description Retrieves pending or resolved tickets for the admin panel
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param status query string false "Ticket status (pending or resolved)" default(pending)
// @Success 200 {object} dto.APIResponse{data=[]models.SupportTicket} "Tickets retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Router /tickets [get]
func (c *TicketController) ListTickets(ctx *gin.Context) {
	status := models.TicketStatus(ctx.DefaultQuery("status", string(models.TicketPending)))

	tickets, err := c.ticketService.ListTicketsByStatus(ctx, status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      tickets,
		Timestamp: time.Now(),
	})
}

// ResolveTicket resolves a pending ticket
// @Summary Resolve a ticket
// @Description Moves a pending ticket to resolved and emails the submitter
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID" Format(int64) minimum(1)
// @Param request body dto.ResolveTicketRequest true "Optional response text"
// @Success 200 {object} dto.APIResponse{data=models.SupportTicket} "Ticket resolved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Ticket not found"
// @Failure 409 {object} dto.ErrorResponse "Ticket already resolved"
// @Router /tickets/{id}/resolve [put]
func (c *TicketController) ResolveTicket(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ticket ID")
		errorDetail = errorDetail.WithDetails("Ticket ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.ResolveTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resolvedBy := ctx.GetString(middleware.ContextUsername)

	ticket, err := c.ticketService.ResolveTicket(ctx, id, &req, resolvedBy)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      ticket,
		Timestamp: time.Now(),
	})
}

// DeleteTicket deletes a ticket
// @Summary Delete a ticket
// @Description Deletes a ticket by its ID
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Ticket deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid ticket ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Ticket not found"
// @Router /tickets/{id} [delete]
func (c *TicketController) DeleteTicket(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ticket ID")
		errorDetail = errorDetail.WithDetails("Ticket ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.ticketService.DeleteTicket(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Ticket deleted successfully"},
		Timestamp: time.Now(),
	})
}
