package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kaan/gamerhub/internal/app/models/dto"
	"github.com/kaan/gamerhub/internal/app/services"
	"github.com/kaan/gamerhub/internal/middleware"
)

// StaffController handles staff roster operations
type StaffController struct {
	staffService services.StaffService
}

// NewStaffController creates a new StaffController
func NewStaffController(staffService services.StaffService) *StaffController {
	return &StaffController{
		staffService: staffService,
	}
}

// CreateStaff adds a roster member
// @Summary Add a staff member
// @Description Adds a new member to the staff roster with login credentials
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStaffRequest true "Staff member information"
// @Success 201 {object} dto.APIResponse{data=dto.StaffResponse} "Staff member created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 409 {object} dto.ErrorResponse "Username already taken"
// @Router /staff [post]
func (c *StaffController) CreateStaff(ctx *gin.Context) {
	var req dto.CreateStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	id, err := c.staffService.CreateStaff(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	created, err := c.staffService.GetStaffByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromStaffMember(created),
		Timestamp: time.Now(),
	})
}

// GetRoster retrieves the public staff roster
// @Summary Get the staff roster
// @Description Retrieves all staff members without credential fields
// @Tags staff
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.StaffResponse} "Roster retrieved successfully"
// @Router /staff [get]
func (c *StaffController) GetRoster(ctx *gin.Context) {
	roster, err := c.staffService.GetRoster(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.StaffResponse, 0, len(roster))
	for _, member := range roster {
		responses = append(responses, dto.FromStaffMember(member))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      responses,
		Timestamp: time.Now(),
	})
}

// GetStaffByID retrieves a single roster member
// @Summary Get a staff member
// @Description Retrieves a roster member by ID for the management panel
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.StaffResponse} "Staff member retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid staff ID"
// @Failure 404 {object} dto.ErrorResponse "Staff member not found"
// @Router /staff/{id} [get]
func (c *StaffController) GetStaffByID(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid staff ID")
		errorDetail = errorDetail.WithDetails("Staff ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	member, err := c.staffService.GetStaffByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromStaffMember(member),
		Timestamp: time.Now(),
	})
}

// UpdateStaff updates a roster member
// @Summary Update a staff member
// @Description Updates a roster member; an empty password keeps the current one
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID" Format(int64) minimum(1)
// @Param request body dto.UpdateStaffRequest true "Updated staff information"
// @Success 200 {object} dto.APIResponse{data=dto.StaffResponse} "Staff member updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Staff member not found"
// @Router /staff/{id} [put]
func (c *StaffController) UpdateStaff(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid staff ID")
		errorDetail = errorDetail.WithDetails("Staff ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.staffService.UpdateStaff(ctx, id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	updated, err := c.staffService.GetStaffByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromStaffMember(updated),
		Timestamp: time.Now(),
	})
}

// DeleteStaff removes a roster member
// @Summary Delete a staff member
// @Description Removes a member from the staff roster
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Staff member deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid staff ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Staff member not found"
// @Router /staff/{id} [delete]
func (c *StaffController) DeleteStaff(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid staff ID")
		errorDetail = errorDetail.WithDetails("Staff ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.staffService.DeleteStaff(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Staff member deleted successfully"},
		Timestamp: time.Now(),
	})
}
