package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kaan/gamerhub/internal/app/models/dto"
	"github.com/kaan/gamerhub/internal/app/services"
	"github.com/kaan/gamerhub/internal/middleware"
	"github.com/kaan/gamerhub/internal/pkg/helpers"
)

// UpdateController handles site update operations
type UpdateController struct {
	updateService services.UpdateService
}

// NewUpdateController creates a new UpdateController
func NewUpdateController(updateService services.UpdateService) *UpdateController {
	return &UpdateController{
		updateService: updateService,
	}
}

// CreateUpdate publishes a site update
// @Summary Publish a site update
// @Description Publishes a changelog entry under the authenticated operator's name
// @Tags updates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUpdateRequest true "Update content"
// @Success 201 {object} dto.APIResponse{data=models.Update} "Update created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Router /updates [post]
func (c *UpdateController) CreateUpdate(ctx *gin.Context) {
	var req dto.CreateUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	authorID := ctx.GetInt64(middleware.ContextStaffID)

	id, err := c.updateService.CreateUpdate(ctx, &req, authorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	created, err := c.updateService.GetUpdateByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      created,
		Timestamp: time.Now(),
	})
}

// ListUpdates retrieves a page of site updates
// @Summary List site updates
// @Description Retrieves a page of changelog entries, newest first
// @Tags updates
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.UpdateListResponse} "Updates retrieved successfully"
// @Router /updates [get]
func (c *UpdateController) ListUpdates(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	updates, total, err := c.updateService.ListUpdates(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.UpdateListResponse{
			Updates:    updates,
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// ListFeaturedUpdates retrieves the featured site updates
// @Summary List featured updates
// @Description Retrieves the changelog entries flagged as featured
// @Tags updates
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Update} "Featured updates retrieved successfully"
// @Router /updates/featured [get]
func (c *UpdateController) ListFeaturedUpdates(ctx *gin.Context) {
	updates, err := c.updateService.ListFeaturedUpdates(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      updates,
		Timestamp: time.Now(),
	})
}

// GetUpdateByID retrieves a site update by ID
// @Summary Get update details
// @Description Retrieves a specific changelog entry by its ID
// @Tags updates
// @Produce json
// @Param id path int true "Update ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Update} "Update retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid update ID format"
// @Failure 404 {object} dto.ErrorResponse "Update not found"
// @Router /updates/{id} [get]
func (c *UpdateController) GetUpdateByID(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid update ID")
		errorDetail = errorDetail.WithDetails("Update ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	update, err := c.updateService.GetUpdateByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      update,
		Timestamp: time.Now(),
	})
}

// UpdateUpdate edits a site update
// @Summary Edit a site update
// @Description Edits an existing changelog entry; authorship is preserved
// @Tags updates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Update ID" Format(int64) minimum(1)
// @Param request body dto.UpdateUpdateRequest true "Updated content"
// @Success 200 {object} dto.APIResponse{data=models.Update} "Update edited successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Update not found"
// @Router /updates/{id} [put]
func (c *UpdateController) UpdateUpdate(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid update ID")
		errorDetail = errorDetail.WithDetails("Update ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.updateService.UpdateUpdate(ctx, id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	edited, err := c.updateService.GetUpdateByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      edited,
		Timestamp: time.Now(),
	})
}

// DeleteUpdate deletes a site update
// @Summary Delete a site update
// @Description Deletes a changelog entry by its ID
// @Tags updates
// @Produce json
// @Security BearerAuth
// @Param id path int true "Update ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Update deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid update ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Update not found"
// @Router /updates/{id} [delete]
func (c *UpdateController) DeleteUpdate(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid update ID")
		errorDetail = errorDetail.WithDetails("Update ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.updateService.DeleteUpdate(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Update deleted successfully"},
		Timestamp: time.Now(),
	})
}
