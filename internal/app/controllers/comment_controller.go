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

// CommentController handles post comment operations
type CommentController struct {
	commentService services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService services.CommentService) *CommentController {
	return &CommentController{
		commentService: commentService,
	}
}

// CreateComment adds a comment to a post
// @Summary Comment on a post
// @Description Adds a visitor comment to a post
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Post ID" Format(int64) minimum(1)
// @Param request body dto.CreateCommentRequest true "Comment content"
// @Success 201 {object} dto.APIResponse "Comment created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /posts/{id}/comments [post]
func (c *CommentController) CreateComment(ctx *gin.Context) {
	idStr := ctx.Param("id")
	postID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid post ID")
		errorDetail = errorDetail.WithDetails("Post ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	id, err := c.commentService.CreateComment(ctx, postID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      gin.H{"id": id},
		Timestamp: time.Now(),
	})
}

// ListComments retrieves the comments of a post
// @Summary List comments
// @Description Retrieves the comments of a post in creation order
// @Tags comments
// @Produce json
// @Param id path int true "Post ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Comment} "Comments retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid post ID"
// @Router /posts/{id}/comments [get]
func (c *CommentController) ListComments(ctx *gin.Context) {
	idStr := ctx.Param("id")
	postID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid post ID")
		errorDetail = errorDetail.WithDetails("Post ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	comments, err := c.commentService.ListComments(ctx, postID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      comments,
		Timestamp: time.Now(),
	})
}

// DeleteComment removes a comment
// @Summary Delete a comment
// @Description Removes a comment; moderation is admin only
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Comment deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid comment ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Comment not found"
// @Router /comments/{id} [delete]
func (c *CommentController) DeleteComment(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid comment ID")
		errorDetail = errorDetail.WithDetails("Comment ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.commentService.DeleteComment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Comment deleted successfully"},
		Timestamp: time.Now(),
	})
}

// LikeComment records a like on a comment
// @Summary Like a comment
// @Description Records a like from a returning browser; duplicates are rejected
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Comment ID" Format(int64) minimum(1)
// @Param request body dto.LikeRequest true "Visitor identifier"
// @Success 200 {object} dto.APIResponse{data=dto.LikeResponse} "Like outcome"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /comments/{id}/like [post]
func (c *CommentController) LikeComment(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid comment ID")
		errorDetail = errorDetail.WithDetails("Comment ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.LikeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	response := c.commentService.LikeComment(ctx, id, req.UserIdentifier)

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      response,
		Timestamp: time.Now(),
	})
}
