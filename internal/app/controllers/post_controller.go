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
	"github.com/kaan/gamerhub/internal/pkg/helpers"
)

// PostController handles community post operations
type PostController struct {
	postService services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService services.PostService) *PostController {
	return &PostController{
		postService: postService,
	}
}

// CreatePost publishes a post
// @Summary Create a post
// @Description Publishes a post under the authenticated operator's identity
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePostRequest true "Post content"
// @Success 201 {object} dto.APIResponse{data=dto.PostResponse} "Post created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Router /posts [post]
func (c *PostController) CreatePost(ctx *gin.Context) {
	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	authorID := ctx.GetInt64(middleware.ContextStaffID)

	id, err := c.postService.CreatePost(ctx, &req, authorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	created, err := c.postService.GetPostByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromPost(created),
		Timestamp: time.Now(),
	})
}

// ListPosts retrieves a page of posts
// @Summary List posts
// @Description Retrieves a page of posts, newest first
// @Tags posts
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PostListResponse} "Posts retrieved successfully"
// @Router /posts [get]
func (c *PostController) ListPosts(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	posts, total, err := c.postService.ListPosts(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, dto.FromPost(post))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PostListResponse{
			Posts:      responses,
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// ListTrendingPosts retrieves the trending posts
// @Summary List trending posts
// @Description Retrieves the posts above the trending like threshold
// @Tags posts
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.PostResponse} "Trending posts retrieved successfully"
// @Router /posts/trending [get]
func (c *PostController) ListTrendingPosts(ctx *gin.Context) {
	posts, err := c.postService.ListTrendingPosts(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, dto.FromPost(post))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      responses,
		Timestamp: time.Now(),
	})
}

// GetPostByID retrieves a post by ID
// @Summary Get post details
// @Description Retrieves a specific post by its ID
// @Tags posts
// @Produce json
// @Param id path int true "Post ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.PostResponse} "Post retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid post ID format"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /posts/{id} [get]
func (c *PostController) GetPostByID(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid post ID")
		errorDetail = errorDetail.WithDetails("Post ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	post, err := c.postService.GetPostByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromPost(post),
		Timestamp: time.Now(),
	})
}

// UpdatePost edits a post
// @Summary Update a post
// @Description Edits a post; only the author or an admin may edit
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID" Format(int64) minimum(1)
// @Param request body dto.UpdatePostRequest true "Updated post content"
// @Success 200 {object} dto.APIResponse{data=dto.PostResponse} "Post updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not the author"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /posts/{id} [put]
func (c *PostController) UpdatePost(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid post ID")
		errorDetail = errorDetail.WithDetails("Post ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	actorID := ctx.GetInt64(middleware.ContextStaffID)
	actorRole := models.RoleType(ctx.GetString(middleware.ContextRole))

	if err := c.postService.UpdatePost(ctx, id, &req, actorID, actorRole); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	updated, err := c.postService.GetPostByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromPost(updated),
		Timestamp: time.Now(),
	})
}

// DeletePost deletes a post
// @Summary Delete a post
// @Description Deletes a post; only the author or an admin may delete
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Post deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid post ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not the author"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /posts/{id} [delete]
func (c *PostController) DeletePost(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid post ID")
		errorDetail = errorDetail.WithDetails("Post ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	actorID := ctx.GetInt64(middleware.ContextStaffID)
	actorRole := models.RoleType(ctx.GetString(middleware.ContextRole))

	if err := c.postService.DeletePost(ctx, id, actorID, actorRole); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Post deleted successfully"},
		Timestamp: time.Now(),
	})
}

// LikePost records a like on a post
// @Summary Like a post
// @Description Records a like from a returning browser; duplicates are rejected
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID" Format(int64) minimum(1)
// @Param request body dto.LikeRequest true "Visitor identifier"
// @Success 200 {object} dto.APIResponse{data=dto.LikeResponse} "Like outcome"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /posts/{id}/like [post]
func (c *PostController) LikePost(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid post ID")
		errorDetail = errorDetail.WithDetails("Post ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.LikeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	response := c.postService.LikePost(ctx, id, req.UserIdentifier)

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      response,
		Timestamp: time.Now(),
	})
}
