package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kaan/gamerhub/internal/app/controllers"
	"github.com/kaan/gamerhub/internal/app/models"
	"github.com/kaan/gamerhub/internal/app/models/dto"
	"github.com/kaan/gamerhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	eventController *controllers.EventController,
	staffController *controllers.StaffController,
	ticketController *controllers.TicketController,
	postController *controllers.PostController,
	commentController *controllers.CommentController,
	updateController *controllers.UpdateController,
	uploadController *controllers.UploadController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Public read routes ---
	events := v1.Group("/events")
	{
		events.GET("", eventController.GetAllEvents)
		events.GET("/slider", eventController.GetSliderEvents)
		events.GET("/:id", eventController.GetEventByID)
	}

	staff := v1.Group("/staff")
	{
		staff.GET("", staffController.GetRoster)
	}

	posts := v1.Group("/posts")
	{
		posts.GET("", postController.ListPosts)
		posts.GET("/trending", postController.ListTrendingPosts)
		posts.GET("/:id", postController.GetPostByID)
		posts.GET("/:id/comments", commentController.ListComments)

		// Anonymous visitor interactions
		posts.POST("/:id/like", postController.LikePost)
		posts.POST("/:id/comments", commentController.CreateComment)
	}

	comments := v1.Group("/comments")
	{
		comments.POST("/:id/like", commentController.LikeComment)
	}

	updates := v1.Group("/updates")
	{
		updates.GET("", updateController.ListUpdates)
		updates.GET("/featured", updateController.ListFeaturedUpdates)
		updates.GET("/:id", updateController.GetUpdateByID)
	}

	tickets := v1.Group("/tickets")
	{
		tickets.POST("", ticketController.CreateTicket)
		tickets.GET("/mine", ticketController.ListMyTickets)
	}

	// --- Authenticated routes (admin and staff panels) ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Me)
		authenticated.POST("/uploads", uploadController.UploadImage)

		// Posts are writable by any authenticated operator; the service
		// enforces author-or-admin ownership on edits and deletes.
		authenticated.POST("/posts", postController.CreatePost)
		authenticated.PUT("/posts/:id", postController.UpdatePost)
		authenticated.DELETE("/posts/:id", postController.DeletePost)

		// Admin-only management routes
		adminProtected := authenticated.Group("")
		adminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			adminProtected.POST("/events", eventController.CreateEvent)
			adminProtected.PUT("/events/:id", eventController.UpdateEvent)
			adminProtected.DELETE("/events/:id", eventController.DeleteEvent)

			adminProtected.GET("/staff/:id", staffController.GetStaffByID)
			adminProtected.POST("/staff", staffController.CreateStaff)
			adminProtected.PUT("/staff/:id", staffController.UpdateStaff)
			adminProtected.DELETE("/staff/:id", staffController.DeleteStaff)

			adminProtected.GET("/tickets", ticketController.ListTickets)
			adminProtected.PUT("/tickets/:id/resolve", ticketController.ResolveTicket)
			adminProtected.DELETE("/tickets/:id", ticketController.DeleteTicket)

			adminProtected.POST("/updates", updateController.CreateUpdate)
			adminProtected.PUT("/updates/:id", updateController.UpdateUpdate)
			adminProtected.DELETE("/updates/:id", updateController.DeleteUpdate)

			adminProtected.DELETE("/comments/:id", commentController.DeleteComment)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
