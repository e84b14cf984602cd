package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Mikailhassan/bursary-aden/internal/app/controllers"
	"github.com/Mikailhassan/bursary-aden/internal/app/models/dto"
	"github.com/Mikailhassan/bursary-aden/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	applicantController *controllers.ApplicantController,
	bursaryController *controllers.BursaryController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public Auth routes ---
	// Registration is mounted at the root to keep the original client contract
	router.POST("/register", authController.Register)

	auth := router.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Public applicant routes ---
	router.POST("/apply", applicantController.Apply)

	applicants := router.Group("/applicants")
	{
		applicants.GET("", applicantController.List)
		applicants.GET("/:id", applicantController.Get)
		applicants.PUT("/:id", applicantController.UpdateStatus)
		applicants.PUT("/:id/update", applicantController.Update)
		applicants.DELETE("/:id", applicantController.Delete)
	}

	// --- Public bursary review route ---
	router.POST("/update-bursary-status", bursaryController.UpdateStatus)

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/user", authController.GetProfile)
		authenticated.POST("/apply-bursary", bursaryController.Apply)
		authenticated.GET("/get-bursary-status/:admission_number", bursaryController.GetStatus)
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Success: true,
			Data:    gin.H{"status": "ok"},
		})
	})
}
