package routes

import (
	"manyar-backend/handlers"
	"manyar-backend/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, uploadDir string) {
	// Initialize handlers
	authHandler := &handlers.AuthHandler{DB: db}
	adminHandler := &handlers.AdminHandler{DB: db}
	categoryHandler := &handlers.CategoryHandler{DB: db}
	productHandler := &handlers.ProductHandler{DB: db}
	contactHandler := &handlers.ContactHandler{DB: db}
	statsHandler := &handlers.StatsHandler{DB: db}
	uploadHandler := &handlers.UploadHandler{UploadDir: uploadDir}

	// Public routes
	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
		api.POST("/init", authHandler.InitAdmin)

		api.POST("/upload", uploadHandler.UploadFile)

		api.GET("/categories", categoryHandler.GetCategories)
		api.POST("/categories", categoryHandler.CreateCategory)
		api.GET("/categories/:id", categoryHandler.GetCategory)
		api.PUT("/categories/:id", categoryHandler.UpdateCategory)
		api.DELETE("/categories/:id", categoryHandler.DeleteCategory)

		api.GET("/products", productHandler.GetProducts)
		api.POST("/products", productHandler.CreateProduct)
		api.GET("/products/:id", productHandler.GetProduct)
		api.PUT("/products/:id", productHandler.UpdateProduct)
		api.DELETE("/products/:id", productHandler.DeleteProduct)

		api.POST("/contact", contactHandler.CreateContactMessage)
		api.GET("/contact", contactHandler.GetContactMessages)
		api.PUT("/contact/:id", contactHandler.UpdateContactMessage)
		api.DELETE("/contact/:id", contactHandler.DeleteContactMessage)

		api.GET("/stats", statsHandler.GetStats)
	}

	// Session-gated routes
	protected := api.Group("")
	protected.Use(middleware.SessionAuth(db))
	{
		protected.POST("/auth/logout", authHandler.Logout)
		protected.GET("/auth/me", authHandler.Me)
		protected.POST("/auth/change-password", authHandler.ChangePassword)

		protected.GET("/admins", adminHandler.GetAdmins)
		protected.POST("/admins", adminHandler.CreateAdmin)
		protected.PUT("/admins/:id", adminHandler.UpdateAdmin)
		protected.DELETE("/admins/:id", adminHandler.DeleteAdmin)
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
