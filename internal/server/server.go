package server

import (
	"fmt"
	"os"

	"companycal/config"
	"companycal/internal/handlers"
	"companycal/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.Default()

	SetupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middleware.DatabaseMiddleware(db))

	r.POST("/register", handlers.Register)
	r.POST("/login", handlers.Login)

	r.GET("/", handlers.CalendarView)
	r.GET("/events/json/", handlers.CalendarEventsJSON)
	r.GET("/export/ical/:id/", handlers.ExportEventICal)

	protected := r.Group("/")
	protected.Use(middleware.JWTAuthMiddleware())
	{
		protected.GET("/add/", handlers.NewEventForm)
		protected.POST("/add/", handlers.CreateEvent)
		protected.GET("/edit/:id/", handlers.EditEventForm)
		protected.POST("/edit/:id/", handlers.UpdateEvent)
		protected.POST("/delete/:id/", handlers.DeleteEvent)

		protected.GET("/categories/", handlers.ListCategories)
		protected.POST("/categories/", handlers.CreateCategory)
		protected.POST("/categories/delete/:id/", handlers.DeleteCategory)
	}
}
