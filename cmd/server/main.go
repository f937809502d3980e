package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/lsandini/OnCall/pkg/auth"
	"github.com/lsandini/OnCall/pkg/database"
	"github.com/lsandini/OnCall/pkg/handlers"
	"github.com/lsandini/OnCall/pkg/logging"
)

func main() {
	// Load .env if it exists
	// Try root and parent directories for flexibility
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := logging.NewLogger(gin.Mode())
	defer logger.Sync()

	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)
	h := &handlers.Handler{DB: db, Log: logger}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "OnCall Clinic Roster API",
			"version": "1.2.0",
		})
	})

	r.POST("/admin/login", h.Login)

	api := r.Group("/api")
	{
		// Read endpoints are open; the browser UI polls these
		api.GET("/workers", h.ListWorkers)
		api.GET("/availability", h.GetAvailability)
		api.GET("/configurations", h.ListConfigurations)
		api.GET("/configurations/active", h.GetActiveConfiguration)
		api.GET("/holidays", h.ListHolidays)
		api.GET("/holidays/countries", h.ListHolidayCountries)
		api.GET("/schedules", h.ListSchedules)
		api.GET("/schedules/:year/:month", h.GetSchedule)
	}

	// Mutating endpoints require an admin token
	mutate := r.Group("/api")
	mutate.Use(h.AuthMiddleware())
	{
		mutate.POST("/workers", h.CreateWorker)
		mutate.PUT("/workers/:id", h.UpdateWorker)
		mutate.DELETE("/workers/:id", h.DeleteWorker)

		mutate.PUT("/availability", h.SetAvailability)

		mutate.POST("/configurations", h.CreateConfiguration)
		mutate.PUT("/configurations/:id", h.UpdateConfiguration)
		mutate.PUT("/configurations/:id/activate", h.ActivateConfiguration)
		mutate.DELETE("/configurations/:id", h.DeleteConfiguration)

		mutate.POST("/holidays", h.CreateHoliday)
		mutate.POST("/holidays/populate", h.PopulateHolidays)
		mutate.DELETE("/holidays/:id", h.DeleteHoliday)

		mutate.POST("/schedules/generate", h.GenerateSchedule)
		mutate.POST("/schedules/fill-gaps", h.FillScheduleGaps)
		mutate.PUT("/schedules/:year/:month/assignment/:assignmentId", h.UpdateAssignment)
		mutate.DELETE("/schedules/:year/:month", h.DeleteSchedule)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	logger.Info("server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("could not run server", zap.Error(err))
	}
}
