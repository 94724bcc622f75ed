package main

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/moodpath/backend/internal/achievement"
	"github.com/moodpath/backend/internal/config"
	"github.com/moodpath/backend/internal/handlers"
	"github.com/moodpath/backend/internal/logger"
	"github.com/moodpath/backend/internal/middleware"
	"github.com/moodpath/backend/internal/models"
	"github.com/moodpath/backend/internal/repository"
	"github.com/moodpath/backend/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	log := logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	})
	logger.SetDefault(log)

	log.Info("starting moodpath api server",
		logger.String("env", cfg.Server.Env),
		logger.String("port", cfg.Server.Port),
		logger.String("data_dir", cfg.Storage.DataDir),
	)

	// Initialize repositories
	entryRepo := repository.NewMemoryEntryRepository()
	progressRepo, err := repository.NewFileProgressRepository(cfg.Storage.DataDir, log)
	if err != nil {
		return fmt.Errorf("failed to initialize progress storage: %w", err)
	}

	// Initialize services
	tracker := achievement.NewTracker(achievement.DefaultCatalog(), log)
	entryService := service.NewEntryService(entryRepo)
	insightService := service.NewInsightService(entryRepo)
	achievementService := service.NewAchievementService(entryRepo, progressRepo, tracker, func(completed models.GoalCompleted) {
		log.Info("goal completed",
			logger.String("goal_id", completed.GoalID),
			logger.String("name", completed.Name),
			logger.Int("reward_points", completed.RewardPoints),
		)
	})

	// Initialize handlers
	entryHandler := handlers.NewEntryHandler(entryService)
	insightsHandler := handlers.NewInsightsHandler(insightService)
	achievementsHandler := handlers.NewAchievementsHandler(achievementService)

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))

	apiLimiter := middleware.NewRateLimiter(300, time.Minute, "api")

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.RateLimit(apiLimiter, log))
	{
		// Entry routes
		v1.GET("/entries", entryHandler.GetEntries)
		v1.POST("/entries", entryHandler.CreateEntry)
		v1.GET("/entries/:id", entryHandler.GetEntry)
		v1.PUT("/entries/:id", entryHandler.UpdateEntry)
		v1.DELETE("/entries/:id", entryHandler.DeleteEntry)

		// Insight routes
		v1.GET("/insights", insightsHandler.GetInsights)

		// Achievement routes
		v1.GET("/achievements", achievementsHandler.GetAchievements)
		v1.POST("/achievements/refresh", achievementsHandler.RefreshAchievements)
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
