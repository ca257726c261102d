package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lifementor/backend/internal/config"
	"github.com/lifementor/backend/internal/handlers"
	"github.com/lifementor/backend/internal/logger"
	"github.com/lifementor/backend/internal/middleware"
	"github.com/lifementor/backend/internal/repository"
	"github.com/lifementor/backend/internal/service"
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
	// Load .env if present, then configuration
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	logger.SetDefault(logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	}))

	log := logger.Default()
	log.Info("starting LifeMentor API server",
		logger.String("env", cfg.Server.Env),
		logger.String("storage_path", cfg.Storage.Path),
	)

	// Open the embedded record store
	store, err := repository.OpenStore(repository.Options{
		Path:     cfg.Storage.Path,
		InMemory: cfg.Storage.InMemory,
	})
	if err != nil {
		return fmt.Errorf("failed to open record store: %w", err)
	}
	defer store.Close()

	// Initialize repositories
	studyRepo := repository.NewStudyRepository(store)
	healthRepo := repository.NewHealthRepository(store)
	expenseRepo := repository.NewExpenseRepository(store)
	chatRepo := repository.NewChatRepository(store)

	// Initialize services
	limits := cfg.Budget.Limits()
	studyService := service.NewStudyService(studyRepo)
	healthService := service.NewHealthService(healthRepo)
	financeService := service.NewFinanceService(expenseRepo, limits)
	intelligenceService := service.NewIntelligenceService(studyRepo, healthRepo, expenseRepo, limits)
	chatService := service.NewChatService(studyService, healthService, financeService, intelligenceService, chatRepo)

	// Initialize handlers
	studyHandler := handlers.NewStudyHandler(studyService)
	healthHandler := handlers.NewHealthHandler(healthService)
	financeHandler := handlers.NewFinanceHandler(financeService)
	insightsHandler := handlers.NewInsightsHandler(intelligenceService)
	dashboardHandler := handlers.NewDashboardHandler(studyService, healthService, financeService, intelligenceService)
	chatHandler := handlers.NewChatHandler(chatService)

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger())

	// Liveness check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Record routes
		v1.POST("/study-sessions", studyHandler.CreateSession)
		v1.GET("/study-sessions", studyHandler.GetSessions)
		v1.POST("/checkins", healthHandler.CreateCheckIn)
		v1.GET("/checkins", healthHandler.GetCheckIns)
		v1.POST("/expenses", financeHandler.CreateExpense)
		v1.GET("/expenses", financeHandler.GetExpenses)

		// Metric routes
		v1.GET("/metrics/study", studyHandler.GetMetrics)
		v1.GET("/metrics/health", healthHandler.GetMetrics)
		v1.GET("/metrics/finance", financeHandler.GetMetrics)

		// Insight routes
		v1.GET("/insights", insightsHandler.GetInsights)
		v1.GET("/insights/summary", insightsHandler.GetSummary)

		// Standalone alert routes
		v1.GET("/alerts/burnout", healthHandler.GetBurnoutAlert)
		v1.GET("/alerts/focus", studyHandler.GetFocusAlert)
		v1.GET("/alerts/overspending", financeHandler.GetOverspendingAlert)

		// Dashboard and chat routes
		v1.GET("/dashboard", dashboardHandler.GetDashboard)
		v1.POST("/chat", chatHandler.PostMessage)
		v1.GET("/chat/history", chatHandler.GetHistory)
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
