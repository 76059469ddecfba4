package main

import (
	"context"
	"log"

	"devtrack-backend/config"
	"devtrack-backend/handlers"
	"devtrack-backend/repository"
	"devtrack-backend/service"
	"devtrack-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
)

func main() {
	// Load .env file from project root (relative to cmd/server/)
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found, using environment variables")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	db, err := initPostgres(cfg.Database.URL)
	if err != nil {
		log.Fatal("Failed to initialize Postgres: ", err)
	}
	defer db.Close()

	snapshotStorage, err := storage.NewStorage(cfg.StorageSettings())
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	log.Println("Storage initialized")

	// Repositories
	userRepo := repository.NewUserRepository(db)
	planRepo := repository.NewPlanRepository(db)
	blockRepo := repository.NewActivityBlockRepository(db)
	customBlockRepo := repository.NewCustomActivityBlockRepository(db)
	logRepo := repository.NewDailyLogRepository(db)
	summaryRepo := repository.NewDailySummaryRepository(db)

	// Services
	authService := service.NewAuthService(
		service.AuthWithUserStore(userRepo),
		service.AuthWithJWTSecret(cfg.Auth.JWTSecret),
		service.AuthWithTokenTTL(cfg.Auth.TokenTTL),
	)
	cloneService := service.NewCloneService(
		service.CloneWithPlanStore(planRepo),
		service.CloneWithActivityBlockStore(blockRepo),
	)
	planService := service.NewPlanService(
		service.PlanWithPlanStore(planRepo),
		service.PlanWithActivityBlockStore(blockRepo),
		service.PlanWithCustomActivityBlockStore(customBlockRepo),
	)
	logService := service.NewLogService(
		service.LogWithStore(logRepo),
	)
	summaryService := service.NewSummaryService(
		service.SummaryWithStore(summaryRepo),
	)
	reportService := service.NewReportService(
		service.ReportWithLogStore(logRepo),
		service.ReportWithSummaryStore(summaryRepo),
	)
	exportService := service.NewExportService(
		service.ExportWithPlanStore(planRepo),
		service.ExportWithActivityBlockStore(blockRepo),
		service.ExportWithCustomActivityBlockStore(customBlockRepo),
		service.ExportWithLogStore(logRepo),
		service.ExportWithSummaryStore(summaryRepo),
		service.ExportWithSnapshotStorage(snapshotStorage),
	)

	insightOpts := []service.InsightServiceOption{
		service.InsightWithModel(cfg.Gemini.Model),
	}
	if cfg.Gemini.APIKey != "" {
		geminiClient, err := initGemini(cfg.Gemini.APIKey)
		if err != nil {
			log.Fatal("Failed to initialize Gemini: ", err)
		}
		defer geminiClient.Close()
		insightOpts = append(insightOpts, service.InsightWithGeminiClient(geminiClient))
	} else {
		log.Println("GEMINI_API_KEY not set, weekly insights disabled")
	}
	insightService := service.NewInsightService(insightOpts...)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, cfg.Auth.SecureCookie, cfg.Auth.TokenTTL)
	defaultPlanHandler := handlers.NewDefaultPlanHandler(cloneService)
	planHandler := handlers.NewPlanHandler(planService)
	logHandler := handlers.NewLogHandler(logService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)
	reportHandler := handlers.NewReportHandler(reportService, insightService)
	exportHandler := handlers.NewExportHandler(exportService)

	// Setup Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	api := r.Group("/api")
	{
		// Public endpoints
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/signin", authHandler.Signin)
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/default-plans", defaultPlanHandler.ListDefaultPlans)

		// Everything else requires a session
		authed := api.Group("", handlers.RequireAuth(authService))
		{
			authed.GET("/auth/session", authHandler.Session)

			authed.GET("/user/preference", authHandler.GetPreference)
			authed.PUT("/user/preference", authHandler.SetPreference)
			authed.DELETE("/user/preference", authHandler.ClearPreference)

			authed.POST("/default-plans/clone", defaultPlanHandler.ClonePlan)

			authed.POST("/plans", planHandler.CreatePlan)
			authed.GET("/plans", planHandler.ListPlans)
			authed.PUT("/plans/:id", planHandler.UpdatePlan)
			authed.DELETE("/plans/:id", planHandler.DeletePlan)
			authed.GET("/plans/:id/activities", planHandler.ListPlanActivities)
			authed.POST("/plans/:id/activities", planHandler.AddPlanActivity)
			authed.DELETE("/plans/:id/activities/:activityId", planHandler.DeletePlanActivity)
			authed.GET("/plans/:id/blocks", planHandler.ListActivityBlocks)

			authed.POST("/daily-logs", logHandler.CreateLog)
			authed.GET("/daily-logs", logHandler.ListLogs)
			authed.PUT("/daily-logs/:id", logHandler.UpdateLog)
			authed.DELETE("/daily-logs/:id", logHandler.DeleteLog)

			authed.POST("/daily-summary", summaryHandler.UpsertSummary)
			authed.GET("/daily-summary", summaryHandler.ListSummaries)

			authed.GET("/reports/daily", reportHandler.DailyReport)
			authed.GET("/reports/weekly", reportHandler.WeeklyReport)

			authed.POST("/export", exportHandler.CreateExport)
			authed.GET("/export/download", exportHandler.DownloadExport)
		}
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}

func initPostgres(connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	log.Println("Postgres connection established")
	return pool, nil
}

func initGemini(apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	log.Println("Gemini client initialized")
	return client, nil
}
