package main

import (
  "context"
  "fmt"
  "os"
  "strings"

  "github.com/ysagp/attendance-analytics/internal/clients/gcp"
  "github.com/ysagp/attendance-analytics/internal/handlers"
  "github.com/ysagp/attendance-analytics/internal/jobs"
  "github.com/ysagp/attendance-analytics/internal/logger"
  "github.com/ysagp/attendance-analytics/internal/middleware"
  "github.com/ysagp/attendance-analytics/internal/repos"
  "github.com/ysagp/attendance-analytics/internal/server"
  "github.com/ysagp/attendance-analytics/internal/services"
  "github.com/ysagp/attendance-analytics/internal/store"
  "github.com/ysagp/attendance-analytics/internal/utils"
)

func main() {
  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Env
  log.Info("Loading environment variables from main...")
  projectID := utils.GetEnv("GCP_PROJECT_ID", "", log)
  jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
  port := utils.GetEnv("PORT", "8080", log)
  allowOrigins := strings.Split(utils.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173", log), ",")
  populationCronEnabled := utils.GetEnvAsBool("POPULATION_CRON_ENABLED", true, log)

  // Firestore
  ctx := context.Background()
  fsClient, err := gcp.NewFirestoreClient(ctx, projectID, log)
  if err != nil {
    log.Error("Could not init Firestore client", "error", err)
    os.Exit(1)
  }
  defer fsClient.Close()
  docStore := store.NewFirestoreStore(fsClient, log)

  // Repos
  log.Info("Setting up Repos from main...")
  sessionRepo := repos.NewSessionRepo(fsClient, log)
  classRepo := repos.NewClassRepo(fsClient, log)
  memberRepo := repos.NewMemberRepo(fsClient, log)
  breakdownRepo := repos.NewBreakdownRepo(fsClient, log)

  // Services
  log.Info("Setting up Services from main...")
  aggregatorService := services.NewAggregatorService(docStore, log)
  recordEventService := services.NewRecordEventService(log, sessionRepo, aggregatorService)
  sessionEventService := services.NewSessionEventService(log, sessionRepo, docStore)
  populationService := services.NewPopulationService(log, memberRepo, docStore)
  breakdownService := services.NewBreakdownService(log, classRepo, breakdownRepo)
  authService := services.NewAuthService(log, jwtSecretKey)

  // Handlers
  eventHandler := handlers.NewEventHandler(log, recordEventService, sessionEventService)
  analyticsHandler := handlers.NewAnalyticsHandler(breakdownService)

  // Middleware
  authMiddleware := middleware.NewAuthMiddleware(log, authService)

  // Jobs
  populationJob := jobs.NewPopulationJob(log, populationService)
  if populationCronEnabled {
    if err := populationJob.Start(ctx); err != nil {
      log.Error("Could not schedule population stats job", "error", err)
      os.Exit(1)
    }
    defer populationJob.Stop()
  }

  // Router
  router := server.NewRouter(server.RouterConfig{
    EventHandler:     eventHandler,
    AnalyticsHandler: analyticsHandler,
    AuthMiddleware:   authMiddleware,
    AllowOrigins:     allowOrigins,
  })

  log.Info("Starting server", "port", port)
  if err := router.Run(":" + port); err != nil {
    log.Error("Server exited", "error", err)
    os.Exit(1)
  }
}
