// Habit Tracker API
//
// REST API for habit tracking with analytics, adaptive difficulty and recovery coaching.
//
//	@title			Habit Tracker API
//	@version		1.0
//	@description	Track habits and completions; compute analytics, adaptive difficulty, recovery plans and badges.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			habits
//	@tag.description	Habit and progress tracking endpoints
//
//	@tag.name			analytics
//	@tag.description	Analytics, difficulty, recovery and badge endpoints
//
//	@tag.name			coaching
//	@tag.description	LLM recovery coaching endpoints
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/habit-tracker/internal/analytics"
	"github.com/blaisecz/habit-tracker/internal/api"
	"github.com/blaisecz/habit-tracker/internal/api/handler"
	"github.com/blaisecz/habit-tracker/internal/catalog"
	"github.com/blaisecz/habit-tracker/internal/config"
	"github.com/blaisecz/habit-tracker/internal/langfuse"
	"github.com/blaisecz/habit-tracker/internal/llm"
	"github.com/blaisecz/habit-tracker/internal/repository"
	"github.com/blaisecz/habit-tracker/internal/seed"
	"github.com/blaisecz/habit-tracker/internal/service"
	"github.com/blaisecz/habit-tracker/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg := config.Load()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, telemetry.ServiceName)
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := config.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	badges, err := catalog.Load(cfg.BadgeCatalogPath)
	if err != nil {
		log.Fatalf("Failed to load badge catalog: %v", err)
	}
	log.Printf("Loaded %d badge definitions", badges.Len())

	// Initialize repositories
	repos := service.Repositories{
		Users:         repository.NewUserRepository(db),
		Habits:        repository.NewHabitRepository(db),
		Progress:      repository.NewProgressRepository(db),
		ResearchViews: repository.NewResearchViewRepository(db),
	}

	lf := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	prompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
		BaseURL:    cfg.LangfuseBaseURL,
		PublicKey:  cfg.LangfusePublicKey,
		SecretKey:  cfg.LangfuseSecretKey,
		PromptName: cfg.LangfuseCoachPrompt,
		SavePath:   cfg.CoachPromptPath,
		Fallback:   llm.DefaultSystemPrompt,
	})
	if err != nil {
		log.Fatalf("Failed to load coaching prompt: %v", err)
	}

	// A nil client reports ErrOpenAIUnavailable from GenerateCoaching.
	var coach llm.CoachLLM = llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAICoachModel, prompt)
	if cfg.OpenAIAPIKey == "" {
		log.Println("Warning: OpenAI API key not configured, coaching endpoint will be unavailable")
	}

	// Initialize services
	engine := analytics.New(analytics.DefaultConfig())
	userService := service.NewUserService(repos.Users)
	habitService := service.NewHabitService(repos, time.Now)
	analyticsService := service.NewAnalyticsService(engine, repos, time.Now)
	difficultyService := service.NewDifficultyService(engine, repos, time.Now)
	recoveryService := service.NewRecoveryService(engine, repos, time.Now)
	badgeService := service.NewBadgeService(engine, badges, repos, time.Now)
	dashboardService := service.NewDashboardService(engine, badges, repos, cfg.DefaultWindowDays, time.Now)
	coachingService := service.NewCoachingService(engine, repos, coach, lf, cfg.DefaultWindowDays, time.Now)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	habitHandler := handler.NewHabitHandler(habitService)
	analyticsHandler := handler.NewAnalyticsHandler(
		analyticsService, difficultyService, recoveryService, badgeService, dashboardService, cfg.DefaultWindowDays,
	)
	coachingHandler := handler.NewCoachingHandler(coachingService, lf)

	// Setup router
	router := api.NewRouter(userHandler, habitHandler, analyticsHandler, coachingHandler)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	if err := lf.Flush(shutCtx); err != nil {
		log.Printf("[langfuse] flush: %v", err)
	}
	if err := shutdownTracer(shutCtx); err != nil {
		log.Printf("Tracer shutdown: %v", err)
	}
}
